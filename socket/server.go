package socket

import (
	"log"

	"swipess_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server that pushes
// listing-created events to connected feed clients.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("Socket connected:", s.ID())
		s.Join(services.ListingsRoom)
		return nil
	})

	// Clients narrow their stream to one category room.
	server.OnEvent("/", "subscribe", func(s socketio.Conn, category string) {
		if category == "" {
			log.Println("Invalid category in subscribe request")
			return
		}
		log.Printf("Socket %s subscribed to %s", s.ID(), category)
		s.Join(category)
	})

	server.OnEvent("/", "unsubscribe", func(s socketio.Conn, category string) {
		if category == "" {
			return
		}
		s.Leave(category)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("Socket disconnected:", s.ID(), reason)
	})

	return server
}

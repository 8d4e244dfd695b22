package models

// InteractionAction is a recorded user decision on a card.
type InteractionAction string

const (
	ActionLike InteractionAction = "like"
	ActionNope InteractionAction = "nope"
	ActionView InteractionAction = "view"
)

// Valid reports whether a is a known action.
func (a InteractionAction) Valid() bool {
	switch a {
	case ActionLike, ActionNope, ActionView:
		return true
	}
	return false
}

// InteractionRecord is one entry of the append-only session log.
// Duration is the dwell time in milliseconds before the action;
// Timestamp is unix milliseconds.
type InteractionRecord struct {
	SessionID string            `dynamodbav:"sessionId" json:"sessionId,omitempty"`
	UserID    string            `dynamodbav:"userId" json:"userId,omitempty"`
	ListingID string            `dynamodbav:"listingId" json:"listingId"`
	Action    InteractionAction `dynamodbav:"action" json:"action"`
	Duration  int64             `dynamodbav:"duration" json:"duration"`
	Timestamp int64             `dynamodbav:"timestamp" json:"timestamp"`
}

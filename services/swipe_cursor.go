package services

import "swipess_server/models"

// swipeCursor is the per-session position state machine:
// Viewing(index) -> Transitioning(direction) -> Viewing(next). It also
// holds the single-slot undo target. Callers hold the session lock.
type swipeCursor struct {
	index            int
	lastSwipedIndex  int // -1 = empty undo slot
	returnedThisTurn bool
	direction        models.InteractionAction // transient; "" while viewing
}

func newSwipeCursor() swipeCursor {
	return swipeCursor{lastSwipedIndex: -1}
}

// beginSwipe arms the undo slot with the index about to be departed and
// enters the transitioning state. Returns false while a transition is
// already in flight.
func (c *swipeCursor) beginSwipe(dir models.InteractionAction) bool {
	if c.direction != "" {
		return false
	}
	c.lastSwipedIndex = c.index
	c.returnedThisTurn = false
	c.direction = dir
	return true
}

// settle completes the transition, advancing cyclically over a
// sequence of the given length. A settle without an in-flight
// transition is a no-op.
func (c *swipeCursor) settle(length int) {
	if c.direction == "" {
		return
	}
	c.direction = ""
	if length <= 0 {
		c.index = 0
		return
	}
	c.index = (c.index + 1) % length
}

// undo restores the last swiped position, consuming the single undo
// opportunity. Undoing mid-transition cancels the pending advance.
func (c *swipeCursor) undo() bool {
	if c.lastSwipedIndex < 0 || c.returnedThisTurn {
		return false
	}
	c.index = c.lastSwipedIndex
	c.returnedThisTurn = true
	c.lastSwipedIndex = -1
	c.direction = ""
	return true
}

func (c *swipeCursor) canReturn() bool {
	return c.lastSwipedIndex >= 0 && !c.returnedThisTurn
}

func (c *swipeCursor) reset() {
	*c = newSwipeCursor()
}

package gallery

import (
	"time"

	"github.com/san-kum/gallery/internal/dynamo"
)

type EventKind int

const (
	EventFired EventKind = iota
	EventDropped
	EventExpired
	EventHit
	EventScored
	EventRefilled
	EventCleared
	EventReset
)

var eventNames = [...]string{"fired", "dropped", "expired", "hit", "scored", "refilled", "cleared", "reset"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event records one state change inside a frame. Slot and Target are -1 when
// the event has no projectile or target.
type Event struct {
	Kind     EventKind
	Frame    uint64
	Time     time.Duration
	Slot     int
	Target   int
	Position dynamo.Vector3
	Expiry   Expiry
	Score    int
	Ammo     int
}

package game

import (
	"time"
)

// NumLanes is fixed: 0 is left, 1 is center, 2 is right.
const NumLanes = 3

type Note struct {
	ID   int64
	Lane uint8
	Time time.Duration // The time the note should be hit

	// Resolution state. Hit and Missed are terminal and mutually
	// exclusive, cleared only by an explicit reset.
	Hit    bool
	Missed bool
}

func (note *Note) Resolved() bool {
	return note.Hit || note.Missed
}

func (note *Note) Reset() {
	note.Hit = false
	note.Missed = false
}

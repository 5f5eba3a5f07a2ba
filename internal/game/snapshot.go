package game

import (
	"time"
)

// Snapshot is the read-only view published to the presentation layer once
// per tick. Lanes are the transient press flashes, not game state.
type Snapshot struct {
	Score int64
	Combo int64
	Heat  float64
	Tier  int
	Phase Phase
	Time  time.Duration
	Lanes [NumLanes]bool
	Last  *Result
}

package game

import (
	"time"
)

// Judgement describes one rating band: the exclusive bound on absolute
// timing error and the rewards a hit inside it earns.
type Judgement struct {
	Window time.Duration
	Name   string
	Score  int64
	Heat   float64
}

// Result is what a judged press hands to the presentation layer.
type Result struct {
	Judgement *Judgement
	Lane      uint8
	Diff      time.Duration // signed, note time minus press time
	Note      *Note
	Bloom     bool
}

// Input is a raw lane press, recorded for the replay log.
type Input struct {
	Lane uint8
	Time time.Duration
}

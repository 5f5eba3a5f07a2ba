package score

import (
	"time"

	"git.lost.host/meutraa/pulse/internal/game"
)

type Scorer interface {
	Init() error
	Deinit()

	// TryHit judges a lane press against the chart, resolving at most one
	// note and applying its rewards to the state. Nil when nothing was in
	// reach, a whiffed press is not an error.
	TryHit(chart *game.Chart, state *game.State, lane uint8, now time.Duration) *game.Result

	// Sweep marks unresolved notes whose hit window has elapsed and applies
	// the miss penalty per note. Returns the newly missed notes.
	Sweep(chart *game.Chart, state *game.State, now time.Duration) []*game.Note

	Decay(state *game.State)
	Reset(chart *game.Chart, state *game.State)

	// Save the raw inputs of this performance
	Save(chart *game.Chart, inputs []game.Input, rate float64)
	// Load previous performances for the chart
	Load(chart *game.Chart) []History
	// Replay re-judges a history against a fresh copy of the chart.
	Replay(chart *game.Chart, history *History) game.State
}

type History struct {
	Sum    string
	Inputs []game.Input
	Rate   float64
}

package engine

import (
	"errors"
	"math"
	"time"

	"git.lost.host/meutraa/pulse/internal/clock"
	"git.lost.host/meutraa/pulse/internal/config"
	"git.lost.host/meutraa/pulse/internal/game"
	"git.lost.host/meutraa/pulse/internal/score"
)

var (
	ErrNoChart    = errors.New("no chart loaded")
	ErrEmptyChart = errors.New("chart has no notes")
	ErrNotReady   = errors.New("audio source is not ready")
)

// Lane flashes are armed to this before any press has happened.
const laneNever = time.Duration(math.MinInt64)

// Engine is the frame driver. It owns the authoritative game state and is
// the single place phase transitions happen. Every method must run on the
// one goroutine that drives ticks and input, nothing here locks.
type Engine struct {
	Clock  clock.Clock
	Scorer score.Scorer

	chart *game.Chart
	state game.State
	phase game.Phase

	now       time.Duration
	laneUntil [game.NumLanes]time.Duration
	last      *game.Result
	swept     []*game.Note
	inputs    []game.Input
}

func New(c clock.Clock, s score.Scorer) *Engine {
	e := &Engine{Clock: c, Scorer: s, phase: game.PhaseSetup}
	for i := range e.laneUntil {
		e.laneUntil[i] = laneNever
	}
	return e
}

// Load installs a chart while in setup. A malformed or empty chart is
// rejected before any state changes.
func (e *Engine) Load(chart *game.Chart) error {
	if nil == chart || len(chart.Notes) == 0 {
		return ErrEmptyChart
	}
	if e.phase == game.PhasePlaying {
		e.Clock.Stop()
	}
	e.chart = chart
	e.phase = game.PhaseSetup
	return nil
}

// Start moves setup to playing and schedules the song after the countdown.
// The clock reports negative time until the countdown ends.
func (e *Engine) Start() error {
	if nil == e.chart {
		return ErrNoChart
	}
	if len(e.chart.Notes) == 0 {
		return ErrEmptyChart
	}
	if !e.Clock.Ready() {
		return ErrNotReady
	}

	e.Scorer.Reset(e.chart, &e.state)
	e.inputs = e.inputs[:0]
	e.last = nil
	e.swept = nil
	for i := range e.laneUntil {
		e.laneUntil[i] = laneNever
	}
	e.phase = game.PhasePlaying
	e.Clock.Play(*config.Delay)
	e.now = e.Clock.Now()
	return nil
}

// Restart rewinds a running or finished game to a fresh playing state.
// Calling it twice in a row lands on the same zeroed state.
func (e *Engine) Restart() error {
	if nil == e.chart {
		return ErrNoChart
	}
	e.Clock.Stop()
	e.phase = game.PhaseSetup
	return e.Start()
}

// Stop abandons the current run and returns to setup. The clock is
// silenced before the phase changes, so no tick runs after it.
func (e *Engine) Stop() {
	if e.phase == game.PhasePlaying {
		e.Clock.Stop()
	}
	e.phase = game.PhaseSetup
}

// Tick runs the per-frame work and reports whether the game is still
// playing. All timing derives from the absolute clock read, irregular tick
// intervals only change how often decay lands.
func (e *Engine) Tick() bool {
	if e.phase != game.PhasePlaying {
		e.swept = nil
		return false
	}

	e.now = e.Clock.Now()
	e.Scorer.Decay(&e.state)
	if e.now > 0 {
		e.swept = e.Scorer.Sweep(e.chart, &e.state, e.now)
	} else {
		e.swept = nil
	}

	if duration := e.Duration(); duration > 0 && e.now > duration+config.EndGrace {
		// The finishing tick keeps its swept notes visible, the next
		// tick clears them on the early return above.
		e.phase = game.PhaseFinished
		e.Clock.Stop()
		return false
	}
	return true
}

// HandleLane applies a lane press at the current clock time. The flash is
// re-armed on every press, last write wins, so repeats never stack timers.
func (e *Engine) HandleLane(lane uint8) *game.Result {
	if e.phase != game.PhasePlaying || lane >= game.NumLanes {
		return nil
	}
	now := e.Clock.Now()
	e.laneUntil[lane] = now + config.LaneFlash
	if now < 0 {
		// Countdown presses only flash, they are never judged.
		return nil
	}
	e.inputs = append(e.inputs, game.Input{Lane: lane, Time: now})
	result := e.Scorer.TryHit(e.chart, &e.state, lane, now)
	if nil != result {
		e.last = result
	}
	return result
}

// Duration is the song length the end check runs against: the clock's
// report when it has one, otherwise the last note time.
func (e *Engine) Duration() time.Duration {
	if d := e.Clock.Duration(); d > 0 {
		return d
	}
	if nil != e.chart {
		return e.chart.LastNoteTime()
	}
	return 0
}

// Snapshot copies the presentation-facing view. Consumers never touch the
// interior mutable state.
func (e *Engine) Snapshot() game.Snapshot {
	snap := game.Snapshot{
		Score: e.state.Score,
		Combo: e.state.Combo,
		Heat:  e.state.Heat,
		Tier:  game.Tier(e.state.Combo),
		Phase: e.phase,
		Time:  e.now,
		Last:  e.last,
	}
	for i := range snap.Lanes {
		snap.Lanes[i] = e.laneUntil[i] != laneNever && e.now < e.laneUntil[i]
	}
	return snap
}

// Swept is the set of notes missed by the latest tick, for the
// presentation layer to flash.
func (e *Engine) Swept() []*game.Note {
	return e.swept
}

func (e *Engine) Chart() *game.Chart {
	return e.chart
}

func (e *Engine) Phase() game.Phase {
	return e.phase
}

// Inputs is the raw press log of the current run, for the replay store.
func (e *Engine) Inputs() []game.Input {
	return e.inputs
}

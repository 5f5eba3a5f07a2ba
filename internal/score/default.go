package score

import (
	"database/sql"
	"math/rand"
	"sort"
	"time"

	"git.lost.host/meutraa/pulse/internal/config"
	"git.lost.host/meutraa/pulse/internal/game"
)

type DefaultScorer struct {
	db   *sql.DB
	path string
	rand *rand.Rand
}

// NewDefaultScorer seeds the bloom draw. A zero seed falls back to the
// clock, tests pass a fixed one for reproducible runs.
func NewDefaultScorer(seed int64) *DefaultScorer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DefaultScorer{rand: rand.New(rand.NewSource(seed))}
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Judge maps an absolute timing error to its judgement band. Nil when the
// error is outside the hit window.
func Judge(d time.Duration) (int, *game.Judgement) {
	for i := range config.Judgements {
		if d < config.Judgements[i].Window {
			return i, &config.Judgements[i]
		}
	}
	return -1, nil
}

// TryHit resolves a lane press. Presses during the countdown are silently
// ignored. The first unresolved note in chart order inside the hit window
// wins; with a 150ms window at most one note is realistically eligible, and
// first-in-order keeps replays reproducible.
func (s *DefaultScorer) TryHit(chart *game.Chart, state *game.State, lane uint8, now time.Duration) *game.Result {
	if now < 0 {
		return nil
	}
	for _, note := range chart.Notes {
		diff := note.Time - now
		if diff >= config.HitWindow {
			// Sorted chart, nothing later can be in reach.
			break
		}
		if note.Lane != lane || note.Resolved() {
			continue
		}
		d := abs(diff)
		if d >= config.HitWindow {
			continue
		}

		note.Hit = true
		idx, judgement := Judge(d)
		if nil == judgement {
			// The window check above guarantees a band
			return nil
		}
		result := &game.Result{Judgement: judgement, Lane: lane, Diff: diff, Note: note}
		if idx == 0 && state.Combo > config.BloomCombo && s.rand.Float64() > config.BloomDraw {
			result.Judgement = &config.Bloom
			result.Bloom = true
		}
		state.ApplyHit(result.Judgement)
		return result
	}
	return nil
}

// Sweep runs once per tick while the song is past the countdown. Notes are
// missed in chart order, the penalty is per note even when several expire
// on the same tick.
func (s *DefaultScorer) Sweep(chart *game.Chart, state *game.State, now time.Duration) []*game.Note {
	if now <= 0 {
		return nil
	}
	var missed []*game.Note
	for _, note := range chart.Notes {
		if note.Time+config.HitWindow >= now {
			break
		}
		if note.Resolved() {
			continue
		}
		note.Missed = true
		state.ApplyMiss()
		missed = append(missed, note)
	}
	return missed
}

func (s *DefaultScorer) Decay(state *game.State) {
	state.Decay(config.HeatDecayPerTick)
}

// Reset returns the chart and state to their pre-play condition. It runs
// between ticks on the single game goroutine, so no caller ever observes a
// partial reset.
func (s *DefaultScorer) Reset(chart *game.Chart, state *game.State) {
	chart.Reset()
	state.Reset()
}

// Replay re-judges a recorded performance against a fresh copy of the
// chart, interleaving sweeps with the inputs so combo resets land in
// order. Tick-bound heat decay is not replayed.
func (s *DefaultScorer) Replay(chart *game.Chart, history *History) game.State {
	notes := make([]*game.Note, len(chart.Notes))
	for i, note := range chart.Notes {
		n := *note
		n.Reset()
		notes[i] = &n
	}
	fresh := &game.Chart{Notes: notes, Name: chart.Name}

	// Compacted histories come back grouped by lane, restore time order.
	inputs := make([]game.Input, len(history.Inputs))
	copy(inputs, history.Inputs)
	sort.SliceStable(inputs, func(i, j int) bool {
		return inputs[i].Time < inputs[j].Time
	})

	var state game.State
	for i := range inputs {
		input := &inputs[i]
		s.Sweep(fresh, &state, input.Time)
		s.TryHit(fresh, &state, input.Lane, input.Time)
	}
	s.Sweep(fresh, &state, fresh.LastNoteTime()+config.HitWindow+time.Millisecond)
	return state
}

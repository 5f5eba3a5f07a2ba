package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/pulse/internal/game"
)

func laneChart(times []time.Duration, lanes []uint8) *game.Chart {
	chart := &game.Chart{}
	for i := range times {
		chart.Notes = append(chart.Notes, &game.Note{Time: times[i], Lane: lanes[i]})
	}
	chart.Finalize()
	return chart
}

func TestSweepSingleMiss(t *testing.T) {
	chart := laneChart([]time.Duration{time.Second}, []uint8{1})
	scorer := NewDefaultScorer(1)
	state := game.State{Combo: 5, Heat: 40}

	// Exactly on the window edge is not yet a miss
	if missed := scorer.Sweep(chart, &state, 1150*time.Millisecond); len(missed) != 0 {
		t.Fatal("missed on the boundary", missed)
	}

	missed := scorer.Sweep(chart, &state, 1151*time.Millisecond)
	if len(missed) != 1 || !missed[0].Missed || missed[0].Hit {
		t.Fatal("missed", missed)
	}
	if state.Combo != 0 {
		t.Log("combo", state.Combo)
		t.Fail()
	}
	if state.Heat != 25 {
		t.Log("heat", state.Heat)
		t.Fail()
	}

	// Terminal, a second sweep changes nothing
	if again := scorer.Sweep(chart, &state, 2*time.Second); len(again) != 0 {
		t.Fatal("re-missed a missed note", again)
	}
	if state.Heat != 25 {
		t.Log("heat after re-sweep", state.Heat)
		t.Fail()
	}
}

func TestSweepPenaltyPerNote(t *testing.T) {
	// Three simultaneous misses apply the penalty three times, floored
	chart := laneChart(
		[]time.Duration{time.Second, time.Second, time.Second},
		[]uint8{0, 1, 2},
	)
	scorer := NewDefaultScorer(1)
	state := game.State{Combo: 9, Heat: 40}

	missed := scorer.Sweep(chart, &state, 2*time.Second)
	if len(missed) != 3 {
		t.Fatal("missed", missed)
	}
	// Chart order is preserved in the result
	for i, note := range missed {
		if note.ID != int64(i) {
			t.Log("order", i, note.ID)
			t.Fail()
		}
	}
	if state.Combo != 0 || state.Heat != 0 {
		t.Log("state", state)
		t.Fail()
	}
}

func TestSweepIgnoresCountdownAndResolved(t *testing.T) {
	chart := laneChart([]time.Duration{time.Second, 2 * time.Second}, []uint8{1, 1})
	scorer := NewDefaultScorer(1)
	var state game.State

	if missed := scorer.Sweep(chart, &state, 0); len(missed) != 0 {
		t.Fatal("swept at zero time", missed)
	}
	if missed := scorer.Sweep(chart, &state, -time.Second); len(missed) != 0 {
		t.Fatal("swept during countdown", missed)
	}

	chart.Notes[0].Hit = true
	missed := scorer.Sweep(chart, &state, 10*time.Second)
	if len(missed) != 1 || missed[0].Time != 2*time.Second {
		t.Fatal("swept a hit note", missed)
	}
}

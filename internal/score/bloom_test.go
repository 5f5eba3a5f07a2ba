package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/pulse/internal/game"
)

// Fifty perfect presses on a long streak. Which of them bloom is up to the
// seeded draw, the rewards never change.
func bloomRun(t *testing.T, seed int64) ([]string, game.State) {
	times := make([]time.Duration, 50)
	lanes := make([]uint8, 50)
	for i := range times {
		times[i] = time.Duration(i+1) * time.Second
		lanes[i] = 1
	}
	chart := laneChart(times, lanes)
	scorer := NewDefaultScorer(seed)
	state := game.State{Combo: 40}

	names := make([]string, 0, len(times))
	for _, at := range times {
		result := scorer.TryHit(chart, &state, 1, at)
		if nil == result {
			t.Fatal("perfect press found nothing at", at)
		}
		if result.Judgement.Name != "PERFECT" && result.Judgement.Name != "BLOOM" {
			t.Fatal("unexpected judgement", result.Judgement.Name)
		}
		if result.Bloom != (result.Judgement.Name == "BLOOM") {
			t.Fatal("bloom flag disagrees with judgement", result)
		}
		names = append(names, result.Judgement.Name)
	}
	return names, state
}

func TestBloomRewardsUnchanged(t *testing.T) {
	_, state := bloomRun(t, 7)
	if state.Score != 50*300 {
		t.Log("score", state.Score)
		t.Fail()
	}
	if state.Combo != 90 {
		t.Log("combo", state.Combo)
		t.Fail()
	}
}

func TestBloomSeedDeterminism(t *testing.T) {
	a, _ := bloomRun(t, 7)
	b, _ := bloomRun(t, 7)
	for i := range a {
		if a[i] != b[i] {
			t.Log("index", i, a[i], b[i])
			t.Fail()
		}
	}
}

// blooms counts how many of n perfect presses bloom when every press lands
// on the given streak. The scorer is shared so each press advances the draw.
func blooms(t *testing.T, combo int64, n int) int {
	times := make([]time.Duration, n)
	lanes := make([]uint8, n)
	for i := range times {
		times[i] = time.Duration(i+1) * time.Second
		lanes[i] = 1
	}
	chart := laneChart(times, lanes)
	scorer := NewDefaultScorer(7)

	count := 0
	for _, at := range times {
		state := game.State{Combo: combo}
		result := scorer.TryHit(chart, &state, 1, at)
		if nil == result {
			t.Fatal("perfect press found nothing at", at)
		}
		if result.Bloom {
			count++
		}
	}
	return count
}

// The streak gate is exclusive, a combo sitting exactly on it never blooms
// no matter how the draw falls.
func TestBloomComboBoundary(t *testing.T) {
	if n := blooms(t, 30, 200); n != 0 {
		t.Log("blooms on combo 30", n)
		t.Fail()
	}
	if n := blooms(t, 31, 200); n == 0 {
		t.Log("no bloom on combo 31 in 200 presses")
		t.Fail()
	}
}

func TestNoBloomOnLowCombo(t *testing.T) {
	chart := laneChart([]time.Duration{time.Second}, []uint8{1})
	scorer := NewDefaultScorer(7)
	var state game.State

	result := scorer.TryHit(chart, &state, 1, time.Second)
	if nil == result || result.Judgement.Name != "PERFECT" || result.Bloom {
		t.Fatal("low combo press", result)
	}
}

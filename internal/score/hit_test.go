package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/pulse/internal/game"
	"git.lost.host/meutraa/pulse/internal/parser"
	"git.lost.host/meutraa/pulse/internal/testdata"
)

type hitTest struct {
	Lane uint8
	Now  time.Duration
	Name string        // expected judgement, "" for no hit
	Note time.Duration // expected resolved note time
}

var hitTests = []hitTest{
	// 20ms early of the 1.0s center note
	{Lane: 1, Now: 1020 * time.Millisecond, Name: "PERFECT", Note: time.Second},
	// exactly on the perfect boundary falls into great
	{Lane: 1, Now: 1050 * time.Millisecond, Name: "GREAT", Note: time.Second},
	{Lane: 1, Now: 1049 * time.Millisecond, Name: "PERFECT", Note: time.Second},
	// exactly on the hit boundary is not hittable
	{Lane: 0, Now: 1650 * time.Millisecond, Name: ""},
	{Lane: 0, Now: 1649 * time.Millisecond, Name: "GREAT", Note: 1500 * time.Millisecond},
	// wrong lane
	{Lane: 2, Now: time.Second, Name: ""},
	// countdown presses fail silently
	{Lane: 1, Now: -500 * time.Millisecond, Name: ""},
	// nothing in reach
	{Lane: 0, Now: 10 * time.Second, Name: ""},
	// two lane 1 notes at 4.0 and 4.25, the press is closer to the later
	// one but the first in chart order wins
	{Lane: 1, Now: 4130 * time.Millisecond, Name: "GREAT", Note: 4 * time.Second},
}

func TestTryHit(t *testing.T) {
	for _, test := range hitTests {
		chart, err := testdata.GetChart()
		if nil != err {
			t.Fatal("unable to build fixture chart", err)
		}
		scorer := NewDefaultScorer(1)
		var state game.State

		result := scorer.TryHit(chart, &state, test.Lane, test.Now)
		if test.Name == "" {
			if nil != result {
				t.Log("test    ", test)
				t.Log("result  ", result.Judgement.Name, result.Note.Time)
				t.Fail()
			}
			if state.Score != 0 || state.Combo != 0 {
				t.Log("state mutated on no-op", state)
				t.Fail()
			}
			continue
		}
		if nil == result {
			t.Log("test    ", test)
			t.Log("expected", test.Name, "got none")
			t.Fail()
			continue
		}
		if result.Judgement.Name != test.Name || result.Note.Time != test.Note {
			t.Log("test    ", test)
			t.Log("result  ", result.Judgement.Name, result.Note.Time)
			t.Fail()
		}
		if !result.Note.Hit || result.Note.Missed {
			t.Log("note flags", result.Note)
			t.Fail()
		}
		if state.Score != result.Judgement.Score || state.Combo != 1 || state.Heat != result.Judgement.Heat {
			t.Log("state   ", state)
			t.Fail()
		}
	}
}

func TestTryHitTerminality(t *testing.T) {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal("unable to build fixture chart", err)
	}
	scorer := NewDefaultScorer(1)
	var state game.State

	// First press resolves 4.0, second resolves 4.25, third finds nothing
	first := scorer.TryHit(chart, &state, 1, 4130*time.Millisecond)
	if nil == first || first.Note.Time != 4*time.Second {
		t.Fatal("first press", first)
	}
	second := scorer.TryHit(chart, &state, 1, 4140*time.Millisecond)
	if nil == second || second.Note.Time != 4250*time.Millisecond {
		t.Fatal("second press", second)
	}
	third := scorer.TryHit(chart, &state, 1, 4150*time.Millisecond)
	if nil != third {
		t.Fatal("third press resolved a resolved note", third)
	}
	if !first.Note.Hit || !second.Note.Hit {
		t.Fatal("hit flags were cleared")
	}
}

func BenchmarkTryHit(b *testing.B) {
	chart := parser.Demo(180, 64, 1)
	scorer := NewDefaultScorer(1)
	var state game.State
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		note := chart.Notes[n%len(chart.Notes)]
		note.Hit = false
		scorer.TryHit(chart, &state, note.Lane, note.Time)
	}
}

package parser

import (
	"math/rand"
	"time"

	"git.lost.host/meutraa/pulse/internal/game"
)

// Demo synthesizes a beat-grid chart for runs without a chart file. The
// lane walks one step at a time so the result stays playable, with the
// occasional off-beat note on the mirrored lane.
func Demo(bpm float64, bars int, seed int64) *game.Chart {
	rnd := rand.New(rand.NewSource(seed))
	spb := time.Duration(float64(time.Minute) / bpm)

	notes := []*game.Note{}
	lane := uint8(1)
	for i := 0; i < bars*4; i++ {
		switch rnd.Intn(3) {
		case 0:
			if lane > 0 {
				lane--
			}
		case 1:
			if lane < game.NumLanes-1 {
				lane++
			}
		}
		at := time.Duration(i+1) * spb
		notes = append(notes, &game.Note{Lane: lane, Time: at})
		if i%4 == 3 && rnd.Float64() > 0.6 {
			notes = append(notes, &game.Note{Lane: 2 - lane, Time: at + spb/2})
		}
	}

	chart := &game.Chart{Notes: notes, Name: "demo"}
	chart.Finalize()
	return chart
}

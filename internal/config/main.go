package config

import (
	"time"

	"git.lost.host/meutraa/pulse/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory     = kingpin.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Rate          = kingpin.Flag("rate", "Playback speed").Default("1.0").Short('r').Float64()
	Offset        = kingpin.Flag("offset", "Global audio offset").Default("0ms").Short('o').Duration()
	Delay         = kingpin.Flag("delay", "Countdown before the song starts").Default("3s").Short('d').Duration()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("8").Short('S').Uint()
	RefreshRate   = kingpin.Flag("refresh-rate", "Monitor refresh rate").Default("60.0").Short('R').Float()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	BarRow        = kingpin.Flag("bar-row", "Console rows between hit bar and bottom").Default("4").Uint()
	Seed          = kingpin.Flag("seed", "Bloom draw seed, 0 seeds from the clock").Default("0").Int64()

	scrollSpeedModifier = kingpin.Flag("scroll-speed", "Scroll speed, lower is faster").Default("3").Short('s').Uint()
	keys                = kingpin.Flag("keys", "Lane keys, left to right").Default("jkl").Short('k').String()

	ScrollSpeed float64
)

// Timing and reward tuning. Windows are exclusive bounds on the absolute
// error, a press exactly on a boundary falls into the next band.
const (
	PerfectWindow = 50 * time.Millisecond
	HitWindow     = 150 * time.Millisecond

	HeatDecayPerTick = 0.15
	EndGrace         = 2 * time.Second
	LaneFlash        = 100 * time.Millisecond

	// A perfect on a streak above BloomCombo upgrades to a bloom when the
	// draw beats BloomDraw. Cosmetic only, the rewards do not change.
	BloomCombo = 30
	BloomDraw  = 0.8
)

var (
	Judgements = []game.Judgement{
		{Window: PerfectWindow, Name: "PERFECT", Score: 300, Heat: 10},
		{Window: HitWindow, Name: "GREAT", Score: 100, Heat: 5},
	}

	Bloom = game.Judgement{Window: PerfectWindow, Name: "BLOOM", Score: 300, Heat: 10}

	Miss = game.Judgement{Name: "MISS"}
)

func Keys() []rune {
	return []rune(*keys)
}

// KeyLane maps a pressed rune to its lane, or -1.
func KeyLane(r rune) int {
	for i, c := range Keys() {
		if r == c && i < game.NumLanes {
			return i
		}
	}
	return -1
}

func Init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	ScrollSpeed = float64(*scrollSpeedModifier) * 1000 / *RefreshRate
}

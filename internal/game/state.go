package game

const (
	MaxHeat         = 100.0
	MissHeatPenalty = 15.0
)

// State is the authoritative score/combo/heat triple. It is owned by the
// frame driver and only ever touched from the tick/input goroutine.
type State struct {
	Score int64
	Combo int64
	Heat  float64
}

func (s *State) ApplyHit(j *Judgement) {
	s.Score += j.Score
	s.Combo++
	s.Heat += j.Heat
	if s.Heat > MaxHeat {
		s.Heat = MaxHeat
	}
}

// ApplyMiss is per note, a tick sweeping three notes applies it three times.
func (s *State) ApplyMiss() {
	s.Combo = 0
	s.Heat -= MissHeatPenalty
	if s.Heat < 0 {
		s.Heat = 0
	}
}

func (s *State) Decay(amount float64) {
	s.Heat -= amount
	if s.Heat < 0 {
		s.Heat = 0
	}
}

func (s *State) Reset() {
	*s = State{}
}

// Tier buckets a combo streak into a discrete intensity level. It is
// derived, never stored, and recomputed from the combo every tick.
func Tier(combo int64) int {
	switch {
	case combo >= 50:
		return 3
	case combo >= 30:
		return 2
	case combo >= 10:
		return 1
	}
	return 0
}

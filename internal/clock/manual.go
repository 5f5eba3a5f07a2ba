package clock

import "time"

// Manual is a hand-driven clock for tests.
type Manual struct {
	Time    time.Duration
	Length  time.Duration
	Playing bool
	Loaded  bool
}

func (m *Manual) Ready() bool {
	return m.Loaded
}

func (m *Manual) Duration() time.Duration {
	return m.Length
}

func (m *Manual) Play(delay time.Duration) {
	m.Time = -delay
	m.Playing = true
}

func (m *Manual) Now() time.Duration {
	return m.Time
}

func (m *Manual) Stop() {
	m.Playing = false
}

func (m *Manual) Advance(d time.Duration) {
	m.Time += d
}

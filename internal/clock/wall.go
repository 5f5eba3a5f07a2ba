package clock

import "time"

// Wall is a silent wall-clock source for chart-only runs with no audio
// file. Length is the reported duration, usually the last note time.
type Wall struct {
	Length time.Duration
	Rate   float64

	start   time.Time
	playing bool
}

func (w *Wall) Ready() bool {
	return true
}

func (w *Wall) Duration() time.Duration {
	return w.Length
}

func (w *Wall) Play(delay time.Duration) {
	w.start = time.Now().Add(delay)
	w.playing = true
}

func (w *Wall) Now() time.Duration {
	if !w.playing {
		return 0
	}
	rate := w.Rate
	if rate == 0 {
		rate = 1
	}
	return time.Duration(float64(time.Since(w.start)) * rate)
}

func (w *Wall) Stop() {
	w.playing = false
}

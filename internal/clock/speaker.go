package clock

import (
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

// Speaker schedules playback through the beep speaker and derives song time
// from the wall clock relative to the scheduled start. The speaker is
// initialized with a rate-scaled sample rate, so audio position and the
// rate-scaled wall reading stay in step.
type Speaker struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	rate     float64
	offset   time.Duration

	// mu guards the schedule against the deferred-start goroutine. Each
	// Play arms a new generation, Stop and a later Play disarm the old
	// one, so a stale deadline can never un-silence a stopped clock.
	mu      sync.Mutex
	gen     uint64
	start   time.Time
	playing bool
}

func Open(file string, rate float64, offset time.Duration) (*Speaker, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch path.Ext(file) {
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format: %v", file)
	}
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}

	if err := speaker.Init(
		beep.SampleRate(math.Round(float64(format.SampleRate)*rate)),
		format.SampleRate.N(time.Second/60),
	); nil != err {
		streamer.Close()
		return nil, fmt.Errorf("unable to initialize speaker: %w", err)
	}

	return &Speaker{streamer: streamer, format: format, rate: rate, offset: offset}, nil
}

func (s *Speaker) Ready() bool {
	return nil != s.streamer
}

func (s *Speaker) Duration() time.Duration {
	if nil == s.streamer {
		return 0
	}
	return s.format.SampleRate.D(s.streamer.Len())
}

func (s *Speaker) Play(delay time.Duration) {
	speaker.Clear()
	if nil != s.streamer {
		if err := s.streamer.Seek(0); nil != err {
			log.Println("unable to rewind streamer:", err)
		}
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.start = time.Now().Add(delay)
	s.playing = true
	s.mu.Unlock()

	go func() {
		time.Sleep(delay)
		if !s.armed(gen) {
			return
		}
		speaker.Play(s.streamer)
	}()
}

// armed reports whether the deadline of the given generation is still the
// live one. False once Stop or a later Play has superseded it.
func (s *Speaker) armed(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing && gen == s.gen
}

func (s *Speaker) Now() time.Duration {
	s.mu.Lock()
	playing, start := s.playing, s.start
	s.mu.Unlock()
	if !playing {
		return 0
	}
	elapsed := time.Since(start) + s.offset
	return time.Duration(float64(elapsed) * s.rate)
}

func (s *Speaker) Stop() {
	s.mu.Lock()
	playing := s.playing
	s.playing = false
	s.mu.Unlock()
	if !playing {
		return
	}
	speaker.Clear()
}

func (s *Speaker) Close() error {
	if nil == s.streamer {
		return nil
	}
	return s.streamer.Close()
}

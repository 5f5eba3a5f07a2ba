package input

import (
	"fmt"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/pulse/internal/config"
)

// Event is a single mapped key press. Lane is -1 when the press is not a
// lane key.
type Event struct {
	Lane    int
	Quit    bool
	Restart bool
}

// Open starts the keyboard listener and returns its buffered event
// channel plus a close func. The engine is agnostic to the device, this
// adapter is the only place physical keys are known.
func Open(buffer int) (<-chan keyboard.KeyEvent, func(), error) {
	events, err := keyboard.GetKeys(buffer)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return events, func() { _ = keyboard.Close() }, nil
}

// Map translates a raw key event into a lane press or control event.
func Map(key keyboard.KeyEvent) Event {
	if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
		return Event{Lane: -1, Quit: true}
	}
	if key.Key == keyboard.KeySpace || key.Rune == ' ' {
		return Event{Lane: -1, Restart: true}
	}
	return Event{Lane: config.KeyLane(key.Rune)}
}

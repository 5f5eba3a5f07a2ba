package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"git.lost.host/meutraa/pulse/internal/config"
	"git.lost.host/meutraa/pulse/internal/graphics"
)

type DefaultRenderer struct {
	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
}

// A decoration is a short-lived cell overlay with an independent expiry,
// counted down in frames and cleared when it runs out.
type decoration struct {
	X, Y    int
	Content string
	Frames  int
}

func (r *DefaultRenderer) Init() error {
	state, err := term.MakeRaw(int(os.Stdout.Fd()))
	if nil != err {
		return err
	}
	r.restoreState = state

	fmt.Printf("%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Printf("%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
	r.Fill(row, col, content)
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			r.Fill(d.Y, d.X, " ")
			continue
		}
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

// Loop paces frames at the configured period and flushes the buffer after
// every render callback. The callback returning false ends the loop.
func (r *DefaultRenderer) Loop(render func(now time.Time) bool) {
	cont := true
	for cont {
		now := time.Now()
		deadline := now.Add(*config.FramePeriod)

		cont = render(now)

		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	if row < 1 || column < 1 {
		return
	}
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c graphics.Color, message string) {
	if row < 1 || column < 1 {
		return
	}
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) flush() {
	os.Stdout.Write([]byte(r.buffer.String()))
	r.buffer.Reset()
}

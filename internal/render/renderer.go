package render

import (
	"time"

	"git.lost.host/meutraa/pulse/internal/graphics"
)

type Renderer interface {
	Init() error
	Deinit() error
	AddDecoration(col, row int, content string, frames int)
	Loop(render func(now time.Time) bool)
	Fill(row, column int, message string)
	FillColor(row, column int, c graphics.Color, message string)
}

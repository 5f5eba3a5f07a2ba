package theme

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/pulse/internal/game"
	"git.lost.host/meutraa/pulse/internal/graphics"
)

type DefaultTheme struct{}

const (
	noteSym   = "⬤"
	barSym    = "─"
	barHitSym = "═"
	heatFull  = "█"
	heatEmpty = "░"
)

var (
	laneColors = [game.NumLanes]graphics.Color{
		{R: 236, G: 30, B: 0},  // left red
		{R: 0, G: 118, B: 236}, // center blue
		{R: 236, G: 195, B: 0}, // right yellow
	}

	tierColors = [...]graphics.Color{
		{R: 106, G: 106, B: 106}, // calm grey
		{R: 0, G: 118, B: 236},   // blue
		{R: 106, G: 0, B: 236},   // purple
		{R: 236, G: 30, B: 0},    // red
	}

	judgementColors = map[string]graphics.Color{
		"PERFECT": {R: 236, G: 195, B: 0},
		"GREAT":   {R: 0, G: 236, B: 128},
		"BLOOM":   {R: 236, G: 0, B: 106},
		"MISS":    {R: 236, G: 30, B: 0},
	}
)

func colorize(c graphics.Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderNote(lane uint8) string {
	return colorize(laneColors[lane%game.NumLanes], noteSym)
}

func (t *DefaultTheme) RenderHitField(lane uint8, active bool) string {
	if active {
		return colorize(laneColors[lane%game.NumLanes], barHitSym)
	}
	return barSym
}

// RenderHeatBar shades with the tier palette as the meter fills.
func (t *DefaultTheme) RenderHeatBar(heat float64, width int) string {
	if width < 1 {
		return ""
	}
	filled := int(heat / game.MaxHeat * float64(width))
	if filled > width {
		filled = width
	}
	color := tierColors[0]
	switch {
	case heat >= 75:
		color = tierColors[3]
	case heat >= 50:
		color = tierColors[2]
	case heat >= 25:
		color = tierColors[1]
	}
	return colorize(color, strings.Repeat(heatFull, filled)) +
		strings.Repeat(heatEmpty, width-filled)
}

func (t *DefaultTheme) TierColor(tier int) graphics.Color {
	if tier < 0 || tier >= len(tierColors) {
		return tierColors[0]
	}
	return tierColors[tier]
}

func (t *DefaultTheme) JudgementColor(name string) graphics.Color {
	c, ok := judgementColors[name]
	if !ok {
		return graphics.Color{R: 255, G: 255, B: 255}
	}
	return c
}

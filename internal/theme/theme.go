package theme

import "git.lost.host/meutraa/pulse/internal/graphics"

type Theme interface {
	RenderNote(lane uint8) string
	RenderHitField(lane uint8, active bool) string
	RenderHeatBar(heat float64, width int) string
	TierColor(tier int) graphics.Color
	JudgementColor(name string) graphics.Color
}

package parser

import "git.lost.host/meutraa/pulse/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}

package game

type Phase uint8

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

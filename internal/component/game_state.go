// internal/component/game_state.go
package component

// Phase — фаза сессии
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
	PhaseOver
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	case PhaseWon:
		return "won"
	}
	return "unknown"
}

// internal/component/game_state.go
package component

// Outcome — итог сессии.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeDefeat
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Session holds the player's resources.
type Session struct {
	Money   int
	Lives   int
	Outcome Outcome
}

// Over reports whether a terminal outcome was reached.
func (s *Session) Over() bool {
	return s.Outcome != OutcomeRunning
}

// CanAfford reports whether amount can be spent without going negative.
func (s *Session) CanAfford(amount int) bool {
	return s.Money >= amount
}

// Spend deducts amount if affordable; otherwise the balance is untouched.
func (s *Session) Spend(amount int) bool {
	if !s.CanAfford(amount) {
		return false
	}
	s.Money -= amount
	return true
}

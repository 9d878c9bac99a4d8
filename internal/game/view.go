package game

// View is a read-only reflection of the Manager, answered on the room actor's
// goroutine so callers never race the game state. Progress maps each user's
// name to the marked count of their best card for the active language.
type View struct {
	Phase          Phase
	NumUsers       int
	ActiveLanguage string
	RoundNumber    int // 1-based; 0 outside a game
	TotalRounds    int
	WordsLeft      int
	WinnerLog      []string
	Progress       map[string]int
}

func (m *Manager) View() View {
	v := View{
		Phase:          m.phase,
		NumUsers:       len(m.users),
		ActiveLanguage: m.ActiveLanguage(),
		TotalRounds:    len(m.roundLangs),
		WordsLeft:      len(m.remaining),
		WinnerLog:      append([]string(nil), m.winnerLog...),
	}
	if m.phase != PhaseIdle {
		v.RoundNumber = m.roundIdx + 1
	}
	if v.ActiveLanguage != "" {
		v.Progress = make(map[string]int, len(m.users))
		for _, user := range m.userSnapshot() {
			if best := user.BestCard(v.ActiveLanguage); best != nil {
				v.Progress[user.Name] = best.MarkedCount()
			}
		}
	}
	return v
}

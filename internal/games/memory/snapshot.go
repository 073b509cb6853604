package memory

import (
	"strings"

	engine "github.com/vovakirdan/tui-memory/internal/memory"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	ID       string
	Phase    string
	Moves    int
	Seconds  int
	Matched  int
	Cursor   int
	Board    string // One rune per card: symbol when face up, '.' when face down
	SettleIn int
	Paused   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		ID:       g.ID(),
		Phase:    g.state.Phase.String(),
		Moves:    g.state.MoveCount,
		Seconds:  g.state.ElapsedSeconds,
		Matched:  g.state.MatchedPairs,
		Cursor:   g.cursor,
		Board:    boardString(g.state),
		SettleIn: g.settleIn,
		Paused:   g.paused,
	}
}

func boardString(s engine.State) string {
	var b strings.Builder
	for _, c := range s.Deck {
		if c.FaceUp {
			b.WriteString(string(c.Symbol))
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

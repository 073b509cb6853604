// Package memory implements the turn and state engine of the memory-matching game.
// All operations are pure transitions: they take a State value and return a new one,
// leaving the input untouched. The engine has no timers and never blocks; the host
// decides when to resolve a revealed pair and when a second has elapsed.
package memory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when a game cannot be dealt from the given symbols.
	ErrInvalidConfiguration = errors.New("memory: invalid configuration")

	// ErrInvalidPosition is returned when a flip targets a position outside the deck.
	ErrInvalidPosition = errors.New("memory: invalid position")
)

// Symbol identifies a card face.
type Symbol string

// Phase is the engine's lifecycle phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseResolving
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseResolving:
		return "resolving"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Card is a single card on the board.
// Position and Symbol never change after the deal.
type Card struct {
	Position int
	Symbol   Symbol
	FaceUp   bool
	Matched  bool
}

// State is one session of the game.
// The zero value is the Idle state that exists before the first deal.
type State struct {
	Deck           []Card
	Revealed       []int // face-up, unmatched positions in flip order; at most 2
	MoveCount      int
	MatchedPairs   int
	ElapsedSeconds int
	InputLocked    bool
	Phase          Phase
}

// Pairs returns K, the number of symbol pairs on the board.
func (s State) Pairs() int {
	return len(s.Deck) / 2
}

// Won reports whether every pair has been matched.
func (s State) Won() bool {
	return s.Phase == PhaseWon
}

// Card returns the card at pos and whether pos is on the board.
func (s State) Card(pos int) (Card, bool) {
	if pos < 0 || pos >= len(s.Deck) {
		return Card{}, false
	}
	return s.Deck[pos], true
}

// clone copies the slices so a transition never writes into its input.
func (s State) clone() State {
	next := s
	next.Deck = append([]Card(nil), s.Deck...)
	next.Revealed = append([]int(nil), s.Revealed...)
	return next
}

// Validate checks the structural invariants of a dealt state.
func (s State) Validate() error {
	if len(s.Deck)%2 != 0 {
		return fmt.Errorf("memory: odd deck size %d", len(s.Deck))
	}

	counts := make(map[Symbol]int, s.Pairs())
	matched := 0
	for i, c := range s.Deck {
		if c.Position != i {
			return fmt.Errorf("memory: card at index %d has position %d", i, c.Position)
		}
		if c.Matched && !c.FaceUp {
			return fmt.Errorf("memory: matched card %d is face down", i)
		}
		if c.Matched {
			matched++
		}
		counts[c.Symbol]++
	}
	for sym, n := range counts {
		if n != 2 {
			return fmt.Errorf("memory: symbol %q appears %d times", sym, n)
		}
	}
	if matched != s.MatchedPairs*2 {
		return fmt.Errorf("memory: %d matched cards for %d matched pairs", matched, s.MatchedPairs)
	}

	if len(s.Revealed) > 2 {
		return fmt.Errorf("memory: %d cards revealed", len(s.Revealed))
	}
	for _, pos := range s.Revealed {
		c, ok := s.Card(pos)
		if !ok || !c.FaceUp || c.Matched {
			return fmt.Errorf("memory: revealed position %d is not a face-up unmatched card", pos)
		}
	}

	locked := s.Phase == PhaseResolving || s.Phase == PhaseWon
	if s.InputLocked != locked {
		return fmt.Errorf("memory: input locked=%v in phase %s", s.InputLocked, s.Phase)
	}
	if s.Phase == PhaseWon && s.MatchedPairs != s.Pairs() {
		return fmt.Errorf("memory: won with %d of %d pairs", s.MatchedPairs, s.Pairs())
	}
	return nil
}

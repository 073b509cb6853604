package memory

import (
	"fmt"
	"math/rand"
)

// NewGame deals a shuffled board with two cards per symbol.
// Fewer than MinPairs symbols, or a repeated symbol, yields ErrInvalidConfiguration.
// A nil rng falls back to a time-seeded source.
func NewGame(symbols []Symbol, rng *rand.Rand) (State, error) {
	if err := checkSymbols(symbols); err != nil {
		return State{}, err
	}

	faces := make([]Symbol, 0, len(symbols)*2)
	faces = append(faces, symbols...)
	faces = append(faces, symbols...)
	shuffle(faces, newRand(rng))

	return deal(faces), nil
}

// Restart discards s and deals a new game. Any pending resolution is dropped with it.
func Restart(_ State, symbols []Symbol, rng *rand.Rand) (State, error) {
	return NewGame(symbols, rng)
}

// Flip turns the card at pos face up.
//
// A position outside the deck is a caller error. Flipping while input is locked,
// flipping a matched or already face-up card, or flipping while two cards are
// pending are ordinary gameplay and return s unchanged with a nil error.
// The second flip of a turn counts a move and locks input until Resolve.
func Flip(s State, pos int) (State, error) {
	card, ok := s.Card(pos)
	if !ok {
		return s, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidPosition, pos, len(s.Deck))
	}
	if s.InputLocked || card.Matched || card.FaceUp || len(s.Revealed) >= 2 {
		return s, nil
	}

	next := s.clone()
	next.Deck[pos].FaceUp = true
	next.Revealed = append(next.Revealed, pos)

	if len(next.Revealed) == 2 {
		next.MoveCount++
		next.Phase = PhaseResolving
		next.InputLocked = true
	}
	return next, nil
}

// Resolve settles the two revealed cards.
// A match stays face up; a mismatch turns both face down. Matching the final pair
// moves the game to PhaseWon, which keeps input locked for good.
// Outside PhaseResolving it returns s unchanged.
func Resolve(s State) State {
	if s.Phase != PhaseResolving || len(s.Revealed) != 2 {
		return s
	}

	next := s.clone()
	a, b := next.Revealed[0], next.Revealed[1]
	next.Revealed = next.Revealed[:0]

	if next.Deck[a].Symbol == next.Deck[b].Symbol {
		next.Deck[a].Matched = true
		next.Deck[b].Matched = true
		next.MatchedPairs++
		if next.MatchedPairs == next.Pairs() {
			next.Phase = PhaseWon
			return next
		}
	} else {
		next.Deck[a].FaceUp = false
		next.Deck[b].FaceUp = false
	}

	next.InputLocked = false
	next.Phase = PhaseRunning
	return next
}

// Tick advances the elapsed-time counter by one second.
// The clock runs in PhaseRunning and PhaseResolving only.
func Tick(s State) State {
	if s.Phase != PhaseRunning && s.Phase != PhaseResolving {
		return s
	}
	s.ElapsedSeconds++
	return s
}

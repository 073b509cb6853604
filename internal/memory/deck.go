package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// MinPairs is the smallest playable board.
const MinPairs = 2

// DefaultPalette is the twelve-symbol set of the classic 24-card board.
var DefaultPalette = []Symbol{
	"*", "@", "#", "$",
	"%", "&", "+", "=",
	"?", "!", "~", "^",
}

// checkSymbols rejects symbol sets that cannot form a board.
func checkSymbols(symbols []Symbol) error {
	if len(symbols) < MinPairs {
		return fmt.Errorf("%w: need at least %d symbols, got %d", ErrInvalidConfiguration, MinPairs, len(symbols))
	}
	seen := make(map[Symbol]bool, len(symbols))
	for _, s := range symbols {
		if seen[s] {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidConfiguration, s)
		}
		seen[s] = true
	}
	return nil
}

// shuffle permutes items uniformly at random (Fisher-Yates).
func shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// deal lays out faces as a fresh Running state.
func deal(faces []Symbol) State {
	deck := make([]Card, len(faces))
	for i, sym := range faces {
		deck[i] = Card{Position: i, Symbol: sym}
	}
	return State{
		Deck:  deck,
		Phase: PhaseRunning,
	}
}

// DealOrdered lays out the given faces without shuffling.
// Every symbol must appear exactly twice and there must be at least MinPairs pairs.
func DealOrdered(faces ...Symbol) (State, error) {
	if len(faces)%2 != 0 {
		return State{}, fmt.Errorf("%w: odd number of cards %d", ErrInvalidConfiguration, len(faces))
	}

	counts := make(map[Symbol]int, len(faces)/2)
	symbols := make([]Symbol, 0, len(faces)/2)
	for _, f := range faces {
		if counts[f] == 0 {
			symbols = append(symbols, f)
		}
		counts[f]++
	}
	if err := checkSymbols(symbols); err != nil {
		return State{}, err
	}
	for sym, n := range counts {
		if n != 2 {
			return State{}, fmt.Errorf("%w: symbol %q appears %d times", ErrInvalidConfiguration, sym, n)
		}
	}

	return deal(append([]Symbol(nil), faces...)), nil
}

// newRand returns rng, or a time-seeded source when rng is nil.
func newRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Package memory hosts the card-matching engine as an arcade game: a cursor over
// the board, the pause between revealing a pair and settling it, and a seconds clock
// driven by simulation ticks.
package memory

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	engine "github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// Game implements the memory-matching game on one board size.
type Game struct {
	size config.BoardSize
	cfg  config.MemoryConfig
	rt   core.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	state   engine.State
	symbols []engine.Symbol

	cursor     int
	cols, rows int

	secondTicks int // Ticks accumulated toward the next clock second
	settleIn    int // Ticks left before a revealed pair is resolved

	paused   bool
	tooSmall bool
}

// Package-level configuration shared by every board.
var (
	configMu     sync.RWMutex
	activeConfig = config.DefaultMemoryConfig()
)

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.MemoryConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	activeConfig = cfg
}

func currentConfig() config.MemoryConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return activeConfig
}

// New creates a game on the given board size.
func New(size config.BoardSize) *Game {
	return &Game{size: size, cfg: currentConfig()}
}

// IDForSize maps a board size to its registry ID.
func IDForSize(size config.BoardSize) string {
	switch size {
	case config.BoardSmall:
		return "memory_small"
	case config.BoardLarge:
		return "memory_large"
	default:
		return "memory"
	}
}

func init() {
	for _, size := range []config.BoardSize{config.BoardSmall, config.BoardMedium, config.BoardLarge} {
		registry.Register(IDForSize(size), func() registry.Game {
			return New(size)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDForSize(g.size)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.size {
	case config.BoardSmall:
		return "Memory (Small)"
	case config.BoardLarge:
		return "Memory (Large)"
	default:
		return "Memory"
	}
}

// Pairs returns the number of pairs on this board.
func (g *Game) Pairs() int {
	return g.cfg.Boards.Pairs(g.size)
}

// Reset deals a new board.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.cfg = currentConfig()
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0

	g.symbols = g.symbols[:0]
	for _, s := range g.cfg.Palette[:min(g.Pairs(), len(g.cfg.Palette))] {
		g.symbols = append(g.symbols, engine.Symbol(s))
	}

	g.deal()
	g.cols, g.rows = core.GridDims(len(g.state.Deck))
	g.checkScreenSize()
}

// deal starts a fresh engine session and clears all host-side timers.
func (g *Game) deal() {
	state, err := engine.Restart(g.state, g.symbols, g.rng)
	if err != nil {
		// Only reachable with an unvalidated config; leave an empty, idle board.
		state = engine.State{}
	}
	g.state = state
	g.cursor = 0
	g.secondTicks = 0
	g.settleIn = 0
	g.paused = false
}

// checkScreenSize checks if the board and HUD fit on screen.
func (g *Game) checkScreenSize() {
	minW := g.cols*(cardW+cardGap) + 1
	minH := hudHeight + g.rows*cardH + footerHeight
	g.tooSmall = g.rt.ScreenW < minW || g.rt.ScreenH < minH
}

// Resize updates the screen size; the board in play is kept.
func (g *Game) Resize(width, height int) {
	g.rt.ScreenW = width
	g.rt.ScreenH = height
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.deal()
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall || g.state.Phase == engine.PhaseIdle || g.state.Won() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.advanceClock()
	g.moveCursor(in)

	if g.state.Phase == engine.PhaseResolving {
		g.settle()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionConfirm) {
		g.flip()
	}

	return core.StepResult{State: g.State()}
}

// advanceClock feeds the engine one Tick per second of unpaused play.
func (g *Game) advanceClock() {
	rate := g.rt.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.secondTicks++
	if g.secondTicks >= rate {
		g.secondTicks = 0
		g.state = engine.Tick(g.state)
	}
}

func (g *Game) moveCursor(in core.InputFrame) {
	x, y := g.cursor%g.cols, g.cursor/g.cols

	switch {
	case in.Has(core.ActionLeft):
		x--
	case in.Has(core.ActionRight):
		x++
	case in.Has(core.ActionUp):
		y--
	case in.Has(core.ActionDown):
		y++
	default:
		return
	}

	x = core.Clamp(x, 0, g.cols-1)
	y = core.Clamp(y, 0, g.rows-1)
	if pos := y*g.cols + x; pos < len(g.state.Deck) {
		g.cursor = pos
	}
}

// flip reveals the card under the cursor and arms the settle delay after a second card.
func (g *Game) flip() {
	next, err := engine.Flip(g.state, g.cursor)
	if err != nil {
		// Cursor is clamped to the deck, so this is a no-op guard.
		return
	}
	g.state = next

	if g.state.Phase != engine.PhaseResolving {
		return
	}

	a, _ := g.state.Card(g.state.Revealed[0])
	b, _ := g.state.Card(g.state.Revealed[1])
	delay := g.cfg.Timing.RevealDelayMS
	if a.Symbol == b.Symbol {
		delay = g.cfg.Timing.MatchDelayMS
	}
	g.settleIn = g.rt.TicksFor(delay)
	if g.settleIn == 0 {
		g.settle()
	}
}

// settle counts down the reveal delay and resolves the pair when it runs out.
func (g *Game) settle() {
	if g.settleIn > 0 {
		g.settleIn--
	}
	if g.settleIn == 0 {
		g.state = engine.Resolve(g.state)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	won := g.state.Won()
	score := 0
	if won {
		score = g.cfg.Scoring.Score(g.state.MoveCount, g.state.ElapsedSeconds)
	}
	return core.GameState{
		Score:    score,
		GameOver: won,
		Paused:   g.paused || g.tooSmall,
		Won:      won,
		Pairs:    g.state.Pairs(),
		Moves:    g.state.MoveCount,
		Seconds:  g.state.ElapsedSeconds,
	}
}

// Engine returns the underlying engine state.
func (g *Game) Engine() engine.State {
	return g.state
}

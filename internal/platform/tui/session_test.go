package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
	memgame "github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 42}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func update(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next
}

// tick builds a TickMsg for the board currently in play.
func tick(m tea.Model) TickMsg {
	msg := TickMsg{Time: time.Now()}
	switch m := m.(type) {
	case GameModel:
		msg.Gen = m.gen
	case SessionModel:
		msg.Gen = m.gameModel.gen
	}
	return msg
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig(), "alice", quietLogger())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	s := m.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("enter should start a game, screen = %v", s.screen)
	}
	if s.quitting {
		t.Fatal("selecting a board must not end the session")
	}

	// Back only works once paused
	m = update(t, m, runeKey('b'))
	if m.(SessionModel).screen != screenGame {
		t.Fatal("back should be ignored while playing")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, tick(m))
	m = update(t, m, runeKey('b'))
	if m.(SessionModel).screen != screenMenu {
		t.Fatalf("back from paused game should open the menu, screen = %v", m.(SessionModel).screen)
	}
}

func TestSessionIgnoresTickFromPreviousGame(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig(), "erin", quietLogger())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runeKey('p'))
	stale := tick(m)
	m = update(t, m, stale)
	m = update(t, m, runeKey('b'))
	if m.(SessionModel).screen != screenMenu {
		t.Fatal("back from paused game should open the menu")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("new game should start its own tick loop")
	}
	m = next
	s := m.(SessionModel)
	if s.gameModel.gen == stale.Gen {
		t.Fatal("reselected game should get a new tick generation")
	}

	game, ok := s.gameModel.game.(*memgame.Game)
	if !ok {
		t.Fatalf("unexpected game type %T", s.gameModel.game)
	}
	before := game.Snapshot()

	next, cmd = m.Update(stale)
	if cmd != nil {
		t.Error("stale tick must not schedule another tick")
	}
	if after := game.Snapshot(); after != before {
		t.Errorf("stale tick advanced the new game: %+v -> %+v", before, after)
	}
	if next.(SessionModel).screen != screenGame {
		t.Error("stale tick should leave the game on screen")
	}

	if _, cmd = next.Update(tick(next)); cmd == nil {
		t.Error("current tick should keep the loop running")
	}
}

func TestSessionScoreboard(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig(), "bob", quietLogger())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "BEST GAMES") {
		t.Error("scoreboard view should include its title")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	s := m.(SessionModel)
	if s.screen != screenMenu || s.quitting {
		t.Errorf("esc should return to the menu, screen=%v quitting=%v", s.screen, s.quitting)
	}
}

func TestSessionQuit(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig(), "carol", quietLogger())

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should quit the session")
	}
	if next.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestGameModelSavesWinOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game, err := registry.Create("memory_small")
	if err != nil {
		t.Fatal(err)
	}

	var m tea.Model = NewGameModel(game, store, testConfig(), quietLogger()).WithPlayer("dave")
	m.Init()

	solveByBruteForce(t, &m, game)

	// Extra ticks after the win must not save again
	for range 20 {
		m = update(t, m, tick(m))
	}

	results, err := store.TopResults("memory_small", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 saved result, got %d", len(results))
	}
	r := results[0]
	if r.Player != "dave" || r.Pairs != 6 || r.Moves == 0 {
		t.Errorf("unexpected result %+v", r)
	}
}

// solveByBruteForce drives the cursor with key presses, flipping every unmatched card
// against every later unmatched card until the board is won.
func solveByBruteForce(t *testing.T, m *tea.Model, game registry.Game) {
	t.Helper()

	mg, ok := game.(*memgame.Game)
	if !ok {
		t.Fatalf("unexpected game type %T", game)
	}
	matched := func(pos int) bool {
		c, _ := mg.Engine().Card(pos)
		return c.Matched
	}

	cols, _ := core.GridDims(game.Pairs() * 2)
	n := game.Pairs() * 2
	cursor := 0

	moveTo := func(pos int) {
		for cursor%cols < pos%cols {
			*m = update(t, *m, tea.KeyMsg{Type: tea.KeyRight})
			*m = update(t, *m, tick(*m))
			cursor++
		}
		for cursor%cols > pos%cols {
			*m = update(t, *m, tea.KeyMsg{Type: tea.KeyLeft})
			*m = update(t, *m, tick(*m))
			cursor--
		}
		for cursor/cols < pos/cols {
			*m = update(t, *m, tea.KeyMsg{Type: tea.KeyDown})
			*m = update(t, *m, tick(*m))
			cursor += cols
		}
		for cursor/cols > pos/cols {
			*m = update(t, *m, tea.KeyMsg{Type: tea.KeyUp})
			*m = update(t, *m, tick(*m))
			cursor -= cols
		}
	}
	flip := func(pos int) {
		moveTo(pos)
		*m = update(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
		*m = update(t, *m, tick(*m))
	}
	settle := func() {
		// Longest default delay is one second
		for range 20 {
			*m = update(t, *m, tick(*m))
		}
	}

	for i := 0; i < n && !game.State().Won; i++ {
		for j := i + 1; j < n && !matched(i); j++ {
			if matched(j) {
				continue
			}
			flip(i)
			flip(j)
			settle()
		}
	}

	if !game.State().Won {
		t.Fatal("brute force should always clear the board")
	}
}

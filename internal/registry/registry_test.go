package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
)

type fakeGame struct {
	id    string
	pairs int
}

func (g *fakeGame) ID() string { return g.id }
func (g *fakeGame) Title() string { return strings.ToUpper(g.id) }
func (g *fakeGame) Pairs() int { return g.pairs }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Resize(int, int) {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }
func (g *fakeGame) Controls() string { return "" }

func register(id string, pairs *int) {
	Register(id, func() Game { return &fakeGame{id: id, pairs: *pairs} })
}

func TestRegisterAndCreate(t *testing.T) {
	pairs := 5
	register("test_create", &pairs)

	if !Exists("test_create") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("test_create")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_create" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("test_missing") {
		t.Error("unknown game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	pairs := 2
	register("test_dup", &pairs)

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	register("test_dup", &pairs)
}

func TestListOrderAndLiveInfo(t *testing.T) {
	small, large, tie := 3, 30, 3
	register("test_list_large", &large)
	register("test_list_small_b", &tie)
	register("test_list_small_a", &small)

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_list_") {
			ids = append(ids, info.ID)
		}
	}
	want := []string{"test_list_small_a", "test_list_small_b", "test_list_large"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("List order = %v, want %v", ids, want)
	}

	// Metadata follows the factory, not registration time
	large = 1
	info, ok := Info("test_list_large")
	if !ok {
		t.Fatal("Info() should find registered game")
	}
	if info.Pairs != 1 || info.Title != "TEST_LIST_LARGE" {
		t.Errorf("Info() = %+v", info)
	}
}

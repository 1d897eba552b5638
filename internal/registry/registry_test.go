package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(core.Presenter)                {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", "Stub", func(core.SpriteLoader) (Game, error) {
		return &stubGame{id: "zz-stub"}, nil
	})

	if !Exists("zz-stub") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("zz-stub", nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID > info.ID {
			t.Error("List() is not sorted by ID")
		}
		if info.ID == "zz-stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Errorf("List() = %v, missing zz-stub", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(core.SpriteLoader) (Game, error) { return &stubGame{}, nil }
	Register("zz-dup", "Dup", f)

	defer func() {
		if recover() == nil {
			t.Error("second Register should panic")
		}
	}()
	Register("zz-dup", "Dup", f)
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("no-such-game", nil); err == nil {
		t.Error("Create() of unknown id should fail")
	}

	boom := errors.New("boom")
	Register("zz-broken", "Broken", func(core.SpriteLoader) (Game, error) {
		return nil, boom
	})
	if _, err := Create("zz-broken", nil); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, want wrapped factory error", err)
	}
}

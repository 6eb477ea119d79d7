package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                      { return g.id }
func (g *stubGame) Title() string                   { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)        {}
func (g *stubGame) Configure(config.Tuning)         {}
func (g *stubGame) Update(time.Time)                {}
func (g *stubGame) ApplyCommand(core.Command) bool  { return false }
func (g *stubGame) Render(core.PixelSink)           {}
func (g *stubGame) ExportState() core.StateSnapshot { return core.StateSnapshot{} }
func (g *stubGame) State() core.GameState           { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("Exists() should report a registered game")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q, expected zz-stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "Stub zz-stub" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub zz-stub")
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing-game"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

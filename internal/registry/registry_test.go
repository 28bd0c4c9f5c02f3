package registry

import (
	"testing"

	"github.com/vovakirdan/tui-connections/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register(ModeInfo{ID: "test_stub_b"}, func() Game { return &stubGame{id: "test_stub_b"} })
	Register(ModeInfo{ID: "test_stub_a", Title: "A", Description: "first"}, func() Game { return &stubGame{id: "test_stub_a"} })

	if !Exists("test_stub_a") {
		t.Fatal("Exists() should report a registered mode")
	}

	g, err := Create("test_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_stub_a" {
		t.Errorf("ID() = %q", g.ID())
	}

	info, ok := Info("test_stub_b")
	if !ok || info.Title != "test_stub_b" {
		t.Errorf("Info() = %+v, %v; empty title should default to id", info, ok)
	}

	var ids []string
	for _, m := range List() {
		if m.ID == "test_stub_a" || m.ID == "test_stub_b" {
			ids = append(ids, m.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "test_stub_a" {
		t.Errorf("List() order = %v, want sorted", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_mode"); err == nil {
		t.Error("Create() should fail for unknown mode")
	}
	if Exists("no_such_mode") {
		t.Error("Exists() should be false for unknown mode")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(ModeInfo{ID: "test_dup"}, func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(ModeInfo{ID: "test_dup"}, func() Game { return &stubGame{} })
}

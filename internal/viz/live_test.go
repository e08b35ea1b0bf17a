package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dotmatrix/internal/config"
	"github.com/san-kum/dotmatrix/internal/matrix"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 1
	grid := NewCellGrid(cfg.ScreenWidth, cfg.ScreenHeight, 6)
	mat, err := matrix.New(cfg, grid)
	if err != nil {
		t.Fatal(err)
	}
	if err := mat.SetTargetShape("circle"); err != nil {
		t.Fatal(err)
	}
	return NewModel(mat, grid, cfg, "circle")
}

func TestModel_TickAdvancesFrames(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.frames != 1 {
		t.Errorf("frames = %d after one tick, want 1", m.frames)
	}
	if cmd == nil {
		t.Error("tick did not reschedule")
	}
}

func TestModel_PauseStopsFrames(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.running {
		t.Fatal("space did not pause")
	}

	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.frames != 0 {
		t.Errorf("frames advanced while paused: %d", m.frames)
	}
}

func TestModel_CycleShape(t *testing.T) {
	m := newTestModel(t)
	start := m.mat.Shape()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.mat.Shape() == start {
		t.Error("tab did not switch shape")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	if m.mat.Shape() != start {
		t.Errorf("shift+tab did not cycle back, at %q", m.mat.Shape())
	}
}

func TestModel_QuitCleansUp(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q did not produce a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q produced %v, want quit", msg)
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if view == "" {
		t.Fatal("empty view")
	}
	for _, want := range []string{"DOT MATRIX", "circle", "RUNNING"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

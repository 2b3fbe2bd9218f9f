package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/frotz/internal/core"
	"github.com/vovakirdan/frotz/internal/games/frotz"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 80, 24
	m := NewModel(frotz.NewWithSettings(frotz.Settings{}), cfg)
	m.Init()
	return m
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(TickMsg{Loop: m.loop + 1})
	if cmd != nil {
		t.Error("tick from another loop should not schedule a frame")
	}

	_, cmd = m.Update(TickMsg{Loop: m.loop})
	if cmd == nil {
		t.Error("own tick should schedule the next frame")
	}
}

func TestModelsGetDistinctLoops(t *testing.T) {
	a, b := newTestModel(t), newTestModel(t)
	if a.loop == b.loop {
		t.Errorf("both models use loop %d", a.loop)
	}
}

func TestBackStopsTicking(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if !m.BackToMenu() {
		t.Fatal("esc should request the menu")
	}
	if _, cmd := m.Update(TickMsg{Loop: m.loop}); cmd != nil {
		t.Error("tick after leaving should not schedule a frame")
	}
}

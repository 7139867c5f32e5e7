package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if m.Difficulty() != "" {
		t.Fatalf("initial difficulty = %q, expected config default", m.Difficulty())
	}
	if !strings.Contains(m.View(), "< config >") {
		t.Errorf("view should show the config default:\n%s", m.View())
	}

	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	for _, want := range config.Presets() {
		m, _ = menuKey(t, m, right)
		if m.Difficulty() != want {
			t.Errorf("difficulty = %q, expected %q", m.Difficulty(), want)
		}
	}

	// Wraps back to the config default, then backwards to the last preset.
	m, _ = menuKey(t, m, right)
	if m.Difficulty() != "" {
		t.Errorf("difficulty = %q, expected wrap to config default", m.Difficulty())
	}
	m, _ = menuKey(t, m, left)
	if m.Difficulty() != config.DifficultyZen {
		t.Errorf("difficulty = %q, expected zen", m.Difficulty())
	}
}

func TestMenuSelectAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if len(m.items) == 0 {
		t.Fatal("menu has no items")
	}

	m, cmd := menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != m.items[0].GameID || !isQuit(cmd) {
		t.Errorf("enter should select the first item, got %+v", m.Selected())
	}

	m = NewMenuModel(nil, core.DefaultConfig())
	m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = NewMenuModel(nil, core.DefaultConfig())
	m, cmd = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || !isQuit(cmd) || m.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 3, "abc"},
		{"←→", 6, "  ←→"},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionModelFlow(t *testing.T) {
	h := newHarness(t)
	logger := log.NewWithOptions(&bytes.Buffer{}, log.Options{})
	rec := newSessionRecorder(h.store, logger)

	m := NewSessionModel(h.store, rec, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, logger)
	m.Init()

	// Pick the hard preset, then the fake game.
	for m.menu.Difficulty() != config.DifficultyHard {
		m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	for m.menu.items[m.menu.cursor].GameID != "fake" {
		m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || isQuit(cmd) {
		t.Fatalf("expected game view without quitting, view=%v", m.view)
	}
	game, ok := m.game.game.(*fakeGame)
	if !ok {
		t.Fatalf("running game is %T", m.game.game)
	}
	if game.preset != config.DifficultyHard {
		t.Errorf("game difficulty = %q, expected hard", game.preset)
	}

	// Play a move, then leave for the menu.
	game.state = core.GameState{Score: 90, Moves: 3}
	m, _ = sessionSend(t, m, TickMsg{})
	m, cmd = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu || isQuit(cmd) {
		t.Fatalf("esc should return to the menu, view=%v", m.view)
	}
	if m.menu.Difficulty() != config.DifficultyHard {
		t.Error("menu should remember the difficulty")
	}

	sessions, err := h.store.RecentSessions("fake", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Score != 90 || sessions[0].EndReason != storage.EndQuit {
		t.Errorf("sessions = %+v", sessions)
	}

	// Scores and back.
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("tab should open scores, view=%v", m.view)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Errorf("scores view:\n%s", m.View())
	}
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("esc should leave scores, view=%v", m.view)
	}

	m, cmd = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !isQuit(cmd) || m.View() != "" {
		t.Error("q should end the SSH session")
	}
}

func TestSessionRecorderDisconnect(t *testing.T) {
	h := newHarness(t)
	rec := newSessionRecorder(h.store, nil)

	if rec.Finish(storage.EndDisconnect) {
		t.Error("finishing without a session should not save")
	}

	id := rec.Start("fake")
	rec.Observe(core.GameState{Score: 10, Moves: 1, BestChain: 2})
	if !rec.Finish(storage.EndDisconnect) {
		t.Fatal("expected the disconnected game to be saved")
	}
	if rec.Finish(storage.EndDisconnect) {
		t.Error("a session must be saved only once")
	}

	sessions, err := h.store.RecentSessions("fake", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].SessionID != id || sessions[0].BestChain != 2 {
		t.Errorf("sessions = %+v", sessions)
	}
}

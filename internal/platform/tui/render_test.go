package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

func storageSession(gameID string, score int) storage.Session {
	return storage.Session{GameID: gameID, Score: score, Moves: 5, EndReason: storage.EndOutOfMoves}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextWithColor(0, 0, "ab", core.ColorRed)
	s.DrawTextWithColor(2, 0, "cd", core.ColorBlue)
	s.SetWithColor(1, 1, '●', core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, expected 6", i, w)
		}
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") || !strings.Contains(out, "●") {
		t.Errorf("rendered text lost:\n%s", out)
	}
}

func TestScoreboardStats(t *testing.T) {
	h := newHarness(t)
	for _, s := range []int{40, 100} {
		if _, err := h.store.SaveSession(storageSession("fake", s)); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sb := NewScoreboardModel(h.store, 100, 30)
	for sb.games[sb.gameCursor].ID != "fake" {
		sb.moveGame(1)
	}

	if len(sb.scores) != 2 || sb.scores[0].Score != 100 {
		t.Fatalf("scores = %+v", sb.scores)
	}
	line := sb.statsLine()
	if !strings.Contains(line, "Games: 2") || !strings.Contains(line, "Best: 100") || !strings.Contains(line, "Avg: 70") {
		t.Errorf("stats line = %q", line)
	}

	empty := NewScoreboardModel(nil, 60, 20)
	if got := empty.statsLine(); got != "No games played yet" {
		t.Errorf("stats line without store = %q", got)
	}
}

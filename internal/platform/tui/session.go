package tui

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// sessionRecorder tracks the game being played and writes its summary to
// storage exactly once, whichever way the game ends.
// It is shared between Bubble Tea model copies and the SSH connection.
type sessionRecorder struct {
	mu        sync.Mutex
	store     *storage.Store
	logger    *log.Logger
	gameID    string
	sessionID string
	state     core.GameState
	active    bool
}

func newSessionRecorder(store *storage.Store, logger *log.Logger) *sessionRecorder {
	if logger == nil {
		logger = log.Default()
	}
	return &sessionRecorder{store: store, logger: logger}
}

// Start begins a new session for gameID and returns its ID.
func (r *sessionRecorder) Start(gameID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gameID = gameID
	r.sessionID = uuid.NewString()
	r.state = core.GameState{}
	r.active = true
	return r.sessionID
}

// Observe records the latest state of the running game.
func (r *sessionRecorder) Observe(state core.GameState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active {
		r.state = state
	}
}

// Finish ends the active session and saves it unless nothing was played.
// Returns true if a session row was written.
func (r *sessionRecorder) Finish(reason string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return false
	}
	r.active = false

	if r.state.Moves == 0 && r.state.Score == 0 {
		r.logger.Debug("session discarded", "game", r.gameID, "session", r.sessionID, "reason", reason)
		return false
	}
	if r.store == nil {
		return false
	}

	_, err := r.store.SaveSession(storage.Session{
		SessionID: r.sessionID,
		GameID:    r.gameID,
		Score:     r.state.Score,
		Moves:     r.state.Moves,
		Cascades:  r.state.Cascades,
		BestChain: r.state.BestChain,
		EndReason: reason,
	})
	if err != nil {
		r.logger.Error("cannot save session", "game", r.gameID, "session", r.sessionID, "err", err)
		return false
	}

	r.logger.Info("session saved",
		"game", r.gameID,
		"session", r.sessionID,
		"score", r.state.Score,
		"moves", r.state.Moves,
		"reason", reason,
	)
	return true
}

// ID returns the current session ID.
func (r *sessionRecorder) ID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionID
}

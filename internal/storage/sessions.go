package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// End reasons recorded for a session.
const (
	EndOutOfMoves = "out_of_moves"
	EndQuit       = "quit"
	EndRestart    = "restart"
	EndDisconnect = "disconnect"
)

// Session is the summary of one finished game.
type Session struct {
	ID        int64
	SessionID string
	GameID    string
	Score     int
	Moves     int
	Cascades  int // Resolving rounds across the game
	BestChain int // Most rounds triggered by a single move
	EndReason string
	CreatedAt time.Time
}

// SaveSession records a finished game and its score in one transaction.
// A session ID is generated when s.SessionID is empty. Returns the session ID.
func (s *Store) SaveSession(sess Session) (string, error) {
	if sess.SessionID == "" {
		sess.SessionID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO sessions
		 (session_id, game_id, score, moves, cascades, best_chain, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.SessionID,
		sess.GameID,
		sess.Score,
		sess.Moves,
		sess.Cascades,
		sess.BestChain,
		sess.EndReason,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", sess.GameID, sess.Score); err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return sess.SessionID, nil
}

// RecentSessions retrieves the most recent sessions for a game, newest first.
// An empty gameID returns sessions for every game.
func (s *Store) RecentSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, game_id, score, moves, cascades, best_chain, end_reason, created_at
		 FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.SessionID,
			&sess.GameID,
			&sess.Score,
			&sess.Moves,
			&sess.Cascades,
			&sess.BestChain,
			&sess.EndReason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

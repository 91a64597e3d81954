package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tempo/internal/modules/session/domain"
	sessionout "tempo/internal/modules/session/port/out"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/timefmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists sessions in a single table. A mutex serializes
// every operation on the instance so readers never observe a partial
// ReplaceAll.
type SQLiteStore struct {
	mu sync.Mutex
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

var _ sessionout.Store = (*SQLiteStore)(nil)

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  timestamp TEXT NOT NULL,
  duration INTEGER NOT NULL,
  remark TEXT NOT NULL,
  location TEXT NOT NULL,
  watched_movie INTEGER NOT NULL,
  climax INTEGER NOT NULL,
  rating REAL NOT NULL,
  mood TEXT NOT NULL,
  props TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadAll(ctx context.Context) ([]domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	const query = `
SELECT id, timestamp, duration, remark, location, watched_movie, climax, rating, mood, props
FROM sessions
ORDER BY timestamp DESC, id DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		var session domain.Session
		var ts string
		if err := rows.Scan(
			&session.ID,
			&ts,
			&session.Duration,
			&session.Remark,
			&session.Location,
			&session.WatchedMovie,
			&session.Climax,
			&session.Rating,
			&session.Mood,
			&session.Props,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		session.Timestamp, err = parseStoredTime(ts)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

func (s *SQLiteStore) ReplaceAll(ctx context.Context, sessions []domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	for i := range sessions {
		if _, err := insertSession(ctx, tx, sessions[i]); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Append(ctx context.Context, session domain.Session) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return insertSession(ctx, s.db, session)
}

func (s *SQLiteStore) Update(ctx context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	const stmt = `
UPDATE sessions
SET duration = ?, remark = ?, location = ?, watched_movie = ?, climax = ?, rating = ?, mood = ?, props = ?
WHERE id = ?`
	result, err := s.db.ExecContext(ctx, stmt,
		session.Duration,
		session.Remark,
		session.Location,
		session.WatchedMovie,
		session.Climax,
		session.Rating,
		session.Mood,
		session.Props,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return requireOneRow(result)
}

func (s *SQLiteStore) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return requireOneRow(result)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertSession(ctx context.Context, db execer, session domain.Session) (int64, error) {
	const stmt = `
INSERT INTO sessions (timestamp, duration, remark, location, watched_movie, climax, rating, mood, props)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	result, err := db.ExecContext(ctx, stmt,
		session.Timestamp.Format(timefmt.Layout),
		session.Duration,
		session.Remark,
		session.Location,
		session.WatchedMovie,
		session.Climax,
		session.Rating,
		session.Mood,
		session.Props,
	)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session insert id: %w", err)
	}
	return id, nil
}

func requireOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func parseStoredTime(value string) (time.Time, error) {
	ts, err := time.ParseInLocation(timefmt.Layout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp: %w", err)
	}
	return ts, nil
}

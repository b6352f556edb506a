// Package songbook persists songs and their canonical chord/lyric
// content in a libsql database. Content is always replaced whole; the
// engine hands back a complete new snapshot and the last write wins.
package songbook

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmelo/cifrabot/internal/utils"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Song is one songbook row. Content is the inline bracket-annotated
// text, OriginalKey one of the canonical key names.
type Song struct {
	ID          string
	Title       string
	Artist      sql.NullString
	Category    sql.NullString
	OriginalKey string
	Content     string
	Counter     int
}

// Manager wraps the songbook table with an in-memory copy of all rows;
// the book is small and read on every bot command.
type Manager struct {
	db    *sql.DB
	mu    sync.RWMutex
	songs []Song
}

// Open connects using the TURSO_* environment variables and loads the
// songbook.
func Open(ctx context.Context) (*Manager, error) {
	env, err := utils.LoadEnv([]string{"TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN"})
	if err != nil {
		return nil, fmt.Errorf("failed to load db env: %w", err)
	}
	url := fmt.Sprintf("%s?authToken=%s", env["TURSO_DATABASE_URL"], env["TURSO_AUTH_TOKEN"])

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.reload(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Close closes the underlying connection pool.
func (m *Manager) Close() error {
	return m.db.Close()
}

func (m *Manager) reload(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx,
		"SELECT id, title, artist, category, original_key, content, counter FROM songbook")
	if err != nil {
		return fmt.Errorf("failed to query songbook: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.Category,
			&song.OriginalKey, &song.Content, &song.Counter); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error during rows iteration: %w", err)
	}

	m.mu.Lock()
	m.songs = songs
	m.mu.Unlock()
	return nil
}

// All returns a snapshot of every song.
func (m *Manager) All() []Song {
	m.mu.RLock()
	defer m.mu.RUnlock()
	songs := make([]Song, len(m.songs))
	copy(songs, m.songs)
	return songs
}

// FindByID looks a song up by its id.
func (m *Manager) FindByID(id string) (Song, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, song := range m.songs {
		if song.ID == id {
			return song, true
		}
	}
	return Song{}, false
}

// Add inserts a new song, typically straight from an import result.
func (m *Manager) Add(ctx context.Context, song Song) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.db.ExecContext(ctx,
		`INSERT INTO songbook (id, title, artist, category, original_key, content, counter)
		 VALUES (?, ?, ?, ?, ?, ?, 0)`,
		song.ID, song.Title, song.Artist, song.Category, song.OriginalKey, song.Content)
	if err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}

	m.mu.Lock()
	m.songs = append(m.songs, song)
	m.mu.Unlock()
	return nil
}

// UpdateContent replaces a song's content and key atomically, after a
// transposition or an edit.
func (m *Manager) UpdateContent(ctx context.Context, id, content, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.db.ExecContext(ctx,
		"UPDATE songbook SET content = ?, original_key = ? WHERE id = ?", content, key, id)
	if err != nil {
		return fmt.Errorf("failed to update song content: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no song found with id: %s", id)
	}

	m.mu.Lock()
	for i := range m.songs {
		if m.songs[i].ID == id {
			m.songs[i].Content = content
			m.songs[i].OriginalKey = key
			break
		}
	}
	m.mu.Unlock()
	return nil
}

// IncrementCounter bumps a song's play counter.
func (m *Manager) IncrementCounter(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := m.db.ExecContext(ctx,
		"UPDATE songbook SET counter = counter + 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to increment song counter: %w", err)
	}

	m.mu.Lock()
	for i := range m.songs {
		if m.songs[i].ID == id {
			m.songs[i].Counter++
			break
		}
	}
	m.mu.Unlock()
	return nil
}

// FormatSongName renders "Artist - Title" for display.
func FormatSongName(song Song) string {
	var parts []string
	if song.Artist.Valid {
		parts = append(parts, song.Artist.String, "-")
	}
	parts = append(parts, song.Title)
	return strings.TrimSpace(strings.Join(parts, " "))
}

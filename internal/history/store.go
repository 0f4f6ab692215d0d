// Package history persists evaluation snapshots so past decisions can be
// reviewed. The engine itself never touches this store; callers pass the
// finished result in.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/rentcheck/rentcheck/internal/engine"
)

var ErrNotFound = errors.New("evaluation not found")

// Entry is one stored evaluation: the inputs as submitted and the full
// result, kept as JSON snapshots.
type Entry struct {
	ID          string                  `json:"id"`
	ListingName string                  `json:"listing_name,omitempty"`
	Profile     engine.RenterProfile    `json:"profile"`
	Listing     engine.Listing          `json:"listing"`
	Result      engine.EvaluationResult `json:"result"`
	CreatedAt   time.Time               `json:"created_at"`
}

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the sqlite database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) ensureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS evaluations (
  id TEXT PRIMARY KEY,
  listing_name TEXT NOT NULL DEFAULT '',
  profile_json TEXT NOT NULL,
  listing_json TEXT NOT NULL,
  result_json TEXT NOT NULL,
  score INTEGER NOT NULL,
  verdict TEXT NOT NULL,
  confidence TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return fmt.Errorf("create evaluations table: %w", err)
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_evaluations_created_at ON evaluations(created_at);`); err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Save stores one finished evaluation and returns the persisted entry with
// its generated id and timestamp.
func (s *Store) Save(profile engine.RenterProfile, listing engine.Listing, result engine.EvaluationResult) (*Entry, error) {
	entry := &Entry{
		ID:          uuid.NewString(),
		ListingName: listing.Name,
		Profile:     profile,
		Listing:     listing,
		Result:      result,
		CreatedAt:   time.Now().UTC(),
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	listingJSON, err := json.Marshal(listing)
	if err != nil {
		return nil, fmt.Errorf("marshal listing: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.db.Exec(`
INSERT INTO evaluations
(id, listing_name, profile_json, listing_json, result_json, score, verdict, confidence, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		entry.ID, entry.ListingName,
		string(profileJSON), string(listingJSON), string(resultJSON),
		result.Score, string(result.Verdict), string(result.Confidence),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert evaluation: %w", err)
	}

	return entry, nil
}

// Get returns one stored evaluation by id.
func (s *Store) Get(id string) (*Entry, error) {
	row := s.db.QueryRow(`
SELECT id, listing_name, profile_json, listing_json, result_json, created_at
FROM evaluations WHERE id = ?
`, id)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return entry, err
}

// List returns the most recent evaluations, newest first.
func (s *Store) List(limit, offset int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Query(`
SELECT id, listing_name, profile_json, listing_json, result_json, created_at
FROM evaluations ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	entries := make([]*Entry, 0, limit)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count returns the number of stored evaluations.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM evaluations`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var entry Entry
	var profileJSON, listingJSON, resultJSON, createdAt string

	if err := row.Scan(&entry.ID, &entry.ListingName, &profileJSON, &listingJSON, &resultJSON, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(profileJSON), &entry.Profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if err := json.Unmarshal([]byte(listingJSON), &entry.Listing); err != nil {
		return nil, fmt.Errorf("unmarshal listing: %w", err)
	}
	if err := json.Unmarshal([]byte(resultJSON), &entry.Result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	entry.CreatedAt = ts

	return &entry, nil
}

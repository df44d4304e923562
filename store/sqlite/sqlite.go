/*
Package sqlite provides the SQLite-backed time-entry store.

PURPOSE:
  Persists consultant time entries and rehydrates them as track.TimeCards
  for invoice extraction. This is the upstream collaborator the invoice
  core deliberately knows nothing about: the core consumes TimeCards, the
  store produces them.

KEY TABLE:
  time_entries: one row per logged entry, insertion order preserved via
  rowid so rehydrated cards keep logging order.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. Reads take the read lock, writes
  the write lock.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/timecards.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  cards, err := store.TimeCards(ctx)

SEE ALSO:
  - track/timecard.go: the TimeCard type rehydrated here
  - cmd/invoicegen: wires the store into invoice generation
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/invoice-engine/billing"
	"github.com/warp/invoice-engine/track"
)

const dateLayout = "2006-01-02"

// Store persists time entries in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS time_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		consultant_last TEXT NOT NULL,
		consultant_first TEXT NOT NULL,
		consultant_middle TEXT NOT NULL DEFAULT '',
		week_starting TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		account_name TEXT NOT NULL,
		billable INTEGER NOT NULL,
		skill TEXT NOT NULL,
		hours INTEGER NOT NULL CHECK (hours >= 0)
	);

	-- Card rehydration groups by consultant and week (hot path)
	CREATE INDEX IF NOT EXISTS idx_time_entries_consultant_week
		ON time_entries(consultant_last, consultant_first, consultant_middle, week_starting);

	-- Client/month extraction pre-filtering
	CREATE INDEX IF NOT EXISTS idx_time_entries_account_date
		ON time_entries(account_name, entry_date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// WRITES
// =============================================================================

// SaveTimeCard persists all of a card's entries in one transaction.
func (s *Store) SaveTimeCard(ctx context.Context, card *track.TimeCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO time_entries
			(consultant_last, consultant_first, consultant_middle,
			 week_starting, entry_date, account_name, billable, skill, hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	name := card.Consultant().Name
	week := card.WeekStarting().Format(dateLayout)
	for _, entry := range card.Entries() {
		billable := 0
		if entry.IsBillable() {
			billable = 1
		}
		_, err := stmt.ExecContext(ctx,
			name.LastName, name.FirstName, name.MiddleName,
			week,
			entry.Date().Format(dateLayout),
			entry.Account().Name(),
			billable,
			string(entry.Skill()),
			entry.Hours(),
		)
		if err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}

	return tx.Commit()
}

// =============================================================================
// READS
// =============================================================================

// TimeCards rehydrates all persisted entries as time cards, one card per
// (consultant, week), entries in original logging order.
func (s *Store) TimeCards(ctx context.Context) ([]*track.TimeCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT consultant_last, consultant_first, consultant_middle,
		       week_starting, entry_date, account_name, billable, skill, hours
		FROM time_entries
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var cards []*track.TimeCard
	index := make(map[string]*track.TimeCard)

	for rows.Next() {
		var last, first, middle, week, date, account, skill string
		var billable, hours int
		if err := rows.Scan(&last, &first, &middle, &week, &date, &account, &billable, &skill, &hours); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		key := last + "\x00" + first + "\x00" + middle + "\x00" + week
		card, ok := index[key]
		if !ok {
			weekStart, err := time.Parse(dateLayout, week)
			if err != nil {
				return nil, fmt.Errorf("parse week_starting %q: %w", week, err)
			}
			consultant := track.Consultant{Name: track.PersonalName{
				LastName:   last,
				FirstName:  first,
				MiddleName: middle,
			}}
			card = track.NewTimeCard(consultant, weekStart)
			index[key] = card
			cards = append(cards, card)
		}

		entryDate, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse entry_date %q: %w", date, err)
		}
		entry, err := track.NewConsultantTime(
			entryDate,
			track.AccountRef{AccountName: account, Billable: billable != 0},
			billing.Skill(skill),
			hours,
		)
		if err != nil {
			return nil, fmt.Errorf("rehydrate entry: %w", err)
		}
		card.AddEntry(entry)
	}

	return cards, rows.Err()
}

package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chronos-capsule/chronos/internal/db"
)

// Repository persists wallet records. Records are never deleted.
type Repository interface {
	// Create stores a new record.
	Create(ctx context.Context, rec *Record) error
	// Replace stores rec and deactivates every record in supersedes in one
	// transaction. A superseded record that is already inactive aborts the replace
	// with ErrRecordInactive.
	Replace(ctx context.Context, rec *Record, supersedes []string) error
	// Get returns ErrRecordNotFound when no record has the id.
	Get(ctx context.Context, id string) (*Record, error)
	// ListByUser returns the user's records, newest first.
	ListByUser(ctx context.Context, userID string, activeOnly bool) ([]*Record, error)
}

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-based Repository
func NewSQLiteRepository(sqlDB *sql.DB) (*SQLiteRepository, error) {
	repo := &SQLiteRepository{db: sqlDB}
	if err := repo.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return repo, nil
}

// createTables ensures that the required tables exist
func (r *SQLiteRepository) createTables() error {
	createTable := `
	CREATE TABLE IF NOT EXISTS wallet_secrets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		chain TEXT NOT NULL,
		address TEXT NOT NULL,
		envelope TEXT NOT NULL,
		user_made INTEGER NOT NULL,
		is_active INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		deactivated_at TEXT,
		superseded_by TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_wallet_secrets_user_active
		ON wallet_secrets (user_id, is_active);`

	_, err := r.db.Exec(createTable)
	return err
}

const insertRecord = `
	INSERT INTO wallet_secrets (id, user_id, chain, address, envelope, user_made, is_active, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const selectRecord = `
	SELECT id, user_id, chain, address, envelope, user_made, is_active, created_at, deactivated_at, superseded_by
	FROM wallet_secrets`

// Create adds a new record to the repository
func (r *SQLiteRepository) Create(ctx context.Context, rec *Record) error {
	return r.Replace(ctx, rec, nil)
}

// Replace adds rec and deactivates the records it supersedes
func (r *SQLiteRepository) Replace(ctx context.Context, rec *Record, supersedes []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertRecord,
		rec.ID, rec.UserID, rec.Chain, rec.Address, rec.Envelope,
		db.BoolToInt(rec.UserMade), db.BoolToInt(rec.IsActive), db.TimeToString(rec.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create wallet record: %w", err)
	}

	deactivatedAt := db.TimeToString(rec.CreatedAt)
	for _, id := range supersedes {
		result, err := tx.ExecContext(ctx, `
		UPDATE wallet_secrets
		SET is_active = 0, deactivated_at = ?, superseded_by = ?
		WHERE id = ? AND is_active = 1`,
			deactivatedAt, rec.ID, id,
		)
		if err != nil {
			return fmt.Errorf("failed to deactivate wallet record %s: %w", id, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("wallet record %s: %w", id, ErrRecordInactive)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit wallet record: %w", err)
	}
	return nil
}

// Get retrieves a record by id
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, selectRecord+` WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get wallet record: %w", err)
	}
	return rec, nil
}

// ListByUser retrieves the user's records, optionally only the active ones
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]*Record, error) {
	query := selectRecord + ` WHERE user_id = ?`
	args := []any{userID}
	if activeOnly {
		query += ` AND is_active = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet records: %w", err)
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list wallet records: %w", err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	rec := &Record{}
	var userMade, isActive int
	var createdAtStr string
	var deactivatedAtStr, supersededBy sql.NullString

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Chain, &rec.Address, &rec.Envelope,
		&userMade, &isActive, &createdAtStr, &deactivatedAtStr, &supersededBy,
	)
	if err != nil {
		return nil, err
	}

	rec.UserMade = db.IntToBool(userMade)
	rec.IsActive = db.IntToBool(isActive)
	rec.SupersededBy = supersededBy.String

	// Convert string timestamps back to time.Time
	rec.CreatedAt, err = db.StringToTime(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	if deactivatedAtStr.Valid {
		var t time.Time
		t, err = db.StringToTime(deactivatedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse deactivated_at timestamp: %w", err)
		}
		rec.DeactivatedAt = &t
	}

	return rec, nil
}

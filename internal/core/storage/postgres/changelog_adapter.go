package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/aevon-lab/chronicle/internal/core/diff"
	"github.com/aevon-lab/chronicle/internal/core/storage"
)

// ChangelogAdapter implements storage.ChangelogStore and records entries on
// behalf of the other adapters.
type ChangelogAdapter struct {
	db *sql.DB
}

// NewChangelogAdapter creates a ChangelogAdapter sharing the given connection.
func NewChangelogAdapter(db *sql.DB) *ChangelogAdapter {
	return &ChangelogAdapter{db: db}
}

// Append inserts entry on the caller's unit of work and fills in its ID and
// timestamp. It never commits; the entry becomes visible with the mutation
// it describes.
func (a *ChangelogAdapter) Append(ctx context.Context, uow *UnitOfWork, entry *v1.ChangeLogEntry) error {
	if !entry.ChangeType.Valid() {
		return fmt.Errorf("changelog append: unknown change type %q", entry.ChangeType)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = nowFn()
	}

	var changesJSON interface{}
	if entry.Changes != nil {
		b, err := json.Marshal(entry.Changes)
		if err != nil {
			return fmt.Errorf("changelog append: marshal changes: %w", err)
		}
		changesJSON = b
	}

	err := uow.queryRow(ctx, queryInsertChangelog,
		entry.EventID,
		entry.UserID,
		entry.Timestamp,
		string(entry.ChangeType),
		nullInt(entry.FromVersion),
		nullInt(entry.ToVersion),
		changesJSON,
		nullString(entry.Comment),
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("changelog append: %w", err)
	}

	slog.Debug("[ChangelogAdapter] Entry recorded",
		"event_id", entry.EventID,
		"user_id", entry.UserID,
		"change_type", entry.ChangeType)
	return nil
}

// ListForEvent returns an event's entries newest first.
func (a *ChangelogAdapter) ListForEvent(ctx context.Context, eventID int64) ([]*v1.ChangeLogEntry, error) {
	rows, err := a.db.QueryContext(ctx, queryListChangelog, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query changelog: %w", err)
	}
	defer rows.Close()

	var entries []*v1.ChangeLogEntry
	for rows.Next() {
		entry, err := scanChangelogRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating changelog: %w", err)
	}

	return entries, nil
}

// DiffBetweenVersions loads both snapshots and returns their changed fields
// in field-set order. Either version missing yields storage.ErrVersionNotFound.
func (a *ChangelogAdapter) DiffBetweenVersions(ctx context.Context, eventID int64, from, to int) ([]v1.FieldChange, error) {
	older, err := a.loadVersion(ctx, eventID, from)
	if err != nil {
		return nil, err
	}
	newer, err := a.loadVersion(ctx, eventID, to)
	if err != nil {
		return nil, err
	}
	return diff.EventFieldChanges(older.EventFields, newer.EventFields), nil
}

func (a *ChangelogAdapter) loadVersion(ctx context.Context, eventID int64, version int) (*v1.EventVersion, error) {
	ver, err := scanVersionRow(a.db.QueryRowContext(ctx, querySelectVersion, eventID, version))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: event %d version %d", storage.ErrVersionNotFound, eventID, version)
	}
	if err != nil {
		return nil, err
	}
	return ver, nil
}

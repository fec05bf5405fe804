package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/lib/pq"
)

// pqUniqueViolation is the SQLSTATE for unique_violation.
const pqUniqueViolation = "23505"

// nowFn is swapped in tests for deterministic timestamps.
var nowFn = func() time.Time { return time.Now().UTC() }

type scanner interface {
	Scan(dest ...interface{}) error
}

// marshalPattern encodes a recurrence pattern as a JSONB argument.
// A nil pattern produces nil (SQL NULL) rather than JSON "null".
func marshalPattern(p *v1.RecurrencePattern) (interface{}, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recurrence pattern: %w", err)
	}
	return b, nil
}

func unmarshalPattern(raw []byte) (*v1.RecurrencePattern, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var p v1.RecurrencePattern
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recurrence pattern: %w", err)
	}
	return &p, nil
}

// scanEventRow scans the eventColumns projection.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanEventRow(row scanner) (*v1.Event, error) {
	var evt v1.Event
	var patternJSON []byte

	err := row.Scan(
		&evt.ID,
		&evt.Title,
		&evt.Description,
		&evt.StartTime,
		&evt.EndTime,
		&evt.Location,
		&evt.IsRecurring,
		&patternJSON,
		&evt.OwnerID,
		&evt.CurrentVersion,
		&evt.CreatedAt,
		&evt.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan event row: %w", err)
	}

	if evt.RecurrencePattern, err = unmarshalPattern(patternJSON); err != nil {
		return nil, err
	}
	return &evt, nil
}

// scanVersionRow scans the versionColumns projection.
func scanVersionRow(row scanner) (*v1.EventVersion, error) {
	var ver v1.EventVersion
	var patternJSON []byte

	err := row.Scan(
		&ver.EventID,
		&ver.VersionNumber,
		&ver.Title,
		&ver.Description,
		&ver.StartTime,
		&ver.EndTime,
		&ver.Location,
		&ver.IsRecurring,
		&patternJSON,
		&ver.CreatedBy,
		&ver.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan version row: %w", err)
	}

	if ver.RecurrencePattern, err = unmarshalPattern(patternJSON); err != nil {
		return nil, err
	}
	return &ver, nil
}

func scanPermissionRow(row scanner) (*v1.Permission, error) {
	var perm v1.Permission
	var role string
	if err := row.Scan(&perm.EventID, &perm.UserID, &role, &perm.CreatedAt, &perm.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan permission row: %w", err)
	}
	perm.Role = v1.Role(role)
	return &perm, nil
}

func scanChangelogRow(row scanner) (*v1.ChangeLogEntry, error) {
	var entry v1.ChangeLogEntry
	var changeType string
	var from, to sql.NullInt32
	var changesJSON []byte
	var comment sql.NullString

	err := row.Scan(
		&entry.ID,
		&entry.EventID,
		&entry.UserID,
		&entry.Timestamp,
		&changeType,
		&from,
		&to,
		&changesJSON,
		&comment,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan changelog row: %w", err)
	}

	entry.ChangeType = v1.ChangeType(changeType)
	entry.FromVersion = intFromNull(from)
	entry.ToVersion = intFromNull(to)
	if comment.Valid {
		entry.Comment = &comment.String
	}
	if len(changesJSON) > 0 {
		if err := json.Unmarshal(changesJSON, &entry.Changes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal changelog changes: %w", err)
		}
	}
	return &entry, nil
}

func intFromNull(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int32)
	return &v
}

func nullInt(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func nullString(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func nullTime(p *time.Time) interface{} {
	if p == nil {
		return nil
	}
	return p.UTC()
}

func intPtr(n int) *int { return &n }

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

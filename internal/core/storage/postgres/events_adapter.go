package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/aevon-lab/chronicle/internal/core/conflict"
	"github.com/aevon-lab/chronicle/internal/core/diff"
	"github.com/aevon-lab/chronicle/internal/core/recurrence"
	"github.com/aevon-lab/chronicle/internal/core/storage"
)

// EventsAdapter implements storage.EventStore: events, their append-only
// version chains and the changelog entries that accompany each mutation.
//
// Writers on one event are serialized by a row lock on the event, and the
// head update is a compare-and-swap on current_version, so two concurrent
// updates can never both claim version n+1.
type EventsAdapter struct {
	db          *sql.DB
	permissions *PermissionsAdapter
	changelog   *ChangelogAdapter
}

// NewEventsAdapter creates an EventsAdapter sharing the given connection.
func NewEventsAdapter(db *sql.DB, permissions *PermissionsAdapter, changelog *ChangelogAdapter) *EventsAdapter {
	if permissions == nil || changelog == nil {
		panic("events adapter requires permissions and changelog adapters")
	}
	return &EventsAdapter{db: db, permissions: permissions, changelog: changelog}
}

// CreateWithOwner writes the event at version 1, its first snapshot, the
// owner permission and the CREATE entry in one transaction.
func (a *EventsAdapter) CreateWithOwner(ctx context.Context, fields v1.EventFields, ownerID int64) (*v1.Event, error) {
	if fields.EndTime.Before(fields.StartTime) {
		return nil, storage.ErrInvalidTimeRange
	}
	patternJSON, err := marshalPattern(fields.RecurrencePattern)
	if err != nil {
		return nil, err
	}

	now := nowFn()
	event := &v1.Event{
		EventFields:    fields.Clone(),
		OwnerID:        ownerID,
		CurrentVersion: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = inTx(ctx, a.db, "event create", func(uow *UnitOfWork) error {
		err := uow.queryRow(ctx, queryInsertEvent,
			fields.Title,
			fields.Description,
			fields.StartTime,
			fields.EndTime,
			fields.Location,
			fields.IsRecurring,
			patternJSON,
			ownerID,
			now,
		).Scan(&event.ID)
		if err != nil {
			return fmt.Errorf("event create: insert event: %w", err)
		}

		if err := a.insertVersion(ctx, uow, event.ID, 1, fields, patternJSON, ownerID, now); err != nil {
			return err
		}
		if err := a.permissions.insertOwner(ctx, uow, event.ID, ownerID, now); err != nil {
			return fmt.Errorf("event create: %w", err)
		}

		return a.changelog.Append(ctx, uow, &v1.ChangeLogEntry{
			EventID:    event.ID,
			UserID:     ownerID,
			Timestamp:  now,
			ChangeType: v1.ChangeCreate,
			ToVersion:  intPtr(1),
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("[EventsAdapter] Event created",
		"event_id", event.ID,
		"owner_id", ownerID)
	return event, nil
}

// UpdateWithVersion merges patch over the locked head. When nothing changed
// the current event is returned with changed=false and nothing is written.
func (a *EventsAdapter) UpdateWithVersion(ctx context.Context, eventID int64, patch v1.EventPatch, actorID int64) (*v1.Event, bool, error) {
	var (
		event   *v1.Event
		changed bool
	)

	err := inTx(ctx, a.db, "event update", func(uow *UnitOfWork) error {
		current, err := a.lockEvent(ctx, uow, eventID)
		if err != nil {
			return err
		}
		if patch.ExpectedVersion != nil && *patch.ExpectedVersion != current.CurrentVersion {
			return fmt.Errorf("%w: expected version %d, current is %d",
				storage.ErrVersionConflict, *patch.ExpectedVersion, current.CurrentVersion)
		}

		merged := patch.Apply(current.EventFields)
		if err := recurrence.ValidateFields(&merged); err != nil {
			return err
		}

		changes := diff.EventChanges(current.EventFields, merged)
		if len(changes) == 0 {
			event = current
			return nil
		}

		from := current.CurrentVersion
		event, err = a.advance(ctx, uow, current, merged, actorID)
		if err != nil {
			return err
		}
		changed = true

		return a.changelog.Append(ctx, uow, &v1.ChangeLogEntry{
			EventID:     eventID,
			UserID:      actorID,
			Timestamp:   event.UpdatedAt,
			ChangeType:  v1.ChangeUpdate,
			FromVersion: intPtr(from),
			ToVersion:   intPtr(event.CurrentVersion),
			Changes:     diff.ChangesPayload(changes),
		})
	})
	if err != nil {
		return nil, false, err
	}

	if changed {
		slog.Info("[EventsAdapter] Event updated",
			"event_id", eventID,
			"user_id", actorID,
			"version", event.CurrentVersion)
	}
	return event, changed, nil
}

// RollbackToVersion copies the target snapshot verbatim into a new head version.
func (a *EventsAdapter) RollbackToVersion(ctx context.Context, eventID int64, target int, actorID int64, comment *string) (*v1.EventVersion, error) {
	var created *v1.EventVersion

	err := inTx(ctx, a.db, "event rollback", func(uow *UnitOfWork) error {
		current, err := a.lockEvent(ctx, uow, eventID)
		if err != nil {
			return err
		}
		if target == current.CurrentVersion {
			return fmt.Errorf("%w: event %d is already at version %d", storage.ErrInvalidRollback, eventID, target)
		}

		snapshot, err := scanVersionRow(uow.queryRow(ctx, querySelectVersion, eventID, target))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("version %d of event %d: %w", target, eventID, storage.ErrNotFound)
		}
		if err != nil {
			return err
		}

		changes := diff.EventChanges(current.EventFields, snapshot.EventFields)
		from := current.CurrentVersion
		event, err := a.advance(ctx, uow, current, snapshot.EventFields, actorID)
		if err != nil {
			return err
		}

		created = &v1.EventVersion{
			EventID:       eventID,
			VersionNumber: event.CurrentVersion,
			EventFields:   snapshot.EventFields.Clone(),
			CreatedBy:     actorID,
			CreatedAt:     event.UpdatedAt,
		}

		return a.changelog.Append(ctx, uow, &v1.ChangeLogEntry{
			EventID:     eventID,
			UserID:      actorID,
			Timestamp:   event.UpdatedAt,
			ChangeType:  v1.ChangeRollback,
			FromVersion: intPtr(from),
			ToVersion:   intPtr(event.CurrentVersion),
			Changes:     diff.ChangesPayload(changes),
			Comment:     comment,
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("[EventsAdapter] Event rolled back",
		"event_id", eventID,
		"user_id", actorID,
		"target_version", target,
		"version", created.VersionNumber)
	return created, nil
}

// DeleteEvent hides the event from reads and records a DELETE entry.
// Versions and changelog stay.
func (a *EventsAdapter) DeleteEvent(ctx context.Context, eventID int64, actorID int64) error {
	err := inTx(ctx, a.db, "event delete", func(uow *UnitOfWork) error {
		current, err := a.lockEvent(ctx, uow, eventID)
		if err != nil {
			return err
		}

		now := nowFn()
		res, err := uow.exec(ctx, querySoftDeleteEvent, now, eventID)
		if err != nil {
			return fmt.Errorf("event delete: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("event delete: rows affected: %w", err)
		} else if n == 0 {
			return storage.ErrNotFound
		}

		return a.changelog.Append(ctx, uow, &v1.ChangeLogEntry{
			EventID:     eventID,
			UserID:      actorID,
			Timestamp:   now,
			ChangeType:  v1.ChangeDelete,
			FromVersion: intPtr(current.CurrentVersion),
		})
	})
	if err != nil {
		return err
	}

	slog.Info("[EventsAdapter] Event deleted",
		"event_id", eventID,
		"user_id", actorID)
	return nil
}

// GetEvent returns a live event or storage.ErrNotFound.
func (a *EventsAdapter) GetEvent(ctx context.Context, eventID int64) (*v1.Event, error) {
	event, err := scanEventRow(a.db.QueryRowContext(ctx, querySelectEvent, eventID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// GetVersion returns one snapshot or storage.ErrNotFound.
func (a *EventsAdapter) GetVersion(ctx context.Context, eventID int64, version int) (*v1.EventVersion, error) {
	ver, err := scanVersionRow(a.db.QueryRowContext(ctx, querySelectVersion, eventID, version))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ver, nil
}

// ListVersions returns the whole chain, oldest first.
func (a *EventsAdapter) ListVersions(ctx context.Context, eventID int64) ([]*v1.EventVersion, error) {
	rows, err := a.db.QueryContext(ctx, queryListVersions, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions: %w", err)
	}
	defer rows.Close()

	var versions []*v1.EventVersion
	for rows.Next() {
		ver, err := scanVersionRow(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, ver)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating versions: %w", err)
	}

	return versions, nil
}

// ListUserEvents returns one page of the user's visible events and the total match count.
func (a *EventsAdapter) ListUserEvents(ctx context.Context, userID int64, filter v1.EventFilter, limit, offset int) ([]*v1.Event, int, error) {
	args := []interface{}{
		userID,
		nullTime(filter.StartDate),
		nullTime(filter.EndDate),
		filter.TitleSearch,
		filter.Location,
		filter.IncludeRecurring,
	}

	var total int
	if err := a.db.QueryRowContext(ctx, queryCountUserEvents, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	rows, err := a.db.QueryContext(ctx, queryListUserEvents, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*v1.Event
	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating events: %w", err)
	}

	return events, total, nil
}

// FindConflicts returns the user's events overlapping [start, end].
func (a *EventsAdapter) FindConflicts(ctx context.Context, userID int64, start, end time.Time, excludeID int64) ([]*v1.Event, error) {
	rows, err := a.db.QueryContext(ctx, queryFindConflicts, userID, start, end, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicts: %w", err)
	}
	defer rows.Close()

	var candidates []*v1.Event
	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conflicts: %w", err)
	}

	return conflict.Filter(candidates, start, end, excludeID), nil
}

// lockEvent reads the head row FOR UPDATE.
func (a *EventsAdapter) lockEvent(ctx context.Context, uow *UnitOfWork, eventID int64) (*v1.Event, error) {
	event, err := scanEventRow(uow.queryRow(ctx, querySelectEventForUpdate, eventID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// advance appends version current+1 holding fields and moves the head to it.
func (a *EventsAdapter) advance(ctx context.Context, uow *UnitOfWork, current *v1.Event, fields v1.EventFields, actorID int64) (*v1.Event, error) {
	patternJSON, err := marshalPattern(fields.RecurrencePattern)
	if err != nil {
		return nil, err
	}

	now := nowFn()
	next := current.CurrentVersion + 1

	if err := a.insertVersion(ctx, uow, current.ID, next, fields, patternJSON, actorID, now); err != nil {
		return nil, err
	}

	res, err := uow.exec(ctx, queryAdvanceEvent,
		fields.Title,
		fields.Description,
		fields.StartTime,
		fields.EndTime,
		fields.Location,
		fields.IsRecurring,
		patternJSON,
		next,
		now,
		current.ID,
		current.CurrentVersion,
	)
	if err != nil {
		return nil, fmt.Errorf("advance event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("advance event: rows affected: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: event %d moved past version %d", storage.ErrVersionConflict, current.ID, current.CurrentVersion)
	}

	return &v1.Event{
		ID:             current.ID,
		EventFields:    fields.Clone(),
		OwnerID:        current.OwnerID,
		CurrentVersion: next,
		CreatedAt:      current.CreatedAt,
		UpdatedAt:      now,
	}, nil
}

func (a *EventsAdapter) insertVersion(
	ctx context.Context,
	uow *UnitOfWork,
	eventID int64,
	version int,
	fields v1.EventFields,
	patternJSON interface{},
	createdBy int64,
	at time.Time,
) error {
	_, err := uow.exec(ctx, queryInsertVersion,
		eventID,
		version,
		fields.Title,
		fields.Description,
		fields.StartTime,
		fields.EndTime,
		fields.Location,
		fields.IsRecurring,
		patternJSON,
		createdBy,
		at,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: version %d of event %d already exists", storage.ErrVersionConflict, version, eventID)
	}
	if err != nil {
		return fmt.Errorf("insert version %d: %w", version, err)
	}
	return nil
}

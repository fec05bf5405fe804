package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
)

var (
	// ErrNotFound is returned when an event, version or permission row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOwnerProtected is returned when a mutation targets the owner's permission
	// or tries to hand out the owner role.
	ErrOwnerProtected = errors.New("owner permission cannot be modified")

	// ErrInvalidTimeRange is returned when an event would end before it starts.
	ErrInvalidTimeRange = v1.ErrEndBeforeStart

	// ErrInvalidFields is returned when a merged update leaves the event
	// without a required field or recurring without a pattern.
	ErrInvalidFields = v1.ErrInvalidFields

	// ErrInvalidRollback is returned when rolling back to the current version.
	ErrInvalidRollback = errors.New("cannot roll back to the current version")

	// ErrVersionConflict is returned when a concurrent writer advanced the
	// version chain first, or the caller's expected version is stale.
	ErrVersionConflict = errors.New("event version conflict")

	// ErrVersionNotFound is returned by version diffs when either side is missing.
	ErrVersionNotFound = errors.New("version not found")
)

// EventStore owns events and their version chains.
type EventStore interface {
	// CreateWithOwner inserts the event, version 1, the owner permission and the
	// CREATE changelog entry in one transaction.
	CreateWithOwner(ctx context.Context, fields v1.EventFields, ownerID int64) (*v1.Event, error)

	// UpdateWithVersion applies patch on top of the current version. changed is
	// false when the merged fields equal the current ones; nothing is written then.
	UpdateWithVersion(ctx context.Context, eventID int64, patch v1.EventPatch, actorID int64) (event *v1.Event, changed bool, err error)

	// RollbackToVersion appends a copy of version target as the new head.
	RollbackToVersion(ctx context.Context, eventID int64, target int, actorID int64, comment *string) (*v1.EventVersion, error)

	// DeleteEvent soft-deletes the event and records a DELETE entry. History is kept.
	DeleteEvent(ctx context.Context, eventID int64, actorID int64) error

	GetEvent(ctx context.Context, eventID int64) (*v1.Event, error)
	GetVersion(ctx context.Context, eventID int64, version int) (*v1.EventVersion, error)

	// ListVersions returns the full chain ordered by version number ascending.
	ListVersions(ctx context.Context, eventID int64) ([]*v1.EventVersion, error)

	// ListUserEvents returns one page of events the user holds any role on,
	// plus the total number of matches.
	ListUserEvents(ctx context.Context, userID int64, filter v1.EventFilter, limit, offset int) ([]*v1.Event, int, error)

	// FindConflicts returns the user's events overlapping [start, end] inclusively.
	// excludeID is skipped; pass 0 to keep every match.
	FindConflicts(ctx context.Context, userID int64, start, end time.Time, excludeID int64) ([]*v1.Event, error)
}

// PermissionStore owns role assignments. Every mutation records its own
// changelog entry in the same transaction.
type PermissionStore interface {
	// RoleOf returns ErrNotFound when the user holds no role on the event.
	RoleOf(ctx context.Context, eventID, userID int64) (v1.Role, error)

	// GrantOrUpdate inserts a new role (SHARE) or changes an existing one
	// (PERMISSION_CHANGE, only when the role differs).
	GrantOrUpdate(ctx context.Context, eventID, userID int64, role v1.Role, actorID int64) (*v1.Permission, error)

	// GrantMany runs GrantOrUpdate for every grant inside one transaction.
	GrantMany(ctx context.Context, eventID int64, grants []Grant, actorID int64) ([]*v1.Permission, error)

	// UpdateRole changes an existing role; ErrNotFound when the user has none.
	UpdateRole(ctx context.Context, eventID, userID int64, role v1.Role, actorID int64) (*v1.Permission, error)

	// Revoke removes the user's role; ErrNotFound when the user has none.
	Revoke(ctx context.Context, eventID, userID int64, actorID int64) error

	List(ctx context.Context, eventID int64) ([]*v1.Permission, error)
}

// ChangelogStore reads the audit trail. Writes happen inside the stores that
// own each mutation.
type ChangelogStore interface {
	// ListForEvent returns entries newest first.
	ListForEvent(ctx context.Context, eventID int64) ([]*v1.ChangeLogEntry, error)

	// DiffBetweenVersions compares two stored snapshots field by field.
	DiffBetweenVersions(ctx context.Context, eventID int64, from, to int) ([]v1.FieldChange, error)
}

// Grant is one requested (user, role) assignment.
type Grant struct {
	UserID int64   `json:"user_id"`
	Role   v1.Role `json:"role"`
}

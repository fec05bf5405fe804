package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/aevon-lab/chronicle/internal/core/storage"
)

// PermissionsAdapter implements storage.PermissionStore. Each mutation locks
// the target row and records its changelog entry in the same transaction.
//
// Callers are expected to have verified that the actor owns the event.
type PermissionsAdapter struct {
	db        *sql.DB
	changelog *ChangelogAdapter
}

// NewPermissionsAdapter creates a PermissionsAdapter sharing the given connection.
func NewPermissionsAdapter(db *sql.DB, changelog *ChangelogAdapter) *PermissionsAdapter {
	if changelog == nil {
		panic("permissions adapter requires a changelog adapter")
	}
	return &PermissionsAdapter{db: db, changelog: changelog}
}

// RoleOf returns the user's role on a live event, or storage.ErrNotFound.
func (a *PermissionsAdapter) RoleOf(ctx context.Context, eventID, userID int64) (v1.Role, error) {
	var role string
	err := a.db.QueryRowContext(ctx, querySelectRole, eventID, userID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query role: %w", err)
	}
	return v1.Role(role), nil
}

// GrantOrUpdate assigns role to the user, inserting or overwriting.
func (a *PermissionsAdapter) GrantOrUpdate(ctx context.Context, eventID, userID int64, role v1.Role, actorID int64) (*v1.Permission, error) {
	var perm *v1.Permission
	err := inTx(ctx, a.db, "permission grant", func(uow *UnitOfWork) error {
		var err error
		perm, err = a.grant(ctx, uow, eventID, userID, role, actorID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return perm, nil
}

// GrantMany applies every grant in one transaction; any failure rolls all back.
func (a *PermissionsAdapter) GrantMany(ctx context.Context, eventID int64, grants []storage.Grant, actorID int64) ([]*v1.Permission, error) {
	perms := make([]*v1.Permission, 0, len(grants))
	err := inTx(ctx, a.db, "permission grant many", func(uow *UnitOfWork) error {
		for _, g := range grants {
			perm, err := a.grant(ctx, uow, eventID, g.UserID, g.Role, actorID)
			if err != nil {
				return fmt.Errorf("user %d: %w", g.UserID, err)
			}
			perms = append(perms, perm)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return perms, nil
}

// UpdateRole overwrites an existing role; storage.ErrNotFound when absent.
func (a *PermissionsAdapter) UpdateRole(ctx context.Context, eventID, userID int64, role v1.Role, actorID int64) (*v1.Permission, error) {
	if err := checkAssignable(role); err != nil {
		return nil, err
	}

	var perm *v1.Permission
	err := inTx(ctx, a.db, "permission update", func(uow *UnitOfWork) error {
		current, err := a.lockPermission(ctx, uow, eventID, userID)
		if err != nil {
			return err
		}
		if current == nil {
			return storage.ErrNotFound
		}
		perm, err = a.changeRole(ctx, uow, current, role, actorID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return perm, nil
}

// Revoke deletes the user's role; storage.ErrNotFound when absent.
func (a *PermissionsAdapter) Revoke(ctx context.Context, eventID, userID int64, actorID int64) error {
	return inTx(ctx, a.db, "permission revoke", func(uow *UnitOfWork) error {
		current, err := a.lockPermission(ctx, uow, eventID, userID)
		if err != nil {
			return err
		}
		if current == nil {
			return storage.ErrNotFound
		}
		if current.Role.IsOwner() {
			return storage.ErrOwnerProtected
		}

		if _, err := uow.exec(ctx, queryDeletePermission, eventID, userID); err != nil {
			return fmt.Errorf("permission revoke: %w", err)
		}

		if err := a.changelog.Append(ctx, uow, &v1.ChangeLogEntry{
			EventID:    eventID,
			UserID:     actorID,
			ChangeType: v1.ChangePermissionChange,
			Changes: map[string]any{
				"user_id":  userID,
				"old_role": string(current.Role),
				"new_role": nil,
			},
		}); err != nil {
			return err
		}

		slog.Info("[PermissionsAdapter] Permission revoked",
			"event_id", eventID,
			"user_id", userID,
			"actor_id", actorID)
		return nil
	})
}

// List returns every role assignment on the event.
func (a *PermissionsAdapter) List(ctx context.Context, eventID int64) ([]*v1.Permission, error) {
	rows, err := a.db.QueryContext(ctx, queryListPermissions, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer rows.Close()

	var perms []*v1.Permission
	for rows.Next() {
		perm, err := scanPermissionRow(rows)
		if err != nil {
			return nil, err
		}
		perms = append(perms, perm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permissions: %w", err)
	}

	return perms, nil
}

// insertOwner writes the owner row as part of event creation.
func (a *PermissionsAdapter) insertOwner(ctx context.Context, uow *UnitOfWork, eventID, ownerID int64, at time.Time) error {
	if _, err := uow.exec(ctx, queryInsertPermission, eventID, ownerID, string(v1.RoleOwner), at); err != nil {
		return fmt.Errorf("insert owner permission: %w", err)
	}
	return nil
}

func (a *PermissionsAdapter) grant(ctx context.Context, uow *UnitOfWork, eventID, userID int64, role v1.Role, actorID int64) (*v1.Permission, error) {
	if err := checkAssignable(role); err != nil {
		return nil, err
	}

	current, err := a.lockPermission(ctx, uow, eventID, userID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return a.changeRole(ctx, uow, current, role, actorID)
	}

	now := nowFn()
	if _, err := uow.exec(ctx, queryInsertPermission, eventID, userID, string(role), now); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("permission grant: concurrent grant for user %d: %w", userID, storage.ErrVersionConflict)
		}
		return nil, fmt.Errorf("permission grant: %w", err)
	}

	if err := a.changelog.Append(ctx, uow, &v1.ChangeLogEntry{
		EventID:    eventID,
		UserID:     actorID,
		ChangeType: v1.ChangeShare,
		Changes: map[string]any{
			"user_id": userID,
			"role":    string(role),
		},
	}); err != nil {
		return nil, err
	}

	slog.Info("[PermissionsAdapter] Event shared",
		"event_id", eventID,
		"user_id", userID,
		"role", role,
		"actor_id", actorID)

	return &v1.Permission{EventID: eventID, UserID: userID, Role: role, CreatedAt: now, UpdatedAt: now}, nil
}

// changeRole overwrites a locked row. No write and no entry when the role is unchanged.
func (a *PermissionsAdapter) changeRole(ctx context.Context, uow *UnitOfWork, current *v1.Permission, role v1.Role, actorID int64) (*v1.Permission, error) {
	if current.Role.IsOwner() {
		return nil, storage.ErrOwnerProtected
	}
	if current.Role == role {
		return current, nil
	}

	now := nowFn()
	res, err := uow.exec(ctx, queryUpdatePermission, string(role), now, current.EventID, current.UserID)
	if err != nil {
		return nil, fmt.Errorf("permission update: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("permission update: rows affected: %w", err)
	} else if n == 0 {
		return nil, storage.ErrNotFound
	}

	if err := a.changelog.Append(ctx, uow, &v1.ChangeLogEntry{
		EventID:    current.EventID,
		UserID:     actorID,
		ChangeType: v1.ChangePermissionChange,
		Changes: map[string]any{
			"user_id":  current.UserID,
			"old_role": string(current.Role),
			"new_role": string(role),
		},
	}); err != nil {
		return nil, err
	}

	slog.Info("[PermissionsAdapter] Role changed",
		"event_id", current.EventID,
		"user_id", current.UserID,
		"old_role", current.Role,
		"new_role", role,
		"actor_id", actorID)

	updated := *current
	updated.Role = role
	updated.UpdatedAt = now
	return &updated, nil
}

// lockPermission returns the locked row, or nil when the user holds no role.
func (a *PermissionsAdapter) lockPermission(ctx context.Context, uow *UnitOfWork, eventID, userID int64) (*v1.Permission, error) {
	perm, err := scanPermissionRow(uow.queryRow(ctx, querySelectPermissionForUpdate, eventID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return perm, nil
}

// checkAssignable rejects roles that cannot be handed out by sharing.
// Ownership transfer is not supported.
func checkAssignable(role v1.Role) error {
	if role == v1.RoleOwner {
		return storage.ErrOwnerProtected
	}
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", role)
	}
	return nil
}

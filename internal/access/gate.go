package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	httperr "github.com/aevon-lab/chronicle/internal/core/errors"
	"github.com/aevon-lab/chronicle/internal/core/storage"
	"golang.org/x/sync/singleflight"
)

// ErrPermissionDenied is returned when the caller's role is insufficient.
var ErrPermissionDenied = httperr.ErrPermissionDenied

// Gate answers "may this user do X on this event" from the permission store.
type Gate struct {
	store storage.PermissionStore
	cache RoleCache
	group singleflight.Group
}

// NewGate builds a Gate. cache may be nil, in which case every lookup hits the store.
func NewGate(store storage.PermissionStore, cache RoleCache) *Gate {
	if store == nil {
		panic("access: permission store must not be nil")
	}
	return &Gate{store: store, cache: cache}
}

// RoleOf returns the user's role on the event, or storage.ErrNotFound when
// the user holds none. Concurrent lookups for the same pair share one query.
func (g *Gate) RoleOf(ctx context.Context, eventID, userID int64) (v1.Role, error) {
	if g.cache != nil {
		role, ok, err := g.cache.Get(ctx, eventID, userID)
		if err != nil {
			slog.Warn("[Gate] Role cache read failed, falling back to store",
				"event_id", eventID, "user_id", userID, "error", err)
		} else if ok {
			return role, nil
		}
	}

	v, err, _ := g.group.Do(roleKey(eventID, userID), func() (interface{}, error) {
		// The generation must be read before the store so a permission
		// change committed during the query invalidates the write below.
		var gen Generation
		cacheable := false
		if g.cache != nil {
			var err error
			if gen, err = g.cache.Generation(ctx, eventID, userID); err != nil {
				slog.Warn("[Gate] Role generation read failed, result will not be cached",
					"event_id", eventID, "user_id", userID, "error", err)
			} else {
				cacheable = true
			}
		}

		role, err := g.store.RoleOf(ctx, eventID, userID)
		if err != nil {
			return v1.Role(""), err
		}

		if cacheable {
			stored, err := g.cache.SetIfCurrent(ctx, eventID, userID, role, gen)
			switch {
			case err != nil:
				slog.Warn("[Gate] Role cache write failed",
					"event_id", eventID, "user_id", userID, "error", err)
			case !stored:
				slog.Debug("[Gate] Permissions changed during lookup, role not cached",
					"event_id", eventID, "user_id", userID)
			}
		}
		return role, nil
	})
	if err != nil {
		return "", err
	}
	return v.(v1.Role), nil
}

func (g *Gate) CanView(ctx context.Context, eventID, userID int64) (bool, error) {
	return g.check(ctx, eventID, userID, v1.Role.CanView)
}

func (g *Gate) CanEdit(ctx context.Context, eventID, userID int64) (bool, error) {
	return g.check(ctx, eventID, userID, v1.Role.CanEdit)
}

func (g *Gate) IsOwner(ctx context.Context, eventID, userID int64) (bool, error) {
	return g.check(ctx, eventID, userID, v1.Role.IsOwner)
}

// check treats "no role" as false rather than an error.
func (g *Gate) check(ctx context.Context, eventID, userID int64, pred func(v1.Role) bool) (bool, error) {
	role, err := g.RoleOf(ctx, eventID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return pred(role), nil
}

// Authorize returns the caller's role when it satisfies required.
// A caller with no role at all gets storage.ErrNotFound so event existence
// is not disclosed; an insufficient role gets ErrPermissionDenied.
func (g *Gate) Authorize(ctx context.Context, eventID, userID int64, required v1.Role) (v1.Role, error) {
	role, err := g.RoleOf(ctx, eventID, userID)
	if err != nil {
		return "", err
	}
	if !role.Satisfies(required) {
		return role, fmt.Errorf("%w: %s role required, caller is %s", ErrPermissionDenied, required, role)
	}
	return role, nil
}

// Forget drops the cached role of one user and invalidates lookups still in
// flight. Call it after any permission mutation has committed.
func (g *Gate) Forget(ctx context.Context, eventID, userID int64) {
	g.group.Forget(roleKey(eventID, userID))
	if g.cache == nil {
		return
	}
	if err := g.cache.Delete(ctx, eventID, userID); err != nil {
		slog.Warn("[Gate] Role cache delete failed", "event_id", eventID, "user_id", userID, "error", err)
	}
}

// ForgetEvent drops every cached role on the event. Call it after a delete.
func (g *Gate) ForgetEvent(ctx context.Context, eventID int64) {
	if g.cache == nil {
		return
	}
	if err := g.cache.DeleteEvent(ctx, eventID); err != nil {
		slog.Warn("[Gate] Role cache purge failed", "event_id", eventID, "error", err)
	}
}

func roleKey(eventID, userID int64) string {
	return fmt.Sprintf("role:%d:%d", eventID, userID)
}

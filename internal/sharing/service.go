package sharing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aevon-lab/chronicle/internal/access"
	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	httperr "github.com/aevon-lab/chronicle/internal/core/errors"
	"github.com/aevon-lab/chronicle/internal/core/storage"
)

// Service manages who may see and edit an event. Callers must have
// confirmed the actor is the event owner before any mutation.
type Service struct {
	permissions storage.PermissionStore
	gate        *access.Gate
	maxGrants   int
}

func NewService(permissions storage.PermissionStore, gate *access.Gate, maxGrants int) *Service {
	if permissions == nil {
		panic("sharing: permission store must not be nil")
	}
	if gate == nil {
		panic("sharing: gate must not be nil")
	}
	if maxGrants <= 0 {
		maxGrants = 100
	}
	return &Service{permissions: permissions, gate: gate, maxGrants: maxGrants}
}

// Share grants or updates every requested role in one transaction. The
// actor's own id is skipped; an owner cannot re-share to themselves.
func (s *Service) Share(ctx context.Context, eventID, actorID int64, grants []storage.Grant) ([]*v1.Permission, error) {
	if len(grants) == 0 {
		return nil, fmt.Errorf("%w: users must not be empty", httperr.ErrInvalidRequest)
	}
	if len(grants) > s.maxGrants {
		return nil, fmt.Errorf("%w: at most %d users per request", httperr.ErrInvalidRequest, s.maxGrants)
	}

	seen := make(map[int64]bool, len(grants))
	accepted := make([]storage.Grant, 0, len(grants))
	for _, g := range grants {
		if err := checkGrant(g.UserID, g.Role); err != nil {
			return nil, err
		}
		if seen[g.UserID] {
			return nil, fmt.Errorf("%w: user %d listed more than once", httperr.ErrInvalidRequest, g.UserID)
		}
		seen[g.UserID] = true
		if g.UserID == actorID {
			continue
		}
		accepted = append(accepted, g)
	}
	if len(accepted) == 0 {
		return []*v1.Permission{}, nil
	}

	perms, err := s.permissions.GrantMany(ctx, eventID, accepted, actorID)
	if err != nil {
		return nil, err
	}
	for _, g := range accepted {
		s.gate.Forget(ctx, eventID, g.UserID)
	}

	slog.Info("[Sharing] Event shared",
		"event_id", eventID,
		"actor_id", actorID,
		"users", len(accepted))
	return perms, nil
}

func (s *Service) UpdatePermission(ctx context.Context, eventID, actorID, userID int64, role v1.Role) (*v1.Permission, error) {
	if err := checkGrant(userID, role); err != nil {
		return nil, err
	}

	perm, err := s.permissions.UpdateRole(ctx, eventID, userID, role, actorID)
	if err != nil {
		return nil, err
	}
	s.gate.Forget(ctx, eventID, userID)

	slog.Info("[Sharing] Permission updated",
		"event_id", eventID,
		"actor_id", actorID,
		"user_id", userID,
		"role", role)
	return perm, nil
}

func (s *Service) Revoke(ctx context.Context, eventID, actorID, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user_id must be a positive integer", httperr.ErrInvalidRequest)
	}

	if err := s.permissions.Revoke(ctx, eventID, userID, actorID); err != nil {
		return err
	}
	s.gate.Forget(ctx, eventID, userID)

	slog.Info("[Sharing] Permission revoked",
		"event_id", eventID,
		"actor_id", actorID,
		"user_id", userID)
	return nil
}

func (s *Service) List(ctx context.Context, eventID int64) ([]*v1.Permission, error) {
	perms, err := s.permissions.List(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if perms == nil {
		perms = []*v1.Permission{}
	}
	return perms, nil
}

// checkGrant rejects unknown roles and ownership transfer.
func checkGrant(userID int64, role v1.Role) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user_id must be a positive integer", httperr.ErrInvalidRequest)
	}
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", httperr.ErrInvalidRequest, role)
	}
	if role.IsOwner() {
		return fmt.Errorf("%w: the owner role cannot be granted", storage.ErrOwnerProtected)
	}
	return nil
}

package v1

import "time"

// Role is a user's access level on one event.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// CanView is satisfied by any assigned role.
func (r Role) CanView() bool { return r.Valid() }

// CanEdit is satisfied by owners and editors.
func (r Role) CanEdit() bool { return r == RoleOwner || r == RoleEditor }

// IsOwner is satisfied by the owner only.
func (r Role) IsOwner() bool { return r == RoleOwner }

// Satisfies reports whether r grants at least the access of required.
func (r Role) Satisfies(required Role) bool {
	switch required {
	case RoleOwner:
		return r.IsOwner()
	case RoleEditor:
		return r.CanEdit()
	case RoleViewer:
		return r.CanView()
	}
	return false
}

// Permission is one (event, user) role assignment.
type Permission struct {
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package v1

import "time"

// ChangeType classifies a changelog entry. The literal values are persisted.
type ChangeType string

const (
	ChangeCreate           ChangeType = "create"
	ChangeUpdate           ChangeType = "update"
	ChangeDelete           ChangeType = "delete"
	ChangeShare            ChangeType = "share"
	ChangePermissionChange ChangeType = "permission_change"
	ChangeRollback         ChangeType = "rollback"
)

// Valid reports whether t is a known change type.
func (t ChangeType) Valid() bool {
	switch t {
	case ChangeCreate, ChangeUpdate, ChangeDelete, ChangeShare, ChangePermissionChange, ChangeRollback:
		return true
	}
	return false
}

// ChangeLogEntry is one immutable audit record.
type ChangeLogEntry struct {
	ID          int64          `json:"id"`
	EventID     int64          `json:"event_id"`
	UserID      int64          `json:"user_id"`
	Timestamp   time.Time      `json:"timestamp"`
	ChangeType  ChangeType     `json:"change_type"`
	FromVersion *int           `json:"from_version,omitempty"`
	ToVersion   *int           `json:"to_version,omitempty"`
	Changes     map[string]any `json:"changes,omitempty"`
	Comment     *string        `json:"comment,omitempty"`
}

// FieldChange is one field of a version-to-version diff.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

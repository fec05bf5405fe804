package postgres

// SQL for the calendar tables. Event rows are the version chain head;
// event_versions and changelog are append-only.

const (
	eventColumns = `
			id, title, description, start_time, end_time, location,
			is_recurring, recurrence_pattern, owner_id, current_version,
			created_at, updated_at`

	versionColumns = `
			event_id, version_number, title, description, start_time, end_time,
			location, is_recurring, recurrence_pattern, created_by, created_at`

	queryInsertEvent = `
		INSERT INTO events (
			title, description, start_time, end_time, location,
			is_recurring, recurrence_pattern, owner_id, current_version,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, $9, $9)
		RETURNING id
	`

	queryInsertVersion = `
		INSERT INTO event_versions (` + versionColumns + `
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	querySelectEvent = `
		SELECT` + eventColumns + `
		FROM events
		WHERE id = $1 AND deleted_at IS NULL
	`

	// querySelectEventForUpdate serializes writers on one event for the
	// remainder of the transaction.
	querySelectEventForUpdate = `
		SELECT` + eventColumns + `
		FROM events
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`

	// queryAdvanceEvent is a compare-and-swap on current_version: zero rows
	// affected means another writer moved the head first.
	queryAdvanceEvent = `
		UPDATE events
		SET title = $1, description = $2, start_time = $3, end_time = $4,
			location = $5, is_recurring = $6, recurrence_pattern = $7,
			current_version = $8, updated_at = $9
		WHERE id = $10 AND current_version = $11 AND deleted_at IS NULL
	`

	querySoftDeleteEvent = `
		UPDATE events
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`

	querySelectVersion = `
		SELECT` + versionColumns + `
		FROM event_versions
		WHERE event_id = $1 AND version_number = $2
	`

	queryListVersions = `
		SELECT` + versionColumns + `
		FROM event_versions
		WHERE event_id = $1
		ORDER BY version_number ASC
	`

	// userEventsScope is shared by the page and count queries so both see the
	// same filter. Empty strings and NULL bounds disable a filter.
	userEventsScope = `
		FROM events e
		JOIN permissions p ON p.event_id = e.id AND p.user_id = $1
		WHERE e.deleted_at IS NULL
		  AND ($2::timestamptz IS NULL OR e.end_time >= $2)
		  AND ($3::timestamptz IS NULL OR e.start_time <= $3)
		  AND ($4 = '' OR e.title ILIKE '%' || $4 || '%')
		  AND ($5 = '' OR e.location ILIKE '%' || $5 || '%')
		  AND ($6 OR NOT e.is_recurring)
	`

	queryListUserEvents = `
		SELECT
			e.id, e.title, e.description, e.start_time, e.end_time, e.location,
			e.is_recurring, e.recurrence_pattern, e.owner_id, e.current_version,
			e.created_at, e.updated_at
		` + userEventsScope + `
		ORDER BY e.start_time ASC, e.id ASC
		LIMIT $7 OFFSET $8
	`

	queryCountUserEvents = `SELECT COUNT(*)` + userEventsScope

	// queryFindConflicts applies the inclusive overlap predicate
	// NOT (end < $2 OR start > $3) over the user's visible events.
	queryFindConflicts = `
		SELECT
			e.id, e.title, e.description, e.start_time, e.end_time, e.location,
			e.is_recurring, e.recurrence_pattern, e.owner_id, e.current_version,
			e.created_at, e.updated_at
		FROM events e
		JOIN permissions p ON p.event_id = e.id AND p.user_id = $1
		WHERE e.deleted_at IS NULL
		  AND NOT (e.end_time < $2 OR e.start_time > $3)
		  AND e.id <> $4
		ORDER BY e.start_time ASC, e.id ASC
	`

	querySelectRole = `
		SELECT p.role
		FROM permissions p
		JOIN events e ON e.id = p.event_id AND e.deleted_at IS NULL
		WHERE p.event_id = $1 AND p.user_id = $2
	`

	querySelectPermissionForUpdate = `
		SELECT event_id, user_id, role, created_at, updated_at
		FROM permissions
		WHERE event_id = $1 AND user_id = $2
		FOR UPDATE
	`

	queryInsertPermission = `
		INSERT INTO permissions (event_id, user_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
	`

	queryUpdatePermission = `
		UPDATE permissions
		SET role = $1, updated_at = $2
		WHERE event_id = $3 AND user_id = $4
	`

	queryDeletePermission = `
		DELETE FROM permissions
		WHERE event_id = $1 AND user_id = $2
	`

	queryListPermissions = `
		SELECT event_id, user_id, role, created_at, updated_at
		FROM permissions
		WHERE event_id = $1
		ORDER BY created_at ASC, user_id ASC
	`

	queryInsertChangelog = `
		INSERT INTO changelog (
			event_id, user_id, timestamp, change_type,
			from_version, to_version, changes, comment
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	queryListChangelog = `
		SELECT id, event_id, user_id, timestamp, change_type,
			from_version, to_version, changes, comment
		FROM changelog
		WHERE event_id = $1
		ORDER BY timestamp DESC, id DESC
	`
)

package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

// useFixedNow pins nowFn for the duration of the test.
func useFixedNow(t *testing.T) {
	t.Helper()
	prev := nowFn
	nowFn = func() time.Time { return fixedNow }
	t.Cleanup(func() { nowFn = prev })
}

type testAdapters struct {
	db          *sql.DB
	mock        sqlmock.Sqlmock
	events      *EventsAdapter
	permissions *PermissionsAdapter
	changelog   *ChangelogAdapter
}

func newTestAdapters(t *testing.T) *testAdapters {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	changelog := NewChangelogAdapter(db)
	permissions := NewPermissionsAdapter(db, changelog)
	return &testAdapters{
		db:          db,
		mock:        mock,
		events:      NewEventsAdapter(db, permissions, changelog),
		permissions: permissions,
		changelog:   changelog,
	}
}

func eventRowColumns() []string {
	return []string{
		"id", "title", "description", "start_time", "end_time", "location",
		"is_recurring", "recurrence_pattern", "owner_id", "current_version",
		"created_at", "updated_at",
	}
}

func versionRowColumns() []string {
	return []string{
		"event_id", "version_number", "title", "description", "start_time", "end_time",
		"location", "is_recurring", "recurrence_pattern", "created_by", "created_at",
	}
}

func patternBytes(t *testing.T, p *v1.RecurrencePattern) driver.Value {
	t.Helper()
	if p == nil {
		return nil
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return b
}

func eventRows(t *testing.T, events ...*v1.Event) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows(eventRowColumns())
	for _, e := range events {
		rows.AddRow(
			e.ID, e.Title, e.Description, e.StartTime, e.EndTime, e.Location,
			e.IsRecurring, patternBytes(t, e.RecurrencePattern), e.OwnerID, e.CurrentVersion,
			e.CreatedAt, e.UpdatedAt,
		)
	}
	return rows
}

func versionRows(t *testing.T, versions ...*v1.EventVersion) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows(versionRowColumns())
	for _, v := range versions {
		rows.AddRow(
			v.EventID, v.VersionNumber, v.Title, v.Description, v.StartTime, v.EndTime,
			v.Location, v.IsRecurring, patternBytes(t, v.RecurrencePattern), v.CreatedBy, v.CreatedAt,
		)
	}
	return rows
}

func idRow(id int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"}).AddRow(id)
}

// jsonArg matches a JSON-encoded argument structurally.
type jsonArg struct {
	want string
}

func (a jsonArg) Match(v driver.Value) bool {
	b, ok := v.([]byte)
	if !ok {
		return false
	}
	var got, want interface{}
	if json.Unmarshal(b, &got) != nil || json.Unmarshal([]byte(a.want), &want) != nil {
		return false
	}
	return reflect.DeepEqual(got, want)
}

func sampleEvent() *v1.Event {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &v1.Event{
		ID: 42,
		EventFields: v1.EventFields{
			Title:       "Standup",
			Description: "Daily sync",
			StartTime:   start,
			EndTime:     start.Add(30 * time.Minute),
			Location:    "Room 1",
		},
		OwnerID:        7,
		CurrentVersion: 1,
		CreatedAt:      fixedNow.Add(-time.Hour),
		UpdatedAt:      fixedNow.Add(-time.Hour),
	}
}

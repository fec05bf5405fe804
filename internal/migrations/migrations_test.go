package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_Paired(t *testing.T) {
	entries, err := fs.ReadDir(MigrationFiles, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	require.Equal(t, ups, downs)
}

func TestMigrationFiles_CalendarSchema(t *testing.T) {
	b, err := fs.ReadFile(MigrationFiles, "000001_create_calendar_tables.up.sql")
	require.NoError(t, err)
	sql := string(b)

	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS events",
		"CREATE TABLE IF NOT EXISTS event_versions",
		"CREATE TABLE IF NOT EXISTS permissions",
		"CREATE TABLE IF NOT EXISTS changelog",
		"UNIQUE (event_id, version_number)",
		"WHERE role = 'owner'",
		"event_versions_append_only",
		"changelog_append_only",
	} {
		require.Contains(t, sql, want)
	}
}

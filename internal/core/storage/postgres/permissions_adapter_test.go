package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/aevon-lab/chronicle/internal/core/storage"
	"github.com/stretchr/testify/require"
)

func permissionRows(rows ...[]interface{}) *sqlmock.Rows {
	out := sqlmock.NewRows([]string{"event_id", "user_id", "role", "created_at", "updated_at"})
	for _, r := range rows {
		out.AddRow(r[0], r[1], r[2], fixedNow, fixedNow)
	}
	return out
}

func permissionRow(eventID, userID int64, role v1.Role) []interface{} {
	return []interface{}{eventID, userID, string(role)}
}

func TestPermissionsAdapter_RoleOf(t *testing.T) {
	a := newTestAdapters(t)

	a.mock.ExpectQuery(regexp.QuoteMeta(querySelectRole)).
		WithArgs(int64(42), int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("editor"))
	a.mock.ExpectQuery(regexp.QuoteMeta(querySelectRole)).
		WithArgs(int64(42), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}))

	role, err := a.permissions.RoleOf(context.Background(), 42, 8)
	require.NoError(t, err)
	require.Equal(t, v1.RoleEditor, role)

	_, err = a.permissions.RoleOf(context.Background(), 42, 9)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, a.mock.ExpectationsWereMet())
}

func TestPermissionsAdapter_GrantOrUpdate(t *testing.T) {
	useFixedNow(t)

	t.Run("new grant records share", func(t *testing.T) {
		a := newTestAdapters(t)

		a.mock.ExpectBegin()
		a.mock.ExpectQuery(regexp.QuoteMeta(querySelectPermissionForUpdate)).
			WithArgs(int64(42), int64(8)).
			WillReturnRows(permissionRows())
		a.mock.ExpectExec(regexp.QuoteMeta(queryInsertPermission)).
			WithArgs(int64(42), int64(8), "editor", fixedNow).
			WillReturnResult(sqlmock.NewResult(1, 1))
		a.mock.ExpectQuery(regexp.QuoteMeta(queryInsertChangelog)).
			WithArgs(int64(42), int64(7), fixedNow, "share", nil, nil,
				jsonArg{`{"user_id":8,"role":"editor"}`}, nil).
			WillReturnRows(idRow(3))
		a.mock.ExpectCommit()

		perm, err := a.permissions.GrantOrUpdate(context.Background(), 42, 8, v1.RoleEditor, 7)
		require.NoError(t, err)
		require.Equal(t, v1.RoleEditor, perm.Role)
		require.NoError(t, a.mock.ExpectationsWereMet())
	})

	t.Run("existing grant records permission change", func(t *testing.T) {
		a := newTestAdapters(t)

		a.mock.ExpectBegin()
		a.mock.ExpectQuery(regexp.QuoteMeta(querySelectPermissionForUpdate)).
			WithArgs(int64(42), int64(8)).
			WillReturnRows(permissionRows(permissionRow(42, 8, v1.RoleViewer)))
		a.mock.ExpectExec(regexp.QuoteMeta(queryUpdatePermission)).
			WithArgs("editor", fixedNow, int64(42), int64(8)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		a.mock.ExpectQuery(regexp.QuoteMeta(queryInsertChangelog)).
			WithArgs(int64(42), int64(7), fixedNow, "permission_change", nil, nil,
				jsonArg{`{"user_id":8,"old_role":"viewer","new_role":"editor"}`}, nil).
			WillReturnRows(idRow(4))
		a.mock.ExpectCommit()

		perm, err := a.permissions.GrantOrUpdate(context.Background(), 42, 8, v1.RoleEditor, 7)
		require.NoError(t, err)
		require.Equal(t, v1.RoleEditor, perm.Role)
		require.NoError(t, a.mock.ExpectationsWereMet())
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		a := newTestAdapters(t)

		a.mock.ExpectBegin()
		a.mock.ExpectQuery(regexp.QuoteMeta(querySelectPermissionForUpdate)).
			WillReturnRows(permissionRows(permissionRow(42, 8, v1.RoleEditor)))
		a.mock.ExpectCommit()

		perm, err := a.permissions.GrantOrUpdate(context.Background(), 42, 8, v1.RoleEditor, 7)
		require.NoError(t, err)
		require.Equal(t, v1.RoleEditor, perm.Role)
		require.NoError(t, a.mock.ExpectationsWereMet())
	})

	t.Run("owner row is protected", func(t *testing.T) {
		a := newTestAdapters(t)

		a.mock.ExpectBegin()
		a.mock.ExpectQuery(regexp.QuoteMeta(querySelectPermissionForUpdate)).
			WillReturnRows(permissionRows(permissionRow(42, 7, v1.RoleOwner)))
		a.mock.ExpectRollback()

		_, err := a.permissions.GrantOrUpdate(context.Background(), 42, 7, v1.RoleViewer, 7)
		require.ErrorIs(t, err, storage.ErrOwnerProtected)
		require.NoError(t, a.mock.ExpectationsWereMet())
	})

	t.Run("owner role cannot be granted", func(t *testing.T) {
		a := newTestAdapters(t)

		a.mock.ExpectBegin()
		a.mock.ExpectRollback()

		_, err := a.permissions.GrantOrUpdate(context.Background(), 42, 8, v1.RoleOwner, 7)
		require.ErrorIs(t, err, storage.ErrOwnerProtected)
		require.NoError(t, a.mock.ExpectationsWereMet())
	})
}

func TestPermissionsAdapter_GrantMany(t *testing.T) {
	useFixedNow(t)
	a := newTestAdapters(t)

	a.mock.ExpectBegin()
	a.mock.ExpectQuery(regexp.QuoteMeta(querySelectPermissionForUpdate)).
		WithArgs(int64(42), int64(8)).
		WillReturnRows(permissionRows())
	a.mock.ExpectExec(regexp.QuoteMeta(queryInsertPermission)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	a.mock.ExpectQuery(regexp.QuoteMeta(queryInsertChangelog)).
		WillReturnRows(idRow(3))
	a.mock.ExpectQuery(regexp.QuoteMeta(querySelectPermissionForUpdate)).
		WithArgs(int64(42), int64(7)).
		WillReturnRows(permissionRows(permissionRow(42, 7, v1.RoleOwner)))
	a.mock.ExpectRollback()

	_, err := a.permissions.GrantMany(context.Background(), 42, []storage.Grant{
		{UserID: 8, Role: v1.RoleViewer},
		{UserID: 7, Role: v1.RoleEditor},
	}, 7)
	require.ErrorIs(t, err, storage.ErrOwnerProtected)
	require.ErrorContains(t, err, "user 7")
	require.NoError(t, a.mock.ExpectationsWereMet())
}

func TestPermissionsAdapter_UpdateRole(t *testing.T) {
	useFixedNow(t)

	t.Run("missing row", func(t *testing.T) {
		a := newTestAdapters(t)

		a.mock.ExpectBegin()
		a.mock.ExpectQuery(regexp.QuoteMeta(querySelectPermissionForUpdate)).
			WithArgs(int64(42), int64(8)).
			WillReturnRows(permissionRows())
		a.mock.ExpectRollback()

		_, err := a.permissions.UpdateRole(context.Background(), 42, 8, v1.RoleViewer, 7)
		require.ErrorIs(t, err, storage.ErrNotFound)
		require.NoError(t, a.mock.ExpectationsWereMet())
	})

	t.Run("owner role rejected without a transaction", func(t *testing.T) {
		a := newTestAdapters(t)

		_, err := a.permissions.UpdateRole(context.Background(), 42, 8, v1.RoleOwner, 7)
		require.ErrorIs(t, err, storage.ErrOwnerProtected)
		require.NoError(t, a.mock.ExpectationsWereMet())
	})
}

func TestPermissionsAdapter_Revoke(t *testing.T) {
	useFixedNow(t)

	t.Run("records null new role", func(t *testing.T) {
		a := newTestAdapters(t)

		a.mock.ExpectBegin()
		a.mock.ExpectQuery(regexp.QuoteMeta(querySelectPermissionForUpdate)).
			WithArgs(int64(42), int64(8)).
			WillReturnRows(permissionRows(permissionRow(42, 8, v1.RoleViewer)))
		a.mock.ExpectExec(regexp.QuoteMeta(queryDeletePermission)).
			WithArgs(int64(42), int64(8)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		a.mock.ExpectQuery(regexp.QuoteMeta(queryInsertChangelog)).
			WithArgs(int64(42), int64(7), fixedNow, "permission_change", nil, nil,
				jsonArg{`{"user_id":8,"old_role":"viewer","new_role":null}`}, nil).
			WillReturnRows(idRow(5))
		a.mock.ExpectCommit()

		require.NoError(t, a.permissions.Revoke(context.Background(), 42, 8, 7))
		require.NoError(t, a.mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		a := newTestAdapters(t)

		a.mock.ExpectBegin()
		a.mock.ExpectQuery(regexp.QuoteMeta(querySelectPermissionForUpdate)).
			WillReturnRows(permissionRows())
		a.mock.ExpectRollback()

		require.ErrorIs(t, a.permissions.Revoke(context.Background(), 42, 8, 7), storage.ErrNotFound)
		require.NoError(t, a.mock.ExpectationsWereMet())
	})

	t.Run("owner is protected", func(t *testing.T) {
		a := newTestAdapters(t)

		a.mock.ExpectBegin()
		a.mock.ExpectQuery(regexp.QuoteMeta(querySelectPermissionForUpdate)).
			WillReturnRows(permissionRows(permissionRow(42, 7, v1.RoleOwner)))
		a.mock.ExpectRollback()

		require.ErrorIs(t, a.permissions.Revoke(context.Background(), 42, 7, 7), storage.ErrOwnerProtected)
		require.NoError(t, a.mock.ExpectationsWereMet())
	})
}

func TestPermissionsAdapter_List(t *testing.T) {
	a := newTestAdapters(t)

	a.mock.ExpectQuery(regexp.QuoteMeta(queryListPermissions)).
		WithArgs(int64(42)).
		WillReturnRows(permissionRows(
			permissionRow(42, 7, v1.RoleOwner),
			permissionRow(42, 8, v1.RoleViewer),
		)).
		RowsWillBeClosed()

	perms, err := a.permissions.List(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, perms, 2)
	require.Equal(t, v1.RoleOwner, perms[0].Role)
	require.Equal(t, int64(8), perms[1].UserID)
	require.NoError(t, a.mock.ExpectationsWereMet())
}

package access

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/aevon-lab/chronicle/internal/core/storage"
	storagemocks "github.com/aevon-lab/chronicle/internal/mocks/storage"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGate_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		role     v1.Role
		err      error
		wantView bool
		wantEdit bool
		wantOwn  bool
	}{
		{name: "owner", role: v1.RoleOwner, wantView: true, wantEdit: true, wantOwn: true},
		{name: "editor", role: v1.RoleEditor, wantView: true, wantEdit: true},
		{name: "viewer", role: v1.RoleViewer, wantView: true},
		{name: "no role", err: storage.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storagemocks.NewPermissionStore(t)
			store.EXPECT().RoleOf(mock.Anything, int64(1), int64(2)).Return(tt.role, tt.err)

			gate := NewGate(store, nil)
			ctx := context.Background()

			canView, err := gate.CanView(ctx, 1, 2)
			require.NoError(t, err)
			canEdit, err := gate.CanEdit(ctx, 1, 2)
			require.NoError(t, err)
			isOwner, err := gate.IsOwner(ctx, 1, 2)
			require.NoError(t, err)

			require.Equal(t, tt.wantView, canView)
			require.Equal(t, tt.wantEdit, canEdit)
			require.Equal(t, tt.wantOwn, isOwner)
		})
	}
}

func TestGate_PredicatePropagatesStoreFailure(t *testing.T) {
	store := storagemocks.NewPermissionStore(t)
	store.EXPECT().RoleOf(mock.Anything, int64(1), int64(2)).Return(v1.Role(""), errors.New("db down")).Once()

	_, err := NewGate(store, nil).CanView(context.Background(), 1, 2)
	require.EqualError(t, err, "db down")
}

func TestGate_Authorize(t *testing.T) {
	store := storagemocks.NewPermissionStore(t)
	store.EXPECT().RoleOf(mock.Anything, int64(1), int64(5)).Return(v1.RoleViewer, nil)
	store.EXPECT().RoleOf(mock.Anything, int64(1), int64(6)).Return(v1.Role(""), storage.ErrNotFound)
	gate := NewGate(store, nil)

	role, err := gate.Authorize(context.Background(), 1, 5, v1.RoleViewer)
	require.NoError(t, err)
	require.Equal(t, v1.RoleViewer, role)

	_, err = gate.Authorize(context.Background(), 1, 5, v1.RoleEditor)
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, err = gate.Authorize(context.Background(), 1, 6, v1.RoleViewer)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGate_RoleOfDeduplicatesConcurrentLookups(t *testing.T) {
	store := storagemocks.NewPermissionStore(t)
	release := make(chan struct{})
	store.EXPECT().RoleOf(mock.Anything, int64(1), int64(2)).
		Run(func(_ context.Context, _, _ int64) { <-release }).
		Return(v1.RoleEditor, nil).
		Once()

	gate := NewGate(store, nil)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]v1.Role, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			role, err := gate.RoleOf(context.Background(), 1, 2)
			if err == nil {
				results[i] = role
			}
		}(i)
	}

	// Give every goroutine time to join the in-flight lookup.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, role := range results {
		require.Equal(t, v1.RoleEditor, role)
	}
}

func TestGate_RoleOfUsesCache(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	cache := NewRedisRoleCache(client, time.Minute)
	store := storagemocks.NewPermissionStore(t)
	gate := NewGate(store, cache)

	// Miss: read through to the store and populate the cache.
	redisMock.ExpectGet("role:1:2").RedisNil()
	redisMock.ExpectMGet("rolegen:1", "rolegen:1:2").SetVal([]interface{}{nil, "3"})
	store.EXPECT().RoleOf(mock.Anything, int64(1), int64(2)).Return(v1.RoleEditor, nil).Once()
	redisMock.ExpectEvalSha(setIfCurrent.Hash(), []string{"rolegen:1", "rolegen:1:2", "role:1:2"},
		int64(0), int64(3), "editor", int64(60000)).SetVal(int64(1))

	role, err := gate.RoleOf(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, v1.RoleEditor, role)

	// Hit: the store is not consulted again.
	redisMock.ExpectGet("role:1:2").SetVal("editor")
	role, err = gate.RoleOf(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, v1.RoleEditor, role)

	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGate_RoleOfFallsBackWhenCacheFails(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	store := storagemocks.NewPermissionStore(t)
	gate := NewGate(store, NewRedisRoleCache(client, time.Minute))

	redisMock.ExpectGet("role:1:2").SetErr(errors.New("connection refused"))
	redisMock.ExpectMGet("rolegen:1", "rolegen:1:2").SetErr(errors.New("connection refused"))
	store.EXPECT().RoleOf(mock.Anything, int64(1), int64(2)).Return(v1.RoleViewer, nil).Once()

	role, err := gate.RoleOf(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, v1.RoleViewer, role)
	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGate_NoRoleIsNotCached(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	store := storagemocks.NewPermissionStore(t)
	gate := NewGate(store, NewRedisRoleCache(client, time.Minute))

	redisMock.ExpectGet("role:1:9").RedisNil()
	redisMock.ExpectMGet("rolegen:1", "rolegen:1:9").SetVal([]interface{}{nil, nil})
	store.EXPECT().RoleOf(mock.Anything, int64(1), int64(9)).Return(v1.Role(""), storage.ErrNotFound).Once()

	_, err := gate.RoleOf(context.Background(), 1, 9)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, redisMock.ExpectationsWereMet())
}

// memoryRoleCache implements RoleCache with the same generation rules as
// RedisRoleCache so interleavings can be driven deterministically.
type memoryRoleCache struct {
	mu       sync.Mutex
	roles    map[[2]int64]v1.Role
	pairGen  map[[2]int64]int64
	eventGen map[int64]int64
}

func newMemoryRoleCache() *memoryRoleCache {
	return &memoryRoleCache{
		roles:    make(map[[2]int64]v1.Role),
		pairGen:  make(map[[2]int64]int64),
		eventGen: make(map[int64]int64),
	}
}

func (m *memoryRoleCache) Get(_ context.Context, eventID, userID int64) (v1.Role, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	role, ok := m.roles[[2]int64{eventID, userID}]
	return role, ok, nil
}

func (m *memoryRoleCache) Generation(_ context.Context, eventID, userID int64) (Generation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Generation{Event: m.eventGen[eventID], Pair: m.pairGen[[2]int64{eventID, userID}]}, nil
}

func (m *memoryRoleCache) SetIfCurrent(_ context.Context, eventID, userID int64, role v1.Role, gen Generation) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]int64{eventID, userID}
	if m.eventGen[eventID] != gen.Event || m.pairGen[key] != gen.Pair {
		return false, nil
	}
	m.roles[key] = role
	return true, nil
}

func (m *memoryRoleCache) Delete(_ context.Context, eventID, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]int64{eventID, userID}
	m.pairGen[key]++
	delete(m.roles, key)
	return nil
}

func (m *memoryRoleCache) DeleteEvent(_ context.Context, eventID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventGen[eventID]++
	for key := range m.roles {
		if key[0] == eventID {
			delete(m.roles, key)
		}
	}
	return nil
}

func TestGate_RevokeDuringLookupIsNotCached(t *testing.T) {
	tests := []struct {
		name   string
		forget func(g *Gate)
	}{
		{"revoke one user", func(g *Gate) { g.Forget(context.Background(), 1, 2) }},
		{"delete the event", func(g *Gate) { g.ForgetEvent(context.Background(), 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storagemocks.NewPermissionStore(t)
			cache := newMemoryRoleCache()
			gate := NewGate(store, cache)

			entered := make(chan struct{})
			release := make(chan struct{})
			// The first read observes the pre-revoke role and is held open
			// while the revoke commits.
			store.EXPECT().RoleOf(mock.Anything, int64(1), int64(2)).
				Run(func(_ context.Context, _, _ int64) {
					close(entered)
					<-release
				}).
				Return(v1.RoleEditor, nil).
				Once()
			store.EXPECT().RoleOf(mock.Anything, int64(1), int64(2)).
				Return(v1.Role(""), storage.ErrNotFound).
				Once()

			done := make(chan struct{})
			go func() {
				defer close(done)
				_, _ = gate.RoleOf(context.Background(), 1, 2)
			}()

			<-entered
			tt.forget(gate)
			close(release)
			<-done

			_, ok, _ := cache.Get(context.Background(), 1, 2)
			require.False(t, ok, "stale role must not be cached")

			_, err := gate.RoleOf(context.Background(), 1, 2)
			require.ErrorIs(t, err, storage.ErrNotFound)

			_, err = gate.Authorize(context.Background(), 1, 2, v1.RoleViewer)
			require.ErrorIs(t, err, storage.ErrNotFound)
		})
	}
}

func TestGate_Forget(t *testing.T) {
	client, redisMock := redismock.NewClientMock()
	gate := NewGate(storagemocks.NewPermissionStore(t), NewRedisRoleCache(client, time.Minute))

	redisMock.ExpectIncr("rolegen:3:4").SetVal(1)
	redisMock.ExpectDel("role:3:4").SetVal(1)
	gate.Forget(context.Background(), 3, 4)

	redisMock.ExpectIncr("rolegen:3").SetVal(1)
	redisMock.ExpectScan(0, "role:3:*", scanBatch).SetVal([]string{"role:3:4", "role:3:5"}, 0)
	redisMock.ExpectDel("role:3:4", "role:3:5").SetVal(2)
	gate.ForgetEvent(context.Background(), 3)

	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGate_ForgetWithoutCache(t *testing.T) {
	gate := NewGate(storagemocks.NewPermissionStore(t), nil)
	gate.Forget(context.Background(), 3, 4)
	gate.ForgetEvent(context.Background(), 3)
}

func TestNewGate_PanicsOnNilStore(t *testing.T) {
	require.Panics(t, func() { NewGate(nil, nil) })
}

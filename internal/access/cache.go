package access

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/redis/go-redis/v9"
)

// Generation identifies the permission state a cached role was read under.
// Forgetting a pair bumps Pair; forgetting the whole event bumps Event.
type Generation struct {
	Event int64
	Pair  int64
}

// RoleCache is a shared lookaside cache for role lookups.
// Get reports ok=false on a miss. SetIfCurrent stores the role only when the
// generation still matches the one read before the store lookup, so a read
// that raced a permission change is never cached.
type RoleCache interface {
	Get(ctx context.Context, eventID, userID int64) (role v1.Role, ok bool, err error)
	Generation(ctx context.Context, eventID, userID int64) (Generation, error)
	SetIfCurrent(ctx context.Context, eventID, userID int64, role v1.Role, gen Generation) (bool, error)
	Delete(ctx context.Context, eventID, userID int64) error
	DeleteEvent(ctx context.Context, eventID int64) error
}

// RedisRoleCache stores roles under role:<event>:<user> with a fixed TTL.
// Generation counters live under rolegen:<event> and rolegen:<event>:<user>.
type RedisRoleCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// KEYS: event generation, pair generation, role. ARGV: event gen, pair gen, role, ttl ms.
var setIfCurrent = redis.NewScript(`
local eg = tonumber(redis.call('GET', KEYS[1]) or '0')
local pg = tonumber(redis.call('GET', KEYS[2]) or '0')
if eg ~= tonumber(ARGV[1]) or pg ~= tonumber(ARGV[2]) then
  return 0
end
redis.call('SET', KEYS[3], ARGV[3], 'PX', ARGV[4])
return 1
`)

func NewRedisRoleCache(client redis.Cmdable, ttl time.Duration) *RedisRoleCache {
	if client == nil {
		panic("access: redis client must not be nil")
	}
	return &RedisRoleCache{client: client, ttl: ttl}
}

func (c *RedisRoleCache) Get(ctx context.Context, eventID, userID int64) (v1.Role, bool, error) {
	val, err := c.client.Get(ctx, roleKey(eventID, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cached role: %w", err)
	}

	role := v1.Role(val)
	if !role.Valid() {
		// Unknown value written by something else; treat as a miss.
		return "", false, nil
	}
	return role, true, nil
}

func (c *RedisRoleCache) Generation(ctx context.Context, eventID, userID int64) (Generation, error) {
	vals, err := c.client.MGet(ctx, eventGenKey(eventID), pairGenKey(eventID, userID)).Result()
	if err != nil {
		return Generation{}, fmt.Errorf("failed to read role generation: %w", err)
	}
	if len(vals) != 2 {
		return Generation{}, fmt.Errorf("failed to read role generation: got %d values", len(vals))
	}

	var gen Generation
	if gen.Event, err = parseCounter(vals[0]); err != nil {
		return Generation{}, err
	}
	if gen.Pair, err = parseCounter(vals[1]); err != nil {
		return Generation{}, err
	}
	return gen, nil
}

func (c *RedisRoleCache) SetIfCurrent(ctx context.Context, eventID, userID int64, role v1.Role, gen Generation) (bool, error) {
	keys := []string{eventGenKey(eventID), pairGenKey(eventID, userID), roleKey(eventID, userID)}
	stored, err := setIfCurrent.Run(ctx, c.client, keys, gen.Event, gen.Pair, string(role), c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to cache role: %w", err)
	}
	return stored == 1, nil
}

// Delete bumps the pair generation before dropping the key, so lookups
// already in flight cannot write their result back.
func (c *RedisRoleCache) Delete(ctx context.Context, eventID, userID int64) error {
	if err := c.client.Incr(ctx, pairGenKey(eventID, userID)).Err(); err != nil {
		return fmt.Errorf("failed to bump role generation: %w", err)
	}
	if err := c.client.Del(ctx, roleKey(eventID, userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cached role: %w", err)
	}
	return nil
}

const scanBatch = 100

func (c *RedisRoleCache) DeleteEvent(ctx context.Context, eventID int64) error {
	if err := c.client.Incr(ctx, eventGenKey(eventID)).Err(); err != nil {
		return fmt.Errorf("failed to bump event role generation: %w", err)
	}

	pattern := fmt.Sprintf("role:%d:*", eventID)
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cached roles: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cached roles: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func eventGenKey(eventID int64) string {
	return fmt.Sprintf("rolegen:%d", eventID)
}

func pairGenKey(eventID, userID int64) string {
	return fmt.Sprintf("rolegen:%d:%d", eventID, userID)
}

// parseCounter reads an MGET slot; a missing key is generation 0.
func parseCounter(v interface{}) (int64, error) {
	switch s := v.(type) {
	case nil:
		return 0, nil
	case string:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse role generation %q: %w", s, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected role generation type %T", v)
	}
}

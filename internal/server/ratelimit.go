package server

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/aevon-lab/chronicle/internal/access"
	httperr "github.com/aevon-lab/chronicle/internal/core/errors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// userLimiter keeps one token bucket per caller.
type userLimiter struct {
	mu      sync.Mutex
	entries map[int64]*limiterEntry
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

func newUserLimiter(requestsPerMinute, burst int) *userLimiter {
	return &userLimiter{
		entries: make(map[int64]*limiterEntry),
		limit:   rate.Limit(float64(requestsPerMinute) / 60),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *userLimiter) get(userID int64) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[userID]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[userID] = e
	}
	e.lastSeen = l.now()
	return e.limiter
}

// sweep drops buckets idle for longer than limiterIdleTTL.
func (l *userLimiter) sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-limiterIdleTTL)
	removed := 0
	for id, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, id)
			removed++
		}
	}
	return removed
}

func (l *userLimiter) sweepEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

// middleware must run after identity.
func (l *userLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := access.UserID(c)
		if !ok {
			c.Next()
			return
		}

		lim := l.get(userID)
		if !lim.AllowN(l.now(), 1) {
			retry := time.Duration(float64(time.Second) / float64(l.limit))
			c.Header("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httperr.ErrorResponse{
				ErrorType: httperr.HttpRateLimitedError,
				Message:   "Too many requests",
			})
			return
		}
		c.Next()
	}
}

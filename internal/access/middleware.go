package access

import (
	"fmt"
	"net/http"
	"strconv"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	httperr "github.com/aevon-lab/chronicle/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const (
	ctxUserID  = "access.user_id"
	ctxEventID = "access.event_id"
	ctxRole    = "access.role"
)

// SetUserID stores the authenticated caller on the request context.
// The identity middleware in the server package is the only writer.
func SetUserID(c *gin.Context, userID int64) {
	c.Set(ctxUserID, userID)
}

// UserID returns the caller set by SetUserID.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// EventID returns the :id path parameter resolved by RequireRole.
func EventID(c *gin.Context) int64 {
	return c.GetInt64(ctxEventID)
}

// RoleFrom returns the caller's role resolved by RequireRole.
func RoleFrom(c *gin.Context) v1.Role {
	v, _ := c.Get(ctxRole)
	role, _ := v.(v1.Role)
	return role
}

// ParseEventID reads the :id path parameter.
func ParseEventID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: event id must be a positive integer", httperr.ErrInvalidRequest)
	}
	return id, nil
}

// RequireRole admits the request only when the caller holds at least required
// on the event named by :id.
func (g *Gate) RequireRole(required v1.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.ErrorResponse{
				ErrorType: httperr.HttpUnauthenticatedError,
				Message:   "Missing caller identity",
			})
			return
		}

		eventID, err := ParseEventID(c)
		if err != nil {
			abortWithError(c, err)
			return
		}

		role, err := g.Authorize(c.Request.Context(), eventID, userID, required)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(ctxEventID, eventID)
		c.Set(ctxRole, role)
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	status, body := httperr.FromError(err)
	c.AbortWithStatusJSON(status, body)
}

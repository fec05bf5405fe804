package sharing

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aevon-lab/chronicle/internal/access"
	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	httperr "github.com/aevon-lab/chronicle/internal/core/errors"
	"github.com/aevon-lab/chronicle/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the permission routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	owner := s.gate.RequireRole(v1.RoleOwner)

	r.POST("/v1/events/:id/share", owner, s.ShareHandler)
	r.GET("/v1/events/:id/permissions", s.gate.RequireRole(v1.RoleEditor), s.ListHandler)
	r.PUT("/v1/events/:id/permissions/:user_id", owner, s.UpdateHandler)
	r.DELETE("/v1/events/:id/permissions/:user_id", owner, s.RevokeHandler)
}

type shareRequest struct {
	Users []storage.Grant `json:"users"`
}

type updateRequest struct {
	Role v1.Role `json:"role"`
}

func (s *Service) ShareHandler(c *gin.Context) {
	actorID, _ := access.UserID(c)
	eventID := access.EventID(c)

	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, err)
		return
	}

	perms, err := s.Share(c.Request.Context(), eventID, actorID, req.Users)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": eventID, "permissions": perms})
}

func (s *Service) ListHandler(c *gin.Context) {
	eventID := access.EventID(c)
	perms, err := s.List(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": eventID, "permissions": perms})
}

func (s *Service) UpdateHandler(c *gin.Context) {
	actorID, _ := access.UserID(c)
	userID, err := targetUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, err)
		return
	}

	perm, err := s.UpdatePermission(c.Request.Context(), access.EventID(c), actorID, userID, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, perm)
}

func (s *Service) RevokeHandler(c *gin.Context) {
	actorID, _ := access.UserID(c)
	userID, err := targetUser(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := s.Revoke(c.Request.Context(), access.EventID(c), actorID, userID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func targetUser(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: user_id must be a positive integer", httperr.ErrInvalidRequest)
	}
	return id, nil
}

func writeInvalidJSON(c *gin.Context, err error) {
	slog.Warn("[Sharing] Invalid JSON body received", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidJsonError,
		Message:   "Invalid JSON body",
	})
}

func writeError(c *gin.Context, err error) {
	status, body := httperr.FromError(err)
	c.JSON(status, body)
}

package events

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aevon-lab/chronicle/internal/access"
	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	httperr "github.com/aevon-lab/chronicle/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidJSON     = "Invalid JSON body"
	msgMissingIdentity = "Missing caller identity"
	xlsxContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// RegisterRoutes registers the event routes. Routes naming an event run
// behind the gate's admission check for the listed role.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/events", s.CreateHandler)
	r.POST("/v1/events/batch", s.CreateBatchHandler)
	r.GET("/v1/events", s.ListHandler)
	r.GET("/v1/events/conflicts", s.ConflictsHandler)

	viewer := s.gate.RequireRole(v1.RoleViewer)
	editor := s.gate.RequireRole(v1.RoleEditor)
	owner := s.gate.RequireRole(v1.RoleOwner)

	r.GET("/v1/events/:id", viewer, s.GetHandler)
	r.PUT("/v1/events/:id", editor, s.UpdateHandler)
	r.DELETE("/v1/events/:id", owner, s.DeleteHandler)

	r.GET("/v1/events/:id/history", viewer, s.HistoryHandler)
	r.GET("/v1/events/:id/history/export", viewer, s.ExportHistoryHandler)
	r.GET("/v1/events/:id/history/:version", viewer, s.VersionHandler)
	r.POST("/v1/events/:id/rollback/:version", editor, s.RollbackHandler)
	r.GET("/v1/events/:id/changelog", viewer, s.ChangelogHandler)
	r.GET("/v1/events/:id/diff/:from/:to", viewer, s.DiffHandler)
	r.GET("/v1/events/:id/occurrences", viewer, s.OccurrencesHandler)
}

func (s *Service) CreateHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var fields v1.EventFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		writeInvalidJSON(c, err)
		return
	}

	res, err := s.Create(c.Request.Context(), userID, fields)
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("[Events] Event created",
		"event_id", res.Event.ID,
		"owner_id", userID,
		"conflicts", len(res.Conflicts))

	setETag(c, res.Event.CurrentVersion)
	c.JSON(http.StatusCreated, res)
}

type batchRequest struct {
	Events []v1.EventFields `json:"events"`
}

// CreateBatchHandler answers 201 when every item succeeded and 207 otherwise.
func (s *Service) CreateBatchHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c, err)
		return
	}

	res, err := s.CreateBatch(c.Request.Context(), userID, req.Events)
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Failed > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, res)
}

func (s *Service) ListHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	filter := v1.EventFilter{
		TitleSearch:      strings.TrimSpace(c.Query("title")),
		Location:         strings.TrimSpace(c.Query("location")),
		IncludeRecurring: true,
	}
	var err error
	if filter.StartDate, err = optionalTime(c, "start_date"); err != nil {
		writeError(c, err)
		return
	}
	if filter.EndDate, err = optionalTime(c, "end_date"); err != nil {
		writeError(c, err)
		return
	}
	if raw := c.Query("include_recurring"); raw != "" {
		if filter.IncludeRecurring, err = strconv.ParseBool(raw); err != nil {
			writeError(c, fmt.Errorf("%w: include_recurring must be a boolean", ErrInvalidRequest))
			return
		}
	}

	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))

	res, err := s.List(c.Request.Context(), userID, filter, page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Service) ConflictsHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	start, err := requiredTime(c, "start")
	if err != nil {
		writeError(c, err)
		return
	}
	end, err := requiredTime(c, "end")
	if err != nil {
		writeError(c, err)
		return
	}
	var excludeID int64
	if raw := c.Query("exclude_id"); raw != "" {
		if excludeID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			writeError(c, fmt.Errorf("%w: exclude_id must be an integer", ErrInvalidRequest))
			return
		}
	}

	found, err := s.Conflicts(c.Request.Context(), userID, start, end, excludeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": found, "count": len(found)})
}

func (s *Service) GetHandler(c *gin.Context) {
	view, err := s.Get(c.Request.Context(), access.EventID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	setETag(c, view.CurrentVersion)
	c.JSON(http.StatusOK, view)
}

// UpdateHandler applies a partial update. An If-Match header carrying the
// version the client last saw makes the update conditional.
func (s *Service) UpdateHandler(c *gin.Context) {
	userID, _ := access.UserID(c)
	eventID := access.EventID(c)

	var patch v1.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeInvalidJSON(c, err)
		return
	}
	expected, err := parseIfMatch(c.GetHeader("If-Match"))
	if err != nil {
		writeError(c, err)
		return
	}
	patch.ExpectedVersion = expected

	res, err := s.Update(c.Request.Context(), eventID, userID, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	if res.Changed {
		slog.Info("[Events] Event updated",
			"event_id", eventID,
			"user_id", userID,
			"version", res.Event.CurrentVersion)
	}
	setETag(c, res.Event.CurrentVersion)
	c.JSON(http.StatusOK, res)
}

func (s *Service) DeleteHandler(c *gin.Context) {
	userID, _ := access.UserID(c)
	eventID := access.EventID(c)

	if err := s.Delete(c.Request.Context(), eventID, userID); err != nil {
		writeError(c, err)
		return
	}

	slog.Info("[Events] Event deleted", "event_id", eventID, "user_id", userID)
	c.Status(http.StatusNoContent)
}

func (s *Service) HistoryHandler(c *gin.Context) {
	eventID := access.EventID(c)
	versions, err := s.History(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": eventID, "versions": versions})
}

func (s *Service) ExportHistoryHandler(c *gin.Context) {
	eventID := access.EventID(c)

	// Render into memory first so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := s.ExportHistory(c.Request.Context(), eventID, &buf); err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="event-%d-history.xlsx"`, eventID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (s *Service) VersionHandler(c *gin.Context) {
	version, err := pathInt(c, "version")
	if err != nil {
		writeError(c, err)
		return
	}
	ver, err := s.Version(c.Request.Context(), access.EventID(c), version)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ver)
}

type rollbackRequest struct {
	Comment *string `json:"comment"`
}

func (s *Service) RollbackHandler(c *gin.Context) {
	userID, _ := access.UserID(c)
	eventID := access.EventID(c)

	target, err := pathInt(c, "version")
	if err != nil {
		writeError(c, err)
		return
	}

	var req rollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeInvalidJSON(c, err)
		return
	}

	ver, err := s.Rollback(c.Request.Context(), eventID, target, userID, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("[Events] Event rolled back",
		"event_id", eventID,
		"user_id", userID,
		"target", target,
		"version", ver.VersionNumber)
	setETag(c, ver.VersionNumber)
	c.JSON(http.StatusOK, ver)
}

func (s *Service) ChangelogHandler(c *gin.Context) {
	eventID := access.EventID(c)
	entries, err := s.Changelog(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	if entries == nil {
		entries = []*v1.ChangeLogEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"event_id": eventID, "entries": entries})
}

func (s *Service) DiffHandler(c *gin.Context) {
	from, err := pathInt(c, "from")
	if err != nil {
		writeError(c, err)
		return
	}
	to, err := pathInt(c, "to")
	if err != nil {
		writeError(c, err)
		return
	}

	eventID := access.EventID(c)
	changes, err := s.Diff(c.Request.Context(), eventID, from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	if changes == nil {
		changes = []v1.FieldChange{}
	}
	c.JSON(http.StatusOK, gin.H{
		"event_id":     eventID,
		"from_version": from,
		"to_version":   to,
		"changes":      changes,
	})
}

func (s *Service) OccurrencesHandler(c *gin.Context) {
	from, err := optionalTime(c, "start")
	if err != nil {
		writeError(c, err)
		return
	}
	to, err := optionalTime(c, "end")
	if err != nil {
		writeError(c, err)
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	var rangeStart, rangeEnd time.Time
	if from != nil {
		rangeStart = *from
	}
	if to != nil {
		rangeEnd = *to
	}

	res, err := s.Occurrences(c.Request.Context(), access.EventID(c), rangeStart, rangeEnd, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func requireUser(c *gin.Context) (int64, bool) {
	userID, ok := access.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnauthenticatedError,
			Message:   msgMissingIdentity,
		})
	}
	return userID, ok
}

// parseIfMatch accepts 3, "3" and W/"3". An empty header means unconditional.
func parseIfMatch(header string) (*int, error) {
	raw := strings.TrimSpace(header)
	if raw == "" || raw == "*" {
		return nil, nil
	}
	raw = strings.Trim(strings.TrimPrefix(raw, "W/"), `"`)
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return nil, fmt.Errorf("%w: If-Match must carry a version number", ErrInvalidRequest)
	}
	return &v, nil
}

func setETag(c *gin.Context, version int) {
	c.Header("ETag", strconv.Quote(strconv.Itoa(version)))
}

func pathInt(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidRequest, name)
	}
	return v, nil
}

func requiredTime(c *gin.Context, name string) (time.Time, error) {
	t, err := optionalTime(c, name)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidRequest, name)
	}
	return *t, nil
}

func optionalTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an RFC 3339 timestamp", ErrInvalidRequest, name)
	}
	return &t, nil
}

func writeInvalidJSON(c *gin.Context, err error) {
	slog.Warn("[Events] Invalid JSON body received", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidJsonError,
		Message:   msgInvalidJSON,
	})
}

func writeError(c *gin.Context, err error) {
	status, body := httperr.FromError(err)
	c.JSON(status, body)
}

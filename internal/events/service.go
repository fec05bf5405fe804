package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aevon-lab/chronicle/internal/access"
	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/aevon-lab/chronicle/internal/core/config"
	httperr "github.com/aevon-lab/chronicle/internal/core/errors"
	"github.com/aevon-lab/chronicle/internal/core/recurrence"
	"github.com/aevon-lab/chronicle/internal/core/storage"
)

// ErrInvalidRequest marks request validation failures.
var ErrInvalidRequest = httperr.ErrInvalidRequest

// Service implements event operations on top of the stores. Admission is
// checked by the HTTP layer before any method taking an eventID is called.
type Service struct {
	events     storage.EventStore
	changelog  storage.ChangelogStore
	gate       *access.Gate
	cfg        config.EventsConfig
	recurrence config.RecurrenceConfig
}

func NewService(events storage.EventStore, changelog storage.ChangelogStore, gate *access.Gate, cfg config.EventsConfig, rec config.RecurrenceConfig) *Service {
	if events == nil {
		panic("events: event store must not be nil")
	}
	if changelog == nil {
		panic("events: changelog store must not be nil")
	}
	if gate == nil {
		panic("events: gate must not be nil")
	}
	return &Service{
		events:     events,
		changelog:  changelog,
		gate:       gate,
		cfg:        cfg,
		recurrence: rec,
	}
}

// CreateResult is a newly created event with the caller's overlapping events.
// Conflicts are advisory only.
type CreateResult struct {
	Event     *v1.Event   `json:"event"`
	Conflicts []*v1.Event `json:"conflicts"`
}

// UpdateResult reports whether the update produced a new version.
type UpdateResult struct {
	Event     *v1.Event   `json:"event"`
	Changed   bool        `json:"changed"`
	Conflicts []*v1.Event `json:"conflicts,omitempty"`
}

// EventView is an event with its human-readable recurrence summary.
type EventView struct {
	*v1.Event
	RecurrenceDescription string `json:"recurrence_description"`
}

// EventPage is one page of a listing.
type EventPage struct {
	Data        []*v1.Event `json:"data"`
	TotalRows   int         `json:"total_rows"`
	TotalPages  int         `json:"total_pages"`
	CurrentPage int         `json:"current_page"`
	PageSize    int         `json:"page_size"`
}

func (s *Service) Create(ctx context.Context, ownerID int64, fields v1.EventFields) (*CreateResult, error) {
	if err := validateFields(&fields); err != nil {
		return nil, err
	}

	evt, err := s.events.CreateWithOwner(ctx, fields, ownerID)
	if err != nil {
		return nil, err
	}

	return &CreateResult{
		Event:     evt,
		Conflicts: s.advisoryConflicts(ctx, ownerID, evt),
	}, nil
}

func (s *Service) Get(ctx context.Context, eventID int64) (*EventView, error) {
	evt, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &EventView{Event: evt, RecurrenceDescription: describe(evt.EventFields)}, nil
}

// List returns the events the user holds any role on. page starts at 1;
// pageSize is clamped to the configured maximum.
func (s *Service) List(ctx context.Context, userID int64, filter v1.EventFilter, page, pageSize int) (*EventPage, error) {
	if page <= 0 {
		page = 1
	}
	switch {
	case pageSize > s.cfg.MaxPageSize:
		pageSize = s.cfg.MaxPageSize
	case pageSize <= 0:
		pageSize = s.cfg.DefaultPageSize
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidRequest)
	}

	items, total, err := s.events.ListUserEvents(ctx, userID, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*v1.Event{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return &EventPage{
		Data:        items,
		TotalRows:   total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}, nil
}

func (s *Service) Update(ctx context.Context, eventID, editorID int64, patch v1.EventPatch) (*UpdateResult, error) {
	if err := validatePatch(&patch); err != nil {
		return nil, err
	}

	evt, changed, err := s.events.UpdateWithVersion(ctx, eventID, patch, editorID)
	if err != nil {
		return nil, err
	}

	res := &UpdateResult{Event: evt, Changed: changed}
	if changed && patch.TouchesSchedule() {
		res.Conflicts = s.advisoryConflicts(ctx, editorID, evt)
	}
	return res, nil
}

func (s *Service) Delete(ctx context.Context, eventID, ownerID int64) error {
	if err := s.events.DeleteEvent(ctx, eventID, ownerID); err != nil {
		return err
	}
	s.gate.ForgetEvent(ctx, eventID)
	return nil
}

func (s *Service) History(ctx context.Context, eventID int64) ([]*v1.EventVersion, error) {
	return s.events.ListVersions(ctx, eventID)
}

func (s *Service) Version(ctx context.Context, eventID int64, version int) (*v1.EventVersion, error) {
	if version < 1 {
		return nil, fmt.Errorf("%w: version must be >= 1", ErrInvalidRequest)
	}
	return s.events.GetVersion(ctx, eventID, version)
}

func (s *Service) Rollback(ctx context.Context, eventID int64, target int, userID int64, comment *string) (*v1.EventVersion, error) {
	if target < 1 {
		return nil, fmt.Errorf("%w: version must be >= 1", ErrInvalidRequest)
	}
	if comment != nil && strings.TrimSpace(*comment) == "" {
		comment = nil
	}
	return s.events.RollbackToVersion(ctx, eventID, target, userID, comment)
}

func (s *Service) Changelog(ctx context.Context, eventID int64) ([]*v1.ChangeLogEntry, error) {
	return s.changelog.ListForEvent(ctx, eventID)
}

func (s *Service) Diff(ctx context.Context, eventID int64, from, to int) ([]v1.FieldChange, error) {
	if from < 1 || to < 1 {
		return nil, fmt.Errorf("%w: versions must be >= 1", ErrInvalidRequest)
	}
	return s.changelog.DiffBetweenVersions(ctx, eventID, from, to)
}

// Conflicts lists the user's events overlapping [start, end].
func (s *Service) Conflicts(ctx context.Context, userID int64, start, end time.Time, excludeID int64) ([]*v1.Event, error) {
	if end.Before(start) {
		return nil, storage.ErrInvalidTimeRange
	}
	found, err := s.events.FindConflicts(ctx, userID, start, end, excludeID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		found = []*v1.Event{}
	}
	return found, nil
}

// OccurrenceList is an expanded recurrence for one event.
type OccurrenceList struct {
	EventID     int64       `json:"event_id"`
	Description string      `json:"description"`
	Occurrences []time.Time `json:"occurrences"`
}

// Occurrences expands the event's recurrence inside [from, to]. Zero bounds
// fall back to the event start and the configured horizon.
func (s *Service) Occurrences(ctx context.Context, eventID int64, from, to time.Time, limit int) (*OccurrenceList, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, storage.ErrInvalidTimeRange
	}
	if limit <= 0 || limit > s.recurrence.MaxOccurrences {
		limit = s.recurrence.MaxOccurrences
	}

	evt, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var pattern *v1.RecurrencePattern
	if evt.IsRecurring {
		pattern = evt.RecurrencePattern
	}
	instants, err := recurrence.Occurrences(evt.StartTime, pattern, recurrence.Options{
		RangeStart:     from,
		RangeEnd:       to,
		MaxOccurrences: limit,
		Horizon:        s.recurrence.DefaultHorizon,
	})
	if err != nil {
		return nil, err
	}
	if instants == nil {
		instants = []time.Time{}
	}

	return &OccurrenceList{
		EventID:     eventID,
		Description: describe(evt.EventFields),
		Occurrences: instants,
	}, nil
}

// advisoryConflicts never fails the calling operation.
func (s *Service) advisoryConflicts(ctx context.Context, userID int64, evt *v1.Event) []*v1.Event {
	found, err := s.events.FindConflicts(ctx, userID, evt.StartTime, evt.EndTime, evt.ID)
	if err != nil {
		slog.Warn("[Events] Conflict lookup failed", "event_id", evt.ID, "user_id", userID, "error", err)
		return []*v1.Event{}
	}
	if found == nil {
		return []*v1.Event{}
	}
	return found
}

func describe(f v1.EventFields) string {
	if !f.IsRecurring {
		return recurrence.Describe(nil)
	}
	return recurrence.Describe(f.RecurrencePattern)
}

func validateFields(f *v1.EventFields) error {
	f.TruncateTimes()
	if err := recurrence.ValidateFields(f); err != nil {
		if errors.Is(err, v1.ErrInvalidFields) {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return err
	}
	return nil
}

func validatePatch(p *v1.EventPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidRequest)
	}
	if p.StartTime != nil {
		start := p.StartTime.Truncate(time.Microsecond)
		p.StartTime = &start
	}
	if p.EndTime != nil {
		end := p.EndTime.Truncate(time.Microsecond)
		p.EndTime = &end
	}
	if p.StartTime != nil && p.EndTime != nil && p.EndTime.Before(*p.StartTime) {
		return storage.ErrInvalidTimeRange
	}
	if p.ClearRecurrencePattern && p.IsRecurring != nil && *p.IsRecurring {
		return fmt.Errorf("%w: recurrence_pattern is required for recurring events", ErrInvalidRequest)
	}
	if p.RecurrencePattern != nil {
		if err := recurrence.Validate(p.RecurrencePattern); err != nil {
			return err
		}
	}
	if p.ExpectedVersion != nil && *p.ExpectedVersion < 1 {
		return fmt.Errorf("%w: expected version must be >= 1", ErrInvalidRequest)
	}
	return nil
}

package events

import (
	"context"
	"fmt"
	"log/slog"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	httperr "github.com/aevon-lab/chronicle/internal/core/errors"
	"golang.org/x/sync/errgroup"
)

// BatchItemResult is the outcome of one batch item, reported at its input index.
type BatchItemResult struct {
	Index     int                    `json:"index"`
	Event     *v1.Event              `json:"event,omitempty"`
	Conflicts []*v1.Event            `json:"conflicts,omitempty"`
	Error     *httperr.ErrorResponse `json:"error,omitempty"`
}

// BatchResult holds per-item outcomes in input order.
type BatchResult struct {
	Results   []BatchItemResult `json:"results"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
}

// CreateBatch creates every item independently. A failed item never rolls
// back its committed siblings.
func (s *Service) CreateBatch(ctx context.Context, ownerID int64, items []v1.EventFields) (*BatchResult, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: batch must contain at least one event", ErrInvalidRequest)
	}
	if len(items) > s.cfg.BatchMaxItems {
		return nil, fmt.Errorf("%w: batch exceeds %d events", ErrInvalidRequest, s.cfg.BatchMaxItems)
	}

	results := make([]BatchItemResult, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchWorkers)

	for i := range items {
		g.Go(func() error {
			res, err := s.Create(gctx, ownerID, items[i])
			results[i] = BatchItemResult{Index: i}
			if err != nil {
				_, body := httperr.FromError(err)
				results[i].Error = &body
				return nil
			}
			results[i].Event = res.Event
			results[i].Conflicts = res.Conflicts
			return nil
		})
	}
	// Items report their own failures; Wait only returns nil.
	_ = g.Wait()

	out := &BatchResult{Results: results}
	for _, r := range results {
		if r.Error != nil {
			out.Failed++
		} else {
			out.Succeeded++
		}
	}

	slog.Info("[Events] Batch create finished",
		"owner_id", ownerID,
		"items", len(items),
		"succeeded", out.Succeeded,
		"failed", out.Failed)

	return out, nil
}

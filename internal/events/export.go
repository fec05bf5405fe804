package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	v1 "github.com/aevon-lab/chronicle/internal/api/v1"
	"github.com/xuri/excelize/v2"
)

const historySheet = "History"

var historyHeaders = []string{
	"Version", "Title", "Description", "Start", "End", "Location",
	"Recurring", "Recurrence", "Created By", "Created At",
}

// ExportHistory writes the event's full version chain as an XLSX workbook.
func (s *Service) ExportHistory(ctx context.Context, eventID int64, w io.Writer) error {
	versions, err := s.events.ListVersions(ctx, eventID)
	if err != nil {
		return err
	}

	f, err := historyWorkbook(versions)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write history workbook: %w", err)
	}
	return nil
}

func historyWorkbook(versions []*v1.EventVersion) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return nil, fmt.Errorf("failed to name history sheet: %w", err)
	}

	for i, header := range historyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(historySheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, ver := range versions {
		pattern := ""
		if ver.RecurrencePattern != nil {
			raw, err := json.Marshal(ver.RecurrencePattern)
			if err != nil {
				return nil, fmt.Errorf("failed to encode recurrence pattern of version %d: %w", ver.VersionNumber, err)
			}
			pattern = string(raw)
		}

		row := []interface{}{
			ver.VersionNumber,
			ver.Title,
			ver.Description,
			ver.StartTime.UTC().Format(time.RFC3339),
			ver.EndTime.UTC().Format(time.RFC3339),
			ver.Location,
			ver.IsRecurring,
			pattern,
			ver.CreatedBy,
			ver.CreatedAt.UTC().Format(time.RFC3339),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write version %d: %w", ver.VersionNumber, err)
		}
	}

	return f, nil
}

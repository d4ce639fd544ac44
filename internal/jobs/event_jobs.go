package jobs

import (
	"context"
	"time"

	"bicirent-backend/internal/logger"
)

// CompletePastEvents moves published events whose date has passed into
// completed status. Cancelled and draft events are left alone.
func (jr *JobRunner) CompletePastEvents() {
	jr.runWithRecovery("CompletePastEvents", func() {
		ctx := context.Background()

		query := `
			UPDATE events
			SET status = 'completed',
			    updated_on = NOW()
			WHERE status = 'published'
			  AND event_date < $1
			RETURNING id, name, event_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now())
		if err != nil {
			logger.Error("Failed to complete past events", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id        int32
				name      string
				eventDate time.Time
			)
			if err := rows.Scan(&id, &name, &eventDate); err != nil {
				logger.Error("Failed to scan completed event", "error", err)
				continue
			}
			logger.Debug("Completed past event", "event_id", id, "name", name, "event_date", eventDate)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating completed events", "error", err)
			return
		}

		logger.Info("Marked past events as completed", "count", count)
	})
}

package jobs

import (
	"context"
	"time"

	"bicirent-backend/internal/logger"
)

// SendMaintenanceReminders emails every admin of a regional about open
// maintenance entries that are due within the next three days or overdue.
func (jr *JobRunner) SendMaintenanceReminders() {
	jr.runWithRecovery("SendMaintenanceReminders", func() {
		ctx := context.Background()
		now := time.Now()

		query := `
			SELECT m.id, m.next_maintenance_date, b.code, u.email
			FROM maintenance_logs m
			JOIN bicycles b ON b.id = m.bicycle_id
			JOIN users u ON u.regional_id = b.regional_id AND u.role = 'admin' AND u.is_active = true
			WHERE m.completed = false
			  AND m.next_maintenance_date IS NOT NULL
			  AND m.next_maintenance_date < $1
		`

		rows, err := jr.db.QueryContext(ctx, query, now.Add(72*time.Hour))
		if err != nil {
			logger.Error("Failed to query maintenance reminders", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var (
				logID       int32
				due         time.Time
				bicycleCode string
				adminEmail  string
			)
			if err := rows.Scan(&logID, &due, &bicycleCode, &adminEmail); err != nil {
				logger.Error("Failed to scan maintenance reminder", "error", err)
				continue
			}

			overdue := due.Before(now)
			if err := jr.services.Email.SendMaintenanceReminder(ctx, adminEmail, bicycleCode, due, overdue); err != nil {
				logger.Error("Failed to send maintenance reminder",
					"log_id", logID, "to", adminEmail, "error", err)
				continue
			}
			sent++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating maintenance reminders", "error", err)
			return
		}

		logger.Info("Sent maintenance reminders", "count", sent)
	})
}

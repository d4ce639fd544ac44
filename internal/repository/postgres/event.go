package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, name, description, event_type, event_date, start_time, end_time,
       route_description, meeting_point, meeting_longitude, meeting_latitude,
       max_participants, current_participants, status, regional_id, created_on, updated_on`

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	lng, lat := locationArgs(e.MeetingPointLocation)
	query := `INSERT INTO events (name, description, event_type, event_date, start_time, end_time,
	          route_description, meeting_point, meeting_longitude, meeting_latitude,
	          max_participants, current_participants, status, regional_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 0, $12, $13, $14, $14) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.Name, e.Description, e.EventType, e.EventDate,
		e.StartTime, e.EndTime, e.RouteDescription, e.MeetingPoint, lng, lat,
		e.MaxParticipants, e.Status, e.RegionalID, time.Now()).Scan(&e.ID)
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var desc, eventType, endTime, route, meeting sql.NullString
	var lng, lat sql.NullFloat64
	err := row.Scan(&e.ID, &e.Name, &desc, &eventType, &e.EventDate, &e.StartTime, &endTime,
		&route, &meeting, &lng, &lat, &e.MaxParticipants, &e.CurrentParticipants,
		&e.Status, &e.RegionalID, &e.CreatedOn, &e.UpdatedOn)
	if err != nil {
		return nil, err
	}
	e.Description = desc.String
	e.EventType = eventType.String
	e.EndTime = endTime.String
	e.RouteDescription = route.String
	e.MeetingPoint = meeting.String
	e.MeetingPointLocation = scanLocation(lng, lat)
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrEventNotFound
	}
	return e, err
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	lng, lat := locationArgs(e.MeetingPointLocation)
	query := `UPDATE events SET name=$1, description=$2, event_type=$3, event_date=$4, start_time=$5,
	          end_time=$6, route_description=$7, meeting_point=$8, meeting_longitude=$9, meeting_latitude=$10,
	          max_participants=$11, status=$12, regional_id=$13, updated_on=$14 WHERE id=$15`
	res, err := r.db.ExecContext(ctx, query, e.Name, e.Description, e.EventType, e.EventDate,
		e.StartTime, e.EndTime, e.RouteDescription, e.MeetingPoint, lng, lat,
		e.MaxParticipants, e.Status, e.RegionalID, time.Now(), e.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, status domain.EventStatus, page, pageSize int32) ([]domain.Event, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + eventColumns + ` FROM events`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY event_date DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events, err := collectEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, count, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
	          WHERE status = $1 AND event_date > $2 ORDER BY event_date`
	rows, err := r.db.QueryContext(ctx, query, domain.EventStatusPublished, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *eventRepository) ListByParticipant(ctx context.Context, userID int32) ([]domain.Event, error) {
	query := `SELECT ` + prefixColumns(eventColumns, "e") + ` FROM events e
	          JOIN event_participants p ON p.event_id = e.id
	          WHERE p.user_id = $1 ORDER BY e.event_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Register(ctx context.Context, eventID, userID int32, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO event_participants (event_id, user_id, registration_date, attended)
		 VALUES ($1, $2, $3, false)`, eventID, userID, now)
	if err != nil {
		if isUniqueViolation(err, "event_participants_event_id_user_id_key") {
			return domain.ErrAlreadyRegistered
		}
		return err
	}

	// The guarded increment is the capacity gate: two racing registrations
	// at the last open slot serialize on this row and only one matches.
	res, err := tx.ExecContext(ctx,
		`UPDATE events SET current_participants = current_participants + 1, updated_on = $1
		 WHERE id = $2 AND status = $3 AND event_date > $4
		   AND (max_participants IS NULL OR current_participants < max_participants)`,
		time.Now(), eventID, domain.EventStatusPublished, now)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return r.classifyRegistrationFailure(ctx, tx, eventID, now)
	}

	return tx.Commit()
}

// classifyRegistrationFailure reads the event inside the failed transaction
// to report why the guarded increment matched nothing.
func (r *eventRepository) classifyRegistrationFailure(ctx context.Context, tx *sql.Tx, eventID int32, now time.Time) error {
	var status domain.EventStatus
	var eventDate time.Time
	var maxParticipants sql.NullInt32
	var current int32
	err := tx.QueryRowContext(ctx,
		`SELECT status, event_date, max_participants, current_participants FROM events WHERE id = $1`,
		eventID).Scan(&status, &eventDate, &maxParticipants, &current)
	if err == sql.ErrNoRows {
		return domain.ErrEventNotFound
	}
	if err != nil {
		return err
	}
	switch {
	case status != domain.EventStatusPublished:
		return domain.ErrEventNotPublished
	case !eventDate.After(now):
		return domain.ErrEventInPast
	case maxParticipants.Valid && current >= maxParticipants.Int32:
		return domain.ErrEventFull
	default:
		return fmt.Errorf("event %d registration rejected for unknown reason", eventID)
	}
}

func (r *eventRepository) Unregister(ctx context.Context, eventID, userID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM event_participants WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotRegistered
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE events SET current_participants = current_participants - 1, updated_on = $1
		 WHERE id = $2 AND current_participants > 0`, time.Now(), eventID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *eventRepository) MarkAttendance(ctx context.Context, eventID, userID int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE event_participants SET attended = true WHERE event_id = $1 AND user_id = $2`,
		eventID, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotRegistered
	}
	return nil
}

func (r *eventRepository) ListParticipants(ctx context.Context, eventID int32) ([]domain.EventParticipant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, user_id, registration_date, attended
		 FROM event_participants WHERE event_id = $1 ORDER BY registration_date`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []domain.EventParticipant
	for rows.Next() {
		var p domain.EventParticipant
		if err := rows.Scan(&p.ID, &p.EventID, &p.UserID, &p.RegistrationDate, &p.Attended); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

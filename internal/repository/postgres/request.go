package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, requester_id, kind, title, contact_name, contact_email,
	date, start_time, end_time, capacity,
	zoom_status, zoom_binding_kind, zoom_account_id, zoom_link, zoom_meeting_id, zoom_passcode, zoom_notes, zoom_rejection_reason, zoom_decided_on,
	room_status, room_id, room_notes, room_rejection_reason, room_decided_on,
	overall_status, created_on, updated_on`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*domain.BookingRequest, error) {
	var (
		req                            domain.BookingRequest
		zoomStatus, zoomBindingKind    sql.NullString
		zoomLink, zoomMeetingID        sql.NullString
		zoomPasscode, zoomNotes        sql.NullString
		zoomReason                     sql.NullString
		zoomAccountID, roomID          sql.NullInt32
		roomStatus, roomNotes, roomRsn sql.NullString
		zoomDecidedOn, roomDecidedOn   sql.NullTime
		createdOn, updatedOn           time.Time
	)

	err := row.Scan(
		&req.ID, &req.RequesterID, &req.Kind, &req.Title, &req.ContactName, &req.ContactEmail,
		&req.Date, &req.StartTime, &req.EndTime, &req.Capacity,
		&zoomStatus, &zoomBindingKind, &zoomAccountID, &zoomLink, &zoomMeetingID, &zoomPasscode, &zoomNotes, &zoomReason, &zoomDecidedOn,
		&roomStatus, &roomID, &roomNotes, &roomRsn, &roomDecidedOn,
		&req.OverallStatus, &createdOn, &updatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if zoomStatus.Valid {
		track := &domain.ZoomTrack{
			Status:          domain.TrackStatus(zoomStatus.String),
			Notes:           zoomNotes.String,
			RejectionReason: zoomReason.String,
		}
		if zoomBindingKind.Valid {
			binding := &domain.ZoomBinding{Kind: domain.ZoomBindingKind(zoomBindingKind.String)}
			if zoomAccountID.Valid {
				id := zoomAccountID.Int32
				binding.AccountID = &id
			}
			binding.Link = zoomLink.String
			binding.MeetingID = zoomMeetingID.String
			binding.Passcode = zoomPasscode.String
			track.Binding = binding
		}
		if zoomDecidedOn.Valid {
			ts := zoomDecidedOn.Time.Format(time.RFC3339)
			track.DecidedOn = &ts
		}
		req.ZoomTrack = track
	}

	if roomStatus.Valid {
		track := &domain.RoomTrack{
			Status:          domain.TrackStatus(roomStatus.String),
			Notes:           roomNotes.String,
			RejectionReason: roomRsn.String,
		}
		if roomID.Valid {
			id := roomID.Int32
			track.AssignedRoomID = &id
		}
		if roomDecidedOn.Valid {
			ts := roomDecidedOn.Time.Format(time.RFC3339)
			track.DecidedOn = &ts
		}
		req.RoomTrack = track
	}

	req.CreatedOn = createdOn.Format(time.RFC3339)
	req.UpdatedOn = updatedOn.Format(time.RFC3339)
	return &req, nil
}

func nullTrackStatus(status domain.TrackStatus, present bool) sql.NullString {
	if !present {
		return sql.NullString{}
	}
	return sql.NullString{String: string(status), Valid: true}
}

// deriveOverall rebuilds a minimal request from the per-track statuses and
// reuses the domain derivation so SQL and domain logic cannot drift apart.
func deriveOverall(zoom, room sql.NullString) domain.TrackStatus {
	var req domain.BookingRequest
	if zoom.Valid {
		req.ZoomTrack = &domain.ZoomTrack{Status: domain.TrackStatus(zoom.String)}
	}
	if room.Valid {
		req.RoomTrack = &domain.RoomTrack{Status: domain.TrackStatus(room.String)}
	}
	return req.DeriveOverallStatus()
}

func (r *requestRepository) Create(ctx context.Context, req *domain.BookingRequest) error {
	query := `INSERT INTO booking_requests
		(requester_id, kind, title, contact_name, contact_email, date, start_time, end_time, capacity,
		 zoom_status, room_status, overall_status, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13) RETURNING id`

	zoomStatus := nullTrackStatus(domain.TrackStatusPending, req.ZoomTrack != nil)
	roomStatus := nullTrackStatus(domain.TrackStatusPending, req.RoomTrack != nil)

	return r.db.QueryRowContext(ctx, query,
		req.RequesterID, req.Kind, req.Title, req.ContactName, req.ContactEmail,
		req.Date, req.StartTime, req.EndTime, req.Capacity,
		zoomStatus, roomStatus, req.OverallStatus, time.Now(),
	).Scan(&req.ID)
}

func (r *requestRepository) GetByID(ctx context.Context, id int32) (*domain.BookingRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM booking_requests WHERE id = $1`
	return scanRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *requestRepository) List(ctx context.Context, filter domain.RequestFilter) ([]domain.BookingRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM booking_requests WHERE 1=1`
	args := []interface{}{}

	addArg := func(clause string, value interface{}) {
		args = append(args, value)
		query += fmt.Sprintf(clause, len(args))
	}

	if filter.RequesterID != 0 {
		addArg(" AND requester_id = $%d", filter.RequesterID)
	}
	if filter.Kind != "" {
		addArg(" AND kind = $%d", string(filter.Kind))
	}
	if filter.Status != "" {
		addArg(" AND overall_status = $%d", string(filter.Status))
	}
	switch filter.PendingTrack {
	case domain.TrackZoom:
		query += " AND zoom_status = 'PENDING'"
	case domain.TrackRoom:
		query += " AND room_status = 'PENDING'"
	}
	if filter.DateFrom != "" {
		addArg(" AND date >= $%d", filter.DateFrom)
	}
	if filter.DateTo != "" {
		addArg(" AND date <= $%d", filter.DateTo)
	}
	query += " ORDER BY date, start_time, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.BookingRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *requestRepository) ListRoomBindings(ctx context.Context, date string) ([]domain.ResourceBinding, error) {
	query := `SELECT id, room_id, date, start_time, end_time FROM booking_requests
		WHERE room_status = 'APPROVED' AND room_id IS NOT NULL AND date = $1`
	return r.listBindings(ctx, query, date)
}

func (r *requestRepository) ListZoomBindings(ctx context.Context, date string) ([]domain.ResourceBinding, error) {
	query := `SELECT id, zoom_account_id, date, start_time, end_time FROM booking_requests
		WHERE zoom_status = 'APPROVED' AND zoom_account_id IS NOT NULL AND date = $1`
	return r.listBindings(ctx, query, date)
}

func (r *requestRepository) listBindings(ctx context.Context, query, date string) ([]domain.ResourceBinding, error) {
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bindings []domain.ResourceBinding
	for rows.Next() {
		var b domain.ResourceBinding
		if err := rows.Scan(&b.RequestID, &b.ResourceID, &b.Date, &b.StartTime, &b.EndTime); err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, rows.Err()
}

// lockTracks reads the request row under FOR UPDATE so a concurrent decision
// on the same request serializes behind this transaction.
func lockTracks(ctx context.Context, tx *sql.Tx, requestID int32) (date, start, end string, zoom, room sql.NullString, err error) {
	query := `SELECT date, start_time, end_time, zoom_status, room_status
		FROM booking_requests WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, requestID).Scan(&date, &start, &end, &zoom, &room)
	if errors.Is(err, sql.ErrNoRows) {
		err = domain.ErrNotFound
	}
	return
}

func (r *requestRepository) ApproveRoomTrack(ctx context.Context, requestID, roomID int32, notes string) (*domain.BookingRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	date, start, end, zoomStatus, roomStatus, err := lockTracks(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}
	if !roomStatus.Valid || domain.TrackStatus(roomStatus.String) != domain.TrackStatusPending {
		return nil, domain.ErrInvalidTransition
	}

	// Any availability snapshot taken before the lock may be stale; the
	// binding is only committed if the slot is still free now.
	var conflicts int
	err = tx.QueryRowContext(ctx,
		`SELECT count(*) FROM booking_requests
		 WHERE room_id = $1 AND room_status = 'APPROVED' AND date = $2
		   AND start_time < $3 AND $4 < end_time AND id <> $5`,
		roomID, date, end, start, requestID,
	).Scan(&conflicts)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, domain.ErrResourceConflict
	}

	overall := deriveOverall(zoomStatus, sql.NullString{String: string(domain.TrackStatusApproved), Valid: true})
	res, err := tx.ExecContext(ctx,
		`UPDATE booking_requests
		 SET room_status = $1, room_id = $2, room_notes = $3, room_decided_on = $4,
		     overall_status = $5, updated_on = $4
		 WHERE id = $6 AND room_status = 'PENDING'`,
		domain.TrackStatusApproved, roomID, notes, time.Now(), overall, requestID,
	)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrInvalidTransition
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, requestID)
}

func (r *requestRepository) ApproveZoomTrack(ctx context.Context, requestID int32, binding *domain.ZoomBinding, notes string) (*domain.BookingRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	date, start, end, zoomStatus, roomStatus, err := lockTracks(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}
	if !zoomStatus.Valid || domain.TrackStatus(zoomStatus.String) != domain.TrackStatusPending {
		return nil, domain.ErrInvalidTransition
	}

	var accountID sql.NullInt32
	if binding.Kind == domain.ZoomBindingCatalog {
		accountID = sql.NullInt32{Int32: *binding.AccountID, Valid: true}

		// Manual bindings hold no catalog resource; only catalog bindings
		// contend for an account's time.
		var conflicts int
		err = tx.QueryRowContext(ctx,
			`SELECT count(*) FROM booking_requests
			 WHERE zoom_account_id = $1 AND zoom_status = 'APPROVED' AND date = $2
			   AND start_time < $3 AND $4 < end_time AND id <> $5`,
			accountID.Int32, date, end, start, requestID,
		).Scan(&conflicts)
		if err != nil {
			return nil, err
		}
		if conflicts > 0 {
			return nil, domain.ErrResourceConflict
		}
	}

	overall := deriveOverall(sql.NullString{String: string(domain.TrackStatusApproved), Valid: true}, roomStatus)
	res, err := tx.ExecContext(ctx,
		`UPDATE booking_requests
		 SET zoom_status = $1, zoom_binding_kind = $2, zoom_account_id = $3,
		     zoom_link = $4, zoom_meeting_id = $5, zoom_passcode = $6,
		     zoom_notes = $7, zoom_decided_on = $8, overall_status = $9, updated_on = $8
		 WHERE id = $10 AND zoom_status = 'PENDING'`,
		domain.TrackStatusApproved, binding.Kind, accountID,
		binding.Link, binding.MeetingID, binding.Passcode,
		notes, time.Now(), overall, requestID,
	)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrInvalidTransition
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, requestID)
}

func (r *requestRepository) RejectTrack(ctx context.Context, requestID int32, track domain.Track, reason string) (*domain.BookingRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, _, _, zoomStatus, roomStatus, err := lockTracks(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	rejected := sql.NullString{String: string(domain.TrackStatusRejected), Valid: true}
	var query string
	var overall domain.TrackStatus
	switch track {
	case domain.TrackZoom:
		if !zoomStatus.Valid || domain.TrackStatus(zoomStatus.String) != domain.TrackStatusPending {
			return nil, domain.ErrInvalidTransition
		}
		overall = deriveOverall(rejected, roomStatus)
		query = `UPDATE booking_requests
			SET zoom_status = $1, zoom_rejection_reason = $2, zoom_decided_on = $3,
			    overall_status = $4, updated_on = $3
			WHERE id = $5 AND zoom_status = 'PENDING'`
	case domain.TrackRoom:
		if !roomStatus.Valid || domain.TrackStatus(roomStatus.String) != domain.TrackStatusPending {
			return nil, domain.ErrInvalidTransition
		}
		overall = deriveOverall(zoomStatus, rejected)
		query = `UPDATE booking_requests
			SET room_status = $1, room_rejection_reason = $2, room_decided_on = $3,
			    overall_status = $4, updated_on = $3
			WHERE id = $5 AND room_status = 'PENDING'`
	default:
		return nil, domain.ErrInvalidTransition
	}

	res, err := tx.ExecContext(ctx, query, domain.TrackStatusRejected, reason, time.Now(), overall, requestID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, domain.ErrInvalidTransition
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, requestID)
}

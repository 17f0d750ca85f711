package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/repository"
)

type zoomAccountRepository struct {
	db *sql.DB
}

func NewZoomAccountRepository(db *sql.DB) repository.ZoomAccountRepository {
	return &zoomAccountRepository{db: db}
}

const zoomAccountColumns = `id, name, host_email, link, meeting_id, passcode, is_active, created_on, updated_on`

func scanZoomAccount(row rowScanner) (*domain.ZoomAccount, error) {
	acct := &domain.ZoomAccount{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&acct.ID, &acct.Name, &acct.HostEmail, &acct.Link, &acct.MeetingID, &acct.Passcode, &acct.IsActive, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	acct.CreatedOn = createdOn.Format(time.RFC3339)
	acct.UpdatedOn = updatedOn.Format(time.RFC3339)
	return acct, nil
}

func (r *zoomAccountRepository) Create(ctx context.Context, acct *domain.ZoomAccount) error {
	query := `INSERT INTO zoom_accounts (name, host_email, link, meeting_id, passcode, is_active, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, acct.Name, acct.HostEmail, acct.Link, acct.MeetingID, acct.Passcode, acct.IsActive, time.Now()).Scan(&acct.ID)
}

func (r *zoomAccountRepository) GetByID(ctx context.Context, id int32) (*domain.ZoomAccount, error) {
	query := `SELECT ` + zoomAccountColumns + ` FROM zoom_accounts WHERE id = $1`
	return scanZoomAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *zoomAccountRepository) Update(ctx context.Context, acct *domain.ZoomAccount) error {
	query := `UPDATE zoom_accounts SET name=$1, host_email=$2, link=$3, meeting_id=$4, passcode=$5, is_active=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, acct.Name, acct.HostEmail, acct.Link, acct.MeetingID, acct.Passcode, acct.IsActive, time.Now(), acct.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *zoomAccountRepository) List(ctx context.Context, activeOnly bool) ([]domain.ZoomAccount, error) {
	query := `SELECT ` + zoomAccountColumns + ` FROM zoom_accounts`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.ZoomAccount
	for rows.Next() {
		acct, err := scanZoomAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acct)
	}
	return accounts, rows.Err()
}

func (r *zoomAccountRepository) SetActive(ctx context.Context, id int32, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE zoom_accounts SET is_active=$1, updated_on=$2 WHERE id=$3`, active, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

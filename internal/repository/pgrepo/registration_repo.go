package pgrepo

import (
	"context"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

type RegistrationRepository struct {
	db uow.DBTX
}

func NewRegistrationRepository(db uow.DBTX) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

const registrationColumns = `id, created_at, updated_at, affiliate_id, program_id, student_name,
	student_email, student_phone, registration_fee, commission_amount, status, confirmed_by, confirmed_at`

func (r *RegistrationRepository) CreateRegistration(
	ctx context.Context,
	args repoargs.CreateRegistration,
) (*domain.StudentRegistration, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO student_registrations
			(affiliate_id, program_id, student_name, student_email, student_phone,
			 registration_fee, commission_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+registrationColumns,
		args.AffiliateID, args.ProgramID, args.StudentName, args.StudentEmail, args.StudentPhone,
		args.RegistrationFee, args.CommissionAmount, domain.RegistrationStatusPending)

	registration, err := scanRegistration(row)
	if err != nil {
		return nil, convertErr(err, "creating registration for affiliate %d", args.AffiliateID)
	}
	return registration, nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id int64) (*domain.StudentRegistration, error) {
	row := r.db.QueryRow(ctx, `SELECT `+registrationColumns+` FROM student_registrations WHERE id = $1`, id)

	registration, err := scanRegistration(row)
	if err != nil {
		return nil, convertErr(err, "finding registration by id %d", id)
	}
	return registration, nil
}

// List returns registrations newest first, optionally filtered by status.
func (r *RegistrationRepository) List(
	ctx context.Context,
	filter repoargs.RegistrationFilter,
) ([]domain.StudentRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM student_registrations`
	var queryArgs []any
	if filter.Status != nil {
		query += ` WHERE status = $1`
		queryArgs = append(queryArgs, *filter.Status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "listing registrations")
	}
	defer rows.Close()

	return collectRegistrations(rows)
}

// GetByAffiliateID returns the affiliate's registrations newest first.
func (r *RegistrationRepository) GetByAffiliateID(
	ctx context.Context,
	affiliateID int64,
) ([]domain.StudentRegistration, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+registrationColumns+` FROM student_registrations
		WHERE affiliate_id = $1 ORDER BY created_at DESC`, affiliateID)
	if err != nil {
		return nil, convertErr(err, "getting registrations by affiliateID %d", affiliateID)
	}
	defer rows.Close()

	return collectRegistrations(rows)
}

// UpdateStatus writes the status together with confirmed_by/confirmed_at; nil
// values clear the columns.
func (r *RegistrationRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.UpdateRegistrationStatus,
) (*domain.StudentRegistration, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE student_registrations
		SET status = $2, confirmed_by = $3, confirmed_at = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+registrationColumns,
		args.ID, args.Status, args.ConfirmedBy, args.ConfirmedAt)

	registration, err := scanRegistration(row)
	if err != nil {
		return nil, convertErr(err, "updating registration %d status to %s", args.ID, args.Status)
	}
	return registration, nil
}

// StatsByAffiliate aggregates one affiliate's registrations; a zero affiliateID
// aggregates across all affiliates.
func (r *RegistrationRepository) StatsByAffiliate(
	ctx context.Context,
	affiliateID int64,
) (*repoargs.RegistrationStats, error) {
	var stats repoargs.RegistrationStats
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'confirmed'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			COALESCE(SUM(registration_fee) FILTER (WHERE status = 'confirmed'), 0),
			COALESCE(SUM(commission_amount) FILTER (WHERE status = 'confirmed'), 0)
		FROM student_registrations
		WHERE $1 = 0 OR affiliate_id = $1`, affiliateID).
		Scan(&stats.Total, &stats.Pending, &stats.Confirmed, &stats.Cancelled,
			&stats.ConfirmedFees, &stats.ConfirmedCommission)
	if err != nil {
		return nil, convertErr(err, "aggregating registration stats for affiliate %d", affiliateID)
	}
	return &stats, nil
}

func collectRegistrations(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]domain.StudentRegistration, error) {
	var registrations []domain.StudentRegistration
	for rows.Next() {
		registration, scanErr := scanRegistration(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning registration row")
		}
		registrations = append(registrations, *registration)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "collecting registrations")
	}
	return registrations, nil
}

func scanRegistration(row rowScanner) (*domain.StudentRegistration, error) {
	var registration domain.StudentRegistration
	err := row.Scan(
		&registration.ID,
		&registration.CreatedAt,
		&registration.UpdatedAt,
		&registration.AffiliateID,
		&registration.ProgramID,
		&registration.StudentName,
		&registration.StudentEmail,
		&registration.StudentPhone,
		&registration.RegistrationFee,
		&registration.CommissionAmount,
		&registration.Status,
		&registration.ConfirmedBy,
		&registration.ConfirmedAt,
	)
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

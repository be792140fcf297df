package pgrepo

import (
	"context"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

type AffiliateRepository struct {
	db uow.DBTX
}

func NewAffiliateRepository(db uow.DBTX) *AffiliateRepository {
	return &AffiliateRepository{db: db}
}

const affiliateColumns = `id, created_at, updated_at, user_id, referral_code, commission_rate,
	payout_method, payout_account_name, payout_account_number, status, approved_by, approved_at`

// CreateAffiliate inserts an affiliate profile in pending status. Returns
// domain.ErrDuplicateKey on a user_id or referral_code conflict.
func (a *AffiliateRepository) CreateAffiliate(
	ctx context.Context,
	args repoargs.CreateAffiliate,
) (*domain.Affiliate, error) {
	row := a.db.QueryRow(ctx, `
		INSERT INTO affiliates
			(user_id, referral_code, commission_rate, payout_method, payout_account_name, payout_account_number, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+affiliateColumns,
		args.UserID, args.ReferralCode, args.CommissionRate, args.PayoutMethod,
		args.PayoutAccountName, args.PayoutAccountNumber, domain.AffiliateStatusPending)

	affiliate, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "creating affiliate for user %d", args.UserID)
	}
	return affiliate, nil
}

func (a *AffiliateRepository) FindByID(ctx context.Context, id int64) (*domain.Affiliate, error) {
	row := a.db.QueryRow(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE id = $1`, id)

	affiliate, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliate by id %d", id)
	}
	return affiliate, nil
}

func (a *AffiliateRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Affiliate, error) {
	row := a.db.QueryRow(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE user_id = $1`, userID)

	affiliate, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliate by userID %d", userID)
	}
	return affiliate, nil
}

func (a *AffiliateRepository) FindByReferralCode(ctx context.Context, code string) (*domain.Affiliate, error) {
	row := a.db.QueryRow(ctx, `SELECT `+affiliateColumns+` FROM affiliates WHERE referral_code = $1`, code)

	affiliate, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliate by referral code `%s`", code)
	}
	return affiliate, nil
}

// List returns affiliates newest first, optionally filtered by status.
func (a *AffiliateRepository) List(
	ctx context.Context,
	status *domain.AffiliateStatusType,
) ([]domain.Affiliate, error) {
	query := `SELECT ` + affiliateColumns + ` FROM affiliates`
	var queryArgs []any
	if status != nil {
		query += ` WHERE status = $1`
		queryArgs = append(queryArgs, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := a.db.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "listing affiliates")
	}
	defer rows.Close()

	var affiliates []domain.Affiliate
	for rows.Next() {
		affiliate, scanErr := scanAffiliate(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning affiliate row")
		}
		affiliates = append(affiliates, *affiliate)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing affiliates")
	}
	return affiliates, nil
}

// UpdateStatus writes the status together with approved_by/approved_at; nil
// values clear the columns, which keeps the approval invariant in one place.
func (a *AffiliateRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.UpdateAffiliateStatus,
) (*domain.Affiliate, error) {
	row := a.db.QueryRow(ctx, `
		UPDATE affiliates
		SET status = $2, approved_by = $3, approved_at = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+affiliateColumns,
		args.ID, args.Status, args.ApprovedBy, args.ApprovedAt)

	affiliate, err := scanAffiliate(row)
	if err != nil {
		return nil, convertErr(err, "updating affiliate %d status to %s", args.ID, args.Status)
	}
	return affiliate, nil
}

func (a *AffiliateRepository) CountByStatus(ctx context.Context) ([]repoargs.StatusCount, error) {
	rows, err := a.db.Query(ctx, `SELECT status, COUNT(*) FROM affiliates GROUP BY status`)
	if err != nil {
		return nil, convertErr(err, "counting affiliates by status")
	}
	defer rows.Close()

	var counts []repoargs.StatusCount
	for rows.Next() {
		var c repoargs.StatusCount
		if scanErr := rows.Scan(&c.Status, &c.Count); scanErr != nil {
			return nil, convertErr(scanErr, "scanning affiliate status count")
		}
		counts = append(counts, c)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "counting affiliates by status")
	}
	return counts, nil
}

func scanAffiliate(row rowScanner) (*domain.Affiliate, error) {
	var affiliate domain.Affiliate
	err := row.Scan(
		&affiliate.ID,
		&affiliate.CreatedAt,
		&affiliate.UpdatedAt,
		&affiliate.UserID,
		&affiliate.ReferralCode,
		&affiliate.CommissionRate,
		&affiliate.PayoutMethod,
		&affiliate.PayoutAccountName,
		&affiliate.PayoutAccountNumber,
		&affiliate.Status,
		&affiliate.ApprovedBy,
		&affiliate.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	return &affiliate, nil
}

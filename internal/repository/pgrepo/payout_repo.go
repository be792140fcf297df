package pgrepo

import (
	"context"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

type PayoutRepository struct {
	db uow.DBTX
}

func NewPayoutRepository(db uow.DBTX) *PayoutRepository {
	return &PayoutRepository{db: db}
}

const payoutColumns = `id, created_at, updated_at, affiliate_id, amount, reference, status,
	processed_by, processed_at, failure_reason`

func (p *PayoutRepository) CreatePayout(
	ctx context.Context,
	args repoargs.CreatePayout,
) (*domain.CommissionPayout, error) {
	row := p.db.QueryRow(ctx, `
		INSERT INTO commission_payouts (affiliate_id, amount, reference, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+payoutColumns,
		args.AffiliateID, args.Amount, args.Reference, domain.PayoutStatusPending)

	payout, err := scanPayout(row)
	if err != nil {
		return nil, convertErr(err, "creating payout for affiliate %d", args.AffiliateID)
	}
	return payout, nil
}

func (p *PayoutRepository) FindByID(ctx context.Context, id int64) (*domain.CommissionPayout, error) {
	row := p.db.QueryRow(ctx, `SELECT `+payoutColumns+` FROM commission_payouts WHERE id = $1`, id)

	payout, err := scanPayout(row)
	if err != nil {
		return nil, convertErr(err, "finding payout by id %d", id)
	}
	return payout, nil
}

// List returns payouts newest first, optionally filtered by status.
func (p *PayoutRepository) List(
	ctx context.Context,
	filter repoargs.PayoutFilter,
) ([]domain.CommissionPayout, error) {
	query := `SELECT ` + payoutColumns + ` FROM commission_payouts`
	var queryArgs []any
	if filter.Status != nil {
		query += ` WHERE status = $1`
		queryArgs = append(queryArgs, *filter.Status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "listing payouts")
	}
	defer rows.Close()

	return collectPayouts(rows)
}

func (p *PayoutRepository) GetByAffiliateID(
	ctx context.Context,
	affiliateID int64,
) ([]domain.CommissionPayout, error) {
	rows, err := p.db.Query(ctx, `
		SELECT `+payoutColumns+` FROM commission_payouts
		WHERE affiliate_id = $1 ORDER BY created_at DESC`, affiliateID)
	if err != nil {
		return nil, convertErr(err, "getting payouts by affiliateID %d", affiliateID)
	}
	defer rows.Close()

	return collectPayouts(rows)
}

func (p *PayoutRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.UpdatePayoutStatus,
) (*domain.CommissionPayout, error) {
	row := p.db.QueryRow(ctx, `
		UPDATE commission_payouts
		SET status = $2, processed_by = COALESCE($3, processed_by), processed_at = $4,
		    failure_reason = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+payoutColumns,
		args.ID, args.Status, args.ProcessedBy, args.ProcessedAt, args.FailureReason)

	payout, err := scanPayout(row)
	if err != nil {
		return nil, convertErr(err, "updating payout %d status to %s", args.ID, args.Status)
	}
	return payout, nil
}

// GetBalance returns the three sums the balance formula needs: confirmed
// commission earned, completed payouts and payouts still held (pending or
// processing). A zero affiliateID aggregates across all affiliates.
func (p *PayoutRepository) GetBalance(
	ctx context.Context,
	affiliateID int64,
) (*repoargs.BalanceAggregation, error) {
	var agr repoargs.BalanceAggregation
	err := p.db.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT SUM(commission_amount) FROM student_registrations
				WHERE ($1 = 0 OR affiliate_id = $1) AND status = 'confirmed'), 0),
			COALESCE((SELECT SUM(amount) FROM commission_payouts
				WHERE ($1 = 0 OR affiliate_id = $1) AND status = 'completed'), 0),
			COALESCE((SELECT SUM(amount) FROM commission_payouts
				WHERE ($1 = 0 OR affiliate_id = $1) AND status IN ('pending', 'processing')), 0)`, affiliateID).
		Scan(&agr.ConfirmedCommission, &agr.CompletedPayouts, &agr.HeldPayouts)
	if err != nil {
		return nil, convertErr(err, "aggregating balance for affiliate %d", affiliateID)
	}
	return &agr, nil
}

// GetForDisbursement returns processing payouts joined with their destination
// accounts, oldest first.
func (p *PayoutRepository) GetForDisbursement(
	ctx context.Context,
	limit uint,
) ([]domain.PayoutDisbursement, error) {
	rows, err := p.db.Query(ctx, `
		SELECT p.id, p.created_at, p.updated_at, p.affiliate_id, p.amount, p.reference, p.status,
		       p.processed_by, p.processed_at, p.failure_reason,
		       a.payout_method, a.payout_account_name, a.payout_account_number
		FROM commission_payouts p
		JOIN affiliates a ON a.id = p.affiliate_id
		WHERE p.status = 'processing'
		ORDER BY p.created_at
		LIMIT $1`, int64(limit))
	if err != nil {
		return nil, convertErr(err, "getting payouts for disbursement")
	}
	defer rows.Close()

	var disbursements []domain.PayoutDisbursement
	for rows.Next() {
		var d domain.PayoutDisbursement
		scanErr := rows.Scan(
			&d.Payout.ID,
			&d.Payout.CreatedAt,
			&d.Payout.UpdatedAt,
			&d.Payout.AffiliateID,
			&d.Payout.Amount,
			&d.Payout.Reference,
			&d.Payout.Status,
			&d.Payout.ProcessedBy,
			&d.Payout.ProcessedAt,
			&d.Payout.FailureReason,
			&d.Method,
			&d.AccountName,
			&d.AccountNumber,
		)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning payout disbursement row")
		}
		disbursements = append(disbursements, d)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting payouts for disbursement")
	}
	return disbursements, nil
}

func (p *PayoutRepository) CountByStatus(ctx context.Context) ([]repoargs.StatusCount, error) {
	rows, err := p.db.Query(ctx, `SELECT status, COUNT(*) FROM commission_payouts GROUP BY status`)
	if err != nil {
		return nil, convertErr(err, "counting payouts by status")
	}
	defer rows.Close()

	var counts []repoargs.StatusCount
	for rows.Next() {
		var c repoargs.StatusCount
		if scanErr := rows.Scan(&c.Status, &c.Count); scanErr != nil {
			return nil, convertErr(scanErr, "scanning payout status count")
		}
		counts = append(counts, c)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "counting payouts by status")
	}
	return counts, nil
}

func collectPayouts(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]domain.CommissionPayout, error) {
	var payouts []domain.CommissionPayout
	for rows.Next() {
		payout, scanErr := scanPayout(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning payout row")
		}
		payouts = append(payouts, *payout)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "collecting payouts")
	}
	return payouts, nil
}

func scanPayout(row rowScanner) (*domain.CommissionPayout, error) {
	var payout domain.CommissionPayout
	err := row.Scan(
		&payout.ID,
		&payout.CreatedAt,
		&payout.UpdatedAt,
		&payout.AffiliateID,
		&payout.Amount,
		&payout.Reference,
		&payout.Status,
		&payout.ProcessedBy,
		&payout.ProcessedAt,
		&payout.FailureReason,
	)
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

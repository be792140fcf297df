package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

// MinPayoutAmount is the smallest payout an affiliate may request, in IDR.
var MinPayoutAmount = decimal.NewFromInt(100000)

// Balance is the money view of an affiliate: everything earned through
// confirmed registrations, what has already been paid out, what is locked in
// pending or processing payouts, and what is left. Withdrawable equals
// Available once it reaches MinPayoutAmount, zero below it.
type Balance struct {
	TotalEarned  decimal.Decimal
	PaidOut      decimal.Decimal
	OnHold       decimal.Decimal
	Available    decimal.Decimal
	Withdrawable decimal.Decimal
}

type PayoutService struct {
	uow           uow.UOW
	payoutRepo    PayoutRepository
	affiliateRepo AffiliateRepository
}

func NewPayoutService(u uow.UOW) (*PayoutService, error) {
	payoutRepo, payoutRepoErr := uow.GetRepositoryAs[PayoutRepository](
		u, uow.RepositoryName(repoargs.PayoutRepoName))
	if payoutRepoErr != nil {
		return nil, payoutRepoErr
	}
	affiliateRepo, affRepoErr := uow.GetRepositoryAs[AffiliateRepository](
		u, uow.RepositoryName(repoargs.AffiliateRepoName))
	if affRepoErr != nil {
		return nil, affRepoErr
	}
	return &PayoutService{
		uow:           u,
		payoutRepo:    payoutRepo,
		affiliateRepo: affiliateRepo,
	}, nil
}

func balanceFromAggregation(agr *repoargs.BalanceAggregation) *Balance {
	available := agr.ConfirmedCommission.Sub(agr.CompletedPayouts).Sub(agr.HeldPayouts)
	withdrawable := decimal.Zero
	if available.GreaterThanOrEqual(MinPayoutAmount) {
		withdrawable = available
	}
	return &Balance{
		TotalEarned:  agr.ConfirmedCommission,
		PaidOut:      agr.CompletedPayouts,
		OnHold:       agr.HeldPayouts,
		Available:    available,
		Withdrawable: withdrawable,
	}
}

// GetBalanceByUserID computes the balance of the affiliate owned by userID.
func (p *PayoutService) GetBalanceByUserID(ctx context.Context, userID int64) (*Balance, error) {
	affiliate, affErr := p.affiliateRepo.FindByUserID(ctx, userID)
	if affErr != nil {
		return nil, affErr //nolint:wrapcheck
	}
	agr, balErr := p.payoutRepo.GetBalance(ctx, affiliate.ID)
	if balErr != nil {
		return nil, balErr //nolint:wrapcheck
	}
	return balanceFromAggregation(agr), nil
}

// RequestByUserID creates a pending payout for the affiliate owned by userID.
// The affiliate must be approved, the amount must reach MinPayoutAmount and
// may not exceed the available balance. Balance check and insert share one
// transaction so a concurrent request cannot overdraw.
func (p *PayoutService) RequestByUserID(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (*domain.CommissionPayout, error) {
	if amount.LessThan(MinPayoutAmount) {
		return nil, domain.ErrBelowMinimumPayout
	}

	var payout *domain.CommissionPayout
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		affiliateRepo, affRepoErr := uow.GetAs[AffiliateRepository](
			tx, uow.RepositoryName(repoargs.AffiliateRepoName))
		if affRepoErr != nil {
			return affRepoErr //nolint:wrapcheck
		}
		payoutRepo, payoutRepoErr := uow.GetAs[PayoutRepository](
			tx, uow.RepositoryName(repoargs.PayoutRepoName))
		if payoutRepoErr != nil {
			return payoutRepoErr //nolint:wrapcheck
		}

		affiliate, affErr := affiliateRepo.FindByUserID(c, userID)
		if affErr != nil {
			return affErr //nolint:wrapcheck
		}
		if affiliate.Status != domain.AffiliateStatusApproved {
			return domain.ErrAffiliateNotApproved
		}

		agr, balErr := payoutRepo.GetBalance(c, affiliate.ID)
		if balErr != nil {
			return balErr //nolint:wrapcheck
		}
		available := agr.ConfirmedCommission.Sub(agr.CompletedPayouts).Sub(agr.HeldPayouts)
		if amount.GreaterThan(available) {
			return domain.ErrNotEnoughBalance
		}

		var createErr error
		payout, createErr = payoutRepo.CreatePayout(c, repoargs.CreatePayout{
			AffiliateID: affiliate.ID,
			Amount:      amount,
			Reference:   uuid.New(),
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("requesting payout: %w", txErr)
	}
	return payout, nil
}

// GetByUserID returns the payouts of the affiliate owned by userID, newest
// first.
func (p *PayoutService) GetByUserID(ctx context.Context, userID int64) ([]domain.CommissionPayout, error) {
	affiliate, affErr := p.affiliateRepo.FindByUserID(ctx, userID)
	if affErr != nil {
		return nil, affErr //nolint:wrapcheck
	}
	payouts, err := p.payoutRepo.GetByAffiliateID(ctx, affiliate.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payouts, nil
}

// List returns payouts newest first, optionally filtered by status.
func (p *PayoutService) List(ctx context.Context, filter repoargs.PayoutFilter) ([]domain.CommissionPayout, error) {
	payouts, err := p.payoutRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payouts, nil
}

// UpdateStatus moves a payout through its status machine on behalf of adminID.
// processed_by is stamped when the payout enters processing, processed_at when
// it reaches a terminal state. failureReason is stored only for failed.
func (p *PayoutService) UpdateStatus(
	ctx context.Context,
	id int64,
	target domain.PayoutStatusType,
	adminID int64,
	failureReason string,
) (*domain.CommissionPayout, error) {
	var updated *domain.CommissionPayout
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[PayoutRepository](tx, uow.RepositoryName(repoargs.PayoutRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		payout, findErr := repo.FindByID(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if !payout.Status.CanTransitionTo(target) {
			return domain.NewInvalidTransitionError(string(payout.Status), string(target))
		}

		args := repoargs.UpdatePayoutStatus{
			ID:     id,
			Status: target,
		}
		if target == domain.PayoutStatusProcessing || payout.ProcessedBy == nil {
			args.ProcessedBy = &adminID
		}
		if target.IsTerminal() {
			now := time.Now()
			args.ProcessedAt = &now
		}
		if target == domain.PayoutStatusFailed {
			args.FailureReason = failureReason
		}

		var updErr error
		updated, updErr = repo.UpdateStatus(c, args)
		return updErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("updating payout status: %w", txErr)
	}
	return updated, nil
}

// PayoutsForDisbursement returns up to limit processing payouts joined with
// their destination accounts, oldest first.
func (p *PayoutService) PayoutsForDisbursement(
	ctx context.Context,
	limit uint,
) ([]domain.PayoutDisbursement, error) {
	disbursements, err := p.payoutRepo.GetForDisbursement(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return disbursements, nil
}

// CompleteDisbursement finishes a processing payout after the gateway call.
// Only processed_at is stamped here; processed_by keeps the admin who started
// processing.
func (p *PayoutService) CompleteDisbursement(
	ctx context.Context,
	id int64,
	success bool,
	failureReason string,
) (*domain.CommissionPayout, error) {
	var updated *domain.CommissionPayout
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[PayoutRepository](tx, uow.RepositoryName(repoargs.PayoutRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		payout, findErr := repo.FindByID(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		target := domain.PayoutStatusCompleted
		if !success {
			target = domain.PayoutStatusFailed
		}
		if !payout.Status.CanTransitionTo(target) {
			return domain.NewInvalidTransitionError(string(payout.Status), string(target))
		}

		now := time.Now()
		args := repoargs.UpdatePayoutStatus{
			ID:          id,
			Status:      target,
			ProcessedAt: &now,
		}
		if !success {
			args.FailureReason = failureReason
		}

		var updErr error
		updated, updErr = repo.UpdateStatus(c, args)
		return updErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("completing disbursement: %w", txErr)
	}
	return updated, nil
}

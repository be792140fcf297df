package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

type AffiliateService struct {
	uow           uow.UOW
	affiliateRepo AffiliateRepository
}

func NewAffiliateService(u uow.UOW) (*AffiliateService, error) {
	affiliateRepo, err := uow.GetRepositoryAs[AffiliateRepository](u, uow.RepositoryName(repoargs.AffiliateRepoName))
	if err != nil {
		return nil, err
	}
	return &AffiliateService{
		uow:           u,
		affiliateRepo: affiliateRepo,
	}, nil
}

func (a *AffiliateService) GetByUserID(ctx context.Context, userID int64) (*domain.Affiliate, error) {
	affiliate, err := a.affiliateRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return affiliate, nil
}

// List returns affiliates newest first, optionally filtered by status.
func (a *AffiliateService) List(
	ctx context.Context,
	status *domain.AffiliateStatusType,
) ([]domain.Affiliate, error) {
	affiliates, err := a.affiliateRepo.List(ctx, status)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return affiliates, nil
}

// UpdateStatus moves an affiliate through its approval machine on behalf of
// adminID. approved_by/approved_at are set only while the target status is
// approved and cleared on every other transition. Returns
// *domain.InvalidTransitionError when the move is not allowed.
func (a *AffiliateService) UpdateStatus(
	ctx context.Context,
	id int64,
	target domain.AffiliateStatusType,
	adminID int64,
) (*domain.Affiliate, error) {
	var updated *domain.Affiliate
	txErr := a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[AffiliateRepository](tx, uow.RepositoryName(repoargs.AffiliateRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		affiliate, findErr := repo.FindByID(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if !affiliate.Status.CanTransitionTo(target) {
			return domain.NewInvalidTransitionError(string(affiliate.Status), string(target))
		}

		args := repoargs.UpdateAffiliateStatus{
			ID:     id,
			Status: target,
		}
		if target == domain.AffiliateStatusApproved {
			now := time.Now()
			args.ApprovedBy = &adminID
			args.ApprovedAt = &now
		}

		var updErr error
		updated, updErr = repo.UpdateStatus(c, args)
		return updErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("updating affiliate status: %w", txErr)
	}
	return updated, nil
}

package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

// AdminStats is the admin dashboard summary. CommissionLiability is confirmed
// commission not yet paid out.
type AdminStats struct {
	AffiliatesByStatus   map[string]int64
	PayoutsByStatus      map[string]int64
	ActivePrograms       int64
	Registrations        repoargs.RegistrationStats
	ConfirmedRevenue     decimal.Decimal
	CommissionLiability  decimal.Decimal
	CompletedPayoutTotal decimal.Decimal
}

// AffiliateStats is the affiliate dashboard summary.
type AffiliateStats struct {
	Registrations repoargs.RegistrationStats
	Balance       Balance
}

type StatsService struct {
	affiliateRepo    AffiliateRepository
	programRepo      ProgramRepository
	registrationRepo RegistrationRepository
	payoutRepo       PayoutRepository
}

func NewStatsService(u uow.UOW) (*StatsService, error) {
	affiliateRepo, affRepoErr := uow.GetRepositoryAs[AffiliateRepository](
		u, uow.RepositoryName(repoargs.AffiliateRepoName))
	if affRepoErr != nil {
		return nil, affRepoErr
	}
	programRepo, progRepoErr := uow.GetRepositoryAs[ProgramRepository](
		u, uow.RepositoryName(repoargs.ProgramRepoName))
	if progRepoErr != nil {
		return nil, progRepoErr
	}
	registrationRepo, regRepoErr := uow.GetRepositoryAs[RegistrationRepository](
		u, uow.RepositoryName(repoargs.RegistrationRepoName))
	if regRepoErr != nil {
		return nil, regRepoErr
	}
	payoutRepo, payoutRepoErr := uow.GetRepositoryAs[PayoutRepository](
		u, uow.RepositoryName(repoargs.PayoutRepoName))
	if payoutRepoErr != nil {
		return nil, payoutRepoErr
	}
	return &StatsService{
		affiliateRepo:    affiliateRepo,
		programRepo:      programRepo,
		registrationRepo: registrationRepo,
		payoutRepo:       payoutRepo,
	}, nil
}

// AdminStats aggregates the whole system for the admin dashboard.
func (s *StatsService) AdminStats(ctx context.Context) (*AdminStats, error) {
	affiliateCounts, affErr := s.affiliateRepo.CountByStatus(ctx)
	if affErr != nil {
		return nil, affErr //nolint:wrapcheck
	}
	payoutCounts, payoutErr := s.payoutRepo.CountByStatus(ctx)
	if payoutErr != nil {
		return nil, payoutErr //nolint:wrapcheck
	}
	activePrograms, progErr := s.programRepo.CountActive(ctx)
	if progErr != nil {
		return nil, progErr //nolint:wrapcheck
	}
	// Zero affiliate id aggregates across all affiliates.
	registrations, regErr := s.registrationRepo.StatsByAffiliate(ctx, 0)
	if regErr != nil {
		return nil, regErr //nolint:wrapcheck
	}
	balance, balErr := s.payoutRepo.GetBalance(ctx, 0)
	if balErr != nil {
		return nil, balErr //nolint:wrapcheck
	}

	return &AdminStats{
		AffiliatesByStatus:   countsToMap(affiliateCounts),
		PayoutsByStatus:      countsToMap(payoutCounts),
		ActivePrograms:       activePrograms,
		Registrations:        *registrations,
		ConfirmedRevenue:     registrations.ConfirmedFees,
		CommissionLiability:  registrations.ConfirmedCommission.Sub(balance.CompletedPayouts),
		CompletedPayoutTotal: balance.CompletedPayouts,
	}, nil
}

// AffiliateStatsByUserID aggregates the dashboard of the affiliate owned by
// userID.
func (s *StatsService) AffiliateStatsByUserID(ctx context.Context, userID int64) (*AffiliateStats, error) {
	affiliate, affErr := s.affiliateRepo.FindByUserID(ctx, userID)
	if affErr != nil {
		return nil, affErr //nolint:wrapcheck
	}
	registrations, regErr := s.registrationRepo.StatsByAffiliate(ctx, affiliate.ID)
	if regErr != nil {
		return nil, regErr //nolint:wrapcheck
	}
	agr, balErr := s.payoutRepo.GetBalance(ctx, affiliate.ID)
	if balErr != nil {
		return nil, balErr //nolint:wrapcheck
	}
	return &AffiliateStats{
		Registrations: *registrations,
		Balance:       *balanceFromAggregation(agr),
	}, nil
}

func countsToMap(counts []repoargs.StatusCount) map[string]int64 {
	m := make(map[string]int64, len(counts))
	for _, c := range counts {
		m[c.Status] = c.Count
	}
	return m
}

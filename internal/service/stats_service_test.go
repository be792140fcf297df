package service

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/internal/service/mocks"
	"github.com/kursusin/affiliate-backend/pkg/uow"
	uowmocks "github.com/kursusin/affiliate-backend/pkg/uow/mocks"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockUOW              *uowmocks.MockUOW
	mockAffiliateRepo    *mocks.MockAffiliateRepository
	mockProgramRepo      *mocks.MockProgramRepository
	mockRegistrationRepo *mocks.MockRegistrationRepository
	mockPayoutRepo       *mocks.MockPayoutRepository
	statsService         *StatsService
}

func TestStatsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

func (s *StatsServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockAffiliateRepo = mocks.NewMockAffiliateRepository(mockCtrl)
	s.mockProgramRepo = mocks.NewMockProgramRepository(mockCtrl)
	s.mockRegistrationRepo = mocks.NewMockRegistrationRepository(mockCtrl)
	s.mockPayoutRepo = mocks.NewMockPayoutRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AffiliateRepoName)).
		Return(s.mockAffiliateRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ProgramRepoName)).
		Return(s.mockProgramRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RegistrationRepoName)).
		Return(s.mockRegistrationRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PayoutRepoName)).
		Return(s.mockPayoutRepo, nil).AnyTimes()

	statsService, servErr := NewStatsService(s.mockUOW)
	s.Require().NoError(servErr)
	s.statsService = statsService
}

func (s *StatsServiceTestSuite) TestAdminStats() {
	s.mockAffiliateRepo.EXPECT().CountByStatus(gomock.Any()).
		Return([]repoargs.StatusCount{
			{Status: "pending", Count: 3},
			{Status: "approved", Count: 12},
		}, nil)
	s.mockPayoutRepo.EXPECT().CountByStatus(gomock.Any()).
		Return([]repoargs.StatusCount{
			{Status: "pending", Count: 2},
			{Status: "completed", Count: 7},
		}, nil)
	s.mockProgramRepo.EXPECT().CountActive(gomock.Any()).Return(int64(5), nil)

	// Zero affiliate id means the whole system.
	s.mockRegistrationRepo.EXPECT().StatsByAffiliate(gomock.Any(), int64(0)).
		Return(&repoargs.RegistrationStats{
			Total:               20,
			Pending:             5,
			Confirmed:           13,
			Cancelled:           2,
			ConfirmedFees:       decimal.NewFromInt(32500000),
			ConfirmedCommission: decimal.NewFromInt(3250000),
		}, nil)
	s.mockPayoutRepo.EXPECT().GetBalance(gomock.Any(), int64(0)).
		Return(&repoargs.BalanceAggregation{
			ConfirmedCommission: decimal.NewFromInt(3250000),
			CompletedPayouts:    decimal.NewFromInt(1000000),
			HeldPayouts:         decimal.NewFromInt(500000),
		}, nil)

	stats, err := s.statsService.AdminStats(s.T().Context())
	s.Require().NoError(err)

	s.Equal(int64(12), stats.AffiliatesByStatus["approved"])
	s.Equal(int64(7), stats.PayoutsByStatus["completed"])
	s.Equal(int64(5), stats.ActivePrograms)
	s.Equal(int64(20), stats.Registrations.Total)
	s.True(stats.ConfirmedRevenue.Equal(decimal.NewFromInt(32500000)))
	s.True(stats.CommissionLiability.Equal(decimal.NewFromInt(2250000)))
	s.True(stats.CompletedPayoutTotal.Equal(decimal.NewFromInt(1000000)))
}

func (s *StatsServiceTestSuite) TestAffiliateStatsByUserID() {
	affiliate := domain.Affiliate{ID: 10, UserID: 1, Status: domain.AffiliateStatusApproved}

	s.mockAffiliateRepo.EXPECT().FindByUserID(gomock.Any(), affiliate.UserID).
		Return(&affiliate, nil)
	s.mockRegistrationRepo.EXPECT().StatsByAffiliate(gomock.Any(), affiliate.ID).
		Return(&repoargs.RegistrationStats{
			Total:               4,
			Confirmed:           3,
			Pending:             1,
			ConfirmedFees:       decimal.NewFromInt(7500000),
			ConfirmedCommission: decimal.NewFromInt(750000),
		}, nil)
	s.mockPayoutRepo.EXPECT().GetBalance(gomock.Any(), affiliate.ID).
		Return(&repoargs.BalanceAggregation{
			ConfirmedCommission: decimal.NewFromInt(750000),
			CompletedPayouts:    decimal.NewFromInt(200000),
			HeldPayouts:         decimal.Zero,
		}, nil)

	stats, err := s.statsService.AffiliateStatsByUserID(s.T().Context(), affiliate.UserID)
	s.Require().NoError(err)

	s.Equal(int64(4), stats.Registrations.Total)
	s.True(stats.Balance.Available.Equal(decimal.NewFromInt(550000)))
	s.True(stats.Balance.Withdrawable.Equal(decimal.NewFromInt(550000)))
}

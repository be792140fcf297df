package api

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/logger"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/internal/service"
	"github.com/kursusin/affiliate-backend/internal/transport/api/mocks"
	"github.com/kursusin/affiliate-backend/internal/transport/api/testutils"
	"github.com/kursusin/affiliate-backend/internal/transport/api/tokens"
)

type StatsHandlerTestSuite struct {
	suite.Suite
	mockStatsService *mocks.MockStatsServicer
	router           *gin.Engine
	jwtSecret        []byte

	affiliateToken string
	adminToken     string
}

func TestStatsHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerTestSuite))
}

func (s *StatsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockStatsService = mocks.NewMockStatsServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		StatsService: s.mockStatsService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router

	affiliateToken, affErr := tokens.GenerateUserJWT(1, domain.RoleAffiliate, time.Hour, s.jwtSecret)
	s.Require().NoError(affErr)
	s.affiliateToken = affiliateToken

	adminToken, admErr := tokens.GenerateUserJWT(777, domain.RoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(admErr)
	s.adminToken = adminToken
}

func (s *StatsHandlerTestSuite) TestAdminStats() {
	s.mockStatsService.EXPECT().
		AdminStats(gomock.Any()).
		Return(&service.AdminStats{
			AffiliatesByStatus: map[string]int64{"approved": 12},
			PayoutsByStatus:    map[string]int64{"completed": 7},
			ActivePrograms:     5,
			Registrations: repoargs.RegistrationStats{
				Total:               20,
				Confirmed:           13,
				ConfirmedFees:       decimal.NewFromInt(32500000),
				ConfirmedCommission: decimal.NewFromInt(3250000),
			},
			ConfirmedRevenue:     decimal.NewFromInt(32500000),
			CommissionLiability:  decimal.NewFromInt(2250000),
			CompletedPayoutTotal: decimal.NewFromInt(1000000),
		}, nil)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AdminStatsRoute,
	}
	res, err := testutils.MakeRequest(args, testutils.WithBearerToken(s.adminToken))
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body AdminStatsResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal(int64(12), body.AffiliatesByStatus["approved"])
	s.Equal(int64(5), body.ActivePrograms)
	s.Equal(int64(20), body.Registrations.Total)
	s.InDelta(2250000, body.CommissionLiability, 0.001)
}

func (s *StatsHandlerTestSuite) TestAffiliateStats() {
	first := s.mockStatsService.EXPECT().
		AffiliateStatsByUserID(gomock.Any(), int64(1)).
		Return(&service.AffiliateStats{
			Registrations: repoargs.RegistrationStats{
				Total:               4,
				Confirmed:           3,
				Pending:             1,
				ConfirmedFees:       decimal.NewFromInt(7500000),
				ConfirmedCommission: decimal.NewFromInt(750000),
			},
			Balance: service.Balance{
				TotalEarned:  decimal.NewFromInt(750000),
				PaidOut:      decimal.NewFromInt(200000),
				Available:    decimal.NewFromInt(550000),
				Withdrawable: decimal.NewFromInt(550000),
			},
		}, nil)
	s.mockStatsService.EXPECT().
		AffiliateStatsByUserID(gomock.Any(), int64(1)).
		Return(nil, domain.ErrRecordNotFound).After(first)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{name: "ok", jwtToken: s.affiliateToken, wantStatus: http.StatusOK},
		{name: "no profile", jwtToken: s.affiliateToken, wantStatus: http.StatusNotFound},
		{name: "admin token rejected", jwtToken: s.adminToken, wantStatus: http.StatusForbidden},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + AffiliateStatsRoute,
			}

			res, err := testutils.MakeRequest(args, testutils.WithBearerToken(t.jwtToken))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body AffiliateStatsResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(int64(4), body.Registrations.Total)
				s.InDelta(550000, body.Balance.Withdrawable, 0.001)
			}
		})
	}
}

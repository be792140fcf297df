package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/logger"
	"github.com/kursusin/affiliate-backend/internal/service"
	"github.com/kursusin/affiliate-backend/internal/transport/api/mocks"
	"github.com/kursusin/affiliate-backend/internal/transport/api/testutils"
	"github.com/kursusin/affiliate-backend/internal/transport/api/tokens"
)

type PayoutsHandlerTestSuite struct {
	suite.Suite
	mockPayoutService *mocks.MockPayoutServicer
	router            *gin.Engine
	jwtSecret         []byte

	affiliateToken string
	adminToken     string
}

func TestPayoutsHandlerSuite(t *testing.T) {
	suite.Run(t, new(PayoutsHandlerTestSuite))
}

func (s *PayoutsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockPayoutService = mocks.NewMockPayoutServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		PayoutService: s.mockPayoutService,
		JWTSecretKey:  s.jwtSecret,
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

func (s *PayoutsHandlerTestSuite) TestBalance() {
	s.mockPayoutService.EXPECT().
		GetBalanceByUserID(gomock.Any(), int64(1)).
		Return(&service.Balance{
			TotalEarned:  decimal.NewFromInt(500000),
			PaidOut:      decimal.NewFromInt(150000),
			OnHold:       decimal.NewFromInt(100000),
			Available:    decimal.NewFromInt(250000),
			Withdrawable: decimal.NewFromInt(250000),
		}, nil)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AffiliateBalanceRoute,
	}
	res, err := testutils.MakeRequest(args, testutils.WithBearerToken(s.affiliateToken))
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body BalanceResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.InDelta(500000, body.TotalEarned, 0.001)
	s.InDelta(150000, body.PaidOut, 0.001)
	s.InDelta(100000, body.OnHold, 0.001)
	s.InDelta(250000, body.Available, 0.001)
	s.InDelta(250000, body.Withdrawable, 0.001)
}

func (s *PayoutsHandlerTestSuite) TestBalance_NoProfile() {
	s.mockPayoutService.EXPECT().
		GetBalanceByUserID(gomock.Any(), int64(1)).
		Return(nil, domain.ErrRecordNotFound)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AffiliateBalanceRoute,
	}
	res, err := testutils.MakeRequest(args, testutils.WithBearerToken(s.affiliateToken))
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *PayoutsHandlerTestSuite) TestRequest() {
	s.mockPayoutService.EXPECT().
		RequestByUserID(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal) (*domain.CommissionPayout, error) {
			switch {
			case amount.Equal(decimal.NewFromInt(50000)):
				return nil, domain.ErrBelowMinimumPayout
			case amount.Equal(decimal.NewFromInt(900000)):
				return nil, domain.ErrNotEnoughBalance
			case amount.Equal(decimal.NewFromInt(666)):
				return nil, domain.ErrAffiliateNotApproved
			default:
				return &domain.CommissionPayout{
					ID:          1,
					AffiliateID: 10,
					Amount:      amount,
					Reference:   uuid.New(),
					Status:      domain.PayoutStatusPending,
				}, nil
			}
		}).AnyTimes()

	cases := []struct {
		name       string
		body       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "ok",
			body:       `{"amount": 200000}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusCreated,
		}, {
			name:       "below minimum",
			body:       `{"amount": 50000}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "not enough balance",
			body:       `{"amount": 900000}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "not approved",
			body:       `{"amount": 666}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusForbidden,
		}, {
			name:       "negative amount",
			body:       `{"amount": -1000}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "not authorized",
			body:       `{"amount": 200000}`,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "admin token rejected",
			body:       `{"amount": 200000}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + AffiliatePayoutsRoute,
				Body:   bytes.NewReader([]byte(t.body)),
			}

			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithBearerToken(t.jwtToken))
			}

			res, err := testutils.MakeRequest(args, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *PayoutsHandlerTestSuite) TestOwnIndex() {
	payouts := []domain.CommissionPayout{
		{
			ID:          1,
			AffiliateID: 10,
			Amount:      decimal.NewFromInt(200000),
			Reference:   uuid.New(),
			Status:      domain.PayoutStatusPending,
			CreatedAt:   time.Now(),
		},
	}

	first := s.mockPayoutService.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(payouts, nil)
	s.mockPayoutService.EXPECT().GetByUserID(gomock.Any(), int64(1)).
		Return([]domain.CommissionPayout{}, nil).After(first)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{name: "ok", jwtToken: s.affiliateToken, wantStatus: http.StatusOK},
		{name: "no payouts", jwtToken: s.affiliateToken, wantStatus: http.StatusNoContent},
		{name: "not authorized", wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + AffiliatePayoutsRoute,
			}

			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithBearerToken(t.jwtToken))
			}

			res, err := testutils.MakeRequest(args, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *PayoutsHandlerTestSuite) TestUpdateStatus() {
	s.mockPayoutService.EXPECT().
		UpdateStatus(gomock.Any(), int64(1), domain.PayoutStatusProcessing, int64(777), "").
		Return(&domain.CommissionPayout{ID: 1, Status: domain.PayoutStatusProcessing}, nil)
	s.mockPayoutService.EXPECT().
		UpdateStatus(gomock.Any(), int64(2), domain.PayoutStatusCompleted, int64(777), "").
		Return(nil, domain.NewInvalidTransitionError("pending", "completed"))
	s.mockPayoutService.EXPECT().
		UpdateStatus(gomock.Any(), int64(404), domain.PayoutStatusProcessing, int64(777), "").
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		url        string
		body       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "ok",
			url:        "/api/admin/payouts/1/status",
			body:       `{"status": "processing"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "invalid transition",
			url:        "/api/admin/payouts/2/status",
			body:       `{"status": "completed"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusConflict,
		}, {
			name:       "not found",
			url:        "/api/admin/payouts/404/status",
			body:       `{"status": "processing"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "unknown status",
			url:        "/api/admin/payouts/1/status",
			body:       `{"status": "paid"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "bad id",
			url:        "/api/admin/payouts/abc/status",
			body:       `{"status": "processing"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "affiliate token rejected",
			url:        "/api/admin/payouts/1/status",
			body:       `{"status": "processing"}`,
			jwtToken:   s.affiliateToken,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPatch,
				URL:    t.url,
				Body:   bytes.NewReader([]byte(t.body)),
			}

			res, err := testutils.MakeRequest(args, testutils.WithBearerToken(t.jwtToken))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

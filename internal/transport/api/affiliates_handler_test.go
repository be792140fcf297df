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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/logger"
	"github.com/kursusin/affiliate-backend/internal/transport/api/mocks"
	"github.com/kursusin/affiliate-backend/internal/transport/api/testutils"
	"github.com/kursusin/affiliate-backend/internal/transport/api/tokens"
)

type AffiliatesHandlerTestSuite struct {
	suite.Suite
	mockAffiliateService *mocks.MockAffiliateServicer
	router               *gin.Engine
	jwtSecret            []byte

	affiliateToken string
	adminToken     string
}

func TestAffiliatesHandlerSuite(t *testing.T) {
	suite.Run(t, new(AffiliatesHandlerTestSuite))
}

func (s *AffiliatesHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockAffiliateService = mocks.NewMockAffiliateServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:           logger.New(os.Stdout),
		AffiliateService: s.mockAffiliateService,
		JWTSecretKey:     s.jwtSecret,
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

func (s *AffiliatesHandlerTestSuite) TestProfile() {
	affiliate := domain.Affiliate{
		ID:             10,
		UserID:         1,
		ReferralCode:   "ABCD2345",
		CommissionRate: decimal.NewFromFloat(0.10),
		PayoutMethod:   domain.PayoutMethodBankTransfer,
		Status:         domain.AffiliateStatusApproved,
		CreatedAt:      time.Now(),
	}

	first := s.mockAffiliateService.EXPECT().GetByUserID(gomock.Any(), int64(1)).
		Return(&affiliate, nil)
	s.mockAffiliateService.EXPECT().GetByUserID(gomock.Any(), int64(1)).
		Return(nil, domain.ErrRecordNotFound).After(first)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{name: "ok", jwtToken: s.affiliateToken, wantStatus: http.StatusOK},
		{name: "no profile", jwtToken: s.affiliateToken, wantStatus: http.StatusNotFound},
		{name: "not authorized", wantStatus: http.StatusUnauthorized},
		{name: "admin token rejected", jwtToken: s.adminToken, wantStatus: http.StatusForbidden},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + AffiliateProfileRoute,
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

			if t.wantStatus == http.StatusOK {
				var body AffiliateResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(affiliate.ReferralCode, body.ReferralCode)
				s.Equal("0.1", body.CommissionRate)
			}
		})
	}
}

func (s *AffiliatesHandlerTestSuite) TestIndex() {
	affiliates := []domain.Affiliate{
		{ID: 1, Status: domain.AffiliateStatusPending},
		{ID: 2, Status: domain.AffiliateStatusPending},
	}

	s.mockAffiliateService.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, status *domain.AffiliateStatusType) ([]domain.Affiliate, error) {
			s.Require().NotNil(status)
			s.Equal(domain.AffiliateStatusPending, *status)
			return affiliates, nil
		})
	s.mockAffiliateService.EXPECT().
		List(gomock.Any(), nil).
		Return(affiliates, nil)

	cases := []struct {
		name string
		url  string
	}{
		{name: "filtered by status", url: RouteGroup + AdminAffiliatesRoute + "?status=pending"},
		{name: "unfiltered", url: RouteGroup + AdminAffiliatesRoute},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			}

			res, err := testutils.MakeRequest(args, testutils.WithBearerToken(s.adminToken))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().Equal(http.StatusOK, res.StatusCode)

			var body []AffiliateResponse
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
			s.Len(body, 2)
		})
	}
}

func (s *AffiliatesHandlerTestSuite) TestUpdateStatus() {
	s.mockAffiliateService.EXPECT().
		UpdateStatus(gomock.Any(), int64(1), domain.AffiliateStatusApproved, int64(777)).
		Return(&domain.Affiliate{ID: 1, Status: domain.AffiliateStatusApproved}, nil)
	s.mockAffiliateService.EXPECT().
		UpdateStatus(gomock.Any(), int64(2), domain.AffiliateStatusApproved, int64(777)).
		Return(nil, domain.NewInvalidTransitionError("rejected", "approved"))
	s.mockAffiliateService.EXPECT().
		UpdateStatus(gomock.Any(), int64(404), domain.AffiliateStatusApproved, int64(777)).
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
			url:        "/api/admin/affiliates/1/status",
			body:       `{"status": "approved"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "invalid transition",
			url:        "/api/admin/affiliates/2/status",
			body:       `{"status": "approved"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusConflict,
		}, {
			name:       "not found",
			url:        "/api/admin/affiliates/404/status",
			body:       `{"status": "approved"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "unknown status",
			url:        "/api/admin/affiliates/1/status",
			body:       `{"status": "pending"}`,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "affiliate token rejected",
			url:        "/api/admin/affiliates/1/status",
			body:       `{"status": "approved"}`,
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

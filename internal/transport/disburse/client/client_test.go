package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kursusin/affiliate-backend/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func makeDisbursement() domain.PayoutDisbursement {
	return domain.PayoutDisbursement{
		Payout: domain.CommissionPayout{
			ID:        1,
			Amount:    decimal.NewFromInt(200000),
			Reference: uuid.New(),
			Status:    domain.PayoutStatusProcessing,
		},
		Method:        domain.PayoutMethodBankTransfer,
		AccountName:   "Affiliate",
		AccountNumber: "1234567890",
	}
}

func (s *ClientTestSuite) TestDisburse_Completed() {
	disbursement := makeDisbursement()

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(RouteDisbursements, r.URL.Path)

		var req Request
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal(disbursement.Payout.Reference, req.Reference)
		s.Equal("IDR", req.Currency)
		s.Equal(disbursement.Method, req.Method)
		s.True(req.Amount.Equal(disbursement.Payout.Amount))

		w.Header().Set("Content-Type", "application/json")
		s.Require().NoError(json.NewEncoder(w).Encode(Response{
			Reference: req.Reference,
			Status:    StatusCompleted,
		}))
	}))

	client := New(s.server.URL)
	response, err := client.Disburse(s.T().Context(), disbursement)

	s.Require().NoError(err)
	s.Require().NotNil(response)
	s.Equal(StatusCompleted, response.Status)
	s.Equal(disbursement.Payout.Reference, response.Reference)
}

func (s *ClientTestSuite) TestDisburse_Failed() {
	disbursement := makeDisbursement()

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		s.Require().NoError(json.NewEncoder(w).Encode(Response{
			Reference:     disbursement.Payout.Reference,
			Status:        StatusFailed,
			FailureReason: "account closed",
		}))
	}))

	client := New(s.server.URL)
	response, err := client.Disburse(s.T().Context(), disbursement)

	s.Require().NoError(err)
	s.Equal(StatusFailed, response.Status)
	s.Equal("account closed", response.FailureReason)
}

func (s *ClientTestSuite) TestDisburse_TooManyRequests() {
	cases := []struct {
		name           string
		retryAfter     string
		wantRetryAfter time.Duration
	}{
		{name: "header honoured", retryAfter: "7", wantRetryAfter: 7 * time.Second},
		{name: "missing header falls back", retryAfter: "", wantRetryAfter: 60 * time.Second},
		{name: "out of bounds falls back", retryAfter: "500", wantRetryAfter: 60 * time.Second},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if t.retryAfter != "" {
					w.Header().Set("Retry-After", t.retryAfter)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer server.Close()

			client := New(server.URL)
			response, err := client.Disburse(s.T().Context(), makeDisbursement())

			s.Nil(response)

			var tooManyReq *TooManyRequestError
			s.Require().ErrorAs(err, &tooManyReq)
			s.Equal(t.wantRetryAfter, tooManyReq.RetryAfter)
		})
	}
}

func (s *ClientTestSuite) TestDisburse_UnexpectedStatus() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	client := New(s.server.URL)
	response, err := client.Disburse(s.T().Context(), makeDisbursement())

	s.Nil(response)

	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusInternalServerError, statusErr.Code)
}

package disburse

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/transport/disburse/client"
	"github.com/kursusin/affiliate-backend/internal/transport/disburse/mocks"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor  *Processor
	mockClient *mocks.MockClient
	mockSvs    *mocks.MockServicer
	ctrl       *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockClient = mocks.NewMockClient(s.ctrl)
	s.mockSvs = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockSvs, "", logger)
	s.processor.client = s.mockClient
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func makeDisbursement(payoutID int64) domain.PayoutDisbursement {
	return domain.PayoutDisbursement{
		Payout: domain.CommissionPayout{
			ID:        payoutID,
			Amount:    decimal.NewFromInt(200000),
			Reference: uuid.New(),
			Status:    domain.PayoutStatusProcessing,
		},
		Method:        domain.PayoutMethodBankTransfer,
		AccountName:   "Affiliate",
		AccountNumber: "1234567890",
	}
}

func (s *ProcessorTestSuite) TestProcess_NoPayouts() {
	s.mockSvs.EXPECT().
		PayoutsForDisbursement(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.PayoutDisbursement{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoPayouts)
}

func (s *ProcessorTestSuite) TestProcess_Success() {
	completed := makeDisbursement(1)
	failed := makeDisbursement(2)

	s.mockSvs.EXPECT().
		PayoutsForDisbursement(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.PayoutDisbursement{completed, failed}, nil)

	s.mockClient.EXPECT().
		Disburse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.PayoutDisbursement) (*client.Response, error) {
			if d.Payout.ID == failed.Payout.ID {
				return &client.Response{
					Reference:     d.Payout.Reference,
					Status:        client.StatusFailed,
					FailureReason: "account closed",
				}, nil
			}
			return &client.Response{
				Reference: d.Payout.Reference,
				Status:    client.StatusCompleted,
			}, nil
		}).Times(2)

	s.mockSvs.EXPECT().
		CompleteDisbursement(gomock.Any(), completed.Payout.ID, true, "").
		Return(&domain.CommissionPayout{ID: completed.Payout.ID, Status: domain.PayoutStatusCompleted}, nil)
	s.mockSvs.EXPECT().
		CompleteDisbursement(gomock.Any(), failed.Payout.ID, false, "account closed").
		Return(&domain.CommissionPayout{ID: failed.Payout.ID, Status: domain.PayoutStatusFailed}, nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()

	err := s.processor.process(ctx)
	s.NoError(err)
}

func (s *ProcessorTestSuite) TestProcess_AcceptedStaysProcessing() {
	accepted := makeDisbursement(1)

	s.mockSvs.EXPECT().
		PayoutsForDisbursement(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.PayoutDisbursement{accepted}, nil)

	// An ACCEPTED response is not settled yet, so no status update happens and
	// the payout is retried on the next poll.
	s.mockClient.EXPECT().
		Disburse(gomock.Any(), gomock.Any()).
		Return(&client.Response{
			Reference: accepted.Payout.Reference,
			Status:    client.StatusAccepted,
		}, nil)

	s.mockSvs.EXPECT().
		CompleteDisbursement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()

	err := s.processor.process(ctx)
	s.NoError(err)
}

func (s *ProcessorTestSuite) TestProcess_GatewayError() {
	broken := makeDisbursement(1)

	s.mockSvs.EXPECT().
		PayoutsForDisbursement(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.PayoutDisbursement{broken}, nil)

	s.mockClient.EXPECT().
		Disburse(gomock.Any(), gomock.Any()).
		Return(nil, client.NewStatusCodeError(500))

	// Gateway errors leave the payout in processing.
	s.mockSvs.EXPECT().
		CompleteDisbursement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()

	err := s.processor.process(ctx)
	s.NoError(err)
}

func (s *ProcessorTestSuite) TestProcess_TooManyRequestsRetried() {
	throttled := makeDisbursement(1)

	s.mockSvs.EXPECT().
		PayoutsForDisbursement(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.PayoutDisbursement{throttled}, nil)

	firstCall := s.mockClient.EXPECT().
		Disburse(gomock.Any(), gomock.Any()).
		Return(nil, client.NewTooManyRequestError(10*time.Millisecond))
	s.mockClient.EXPECT().
		Disburse(gomock.Any(), gomock.Any()).
		Return(&client.Response{
			Reference: throttled.Payout.Reference,
			Status:    client.StatusCompleted,
		}, nil).After(firstCall)

	s.mockSvs.EXPECT().
		CompleteDisbursement(gomock.Any(), throttled.Payout.ID, true, "").
		Return(&domain.CommissionPayout{ID: throttled.Payout.ID, Status: domain.PayoutStatusCompleted}, nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()

	err := s.processor.process(ctx)
	s.NoError(err)
}

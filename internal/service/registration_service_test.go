package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/internal/service/mocks"
	"github.com/kursusin/affiliate-backend/pkg/uow"
	uowmocks "github.com/kursusin/affiliate-backend/pkg/uow/mocks"
)

type RegistrationServiceTestSuite struct {
	suite.Suite
	mockUOW              *uowmocks.MockUOW
	mockTX               *uowmocks.MockTX
	mockRegistrationRepo *mocks.MockRegistrationRepository
	mockAffiliateRepo    *mocks.MockAffiliateRepository
	mockProgramRepo      *mocks.MockProgramRepository
	registrationService  *RegistrationService
}

func TestRegistrationServiceSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}

func (s *RegistrationServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockRegistrationRepo = mocks.NewMockRegistrationRepository(mockCtrl)
	s.mockAffiliateRepo = mocks.NewMockAffiliateRepository(mockCtrl)
	s.mockProgramRepo = mocks.NewMockProgramRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RegistrationRepoName)).
		Return(s.mockRegistrationRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AffiliateRepoName)).
		Return(s.mockAffiliateRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ProgramRepoName)).
		Return(s.mockProgramRepo, nil).AnyTimes()

	registrationService, servErr := NewRegistrationService(s.mockUOW)
	s.Require().NoError(servErr)
	s.registrationService = registrationService
}

func (s *RegistrationServiceTestSuite) TestCreate() {
	approvedCode := "APPROVED"
	pendingCode := "PENDING2"
	unknownCode := "UNKNOWN2"

	approvedAffiliate := domain.Affiliate{
		ID:             10,
		ReferralCode:   approvedCode,
		CommissionRate: decimal.NewFromFloat(0.10),
		Status:         domain.AffiliateStatusApproved,
	}
	pendingAffiliate := domain.Affiliate{
		ID:           11,
		ReferralCode: pendingCode,
		Status:       domain.AffiliateStatusPending,
	}

	activeProgram := domain.Program{
		ID:     1,
		Name:   "Intensive English",
		Price:  decimal.NewFromInt(2500000),
		Active: true,
	}
	inactiveProgram := domain.Program{
		ID:     2,
		Name:   "Archived Course",
		Price:  decimal.NewFromInt(1000000),
		Active: false,
	}

	s.mockAffiliateRepo.EXPECT().FindByReferralCode(gomock.Any(), approvedCode).
		Return(&approvedAffiliate, nil).AnyTimes()
	s.mockAffiliateRepo.EXPECT().FindByReferralCode(gomock.Any(), pendingCode).
		Return(&pendingAffiliate, nil)
	s.mockAffiliateRepo.EXPECT().FindByReferralCode(gomock.Any(), unknownCode).
		Return(nil, domain.ErrRecordNotFound)

	s.mockProgramRepo.EXPECT().FindByID(gomock.Any(), activeProgram.ID).
		Return(&activeProgram, nil)
	s.mockProgramRepo.EXPECT().FindByID(gomock.Any(), inactiveProgram.ID).
		Return(&inactiveProgram, nil)

	// Fee and commission are snapshotted from the program price and the
	// affiliate rate at creation time.
	s.mockRegistrationRepo.EXPECT().
		CreateRegistration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateRegistration) (*domain.StudentRegistration, error) {
			s.Equal(approvedAffiliate.ID, args.AffiliateID)
			s.Equal(activeProgram.ID, args.ProgramID)
			s.True(args.RegistrationFee.Equal(decimal.NewFromInt(2500000)))
			s.True(args.CommissionAmount.Equal(decimal.NewFromInt(250000)))
			return &domain.StudentRegistration{
				ID:               100,
				AffiliateID:      args.AffiliateID,
				ProgramID:        args.ProgramID,
				RegistrationFee:  args.RegistrationFee,
				CommissionAmount: args.CommissionAmount,
				Status:           domain.RegistrationStatusPending,
			}, nil
		})

	cases := []struct {
		name    string
		args    CreateRegistrationArgs
		wantErr error
	}{
		{
			name: "ok",
			args: CreateRegistrationArgs{
				ReferralCode: approvedCode,
				ProgramID:    activeProgram.ID,
				StudentName:  gofakeit.Name(),
				StudentEmail: gofakeit.Email(),
				StudentPhone: gofakeit.Phone(),
			},
		}, {
			name: "affiliate not approved",
			args: CreateRegistrationArgs{
				ReferralCode: pendingCode,
				ProgramID:    activeProgram.ID,
			},
			wantErr: domain.ErrAffiliateNotApproved,
		}, {
			name: "unknown referral code",
			args: CreateRegistrationArgs{
				ReferralCode: unknownCode,
				ProgramID:    activeProgram.ID,
			},
			wantErr: domain.ErrRecordNotFound,
		}, {
			name: "inactive program",
			args: CreateRegistrationArgs{
				ReferralCode: approvedCode,
				ProgramID:    inactiveProgram.ID,
			},
			wantErr: domain.ErrProgramInactive,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			registration, err := s.registrationService.Create(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotNil(registration)
				s.Equal(domain.RegistrationStatusPending, registration.Status)
			} else {
				s.Nil(registration)
			}
		})
	}
}

func (s *RegistrationServiceTestSuite) TestUpdateStatus() {
	var adminID int64 = 777

	pendingReg := domain.StudentRegistration{ID: 1, Status: domain.RegistrationStatusPending}
	confirmedReg := domain.StudentRegistration{ID: 2, Status: domain.RegistrationStatusConfirmed}
	cancelledReg := domain.StudentRegistration{ID: 3, Status: domain.RegistrationStatusCancelled}

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.RegistrationRepoName)).
		Return(s.mockRegistrationRepo, nil).AnyTimes()

	s.mockRegistrationRepo.EXPECT().FindByID(gomock.Any(), pendingReg.ID).Return(&pendingReg, nil)
	s.mockRegistrationRepo.EXPECT().FindByID(gomock.Any(), confirmedReg.ID).Return(&confirmedReg, nil)
	s.mockRegistrationRepo.EXPECT().FindByID(gomock.Any(), cancelledReg.ID).Return(&cancelledReg, nil)

	// Confirmation stamps confirmed_by/confirmed_at, cancellation clears them.
	s.mockRegistrationRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateRegistrationStatus) (*domain.StudentRegistration, error) {
			if args.Status == domain.RegistrationStatusConfirmed {
				s.Require().NotNil(args.ConfirmedBy)
				s.Equal(adminID, *args.ConfirmedBy)
				s.NotNil(args.ConfirmedAt)
			} else {
				s.Nil(args.ConfirmedBy)
				s.Nil(args.ConfirmedAt)
			}
			return &domain.StudentRegistration{ID: args.ID, Status: args.Status}, nil
		}).Times(2)

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	var transitionErr *domain.InvalidTransitionError

	cases := []struct {
		name           string
		id             int64
		target         domain.RegistrationStatusType
		wantTransition bool
	}{
		{name: "pending to confirmed", id: pendingReg.ID, target: domain.RegistrationStatusConfirmed},
		{name: "confirmed to cancelled", id: confirmedReg.ID, target: domain.RegistrationStatusCancelled},
		{name: "cancelled is terminal", id: cancelledReg.ID, target: domain.RegistrationStatusConfirmed, wantTransition: true},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			updated, err := s.registrationService.UpdateStatus(s.T().Context(), t.id, t.target, adminID)

			if t.wantTransition {
				s.Require().ErrorAs(err, &transitionErr)
				s.Nil(updated)
				return
			}

			s.Require().NoError(err)
			s.Require().NotNil(updated)
			s.Equal(t.target, updated.Status)
		})
	}
}

func (s *RegistrationServiceTestSuite) TestGetByUserID() {
	affiliate := domain.Affiliate{ID: 10, UserID: 1}
	registrations := []domain.StudentRegistration{{ID: 1, AffiliateID: affiliate.ID}}

	s.mockAffiliateRepo.EXPECT().FindByUserID(gomock.Any(), affiliate.UserID).Return(&affiliate, nil)
	s.mockRegistrationRepo.EXPECT().GetByAffiliateID(gomock.Any(), affiliate.ID).Return(registrations, nil)

	got, err := s.registrationService.GetByUserID(s.T().Context(), affiliate.UserID)
	s.Require().NoError(err)
	s.Equal(registrations, got)
}

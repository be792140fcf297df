package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/internal/service/mocks"
	"github.com/kursusin/affiliate-backend/pkg/uow"
	uowmocks "github.com/kursusin/affiliate-backend/pkg/uow/mocks"
)

type AffiliateServiceTestSuite struct {
	suite.Suite
	mockUOW           *uowmocks.MockUOW
	mockTX            *uowmocks.MockTX
	mockAffiliateRepo *mocks.MockAffiliateRepository
	affiliateService  *AffiliateService
}

func TestAffiliateServiceSuite(t *testing.T) {
	suite.Run(t, new(AffiliateServiceTestSuite))
}

func (s *AffiliateServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockAffiliateRepo = mocks.NewMockAffiliateRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AffiliateRepoName)).
		Return(s.mockAffiliateRepo, nil).AnyTimes()

	affiliateService, servErr := NewAffiliateService(s.mockUOW)
	s.Require().NoError(servErr)
	s.affiliateService = affiliateService
}

func (s *AffiliateServiceTestSuite) TestGetByUserID() {
	affiliate := domain.Affiliate{ID: 10, UserID: 1, Status: domain.AffiliateStatusApproved}

	s.mockAffiliateRepo.EXPECT().FindByUserID(gomock.Any(), int64(1)).Return(&affiliate, nil)
	s.mockAffiliateRepo.EXPECT().FindByUserID(gomock.Any(), int64(2)).Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		userID  int64
		wantErr error
	}{
		{name: "found", userID: 1},
		{name: "not found", userID: 2, wantErr: domain.ErrRecordNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			got, err := s.affiliateService.GetByUserID(s.T().Context(), t.userID)
			s.Require().ErrorIs(err, t.wantErr)
			if t.wantErr == nil {
				s.Equal(&affiliate, got)
			}
		})
	}
}

func (s *AffiliateServiceTestSuite) TestUpdateStatus() {
	var adminID int64 = 777

	pendingAffiliate := domain.Affiliate{ID: 1, Status: domain.AffiliateStatusPending}
	approvedAffiliate := domain.Affiliate{ID: 2, Status: domain.AffiliateStatusApproved}
	rejectedAffiliate := domain.Affiliate{ID: 3, Status: domain.AffiliateStatusRejected}

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AffiliateRepoName)).
		Return(s.mockAffiliateRepo, nil).AnyTimes()

	s.mockAffiliateRepo.EXPECT().FindByID(gomock.Any(), pendingAffiliate.ID).
		Return(&pendingAffiliate, nil)
	s.mockAffiliateRepo.EXPECT().FindByID(gomock.Any(), approvedAffiliate.ID).
		Return(&approvedAffiliate, nil)
	s.mockAffiliateRepo.EXPECT().FindByID(gomock.Any(), rejectedAffiliate.ID).
		Return(&rejectedAffiliate, nil)

	// Approval stamps approved_by/approved_at, suspension clears them.
	s.mockAffiliateRepo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateAffiliateStatus) (*domain.Affiliate, error) {
			switch args.Status {
			case domain.AffiliateStatusApproved:
				s.Require().NotNil(args.ApprovedBy)
				s.Equal(adminID, *args.ApprovedBy)
				s.NotNil(args.ApprovedAt)
			default:
				s.Nil(args.ApprovedBy)
				s.Nil(args.ApprovedAt)
			}
			return &domain.Affiliate{ID: args.ID, Status: args.Status}, nil
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
		target         domain.AffiliateStatusType
		wantTransition bool
	}{
		{name: "pending to approved", id: pendingAffiliate.ID, target: domain.AffiliateStatusApproved},
		{name: "approved to suspended", id: approvedAffiliate.ID, target: domain.AffiliateStatusSuspended},
		{name: "rejected is terminal", id: rejectedAffiliate.ID, target: domain.AffiliateStatusApproved, wantTransition: true},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			updated, err := s.affiliateService.UpdateStatus(s.T().Context(), t.id, t.target, adminID)

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

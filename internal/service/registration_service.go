package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

// commissionPrecision is the number of decimal places commission amounts are
// rounded to (IDR cents are not a thing, but the schema stores two places).
const commissionPrecision = 2

type RegistrationService struct {
	uow              uow.UOW
	registrationRepo RegistrationRepository
	affiliateRepo    AffiliateRepository
	programRepo      ProgramRepository
}

func NewRegistrationService(u uow.UOW) (*RegistrationService, error) {
	registrationRepo, regRepoErr := uow.GetRepositoryAs[RegistrationRepository](
		u, uow.RepositoryName(repoargs.RegistrationRepoName))
	if regRepoErr != nil {
		return nil, regRepoErr
	}
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
	return &RegistrationService{
		uow:              u,
		registrationRepo: registrationRepo,
		affiliateRepo:    affiliateRepo,
		programRepo:      programRepo,
	}, nil
}

type CreateRegistrationArgs struct {
	ReferralCode string
	ProgramID    int64
	StudentName  string
	StudentEmail string
	StudentPhone string
}

// Create attributes a student registration to the affiliate behind the
// referral code. The code must belong to an approved affiliate and the program
// must be active; otherwise domain.ErrAffiliateNotApproved or
// domain.ErrProgramInactive is returned (domain.ErrRecordNotFound for an
// unknown code or program). The registration fee and commission amount are
// snapshotted here: fee = program price, commission = fee x affiliate rate.
func (r *RegistrationService) Create(
	ctx context.Context,
	args CreateRegistrationArgs,
) (*domain.StudentRegistration, error) {
	affiliate, affErr := r.affiliateRepo.FindByReferralCode(ctx, args.ReferralCode)
	if affErr != nil {
		return nil, affErr //nolint:wrapcheck
	}
	if affiliate.Status != domain.AffiliateStatusApproved {
		return nil, domain.ErrAffiliateNotApproved
	}

	program, progErr := r.programRepo.FindByID(ctx, args.ProgramID)
	if progErr != nil {
		return nil, progErr //nolint:wrapcheck
	}
	if !program.Active {
		return nil, domain.ErrProgramInactive
	}

	commission := program.Price.Mul(affiliate.CommissionRate).Round(commissionPrecision)

	registration, createErr := r.registrationRepo.CreateRegistration(ctx, repoargs.CreateRegistration{
		AffiliateID:      affiliate.ID,
		ProgramID:        program.ID,
		StudentName:      args.StudentName,
		StudentEmail:     args.StudentEmail,
		StudentPhone:     args.StudentPhone,
		RegistrationFee:  program.Price,
		CommissionAmount: commission,
	})
	if createErr != nil {
		return nil, fmt.Errorf("creating registration: %w", createErr)
	}
	return registration, nil
}

// List returns registrations newest first, optionally filtered by status.
func (r *RegistrationService) List(
	ctx context.Context,
	filter repoargs.RegistrationFilter,
) ([]domain.StudentRegistration, error) {
	registrations, err := r.registrationRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return registrations, nil
}

// GetByUserID returns the registrations of the affiliate owned by userID.
func (r *RegistrationService) GetByUserID(
	ctx context.Context,
	userID int64,
) ([]domain.StudentRegistration, error) {
	affiliate, affErr := r.affiliateRepo.FindByUserID(ctx, userID)
	if affErr != nil {
		return nil, affErr //nolint:wrapcheck
	}
	registrations, err := r.registrationRepo.GetByAffiliateID(ctx, affiliate.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return registrations, nil
}

// UpdateStatus confirms or cancels a registration on behalf of adminID.
// confirmed_by/confirmed_at follow the same set/clear rule as affiliate
// approval: present only while the status is confirmed.
func (r *RegistrationService) UpdateStatus(
	ctx context.Context,
	id int64,
	target domain.RegistrationStatusType,
	adminID int64,
) (*domain.StudentRegistration, error) {
	var updated *domain.StudentRegistration
	txErr := r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[RegistrationRepository](tx, uow.RepositoryName(repoargs.RegistrationRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		registration, findErr := repo.FindByID(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if !registration.Status.CanTransitionTo(target) {
			return domain.NewInvalidTransitionError(string(registration.Status), string(target))
		}

		args := repoargs.UpdateRegistrationStatus{
			ID:     id,
			Status: target,
		}
		if target == domain.RegistrationStatusConfirmed {
			now := time.Now()
			args.ConfirmedBy = &adminID
			args.ConfirmedAt = &now
		}

		var updErr error
		updated, updErr = repo.UpdateStatus(c, args)
		return updErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("updating registration status: %w", txErr)
	}
	return updated, nil
}

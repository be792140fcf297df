package service

import (
	"context"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type AffiliateRepository interface {
	CreateAffiliate(ctx context.Context, args repoargs.CreateAffiliate) (*domain.Affiliate, error)
	FindByID(ctx context.Context, id int64) (*domain.Affiliate, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Affiliate, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Affiliate, error)
	List(ctx context.Context, status *domain.AffiliateStatusType) ([]domain.Affiliate, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateAffiliateStatus) (*domain.Affiliate, error)
	CountByStatus(ctx context.Context) ([]repoargs.StatusCount, error)
}

type ProgramRepository interface {
	CreateProgram(ctx context.Context, args repoargs.CreateProgram) (*domain.Program, error)
	FindByID(ctx context.Context, id int64) (*domain.Program, error)
	List(ctx context.Context, filter repoargs.ProgramFilter) ([]domain.Program, error)
	UpdateProgram(ctx context.Context, args repoargs.UpdateProgram) (*domain.Program, error)
	CountActive(ctx context.Context) (int64, error)
}

type RegistrationRepository interface {
	CreateRegistration(ctx context.Context, args repoargs.CreateRegistration) (*domain.StudentRegistration, error)
	FindByID(ctx context.Context, id int64) (*domain.StudentRegistration, error)
	List(ctx context.Context, filter repoargs.RegistrationFilter) ([]domain.StudentRegistration, error)
	GetByAffiliateID(ctx context.Context, affiliateID int64) ([]domain.StudentRegistration, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateRegistrationStatus) (*domain.StudentRegistration, error)
	StatsByAffiliate(ctx context.Context, affiliateID int64) (*repoargs.RegistrationStats, error)
}

type PayoutRepository interface {
	CreatePayout(ctx context.Context, args repoargs.CreatePayout) (*domain.CommissionPayout, error)
	FindByID(ctx context.Context, id int64) (*domain.CommissionPayout, error)
	List(ctx context.Context, filter repoargs.PayoutFilter) ([]domain.CommissionPayout, error)
	GetByAffiliateID(ctx context.Context, affiliateID int64) ([]domain.CommissionPayout, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdatePayoutStatus) (*domain.CommissionPayout, error)
	GetBalance(ctx context.Context, affiliateID int64) (*repoargs.BalanceAggregation, error)
	GetForDisbursement(ctx context.Context, limit uint) ([]domain.PayoutDisbursement, error)
	CountByStatus(ctx context.Context) ([]repoargs.StatusCount, error)
}

package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/internal/service"
)

// UserServicer exists for mocking only.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, *domain.Affiliate, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type AffiliateServicer interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Affiliate, error)
	List(ctx context.Context, status *domain.AffiliateStatusType) ([]domain.Affiliate, error)
	UpdateStatus(
		ctx context.Context,
		id int64,
		target domain.AffiliateStatusType,
		adminID int64,
	) (*domain.Affiliate, error)
}

type ProgramServicer interface {
	Create(ctx context.Context, args repoargs.CreateProgram) (*domain.Program, error)
	List(ctx context.Context, filter repoargs.ProgramFilter) ([]domain.Program, error)
	Update(ctx context.Context, args repoargs.UpdateProgram) (*domain.Program, error)
}

type RegistrationServicer interface {
	Create(ctx context.Context, args service.CreateRegistrationArgs) (*domain.StudentRegistration, error)
	List(ctx context.Context, filter repoargs.RegistrationFilter) ([]domain.StudentRegistration, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.StudentRegistration, error)
	UpdateStatus(
		ctx context.Context,
		id int64,
		target domain.RegistrationStatusType,
		adminID int64,
	) (*domain.StudentRegistration, error)
}

type PayoutServicer interface {
	GetBalanceByUserID(ctx context.Context, userID int64) (*service.Balance, error)
	RequestByUserID(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.CommissionPayout, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.CommissionPayout, error)
	List(ctx context.Context, filter repoargs.PayoutFilter) ([]domain.CommissionPayout, error)
	UpdateStatus(
		ctx context.Context,
		id int64,
		target domain.PayoutStatusType,
		adminID int64,
		failureReason string,
	) (*domain.CommissionPayout, error)
}

type StatsServicer interface {
	AdminStats(ctx context.Context) (*service.AdminStats, error)
	AffiliateStatsByUserID(ctx context.Context, userID int64) (*service.AffiliateStats, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/internal/service/refcode"
	"github.com/kursusin/affiliate-backend/internal/transport/api/tokens"
	"github.com/kursusin/affiliate-backend/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

// maxReferralCodeAttempts bounds the uniqueness retry loop at signup.
const maxReferralCodeAttempts = 5

// DefaultCommissionRate is assigned to new affiliates; the fraction of the
// program price owed per confirmed registration.
var DefaultCommissionRate = decimal.NewFromFloat(0.10)

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	affiliateRepo  AffiliateRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	affiliateRepo, affRepoErr := uow.GetRepositoryAs[AffiliateRepository](
		u, uow.RepositoryName(repoargs.AffiliateRepoName))
	if affRepoErr != nil {
		return nil, affRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		affiliateRepo:  affiliateRepo,
		psswd:          hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Email    string
	FullName string
	Password string
	Role     domain.RoleType

	// Payout destination, required when Role is affiliate.
	PayoutMethod        domain.PayoutMethodType
	PayoutAccountName   string
	PayoutAccountNumber string
}

// Register creates a user and, for the affiliate role, an affiliate profile
// with a freshly allocated referral code, in one transaction. Returns the
// user, the profile (nil for admins) and a signed JWT.
func (s *UserService) Register(
	ctx context.Context,
	args RegisterUserArgs,
) (*domain.User, *domain.Affiliate, string, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}

	var referralCode string
	if args.Role == domain.RoleAffiliate {
		code, codeErr := s.allocateReferralCode(ctx)
		if codeErr != nil {
			return nil, nil, "", fmt.Errorf("registering user: %w", codeErr)
		}
		referralCode = code
	}

	var user *domain.User
	var affiliate *domain.Affiliate
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		var userErr error
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Email:             args.Email,
			FullName:          args.FullName,
			Role:              args.Role,
			EncryptedPassword: password,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		if args.Role == domain.RoleAffiliate {
			affiliateRepo, affRepoErr := uow.GetAs[AffiliateRepository](
				tx, uow.RepositoryName(repoargs.AffiliateRepoName))
			if affRepoErr != nil {
				return affRepoErr //nolint:wrapcheck
			}
			var affErr error
			affiliate, affErr = affiliateRepo.CreateAffiliate(c, repoargs.CreateAffiliate{
				UserID:              user.ID,
				ReferralCode:        referralCode,
				CommissionRate:      DefaultCommissionRate,
				PayoutMethod:        args.PayoutMethod,
				PayoutAccountName:   args.PayoutAccountName,
				PayoutAccountNumber: args.PayoutAccountNumber,
			})
			if affErr != nil {
				return affErr //nolint:wrapcheck
			}
		}

		var tokenErr error
		token, tokenErr = tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, nil, "", fmt.Errorf("registering user: %w", txErr)
	}
	return user, affiliate, token, nil
}

// allocateReferralCode draws random codes until one is unused, bounded by
// maxReferralCodeAttempts. A race between check and insert is caught by the
// unique index and surfaces as domain.ErrDuplicateKey from Register.
func (s *UserService) allocateReferralCode(ctx context.Context) (string, error) {
	var code string
	backoff := retry.WithMaxRetries(maxReferralCodeAttempts, retry.NewConstant(time.Millisecond))

	retryErr := retry.Do(ctx, backoff, func(c context.Context) error {
		generated, genErr := refcode.Generate()
		if genErr != nil {
			return genErr
		}
		_, findErr := s.affiliateRepo.FindByReferralCode(c, generated)
		if findErr == nil {
			return retry.RetryableError(domain.ErrReferralCodeTaken)
		}
		if !errors.Is(findErr, domain.ErrRecordNotFound) {
			return findErr
		}
		code = generated
		return nil
	})
	if retryErr != nil {
		return "", fmt.Errorf("allocating referral code: %w", retryErr)
	}
	return code, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login authenticates by email/password pair. Returns domain.ErrRecordNotFound
// for an unknown email and domain.ErrPasswordMissMatch for a wrong password.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindByEmail(ctx, args.Email)
	if findErr != nil {
		return nil, "", findErr //nolint:wrapcheck
	}

	if !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %s", tokenErr.Error())
	}
	return user, token, nil
}

package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	RegisterRoute            = "/auth/register"
	LoginRoute               = "/auth/login"
	PublicRegistrationsRoute = "/registrations"

	AffiliateProfileRoute       = "/affiliate/profile"
	AffiliateRegistrationsRoute = "/affiliate/registrations"
	AffiliateBalanceRoute       = "/affiliate/balance"
	AffiliatePayoutsRoute       = "/affiliate/payouts"
	AffiliateStatsRoute         = "/affiliate/stats"

	AdminAffiliatesRoute         = "/admin/affiliates"
	AdminAffiliateStatusRoute    = "/admin/affiliates/:id/status"
	AdminProgramsRoute           = "/admin/programs"
	AdminProgramRoute            = "/admin/programs/:id"
	AdminRegistrationsRoute      = "/admin/registrations"
	AdminRegistrationStatusRoute = "/admin/registrations/:id/status"
	AdminPayoutsRoute            = "/admin/payouts"
	AdminPayoutStatusRoute       = "/admin/payouts/:id/status"
	AdminStatsRoute              = "/admin/stats"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	UserService         UserServicer
	AffiliateService    AffiliateServicer
	ProgramService      ProgramServicer
	RegistrationService RegistrationServicer
	PayoutService       PayoutServicer
	StatsService        StatsServicer
	JWTSecretKey        []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	affiliatesHandler := NewAffiliatesHandler(args.AffiliateService)
	programsHandler := NewProgramsHandler(args.ProgramService)
	registrationsHandler := NewRegistrationsHandler(args.RegistrationService)
	payoutsHandler := NewPayoutsHandler(args.PayoutService)
	statsHandler := NewStatsHandler(args.StatsService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.POST(PublicRegistrationsRoute, registrationsHandler.Create)

	affiliate := api.Group("", middlewares.AuthRequired(args.JWTSecretKey),
		middlewares.RoleRequired(domain.RoleAffiliate))
	affiliate.GET(AffiliateProfileRoute, affiliatesHandler.Profile)
	affiliate.GET(AffiliateRegistrationsRoute, registrationsHandler.OwnIndex)
	affiliate.GET(AffiliateBalanceRoute, payoutsHandler.Balance)
	affiliate.POST(AffiliatePayoutsRoute, payoutsHandler.Request)
	affiliate.GET(AffiliatePayoutsRoute, payoutsHandler.OwnIndex)
	affiliate.GET(AffiliateStatsRoute, statsHandler.AffiliateStats)

	admin := api.Group("", middlewares.AuthRequired(args.JWTSecretKey),
		middlewares.RoleRequired(domain.RoleAdmin))
	admin.GET(AdminAffiliatesRoute, affiliatesHandler.Index)
	admin.PATCH(AdminAffiliateStatusRoute, affiliatesHandler.UpdateStatus)
	admin.POST(AdminProgramsRoute, programsHandler.Create)
	admin.GET(AdminProgramsRoute, programsHandler.Index)
	admin.PATCH(AdminProgramRoute, programsHandler.Update)
	admin.GET(AdminRegistrationsRoute, registrationsHandler.Index)
	admin.PATCH(AdminRegistrationStatusRoute, registrationsHandler.UpdateStatus)
	admin.GET(AdminPayoutsRoute, payoutsHandler.Index)
	admin.PATCH(AdminPayoutStatusRoute, payoutsHandler.UpdateStatus)
	admin.GET(AdminStatsRoute, statsHandler.AdminStats)

	return r, nil
}

package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/kursusin/affiliate-backend/internal/config"
	"github.com/kursusin/affiliate-backend/internal/repository/pgrepo"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/internal/service"
	"github.com/kursusin/affiliate-backend/internal/transport/api"
	"github.com/kursusin/affiliate-backend/internal/transport/disburse"
	"github.com/kursusin/affiliate-backend/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTUserSecret))
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:              a.Logger,
		UserService:         services.UserService,
		AffiliateService:    services.AffiliateService,
		ProgramService:      services.ProgramService,
		RegistrationService: services.RegistrationService,
		PayoutService:       services.PayoutService,
		StatsService:        services.StatsService,
		JWTSecretKey:        []byte(a.Config.JWTUserSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	if a.Config.DisburseGatewayAddress != "" {
		processor := disburse.New(services.PayoutService, a.Config.DisburseGatewayAddress, a.Logger).
			SetDisburseWorkers(5).   //nolint:mnd
			SetLimitPerIteration(50) //nolint:mnd

		go processor.Run(notifyCtx)
	} else {
		a.Logger.Info("disbursement gateway address is empty, background processor disabled")
	}

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.AffiliateRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAffiliateRepository(dbtx)
		},
		repoargs.ProgramRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewProgramRepository(dbtx)
		},
		repoargs.RegistrationRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewRegistrationRepository(dbtx)
		},
		repoargs.PayoutRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPayoutRepository(dbtx)
		},
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}

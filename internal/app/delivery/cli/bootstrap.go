package cli

import (
	"context"
	"io"
	"os"
	"physiocare-client/internal/app/config"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/drivers/database"
	"physiocare-client/internal/app/drivers/logger"
	"physiocare-client/internal/app/services/backend/appointments"
	"physiocare-client/internal/app/services/backend/auth"
	"physiocare-client/internal/app/services/backend/physios"
	"physiocare-client/internal/app/services/backend/records"
	"physiocare-client/internal/app/services/physiocare"
	"physiocare-client/internal/app/services/shared/connectivity"
	"physiocare-client/internal/app/services/shared/httpclient"
	"physiocare-client/internal/app/services/shared/jwtmanager"
	"physiocare-client/internal/app/services/shared/ratelimiter"
	"physiocare-client/internal/app/services/shared/session"
	"physiocare-client/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// App is what every command runs against.
type App struct {
	Bootstrap  *config.Bootstrap
	Repository contracts.PhysioCareRepository
	Log        *zap.Logger
	Out        io.Writer
}

// NewApp loads the configuration, opens the session store and wires the backend clients.
func NewApp(ctx context.Context) (*App, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	if internalConfig.App.Timezone != "" {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			log.Error("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
			return nil, err
		}
		time.Local = location
	}

	bootstrap := &config.Bootstrap{
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	sessionStore, err := newSessionStore(ctx, bootstrap)
	if err != nil {
		bootstrap.Shutdown(ctx)
		return nil, err
	}

	connectivityChecker, err := connectivity.NewConnectivityChecker(internalConfig, log)
	if err != nil {
		bootstrap.Shutdown(ctx)
		return nil, err
	}

	requestLimiter := ratelimiter.NewRequestLimiter(internalConfig, log)
	backendClient := httpclient.NewClient(internalConfig, requestLimiter, log)

	repository := physiocare.NewPhysioCareRepository(
		sessionStore,
		auth.NewAuthBackendClient(backendClient, log),
		records.NewRecordBackendClient(backendClient, log),
		appointments.NewAppointmentBackendClient(backendClient, log),
		physios.NewPhysioBackendClient(backendClient, log),
		connectivityChecker,
		jwtmanager.NewJWTManager(log),
		log,
	)

	return &App{
		Bootstrap:  bootstrap,
		Repository: repository,
		Log:        log,
		Out:        os.Stdout,
	}, nil
}

func newSessionStore(ctx context.Context, bootstrap *config.Bootstrap) (contracts.SessionStore, error) {
	log := bootstrap.Logger
	log.Debug("Opening session store",
		zap.String(constvars.LoggingSessionDriverKey, bootstrap.InternalConfig.Session.Driver),
	)

	switch bootstrap.InternalConfig.Session.Driver {
	case constvars.SessionDriverRedis:
		client, err := database.NewRedisClient(ctx, bootstrap.DriverConfig, log)
		if err != nil {
			return nil, err
		}
		bootstrap.Redis = client
		return session.NewRedisSessionStore(ctx, client, bootstrap.InternalConfig.Session.RedisKey, log)
	default:
		db, err := database.NewBoltDB(bootstrap.DriverConfig, log)
		if err != nil {
			return nil, err
		}
		bootstrap.Bolt = db
		return session.NewBoltSessionStore(db, log)
	}
}

func (a *App) Close(ctx context.Context) error {
	if a.Bootstrap == nil {
		return nil
	}
	return a.Bootstrap.Shutdown(ctx)
}

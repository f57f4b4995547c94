package config

import (
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Bolt: Bolt{
			Path:             utils.GetEnvString("SESSION_FILE", "physiocare_settings.db"),
			TimeoutInSeconds: utils.GetEnvInt("SESSION_FILE_LOCK_TIMEOUT_IN_SECONDS", 1),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "physiocare.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "physiocare_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", ""),
		},
		Backend: AppBackend{
			BaseUrl:                      utils.GetEnvString("PHYSIOCARE_BASE_URL", "http://localhost:8080/"),
			HTTPTimeoutInSeconds:         utils.GetEnvInt("PHYSIOCARE_HTTP_TIMEOUT_IN_SECONDS", 0),
			ConnectivityCheck:            utils.GetEnvBool("PHYSIOCARE_CONNECTIVITY_CHECK", true),
			ConnectivityTimeoutInSeconds: utils.GetEnvInt("PHYSIOCARE_CONNECTIVITY_TIMEOUT_IN_SECONDS", 3),
			MaxRequestsPerSecond:         utils.GetEnvFloat("PHYSIOCARE_MAX_REQUESTS_PER_SECOND", 10),
			MaxRequestsBurst:             utils.GetEnvInt("PHYSIOCARE_MAX_REQUESTS_BURST", 5),
		},
		Session: AppSession{
			Driver:   utils.GetEnvString("SESSION_DRIVER", constvars.SessionDriverBolt),
			RedisKey: utils.GetEnvString("SESSION_REDIS_KEY", "physiocare:session"),
		},
	}
}

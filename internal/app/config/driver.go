package config

type (
	DriverConfig struct {
		Bolt   Bolt
		Redis  Redis
		Logger Logger
	}
	// Bolt is the single-file preferences store holding the session.
	Bolt struct {
		Path             string
		TimeoutInSeconds int
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

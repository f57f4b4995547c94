package config

type InternalConfig struct {
	App     App        `mapstructure:"app"`
	Backend AppBackend `mapstructure:"backend"`
	Session AppSession `mapstructure:"session"`
}

type App struct {
	Env      string `mapstructure:"env"`
	Version  string `mapstructure:"version"`
	Timezone string `mapstructure:"timezone"`
}

// AppBackend configures the PhysioCare REST backend client.
type AppBackend struct {
	BaseUrl string `mapstructure:"base_url"`
	// HTTPTimeoutInSeconds of 0 keeps the http.Client default (no timeout)
	HTTPTimeoutInSeconds int `mapstructure:"http_timeout_in_seconds"`
	// ConnectivityCheck dials the backend host before each call
	ConnectivityCheck            bool    `mapstructure:"connectivity_check"`
	ConnectivityTimeoutInSeconds int     `mapstructure:"connectivity_timeout_in_seconds"`
	MaxRequestsPerSecond         float64 `mapstructure:"max_requests_per_second"`
	MaxRequestsBurst             int     `mapstructure:"max_requests_burst"`
}

// AppSession selects where the session is persisted (bolt|redis).
type AppSession struct {
	Driver   string `mapstructure:"driver"`
	RedisKey string `mapstructure:"redis_key"`
}

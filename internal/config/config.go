package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	LogLevel string `env:"LOG_LEVEL"`
	HTTP     HTTPConfig
	Mock     MockConfig
	Storage  StorageConfig
	Postgres PostgresConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"3001"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	CORSAllowOrigin string        `env:"CORS_ALLOW_ORIGIN" env-default:"*"`
}

// MockConfig holds the artificial latencies of the mock endpoints
// and the location of the fixture catalog.
type MockConfig struct {
	ScanDelay    time.Duration `env:"SCAN_DELAY" env-default:"2s"`
	FixDelay     time.Duration `env:"FIX_DELAY" env-default:"1500ms"`
	FixAllDelay  time.Duration `env:"FIX_ALL_DELAY" env-default:"3s"`
	ChatDelay    time.Duration `env:"CHAT_DELAY" env-default:"800ms"`
	FixturesPath string        `env:"FIXTURES_PATH"`
}

type StorageConfig struct {
	Driver       string `env:"STORAGE_DRIVER" env-default:"memory"`
	HistoryLimit int    `env:"SCAN_HISTORY_LIMIT" env-default:"1000"`
}

// PostgresConfig is only read when Storage.Driver is StoragePostgres.
type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

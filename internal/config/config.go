package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Bank      BankConfig      `yaml:"bank"`
	Realtime  RealtimeConfig  `yaml:"realtime"`
	Seed      SeedConfig      `yaml:"seed"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds token and credential settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"boldbank"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"8h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
	CookieName       string        `yaml:"cookie_name"        env:"AUTH_COOKIE_NAME"        env-default:"token"`
	CookieSecure     bool          `yaml:"cookie_secure"      env:"AUTH_COOKIE_SECURE"      env-default:"false"`
}

// BankConfig holds ledger parameters. Monetary values are read as strings
// and parsed into decimals during validation.
type BankConfig struct {
	OpeningBalanceRaw string `yaml:"opening_balance" env:"BANK_OPENING_BALANCE" env-default:"8157450.47"`
	MaxAmountRaw      string `yaml:"max_amount"      env:"BANK_MAX_AMOUNT"      env-default:"1000000000.00"`

	// OpeningBalance is parsed from OpeningBalanceRaw during validation.
	OpeningBalance decimal.Decimal `yaml:"-" env:"-"`
	// MaxAmount is parsed from MaxAmountRaw during validation.
	MaxAmount decimal.Decimal `yaml:"-" env:"-"`
}

// RealtimeConfig holds WebSocket connection settings.
type RealtimeConfig struct {
	WriteTimeout   time.Duration `yaml:"write_timeout"    env:"REALTIME_WRITE_TIMEOUT"    env-default:"10s"`
	PongWait       time.Duration `yaml:"pong_wait"        env:"REALTIME_PONG_WAIT"        env-default:"60s"`
	PingPeriod     time.Duration `yaml:"ping_period"      env:"REALTIME_PING_PERIOD"      env-default:"54s"`
	SendBuffer     int           `yaml:"send_buffer"      env:"REALTIME_SEND_BUFFER"      env-default:"64"`
	MaxMessageSize int64         `yaml:"max_message_size" env:"REALTIME_MAX_MESSAGE_SIZE" env-default:"4096"`
}

// SeedConfig controls the default demo identities created at startup.
type SeedConfig struct {
	Enabled       bool   `yaml:"enabled"        env:"SEED_ENABLED"        env-default:"true"`
	UserEmail     string `yaml:"user_email"     env:"SEED_USER_EMAIL"     env-default:"user@bank.com"`
	UserPassword  string `yaml:"user_password"  env:"SEED_USER_PASSWORD"  env-default:"user123"`
	AdminEmail    string `yaml:"admin_email"    env:"SEED_ADMIN_EMAIL"    env-default:"admin@bank.com"`
	AdminPassword string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD" env-default:"admin123"`
}

// RateLimitConfig holds per-IP limits for sensitive endpoints.
type RateLimitConfig struct {
	LoginPerMinute  int           `yaml:"login_per_minute" env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

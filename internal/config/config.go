package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	Environment     string        `mapstructure:"environment"      validate:"omitempty,oneof=development test production"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"               validate:"required,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"    validate:"gte=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string        `mapstructure:"jwt_secret"             validate:"required,min=32"`
	AccessTokenLifetime  time.Duration `mapstructure:"access_token_lifetime"  validate:"gt=0"`
	RefreshTokenLifetime time.Duration `mapstructure:"refresh_token_lifetime" validate:"gt=0,gtfield=AccessTokenLifetime"`
	BcryptCost           int           `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`
	// LoginRateLimit is the sustained number of login attempts per second
	// accepted from one client address; LoginBurst is the bucket size.
	LoginRateLimit float64 `mapstructure:"login_rate_limit" validate:"gt=0"`
	LoginBurst     int     `mapstructure:"login_burst"      validate:"gte=1"`
}

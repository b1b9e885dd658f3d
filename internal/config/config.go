package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains password hashing settings.
type AuthConfig struct {
	// PasswordSalt is the fixed salt the legacy hasher appends to raw
	// passwords before digesting. Changing it invalidates stored hashes.
	PasswordSalt string `mapstructure:"password_salt" validate:"required"`

	// Hasher selects the password hashing scheme: "legacy" (fixed-salt MD5,
	// compatible with existing rows) or "bcrypt".
	Hasher string `mapstructure:"hasher" validate:"required,oneof=legacy bcrypt"`

	// BcryptCost is the work factor used when Hasher is "bcrypt".
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}

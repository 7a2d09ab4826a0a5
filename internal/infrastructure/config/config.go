package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/orris-inc/helpdesk/internal/shared/config"
)

const envPrefix = "HELPDESK"

// minSecretLength applies outside debug mode.
const minSecretLength = 32

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Auth       sharedConfig.AuthConfig       `mapstructure:"auth"`
	Pagination sharedConfig.PaginationConfig `mapstructure:"pagination"`
	Email      sharedConfig.EmailConfig      `mapstructure:"email"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	RateLimit  sharedConfig.RateLimitConfig  `mapstructure:"ratelimit"`
	Business   sharedConfig.BusinessConfig   `mapstructure:"business"`
}

// Load reads configs/config.yaml, an optional configs/config.<env>.yaml overlay
// and HELPDESK_* environment variables. A .env file in the working directory
// is loaded into the process environment first when present.
func Load(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.SetConfigName("config." + env)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to merge %s config: %w", env, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case sharedConfig.DriverMySQL, sharedConfig.DriverPostgres, sharedConfig.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Database.MigrationStrategy {
	case sharedConfig.MigrationGoose, sharedConfig.MigrationGolangMigrate, sharedConfig.MigrationAuto:
	default:
		return fmt.Errorf("unsupported migration strategy %q", c.Database.MigrationStrategy)
	}
	if c.Database.MigrationStrategy == sharedConfig.MigrationGolangMigrate && c.Database.Driver == sharedConfig.DriverSQLite {
		return fmt.Errorf("migration strategy %q does not support sqlite", c.Database.MigrationStrategy)
	}

	if c.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret is required")
	}
	if !c.Server.IsDebug() && len(c.Auth.JWT.Secret) < minSecretLength {
		return fmt.Errorf("auth.jwt.secret must be at least %d characters outside debug mode", minSecretLength)
	}
	if c.Auth.JWT.AccessExpMinutes <= 0 {
		return fmt.Errorf("auth.jwt.access_exp_minutes must be positive")
	}

	p := c.Pagination
	if p.TicketsMaxPageSize < 1 || p.TicketsDefaultPageSize < 1 || p.TicketsDefaultPageSize > p.TicketsMaxPageSize {
		return fmt.Errorf("invalid ticket pagination settings: default=%d max=%d", p.TicketsDefaultPageSize, p.TicketsMaxPageSize)
	}
	if p.RepliesMaxPageSize < 1 || p.RepliesDefaultPageSize < 1 || p.RepliesDefaultPageSize > p.RepliesMaxPageSize {
		return fmt.Errorf("invalid reply pagination settings: default=%d max=%d", p.RepliesDefaultPageSize, p.RepliesMaxPageSize)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 15)
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.driver", sharedConfig.DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "helpdesk")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.migration_strategy", sharedConfig.MigrationGoose)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60)
	v.SetDefault("auth.bootstrap_admin.email", "")
	v.SetDefault("auth.bootstrap_admin.password", "")

	v.SetDefault("pagination.tickets_default_page_size", 10)
	v.SetDefault("pagination.tickets_max_page_size", 50)
	v.SetDefault("pagination.replies_default_page_size", 50)
	v.SetDefault("pagination.replies_max_page_size", 100)

	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "support@helpdesk.local")
	v.SetDefault("email.from_name", "Helpdesk")
	v.SetDefault("email.send_timeout_seconds", 10)

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.limit", 20)
	v.SetDefault("ratelimit.window_seconds", 60)

	v.SetDefault("business.timezone", "UTC")
}

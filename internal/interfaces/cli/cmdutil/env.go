// Package cmdutil holds the start-up steps shared by the CLI commands.
package cmdutil

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Env is a loaded configuration with the process logger and, when opened, a
// database connection.
type Env struct {
	Name   string
	Config *config.Config
	Log    logger.Interface
	DB     *gorm.DB
}

// Load reads the configuration for env and initialises the logger and the
// business timezone.
func Load(env string) (*Env, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return &Env{Name: env, Config: cfg, Log: logger.NewLogger()}, nil
}

// LoadWithDatabase is Load followed by opening the configured database.
func LoadWithDatabase(env string) (*Env, error) {
	e, err := Load(env)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(&e.Config.Database, e.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	e.DB = db
	return e, nil
}

// Close releases the database connection if one was opened.
func (e *Env) Close() {
	if e.DB == nil {
		return
	}
	if err := database.Close(e.DB); err != nil {
		e.Log.Warnw("failed to close database", "error", err)
	}
}

package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// DefaultScriptsDir is where `migrate create` writes new goose scripts when
// run from the repository root.
const DefaultScriptsDir = "internal/infrastructure/migration/scripts/goose"

// Manager runs migrations with the strategy selected in configuration.
type Manager struct {
	strategy Strategy
	driver   string
	logger   logger.Interface
}

// NewManager picks the strategy from cfg.MigrationStrategy. An empty value
// means goose.
func NewManager(cfg *config.DatabaseConfig, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	switch cfg.MigrationStrategy {
	case "", config.MigrationGoose:
		strategy = NewGooseStrategy(cfg.Driver, log)
	case config.MigrationGolangMigrate:
		strategy = NewGolangMigrateStrategy(cfg.Driver, cfg.MigrationDSN(), log)
	case config.MigrationAuto:
		strategy = NewAutoStrategy(log)
	default:
		return nil, fmt.Errorf("unknown migration strategy: %s", cfg.MigrationStrategy)
	}

	return NewManagerWithStrategy(strategy, cfg.Driver, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, driver string, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		driver:   driver,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

func (m *Manager) Down(db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", steps)
	}
	return m.strategy.MigrateDown(db, steps)
}

func (m *Manager) Version(db *gorm.DB) (int64, error) {
	return m.strategy.GetVersion(db)
}

func (m *Manager) Status(db *gorm.DB) error {
	return m.strategy.Status(db)
}

// Create scaffolds a new goose migration for the configured driver. Scripts
// are always authored in goose format regardless of the active strategy.
func (m *Manager) Create(dir, name string) error {
	if name == "" {
		return fmt.Errorf("migration name is required")
	}
	return NewGooseStrategy(m.driver, m.logger).Create(dir, name)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"path"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/migrations"
	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate applies every pending migration
	Migrate(db *gorm.DB) error
	// MigrateDown rolls back the given number of migrations
	MigrateDown(db *gorm.DB, steps int) error
	// GetVersion returns the currently applied version
	GetVersion(db *gorm.DB) (int64, error)
	// Status logs the applied state of every migration
	Status(db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

var errUnsupportedDriver = errors.New("unsupported database driver")

// GooseStrategy runs the embedded goose scripts for the configured driver.
type GooseStrategy struct {
	driver string
	logger logger.Interface
}

func NewGooseStrategy(driver string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		driver: driver,
		logger: log.With("component", "migration.goose"),
	}
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case config.DriverMySQL:
		return "mysql", nil
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("%w: %s", errUnsupportedDriver, driver)
	}
}

func (s *GooseStrategy) scriptsDir() string {
	return path.Join(gooseScriptsDir, s.driver)
}

// prepare points goose at the embedded scripts and returns the raw handle.
func (s *GooseStrategy) prepare(db *gorm.DB) (*sql.DB, error) {
	dialect, err := gooseDialect(s.driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(Scripts)
	if err := goose.SetDialect(dialect); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return sqlDB, nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	s.logger.Infow("starting goose migration",
		"driver", s.driver,
		"version", currentVersion)

	if err := goose.Up(sqlDB, s.scriptsDir()); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	s.logger.Infow("starting down migration", "steps", steps)
	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.scriptsDir()); err != nil {
			s.logger.Errorw("down migration failed", "error", err, "step", i+1)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	if err := goose.Status(sqlDB, s.scriptsDir()); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes a new sequentially numbered SQL migration into dir on disk.
// Embedded scripts are read-only, so the caller passes the source tree path.
func (s *GooseStrategy) Create(dir, name string) error {
	dialect, err := gooseDialect(s.driver)
	if err != nil {
		return err
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	goose.SetBaseFS(nil)
	goose.SetSequential(true)
	if err := goose.Create(nil, path.Join(dir, s.driver), name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "driver", s.driver)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return config.MigrationGoose
}

// GolangMigrateStrategy implements migration using golang-migrate with the
// embedded up/down scripts. Only MySQL and PostgreSQL are supported.
type GolangMigrateStrategy struct {
	driver string
	dsn    string
	logger logger.Interface
}

func NewGolangMigrateStrategy(driver, dsn string, log logger.Interface) *GolangMigrateStrategy {
	return &GolangMigrateStrategy{
		driver: driver,
		dsn:    dsn,
		logger: log.With("component", "migration.golang-migrate"),
	}
}

// createMigrateInstance opens a dedicated connection: closing the migrate
// instance closes its database handle, which must not be gorm's pool.
func (s *GolangMigrateStrategy) createMigrateInstance() (*migrate.Migrate, error) {
	var sqlDriver string
	switch s.driver {
	case config.DriverMySQL:
		sqlDriver = "mysql"
	case config.DriverPostgres:
		sqlDriver = "pgx"
	default:
		return nil, fmt.Errorf("%w for golang-migrate: %s", errUnsupportedDriver, s.driver)
	}

	sqlDB, err := sql.Open(sqlDriver, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}

	var driver database.Driver
	if s.driver == config.DriverMySQL {
		driver, err = mysql.WithInstance(sqlDB, &mysql.Config{})
	} else {
		driver, err = pgxmigrate.WithInstance(sqlDB, &pgxmigrate.Config{})
	}
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create %s driver: %w", s.driver, err)
	}

	source, err := iofs.New(Scripts, path.Join(migrateScriptsDir, s.driver))
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("failed to open embedded scripts: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, s.driver, driver)
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func (s *GolangMigrateStrategy) Migrate(_ *gorm.DB) error {
	m, err := s.createMigrateInstance()
	if err != nil {
		return err
	}
	defer m.Close()

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		s.logger.Errorw("failed to get current migration version", "error", err)
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		s.logger.Warnw("database is in dirty state, please fix manually", "version", currentVersion)
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	s.logger.Infow("starting golang-migrate migration",
		"driver", s.driver,
		"version", currentVersion)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GolangMigrateStrategy) MigrateDown(_ *gorm.DB, steps int) error {
	m, err := s.createMigrateInstance()
	if err != nil {
		return err
	}
	defer m.Close()

	s.logger.Infow("starting down migration", "steps", steps)
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GolangMigrateStrategy) GetVersion(_ *gorm.DB) (int64, error) {
	m, err := s.createMigrateInstance()
	if err != nil {
		return 0, err
	}
	defer m.Close()

	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return int64(version), nil
}

func (s *GolangMigrateStrategy) Status(_ *gorm.DB) error {
	m, err := s.createMigrateInstance()
	if err != nil {
		return err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get version: %w", err)
	}

	s.logger.Infow("migration status", "version", version, "dirty", dirty)
	return nil
}

// Force sets the database migration version and clears the dirty flag.
func (s *GolangMigrateStrategy) Force(_ *gorm.DB, version int) error {
	m, err := s.createMigrateInstance()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Force(version); err != nil {
		s.logger.Errorw("force migration failed", "error", err)
		return fmt.Errorf("failed to force version: %w", err)
	}

	s.logger.Infow("force migration completed successfully", "version", version)
	return nil
}

func (s *GolangMigrateStrategy) GetName() string {
	return config.MigrationGolangMigrate
}

// AutoStrategy creates the schema straight from the gorm models. It keeps no
// version history, so it is meant for local development and tests.
type AutoStrategy struct {
	logger logger.Interface
}

func NewAutoStrategy(log logger.Interface) *AutoStrategy {
	return &AutoStrategy{logger: log.With("component", "migration.auto")}
}

func (s *AutoStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(migrations.Models()))
	if err := migrations.AutoMigrate(db); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *AutoStrategy) MigrateDown(_ *gorm.DB, _ int) error {
	return errors.New("auto migration does not support rollback")
}

func (s *AutoStrategy) GetVersion(_ *gorm.DB) (int64, error) {
	return 0, nil
}

func (s *AutoStrategy) Status(db *gorm.DB) error {
	for _, model := range migrations.Models() {
		s.logger.Infow("model status", "model", fmt.Sprintf("%T", model), "table_exists", db.Migrator().HasTable(model))
	}
	return nil
}

func (s *AutoStrategy) GetName() string {
	return config.MigrationAuto
}

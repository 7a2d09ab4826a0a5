package migration

import (
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Driver: config.DriverSQLite, Database: ":memory:"}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestNewManager_SelectsStrategy(t *testing.T) {
	tests := []struct {
		strategy string
		want     string
		wantErr  bool
	}{
		{"", config.MigrationGoose, false},
		{config.MigrationGoose, config.MigrationGoose, false},
		{config.MigrationGolangMigrate, config.MigrationGolangMigrate, false},
		{config.MigrationAuto, config.MigrationAuto, false},
		{"flyway", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			m, err := NewManager(&config.DatabaseConfig{Driver: config.DriverMySQL, MigrationStrategy: tt.strategy}, logger.NewNop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.GetStrategy().GetName())
		})
	}
}

func TestEmbeddedScripts_PresentForEveryDialect(t *testing.T) {
	for _, dir := range []string{
		"scripts/goose/mysql",
		"scripts/goose/postgres",
		"scripts/goose/sqlite",
		"scripts/migrate/mysql",
		"scripts/migrate/postgres",
	} {
		t.Run(dir, func(t *testing.T) {
			entries, err := fs.ReadDir(Scripts, dir)
			require.NoError(t, err)
			assert.NotEmpty(t, entries)
			for _, e := range entries {
				assert.True(t, strings.HasSuffix(e.Name(), ".sql"), e.Name())
			}
		})
	}
}

func TestGooseStrategy_SQLiteUpAndDown(t *testing.T) {
	db := openSQLite(t)
	m := NewManagerWithStrategy(NewGooseStrategy(config.DriverSQLite, logger.NewNop()), config.DriverSQLite, logger.NewNop())

	require.NoError(t, m.Migrate(db))

	version, err := m.Version(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	for _, table := range []string{"users", "tickets", "ticket_replies"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// Running again is a no-op.
	require.NoError(t, m.Migrate(db))
	require.NoError(t, m.Status(db))

	require.NoError(t, m.Down(db, 1))
	version, err = m.Version(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
	assert.False(t, db.Migrator().HasTable("tickets"))
}

func TestGooseStrategy_SchemaMatchesModels(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, NewGooseStrategy(config.DriverSQLite, logger.NewNop()).Migrate(db))

	now := time.Now().UTC()
	user := &models.UserModel{Email: "a@example.com", PasswordHash: "x", Role: "USER", CreatedAt: now}
	require.NoError(t, db.Create(user).Error)

	ticket := &models.TicketModel{
		UserID:      user.ID,
		Subject:     "Printer",
		Description: "Printer is on fire again",
		Status:      "OPEN",
		Priority:    "HIGH",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, db.Create(ticket).Error)
	require.NoError(t, db.Create(&models.ReplyModel{TicketID: ticket.ID, AuthorID: user.ID, Message: "hi", CreatedAt: now}).Error)

	dup := &models.UserModel{Email: "a@example.com", PasswordHash: "y", Role: "USER", CreatedAt: now}
	assert.Error(t, db.Create(dup).Error)

	require.NoError(t, db.Delete(&models.UserModel{}, user.ID).Error)
	var replies int64
	require.NoError(t, db.Model(&models.ReplyModel{}).Count(&replies).Error)
	assert.Zero(t, replies)
}

func TestGolangMigrateStrategy_RejectsSQLite(t *testing.T) {
	db := openSQLite(t)
	err := NewGolangMigrateStrategy(config.DriverSQLite, ":memory:", logger.NewNop()).Migrate(db)
	assert.ErrorIs(t, err, errUnsupportedDriver)
}

func TestNewManager_GolangMigrateUsesMultiStatementDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:            config.DriverMySQL,
		Host:              "db",
		Port:              3306,
		Username:          "helpdesk",
		Password:          "secret",
		Database:          "helpdesk",
		MigrationStrategy: config.MigrationGolangMigrate,
	}

	m, err := NewManager(cfg, logger.NewNop())
	require.NoError(t, err)

	s, ok := m.GetStrategy().(*GolangMigrateStrategy)
	require.True(t, ok)
	assert.Contains(t, s.dsn, "multiStatements=true")
	assert.True(t, strings.HasPrefix(s.dsn, cfg.GetDSN()))
}

func TestAutoStrategy(t *testing.T) {
	db := openSQLite(t)
	s := NewAutoStrategy(logger.NewNop())

	require.NoError(t, s.Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.TicketModel{}))
	assert.NoError(t, s.Status(db))
	assert.Error(t, s.MigrateDown(db, 1))
}

func TestManager_DownRejectsZeroSteps(t *testing.T) {
	m := NewManagerWithStrategy(NewAutoStrategy(logger.NewNop()), config.DriverSQLite, logger.NewNop())
	assert.Error(t, m.Down(nil, 0))
}

func TestManager_CreateRequiresName(t *testing.T) {
	m := NewManagerWithStrategy(NewAutoStrategy(logger.NewNop()), config.DriverSQLite, logger.NewNop())
	assert.Error(t, m.Create(t.TempDir(), ""))
}

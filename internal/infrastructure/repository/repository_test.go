package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	uservo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/migrations"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }
func (plainHasher) Verify(p, h string) error {
	if h != "hashed:"+p {
		return fmt.Errorf("mismatch")
	}
	return nil
}

func createUser(t *testing.T, repo *UserRepository, email string, role authorization.UserRole) *user.User {
	t.Helper()
	e, err := uservo.NewEmail(email)
	require.NoError(t, err)
	p, err := uservo.NewPassword("password123")
	require.NoError(t, err)
	u, err := user.NewUser(e, p, role, plainHasher{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

// insertTicket writes a row directly so tests control created_at.
func insertTicket(t *testing.T, db *gorm.DB, ownerID uint, status, priority string, createdAt time.Time) uint {
	t.Helper()
	m := &models.TicketModel{
		UserID:      ownerID,
		Subject:     "Subject",
		Description: "Description long enough",
		Status:      status,
		Priority:    priority,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   createdAt.UTC(),
	}
	require.NoError(t, db.Create(m).Error)
	return m.ID
}

func newLogger() logger.Interface { return logger.NewNop() }

// Package migrations holds the model list used by the "auto" migration
// strategy. SQL migrations for the other strategies live under
// internal/infrastructure/migration/scripts.
package migrations

import (
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
)

// Models lists every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.ReplyModel{},
	}
}

// AutoMigrate creates or updates the schema from the gorm models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

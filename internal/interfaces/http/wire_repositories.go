package http

import (
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo   user.Repository
	ticketRepo ticket.TicketRepository
	replyRepo  ticket.ReplyRepository
	txManager  *db.TransactionManager
}

func newRepositories(gdb *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:   repository.NewUserRepository(gdb, log),
		ticketRepo: repository.NewTicketRepository(gdb),
		replyRepo:  repository.NewReplyRepository(gdb),
		txManager:  db.NewTransactionManager(gdb),
	}
}

package models

import (
	"time"

	"github.com/orris-inc/helpdesk/internal/shared/constants"
)

type TicketModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index:idx_tickets_user_id"`
	Subject     string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"size:20;not null;index:idx_tickets_status"`
	Priority    string    `gorm:"size:20;not null;index:idx_tickets_priority"`
	CreatedAt   time.Time `gorm:"not null;index:idx_tickets_created_at"`
	UpdatedAt   time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type ReplyModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index:idx_ticket_replies_thread,priority:1"`
	AuthorID  uint      `gorm:"not null;index:idx_ticket_replies_author_id"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_ticket_replies_thread,priority:2"`

	Ticket *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Author *UserModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (ReplyModel) TableName() string {
	return constants.TableTicketReplies
}

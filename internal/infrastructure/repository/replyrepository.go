package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/db"
)

type ReplyRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ReplyRepository) Create(ctx context.Context, reply *ticket.Reply) error {
	model := r.mapper.ReplyToModel(reply)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reply: %w", err)
	}
	return reply.SetID(model.ID)
}

func (r *ReplyRepository) ListByTicket(ctx context.Context, ticketID uint, page, pageSize int) ([]*ticket.Reply, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ReplyModel{}).Where("ticket_id = ?", ticketID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count replies: %w", err)
	}

	var replyModels []*models.ReplyModel
	if err := query.
		Order("created_at ASC").
		Order("id ASC").
		Scopes(db.Paginate(page, pageSize)).
		Find(&replyModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list replies: %w", err)
	}

	replies := make([]*ticket.Reply, 0, len(replyModels))
	for _, m := range replyModels {
		reply, err := r.mapper.ReplyToDomain(m)
		if err != nil {
			return nil, 0, err
		}
		replies = append(replies, reply)
	}
	return replies, total, nil
}

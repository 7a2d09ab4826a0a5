package mappers

import (
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(list []*models.TicketModel) ([]*ticket.Ticket, error)
	ReplyToModel(r *ticket.Reply) *models.ReplyModel
	ReplyToDomain(model *models.ReplyModel) (*ticket.Reply, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		UserID:      t.UserID(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

// ToDomain keeps the stored status verbatim; see ticket.ReconstructTicket.
func (m *ticketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Subject,
		model.Description,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
}

func (m *ticketMapper) ToDomainList(list []*models.TicketModel) ([]*ticket.Ticket, error) {
	out := make([]*ticket.Ticket, 0, len(list))
	for _, model := range list {
		t, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *ticketMapper) ReplyToModel(r *ticket.Reply) *models.ReplyModel {
	return &models.ReplyModel{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		AuthorID:  r.AuthorID(),
		Message:   r.Message(),
		CreatedAt: r.CreatedAt(),
	}
}

func (m *ticketMapper) ReplyToDomain(model *models.ReplyModel) (*ticket.Reply, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructReply(model.ID, model.TicketID, model.AuthorID, model.Message, model.CreatedAt.UTC())
}

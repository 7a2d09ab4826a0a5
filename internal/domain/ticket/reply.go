package ticket

import (
	"fmt"
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/shared"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

const (
	MessageMinLength = 1
	MessageMaxLength = 5000
)

// Reply is an immutable message in a ticket's thread.
type Reply struct {
	id        uint
	ticketID  uint
	authorID  uint
	message   string
	createdAt time.Time
}

func NewReply(ticketID, authorID uint, message string) (*Reply, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	message = shared.NormalizeText(message)
	if err := shared.CheckLength("message", message, MessageMinLength, MessageMaxLength); err != nil {
		return nil, err
	}

	return &Reply{
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructReply(id, ticketID, authorID uint, message string, createdAt time.Time) (*Reply, error) {
	if id == 0 {
		return nil, fmt.Errorf("reply ID cannot be zero")
	}

	return &Reply{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		message:   message,
		createdAt: createdAt,
	}, nil
}

func (r *Reply) ID() uint             { return r.id }
func (r *Reply) TicketID() uint       { return r.ticketID }
func (r *Reply) AuthorID() uint       { return r.authorID }
func (r *Reply) Message() string      { return r.message }
func (r *Reply) CreatedAt() time.Time { return r.createdAt }

func (r *Reply) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reply ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reply ID cannot be zero")
	}
	r.id = id
	return nil
}

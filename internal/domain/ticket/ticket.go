package ticket

import (
	"fmt"
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/shared"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

const (
	SubjectMinLength     = 1
	SubjectMaxLength     = 200
	DescriptionMinLength = 10
	DescriptionMaxLength = 5000
)

// Ticket is a support request owned by the customer who opened it. Subject,
// description and priority never change after creation; status moves only
// along the lifecycle graph.
type Ticket struct {
	id          uint
	userID      uint
	subject     string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(userID uint, subject, description string, priority vo.Priority) (*Ticket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("owner is required")
	}

	subject = shared.NormalizeText(subject)
	if err := shared.CheckLength("subject", subject, SubjectMinLength, SubjectMaxLength); err != nil {
		return nil, err
	}

	description = shared.NormalizeText(description)
	if err := shared.CheckLength("description", description, DescriptionMinLength, DescriptionMaxLength); err != nil {
		return nil, err
	}

	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := biztime.NowUTC()
	return &Ticket{
		userID:      userID,
		subject:     subject,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from storage without re-running
// creation rules. The status is kept as stored, even if unrecognised, so that
// a transition from it is rejected rather than silently repaired.
func ReconstructTicket(
	id, userID uint,
	subject, description string,
	status vo.TicketStatus,
	priority vo.Priority,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}

	return &Ticket{
		id:          id,
		userID:      userID,
		subject:     subject,
		description: description,
		status:      status,
		priority:    priority,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                   { return t.id }
func (t *Ticket) UserID() uint               { return t.userID }
func (t *Ticket) Subject() string            { return t.subject }
func (t *Ticket) Description() string        { return t.description }
func (t *Ticket) Status() vo.TicketStatus    { return t.status }
func (t *Ticket) Priority() vo.Priority      { return t.priority }
func (t *Ticket) CreatedAt() time.Time       { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time       { return t.updatedAt }
func (t *Ticket) IsOwnedBy(userID uint) bool { return t.userID == userID }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus applies a lifecycle transition. Requesting the current status
// is accepted and reports changed=false.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) (changed bool, err error) {
	if !newStatus.IsValid() {
		return false, errors.NewValidationError(fmt.Sprintf("invalid ticket status: %s", newStatus))
	}
	if err := vo.ValidateTransition(t.status, newStatus); err != nil {
		return false, errors.NewInvalidTransitionError(err.Error())
	}
	if t.status == newStatus {
		return false, nil
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return true, nil
}

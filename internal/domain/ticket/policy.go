package ticket

import (
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

// The functions below decide per request what a caller may do with a ticket.
// They take the caller's role and id and the ticket's owner explicitly and
// have no side effects.

// CanView allows admins to see any ticket and customers only their own.
func CanView(role authorization.UserRole, callerID, ownerID uint) error {
	if role.IsAdmin() {
		return nil
	}
	if callerID != 0 && callerID == ownerID {
		return nil
	}
	return errors.NewForbiddenError("you do not have access to this ticket")
}

// CanReply applies the view rule first, so a stranger is told 403 whatever
// the ticket's state, and then refuses replies on closed tickets.
func CanReply(role authorization.UserRole, callerID, ownerID uint, status vo.TicketStatus) error {
	if err := CanView(role, callerID, ownerID); err != nil {
		return err
	}
	if status.IsClosed() {
		return errors.NewValidationError("cannot reply to a closed ticket")
	}
	return nil
}

// CanUpdateStatus restricts lifecycle transitions to admins.
func CanUpdateStatus(role authorization.UserRole) error {
	if !role.IsAdmin() {
		return errors.NewForbiddenError("only admins can change ticket status")
	}
	return nil
}

// CanCreate restricts ticket creation to customers.
func CanCreate(role authorization.UserRole) error {
	if !role.IsCustomer() {
		return errors.NewForbiddenError("only customers can create tickets")
	}
	return nil
}

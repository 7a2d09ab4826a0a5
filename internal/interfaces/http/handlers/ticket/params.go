package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

// ParseTicketID reads the :ticket_id path parameter as a positive integer.
func ParseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("ticket_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("ticket_id must be a positive integer")
	}
	return uint(id), nil
}

// CallerFromContext builds the use case caller from the authenticated context.
func CallerFromContext(c *gin.Context) (usecases.Caller, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return usecases.Caller{}, errors.NewUnauthorizedError("user not authenticated")
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return usecases.Caller{}, errors.NewUnauthorizedError("user not authenticated")
	}
	return usecases.Caller{ID: userID, Role: role}, nil
}

package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	tickethandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	updateStatusUC usecases.UpdateStatusExecutor
	logger         logger.Interface
}

func NewTicketHandler(updateStatusUC usecases.UpdateStatusExecutor, logger logger.Interface) *TicketHandler {
	return &TicketHandler{
		updateStatusUC: updateStatusUC,
		logger:         logger,
	}
}

// UpdateStatus godoc
//
//	@Summary		Change a ticket's status
//	@Description	OPEN→IN_PROGRESS|CLOSED, IN_PROGRESS→RESOLVED|CLOSED, RESOLVED→CLOSED. Requesting the current status is a no-op.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			ticket_id	path		int						true	"Ticket ID"
//	@Param			request		body		dto.UpdateStatusRequest	true	"New status"
//	@Success		200			{object}	dto.StatusDTO
//	@Failure		400			{object}	utils.ErrorBody	"Invalid status or transition"
//	@Failure		403			{object}	utils.ErrorBody
//	@Failure		404			{object}	utils.ErrorBody
//	@Router			/admin/tickets/{ticket_id}/status [put]
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	caller, err := tickethandlers.CallerFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := tickethandlers.ParseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		Caller:   caller,
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("ticket status updated", "ticket_id", result.ID, "status", result.Status, "admin_id", caller.ID)
	utils.SuccessResponse(c, http.StatusOK, result)
}

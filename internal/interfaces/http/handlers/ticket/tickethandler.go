package ticket

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	getTicketUC    usecases.GetTicketExecutor
	listRepliesUC  usecases.ListRepliesExecutor
	createReplyUC  usecases.CreateReplyExecutor
	pagination     config.PaginationConfig
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listRepliesUC usecases.ListRepliesExecutor,
	createReplyUC usecases.CreateReplyExecutor,
	pagination config.PaginationConfig,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		listRepliesUC:  listRepliesUC,
		createReplyUC:  createReplyUC,
		pagination:     pagination,
		logger:         logger,
	}
}

// CreateTicket godoc
//
//	@Summary	Open a ticket
//	@Tags		tickets
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		request	body		dto.CreateTicketRequest	true	"Ticket"
//	@Success	201		{object}	dto.TicketDTO
//	@Failure	400		{object}	utils.ErrorBody
//	@Failure	401		{object}	utils.ErrorBody
//	@Failure	403		{object}	utils.ErrorBody	"Admins cannot open tickets"
//	@Router		/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	caller, err := CallerFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("invalid create ticket request", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Caller:      caller,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListTickets godoc
//
//	@Summary		List tickets
//	@Description	Customers see their own tickets, admins see all. Newest first.
//	@Tags			tickets
//	@Produce		json
//	@Security		Bearer
//	@Param			page			query		int		false	"Page (1-based)"		default(1)
//	@Param			page_size		query		int		false	"Items per page"		default(10)
//	@Param			status			query		string	false	"Status filter"			Enums(OPEN, IN_PROGRESS, RESOLVED, CLOSED)
//	@Param			priority		query		string	false	"Priority filter"		Enums(LOW, MEDIUM, HIGH)
//	@Param			created_from	query		string	false	"Inclusive lower bound, RFC 3339 or YYYY-MM-DD"
//	@Param			created_to		query		string	false	"Inclusive upper bound, RFC 3339 or YYYY-MM-DD"
//	@Success		200				{object}	utils.ListResponse{items=[]dto.TicketDTO}
//	@Failure		400				{object}	utils.ErrorBody
//	@Failure		401				{object}	utils.ErrorBody
//	@Router			/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	caller, err := CallerFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination, err := utils.ParsePaginationWithLimits(c, h.pagination.TicketsDefaultPageSize, h.pagination.TicketsMaxPageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ListTicketsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	from, err := parseBound(req.CreatedFrom, "created_from", biztime.ParseRangeStart)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	to, err := parseBound(req.CreatedTo, "created_to", biztime.ParseRangeEnd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Caller:      caller,
		Status:      req.Status,
		Priority:    req.Priority,
		CreatedFrom: from,
		CreatedTo:   to,
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetTicket godoc
//
//	@Summary	Get a ticket
//	@Tags		tickets
//	@Produce	json
//	@Security	Bearer
//	@Param		ticket_id	path		int	true	"Ticket ID"
//	@Success	200			{object}	dto.TicketDTO
//	@Failure	400			{object}	utils.ErrorBody
//	@Failure	403			{object}	utils.ErrorBody
//	@Failure	404			{object}	utils.ErrorBody
//	@Router		/tickets/{ticket_id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	caller, ticketID, ok := h.callerAndTicket(c)
	if !ok {
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Caller:   caller,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListReplies godoc
//
//	@Summary	List a ticket's replies
//	@Description	Oldest first.
//	@Tags		tickets
//	@Produce	json
//	@Security	Bearer
//	@Param		ticket_id	path		int	true	"Ticket ID"
//	@Param		page		query		int	false	"Page (1-based)"	default(1)
//	@Param		page_size	query		int	false	"Items per page"	default(50)
//	@Success	200			{object}	utils.ListResponse{items=[]dto.ReplyDTO}
//	@Failure	400			{object}	utils.ErrorBody
//	@Failure	403			{object}	utils.ErrorBody
//	@Failure	404			{object}	utils.ErrorBody
//	@Router		/tickets/{ticket_id}/replies [get]
func (h *TicketHandler) ListReplies(c *gin.Context) {
	caller, ticketID, ok := h.callerAndTicket(c)
	if !ok {
		return
	}

	pagination, err := utils.ParsePaginationWithLimits(c, h.pagination.RepliesDefaultPageSize, h.pagination.RepliesMaxPageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRepliesUC.Execute(c.Request.Context(), usecases.ListRepliesQuery{
		Caller:   caller,
		TicketID: ticketID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// CreateReply godoc
//
//	@Summary	Reply to a ticket
//	@Tags		tickets
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		ticket_id	path		int						true	"Ticket ID"
//	@Param		request		body		dto.CreateReplyRequest	true	"Reply"
//	@Success	201			{object}	dto.ReplyDTO
//	@Failure	400			{object}	utils.ErrorBody	"Invalid input or ticket closed"
//	@Failure	403			{object}	utils.ErrorBody
//	@Failure	404			{object}	utils.ErrorBody
//	@Router		/tickets/{ticket_id}/replies [post]
func (h *TicketHandler) CreateReply(c *gin.Context) {
	caller, ticketID, ok := h.callerAndTicket(c)
	if !ok {
		return
	}

	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createReplyUC.Execute(c.Request.Context(), usecases.CreateReplyCommand{
		Caller:   caller,
		TicketID: ticketID,
		Message:  req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *TicketHandler) callerAndTicket(c *gin.Context) (usecases.Caller, uint, bool) {
	caller, err := CallerFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return usecases.Caller{}, 0, false
	}
	ticketID, err := ParseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return usecases.Caller{}, 0, false
	}
	return caller, ticketID, true
}

func parseBound(raw, field string, parse func(string) (time.Time, error)) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parse(raw)
	if err != nil {
		return nil, errors.NewValidationError(field + " must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}
	return &t, nil
}

package http

import (
	ticketUsecases "github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	userUsecases "github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/shared/events"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// allUseCases holds all use case instances used by the handlers.
type allUseCases struct {
	// User
	signup       *userUsecases.SignupUseCase
	login        *userUsecases.LoginWithPasswordUseCase
	authenticate *userUsecases.AuthenticateUseCase
	getUser      *userUsecases.GetUserUseCase

	// Ticket
	createTicket *ticketUsecases.CreateTicketUseCase
	listTickets  *ticketUsecases.ListTicketsUseCase
	getTicket    *ticketUsecases.GetTicketUseCase
	listReplies  *ticketUsecases.ListRepliesUseCase
	createReply  *ticketUsecases.CreateReplyUseCase
	updateStatus *ticketUsecases.UpdateStatusUseCase
}

func newUseCases(repos *repositories, svcs *services, publisher events.EventPublisher, log logger.Interface) *allUseCases {
	return &allUseCases{
		signup:       userUsecases.NewSignupUseCase(repos.userRepo, svcs.hasher, log),
		login:        userUsecases.NewLoginWithPasswordUseCase(repos.userRepo, svcs.hasher, svcs.jwt, log),
		authenticate: userUsecases.NewAuthenticateUseCase(repos.userRepo, svcs.jwt, log),
		getUser:      userUsecases.NewGetUserUseCase(repos.userRepo, log),

		createTicket: ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, repos.txManager, publisher, svcs.renderer, log),
		listTickets:  ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, svcs.renderer, log),
		getTicket:    ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, svcs.renderer, log),
		listReplies:  ticketUsecases.NewListRepliesUseCase(repos.ticketRepo, repos.replyRepo, svcs.renderer, log),
		createReply:  ticketUsecases.NewCreateReplyUseCase(repos.ticketRepo, repos.replyRepo, repos.txManager, publisher, svcs.renderer, log),
		updateStatus: ticketUsecases.NewUpdateStatusUseCase(repos.ticketRepo, repos.txManager, publisher, log),
	}
}

package constants

const (
	// Default pagination
	DefaultPage = 1

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-Id"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// TokenTypeBearer is the token_type reported by the login endpoint.
	TokenTypeBearer = "bearer"

	// Database table names
	TableUsers         = "users"
	TableTickets       = "tickets"
	TableTicketReplies = "ticket_replies"

	ErrMsgInternalServerError = "internal server error"
)

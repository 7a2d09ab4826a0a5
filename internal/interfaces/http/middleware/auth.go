package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/shared/authorization"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	authenticateUC usecases.AuthenticateExecutor
	logger         logger.Interface
}

func NewAuthMiddleware(authenticateUC usecases.AuthenticateExecutor, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticateUC: authenticateUC,
		logger:         logger,
	}
}

// RequireAuth resolves the bearer token to a stored account and puts its id,
// email and role in the context. The role always comes from the database.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if !ok {
			utils.AbortWithError(c, errors.NewUnauthorizedError("missing or malformed authorization header"))
			return
		}

		u, err := m.authenticateUC.Execute(c.Request.Context(), token)
		if err != nil {
			m.logger.Debugw("authentication failed", "error", err, "request_id", GetRequestID(c))
			utils.AbortWithError(c, err)
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserEmail, u.Email())
		c.Set(constants.ContextKeyUserRole, u.Role())

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// GetUserID returns the authenticated user's id.
func GetUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// GetUserRole returns the authenticated user's role.
func GetUserRole(c *gin.Context) (authorization.UserRole, bool) {
	v, ok := c.Get(constants.ContextKeyUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(authorization.UserRole)
	return role, ok
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	signupUC  signupUseCase
	loginUC   loginUseCase
	getUserUC getUserUseCase
	logger    logger.Interface
}

func NewAuthHandler(signupUC signupUseCase, loginUC loginUseCase, getUserUC getUserUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		signupUC:  signupUC,
		loginUC:   loginUC,
		getUserUC: getUserUC,
		logger:    logger,
	}
}

// Signup godoc
//
//	@Summary		Create a customer account
//	@Description	Registers a new account with role USER. Emails are unique case-insensitively.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupRequest	true	"Signup data"
//	@Success		201		{object}	dto.UserResponse
//	@Failure		400		{object}	utils.ErrorBody	"Invalid input"
//	@Failure		409		{object}	utils.ErrorBody	"Email already registered"
//	@Failure		429		{object}	utils.ErrorBody	"Rate limited"
//	@Router			/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("invalid signup request", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.signupUC.Execute(c.Request.Context(), usecases.SignupCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Login godoc
//
//	@Summary		Obtain an access token
//	@Description	Exchanges email and password for a bearer token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequest	true	"Credentials"
//	@Success		200		{object}	dto.TokenResponse
//	@Failure		400		{object}	utils.ErrorBody	"Invalid input"
//	@Failure		401		{object}	utils.ErrorBody	"Invalid credentials"
//	@Failure		429		{object}	utils.ErrorBody	"Rate limited"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// Me godoc
//
//	@Summary	Current account
//	@Tags		auth
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	dto.UserResponse
//	@Failure	401	{object}	utils.ErrorBody
//	@Router		/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return
	}

	result, err := h.getUserUC.ExecuteByID(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

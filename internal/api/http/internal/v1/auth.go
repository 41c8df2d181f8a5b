package v1

import (
	"errors"
	"net/http"

	"github.com/arco-app/backend/internal/service"
	"github.com/arco-app/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")

	auth.POST("/register", h.register)
	auth.GET("/confirm/:token", h.confirmEmail)
	auth.POST("/login", h.login)
	// Kept alongside /login; existing clients still post here.
	auth.POST("/signup", h.login)
	auth.POST("/reset", h.requestPasswordReset)
	auth.GET("/reset_password/:token", h.resetPasswordForm)
	auth.POST("/reset_password/:token", h.resetPassword)
	auth.GET("/logout", h.userIdentityMiddleware, h.logout)
}

type registerRequest struct {
	Email     string `json:"email" form:"email" binding:"required,email"`
	FirstName string `json:"first_name" form:"first_name" binding:"required"`
	LastName  string `json:"last_name" form:"last_name" binding:"required"`
	Username  string `json:"username" form:"username" binding:"required"`
	Password  string `json:"password" form:"password" binding:"required"`
}

type registerResponse struct {
	Status           string    `json:"status"`
	Message          string    `json:"message"`
	State            string    `json:"state"`
	Response         int       `json:"response"`
	ConfirmEmailSent bool      `json:"confirm_email_sent"`
	AccessToken      string    `json:"access_token"`
	RefreshToken     uuid.UUID `json:"refresh_token"`
}

// @Summary Register a new user
// @Tags Auth
// @Description Creates the account, sends a confirmation email and logs the user in
// @Accept json
// @Produce json
// @Success 200 {object} registerResponse
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	tokens, err := h.services.Auth.Register(c.Request.Context(), service.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Password:  req.Password,
	}, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusOK, gin.H{"response": 400, "message": "User already exists"})
			return
		}
		logger.Error("register failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, registerResponse{
		Status:           "success",
		Message:          "User created",
		State:            "User Logged in",
		Response:         200,
		ConfirmEmailSent: true,
		AccessToken:      tokens.AccessToken,
		RefreshToken:     tokens.RefreshToken,
	})
}

// @Summary Confirm email address
// @Tags Auth
// @Description Confirms the account encoded in the emailed token
// @Param token path string true "Confirmation token"
// @Success 302
// @Failure 404
// @Router /auth/confirm/{token} [get]
func (h *Handler) confirmEmail(c *gin.Context) {
	err := h.services.Auth.ConfirmEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		logger.Error("confirm email failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, h.config.App.LoginURL)
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type loginResponse struct {
	Message      string    `json:"message"`
	Success      bool      `json:"success"`
	ResponseCode int       `json:"response_code"`
	AccessToken  string    `json:"access_token"`
	RefreshToken uuid.UUID `json:"refresh_token"`
}

// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} loginResponse
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	tokens, err := h.services.Auth.Login(c.Request.Context(), req.Email, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusOK, gin.H{"message": "User does not exist", "success": false, "response_code": 400})
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusOK, gin.H{"message": "Log in Failure", "success": false, "response_code": 400, "cause": "Wrong password"})
		default:
			logger.Error("login failed", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Message:      "Logged in success",
		Success:      true,
		ResponseCode: 200,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

type resetRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

// @Summary Request a password reset email
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200
// @Router /auth/reset [post]
func (h *Handler) requestPasswordReset(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBind(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Auth.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		logger.Error("request password reset failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset sent", "success": true})
}

// @Summary Render the password reset form
// @Tags Auth
// @Param token path string true "Reset token"
// @Success 200
// @Failure 404
// @Router /auth/reset_password/{token} [get]
func (h *Handler) resetPasswordForm(c *gin.Context) {
	token := c.Param("token")

	if _, err := h.services.Auth.VerifyResetToken(token); err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.HTML(http.StatusOK, "reset_form.html", gin.H{"Token": token})
}

type resetPasswordRequest struct {
	Password        string `json:"password" form:"password" binding:"required"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm" binding:"required,eqfield=Password"`
}

// @Summary Set a new password
// @Tags Auth
// @Param token path string true "Reset token"
// @Success 302
// @Failure 404
// @Router /auth/reset_password/{token} [post]
func (h *Handler) resetPassword(c *gin.Context) {
	token := c.Param("token")

	var req resetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		// Invalid submission: render the form again, still bound to the token.
		c.HTML(http.StatusBadRequest, "reset_form.html", gin.H{"Token": token, "Error": "Passwords must match"})
		return
	}

	err := h.services.Auth.ResetPassword(c.Request.Context(), token, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		logger.Error("reset password failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, h.config.App.LoginURL)
}

// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200
// @Security UserAuth
// @Router /auth/logout [get]
func (h *Handler) logout(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), userID); err != nil {
		logger.Error("logout failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User logged out", "success": true})
}

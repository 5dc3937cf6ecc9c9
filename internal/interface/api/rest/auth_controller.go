package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-registry-api/internal/application/ports"
	"file-registry-api/internal/application/services"
	domain "file-registry-api/internal/domain/user"
	"file-registry-api/internal/interface/api/rest/dto/auth"
	"file-registry-api/internal/interface/api/rest/dto/user"
	"file-registry-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger         *zap.Logger
	accountService ports.AccountService
	authService    ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	accountService ports.AccountService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:         logger,
		accountService: accountService,
		authService:    authService,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func bindCredentials(c *gin.Context) (auth.Credentials, bool) {
	var req auth.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return req, false
	}

	if errs := validator.ValidateCredentials(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return req, false
	}

	return req, true
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	u, err := ac.accountService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrInvalidUsername), errors.Is(err, domain.ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, ac.logger, "Register()", err, "failed to register a user")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user":    user.ToResponseUser(*u),
	})
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	u, err := ac.accountService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgUserNotFound})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgIncorrectPassword})
		default:
			internalError(c, ac.logger, "Authenticate()", err, "failed to log in")
		}
		return
	}

	token, err := ac.authService.GenerateToken(u)
	if err != nil {
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("user_id", u.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrFailedToGenerateToken.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Logged in successfully",
		"access_token": token,
		"token_type":   "Bearer",
	})
}

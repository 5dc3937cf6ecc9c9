package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-registry-api/internal/application/ports"
	domain "file-registry-api/internal/domain/user"
	"file-registry-api/internal/infrastructure/jwt"
	"file-registry-api/internal/interface/api/rest/dto/user"
	"file-registry-api/internal/interface/api/rest/middleware"
)

type UserController struct {
	accountService  ports.AccountService
	userFileService ports.UserFileService
	logger          *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	accountService ports.AccountService,
	userFileService ports.UserFileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		accountService:  accountService,
		userFileService: userFileService,
		logger:          logger,
	}

	r.GET(RouteMe, middleware.AuthMiddleware(jwtService), uc.GetMeHandler)

	return uc
}

func (uc *UserController) GetMeHandler(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	u, err := uc.accountService.FindUser(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
			return
		}
		internalError(c, uc.logger, "FindUser()", err, "failed to get a user")
		return
	}

	usage, err := uc.userFileService.Usage(c.Request.Context(), ownerID)
	if err != nil {
		internalError(c, uc.logger, "Usage()", err, "failed to get usage")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseProfile(*u, usage))
}

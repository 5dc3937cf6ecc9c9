package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-registry-api/internal/domain"
)

// Messages of the public contract, clients match on them.
const (
	msgUserNotFound      = "User not found"
	msgIncorrectPassword = "Incorrect password"
	msgQuotaExceeded     = "You can only upload up to 15 files."
	msgFileNotFound      = "File not found"
)

// internalError answers unexpected failures. Store outages get 503 so
// clients can tell them from bugs.
func internalError(c *gin.Context, logger *zap.Logger, op string, err error, msg string) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrStoreUnavailable) {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": msg})
	logger.Error(op+" error", zap.Error(err))
}

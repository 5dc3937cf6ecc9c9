package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-registry-api/internal/application/ports"
	"file-registry-api/internal/domain/user"
	domain "file-registry-api/internal/domain/user_file"
	"file-registry-api/internal/infrastructure/jwt"
	"file-registry-api/internal/interface/api/rest/dto/user_file"
	"file-registry-api/internal/interface/api/rest/middleware"
	"file-registry-api/internal/interface/api/rest/validator"
)

// room for multipart boundaries and headers on top of the file itself
const multipartOverhead = int64(1 << 20)

type UserFileController struct {
	userFileService ports.UserFileService
	logger          *zap.Logger
}

func NewUserFileController(
	r *gin.Engine,
	userFileService ports.UserFileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserFileController {
	ufc := &UserFileController{
		userFileService: userFileService,
		logger:          logger,
	}

	authMw := middleware.AuthMiddleware(jwtService)
	r.POST(RouteUpload, authMw, ufc.UploadHandler)
	r.DELETE(RouteDelete, authMw, ufc.DeleteFileHandler)
	r.GET(RouteFiles, authMw, ufc.GetFilesHandler)
	r.GET(RouteFile, authMw, ufc.GetFileHandler)

	return ufc
}

func owner(c *gin.Context) (user.ID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return id, ok
}

func (ufc *UserFileController) UploadHandler(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, domain.MaxFileSize+multipartOverhead)
	fh, err := c.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": domain.ErrFileTooLarge.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size > domain.MaxFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": domain.ErrFileTooLarge.Error()})
		return
	}

	uf, err := ufc.userFileService.RegisterUpload(c.Request.Context(), ownerID, fh.Filename, fh.Size)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrQuotaExceeded):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgQuotaExceeded})
		case errors.Is(err, domain.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
		default:
			internalError(c, ufc.logger, "RegisterUpload()", err, "failed to upload a file")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"file":    user_file.ToResponseUserFile(*uf),
	})
}

func (ufc *UserFileController) DeleteFileHandler(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	// a malformed id cannot name any file
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFileNotFound})
		return
	}

	err := ufc.userFileService.DeleteFile(c.Request.Context(), ownerID, fileID)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgFileNotFound})
			return
		}
		internalError(c, ufc.logger, "DeleteFile()", err, "failed to delete a file")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

func (ufc *UserFileController) GetFilesHandler(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	files, err := ufc.userFileService.FindFiles(c.Request.Context(), ownerID)
	if err != nil {
		internalError(c, ufc.logger, "FindFiles()", err, "failed to get files")
		return
	}

	c.JSON(http.StatusOK, user_file.ResponseData{
		Data:      user_file.ToResponseUserFiles(files),
		Remaining: domain.NewUsage(len(files)).Remaining,
	})
}

func (ufc *UserFileController) GetFileHandler(c *gin.Context) {
	ownerID, ok := owner(c)
	if !ok {
		return
	}

	// plain REST lookup, unlike DELETE /delete/:file_id which keeps its 400
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": msgFileNotFound})
		return
	}

	uf, err := ufc.userFileService.FindFile(c.Request.Context(), ownerID, fileID)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgFileNotFound})
			return
		}
		internalError(c, ufc.logger, "FindFile()", err, "failed to get a file")
		return
	}

	c.JSON(http.StatusOK, user_file.ToResponseUserFile(*uf))
}

package user_file

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrQuotaExceeded   = fmt.Errorf("you can only upload up to %d files", MaxFilesPerUser)
	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidFileSize = errors.New("file size must not be negative")
)

package user_file

import (
	"github.com/google/uuid"
)

type (
	UserFile struct {
		ID         uuid.UUID `json:"id"`
		FileName   string    `json:"file_name"`
		SizeBytes  int64     `json:"file_size"`
		UploadDate int64     `json:"upload_date"`
	}
	UserFiles    []UserFile
	ResponseData struct {
		Data      UserFiles `json:"data"`
		Remaining int       `json:"remaining"`
	}
)

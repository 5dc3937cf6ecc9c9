package user_file

import (
	"file-registry-api/internal/domain/user_file"
)

func ToResponseUserFile(uDomain user_file.UserFile) UserFile {
	var uf = UserFile{
		ID:         uDomain.ID,
		FileName:   uDomain.FileName,
		SizeBytes:  uDomain.SizeBytes,
		UploadDate: uDomain.UploadedAt.UnixMilli(),
	}

	return uf
}

func ToResponseUserFiles(ufDomain user_file.UserFiles) UserFiles {
	ufs := make(UserFiles, len(ufDomain))
	for idx, u := range ufDomain {
		ufs[idx] = ToResponseUserFile(*u)
	}

	return ufs
}

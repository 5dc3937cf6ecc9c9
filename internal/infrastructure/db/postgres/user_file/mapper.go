package user_file

import (
	domain "file-registry-api/internal/domain/user_file"
)

func fromDBModel(model *UserFile) *domain.UserFile {
	var uf = &domain.UserFile{
		ID:     model.ID,
		UserID: model.UserID,

		FileName:  model.FileName,
		SizeBytes: model.SizeBytes,

		UploadedAt: model.UploadDate,
	}

	return uf
}

func fromDBModels(models UserFiles) domain.UserFiles {
	ufs := make(domain.UserFiles, len(models))
	for idx, u := range models {
		ufs[idx] = fromDBModel(u)
	}

	return ufs
}

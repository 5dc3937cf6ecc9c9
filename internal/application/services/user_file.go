package services

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"file-registry-api/internal/application/ports"
	"file-registry-api/internal/domain/event"
	"file-registry-api/internal/domain/user"
	domain "file-registry-api/internal/domain/user_file"
)

type UserFileService struct {
	userFileRepository domain.Repository
	events             ports.EventPublisher
	mCounter           *prometheus.CounterVec
	now                func() time.Time
}

func NewUserFileService(
	userFileRepository domain.Repository,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) *UserFileService {
	return &UserFileService{
		userFileRepository: userFileRepository,
		events:             events,
		mCounter:           mCounter,
		now:                time.Now,
	}
}

// RegisterUpload records metadata of a file the owner uploaded. The file
// name is kept verbatim. The quota check and the insert happen in one store
// operation, so concurrent uploads of the same owner cannot overshoot it.
func (ufs *UserFileService) RegisterUpload(
	ctx context.Context,
	ownerID user.ID,
	fileName string,
	fileSize int64,
) (*domain.UserFile, error) {
	if fileSize < 0 {
		return nil, domain.ErrInvalidFileSize
	}
	if fileSize > domain.MaxFileSize {
		return nil, domain.ErrFileTooLarge
	}

	uf, err := ufs.userFileRepository.CreateUserFileWithinQuota(ctx, &domain.UserFile{
		UserID:     ownerID,
		FileName:   fileName,
		SizeBytes:  fileSize,
		UploadedAt: ufs.now(),
	}, domain.MaxFilesPerUser)
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			ufs.mCounter.WithLabelValues("user_file_quota_rejected_total").Inc()
		}
		return nil, err
	}

	ufs.events.Publish(event.New(event.FileUploaded, ownerID, event.FilePayload{
		FileID:    uf.ID.String(),
		FileName:  uf.FileName,
		SizeBytes: uf.SizeBytes,
	}))
	ufs.mCounter.WithLabelValues("user_file_uploaded_total").Inc()

	return uf, nil
}

func (ufs *UserFileService) DeleteFile(ctx context.Context, ownerID user.ID, fileID domain.ID) error {
	if err := ufs.userFileRepository.DeleteUserFile(ctx, ownerID, fileID); err != nil {
		return err
	}

	ufs.events.Publish(event.New(event.FileDeleted, ownerID, event.FilePayload{FileID: fileID.String()}))
	ufs.mCounter.WithLabelValues("user_file_deleted_total").Inc()

	return nil
}

func (ufs *UserFileService) FindFile(ctx context.Context, ownerID user.ID, fileID domain.ID) (*domain.UserFile, error) {
	return ufs.userFileRepository.FetchUserFile(ctx, ownerID, fileID)
}

func (ufs *UserFileService) FindFiles(ctx context.Context, ownerID user.ID) (domain.UserFiles, error) {
	fls, err := ufs.userFileRepository.FetchUserFiles(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return fls, nil
}

func (ufs *UserFileService) Usage(ctx context.Context, ownerID user.ID) (domain.Usage, error) {
	n, err := ufs.userFileRepository.CountUserFiles(ctx, ownerID)
	if err != nil {
		return domain.Usage{}, err
	}

	return domain.NewUsage(n), nil
}

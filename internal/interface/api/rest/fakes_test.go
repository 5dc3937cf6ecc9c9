package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"file-registry-api/internal/domain/user"
	"file-registry-api/internal/domain/user_file"
	jwtSvc "file-registry-api/internal/infrastructure/jwt"
)

const testSecret = "test-secret"

type FakeAccountService struct {
	RegisterFunc     func(ctx context.Context, username, password string) (*user.User, error)
	AuthenticateFunc func(ctx context.Context, username, password string) (*user.User, error)
	FindUserFunc     func(ctx context.Context, id user.ID) (*user.User, error)
}

func (f *FakeAccountService) Register(ctx context.Context, username, password string) (*user.User, error) {
	if f.RegisterFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RegisterFunc(ctx, username, password)
}
func (f *FakeAccountService) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	if f.AuthenticateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.AuthenticateFunc(ctx, username, password)
}
func (f *FakeAccountService) FindUser(ctx context.Context, id user.ID) (*user.User, error) {
	if f.FindUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserFunc(ctx, id)
}

type fakeAuthService struct {
	GenerateTokenFunc func(u *user.User) (string, error)
}

func (f *fakeAuthService) GenerateToken(u *user.User) (string, error) {
	if f.GenerateTokenFunc == nil {
		return "", errors.New("not used")
	}
	return f.GenerateTokenFunc(u)
}

type FakeUserFileService struct {
	RegisterUploadFunc func(ctx context.Context, ownerID user.ID, fileName string, fileSize int64) (*user_file.UserFile, error)
	DeleteFileFunc     func(ctx context.Context, ownerID user.ID, fileID user_file.ID) error
	FindFileFunc       func(ctx context.Context, ownerID user.ID, fileID user_file.ID) (*user_file.UserFile, error)
	FindFilesFunc      func(ctx context.Context, ownerID user.ID) (user_file.UserFiles, error)
	UsageFunc          func(ctx context.Context, ownerID user.ID) (user_file.Usage, error)
}

func (f *FakeUserFileService) RegisterUpload(ctx context.Context, ownerID user.ID, fileName string, fileSize int64) (*user_file.UserFile, error) {
	if f.RegisterUploadFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RegisterUploadFunc(ctx, ownerID, fileName, fileSize)
}
func (f *FakeUserFileService) DeleteFile(ctx context.Context, ownerID user.ID, fileID user_file.ID) error {
	if f.DeleteFileFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFileFunc(ctx, ownerID, fileID)
}
func (f *FakeUserFileService) FindFile(ctx context.Context, ownerID user.ID, fileID user_file.ID) (*user_file.UserFile, error) {
	if f.FindFileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFileFunc(ctx, ownerID, fileID)
}
func (f *FakeUserFileService) FindFiles(ctx context.Context, ownerID user.ID) (user_file.UserFiles, error) {
	if f.FindFilesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindFilesFunc(ctx, ownerID)
}
func (f *FakeUserFileService) Usage(ctx context.Context, ownerID user.ID) (user_file.Usage, error) {
	if f.UsageFunc == nil {
		return user_file.Usage{}, errors.New("not used")
	}
	return f.UsageFunc(ctx, ownerID)
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func bearer(t *testing.T, secret string, userID uuid.UUID) map[string]string {
	t.Helper()
	tok, err := jwtSvc.New(secret).GenerateJWT(userID.String(), time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doMultipartReq(t *testing.T, r *gin.Engine, path, fileField, fileName string, fileContent []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("note", "no file here"))
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, path, &b)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

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
	"net/textproto"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bank-docs-api/internal/application/ports"
	domainFile "bank-docs-api/internal/domain/storedfile"
	domainUser "bank-docs-api/internal/domain/user"
	jwtSvc "bank-docs-api/internal/infrastructure/jwt"
)

const testSecret = "test-secret"

type FakeUserService struct {
	RegisterFunc        func(ctx context.Context, u domainUser.User, password string) (*domainUser.User, error)
	FindUserByIDFunc    func(ctx context.Context, id domainUser.ID) (*domainUser.User, error)
	FindByEmailFunc     func(ctx context.Context, email string) (*domainUser.User, error)
	FindUsersFunc       func(ctx context.Context, page int) (domainUser.Users, error)
	ApproveUserFunc     func(ctx context.Context, id domainUser.ID) (*domainUser.User, error)
	RejectUserFunc      func(ctx context.Context, id domainUser.ID, reason string) (*domainUser.User, error)
	AttachIDPictureFunc func(ctx context.Context, id domainUser.ID, filename string) error
	DeleteUserFunc      func(ctx context.Context, id domainUser.ID) error
}

func (f *FakeUserService) Register(ctx context.Context, u domainUser.User, password string) (*domainUser.User, error) {
	if f.RegisterFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RegisterFunc(ctx, u, password)
}
func (f *FakeUserService) FindUserByID(ctx context.Context, id domainUser.ID) (*domainUser.User, error) {
	if f.FindUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUserByIDFunc(ctx, id)
}
func (f *FakeUserService) FindByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	if f.FindByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByEmailFunc(ctx, email)
}
func (f *FakeUserService) FindUsers(ctx context.Context, page int) (domainUser.Users, error) {
	if f.FindUsersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindUsersFunc(ctx, page)
}
func (f *FakeUserService) ApproveUser(ctx context.Context, id domainUser.ID) (*domainUser.User, error) {
	if f.ApproveUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ApproveUserFunc(ctx, id)
}
func (f *FakeUserService) RejectUser(ctx context.Context, id domainUser.ID, reason string) (*domainUser.User, error) {
	if f.RejectUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RejectUserFunc(ctx, id, reason)
}
func (f *FakeUserService) AttachIDPicture(ctx context.Context, id domainUser.ID, filename string) error {
	if f.AttachIDPictureFunc == nil {
		return errors.New("not used")
	}
	return f.AttachIDPictureFunc(ctx, id, filename)
}
func (f *FakeUserService) DeleteUser(ctx context.Context, id domainUser.ID) error {
	if f.DeleteUserFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteUserFunc(ctx, id)
}

type FakeFileService struct {
	StoreFileFunc      func(ctx context.Context, body io.Reader, in ports.StoreFileInput) (*domainFile.StoredFile, error)
	GetFileMetaFunc    func(ctx context.Context, filename string) (*domainFile.StoredFile, error)
	GetFileFunc        func(ctx context.Context, filename string) (io.ReadCloser, *domainFile.StoredFile, error)
	DeleteFileFunc     func(ctx context.Context, filename string) error
	DeleteUserFileFunc func(ctx context.Context, userID domainUser.ID, fileType domainFile.FileType)
	GetUserFilesFunc   func(ctx context.Context, userID domainUser.ID, fileType domainFile.FileType) (domainFile.StoredFiles, error)
	GetFileStatsFunc   func(ctx context.Context) (*domainFile.Stats, error)
}

func (f *FakeFileService) StoreFile(ctx context.Context, body io.Reader, in ports.StoreFileInput) (*domainFile.StoredFile, error) {
	if f.StoreFileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.StoreFileFunc(ctx, body, in)
}
func (f *FakeFileService) GetFileMeta(ctx context.Context, filename string) (*domainFile.StoredFile, error) {
	if f.GetFileMetaFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetFileMetaFunc(ctx, filename)
}
func (f *FakeFileService) GetFile(ctx context.Context, filename string) (io.ReadCloser, *domainFile.StoredFile, error) {
	if f.GetFileFunc == nil {
		return nil, nil, errors.New("not used")
	}
	return f.GetFileFunc(ctx, filename)
}
func (f *FakeFileService) DeleteFile(ctx context.Context, filename string) error {
	if f.DeleteFileFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFileFunc(ctx, filename)
}
func (f *FakeFileService) DeleteUserFile(ctx context.Context, userID domainUser.ID, fileType domainFile.FileType) {
	if f.DeleteUserFileFunc != nil {
		f.DeleteUserFileFunc(ctx, userID, fileType)
	}
}
func (f *FakeFileService) GetUserFiles(ctx context.Context, userID domainUser.ID, fileType domainFile.FileType) (domainFile.StoredFiles, error) {
	if f.GetUserFilesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetUserFilesFunc(ctx, userID, fileType)
}
func (f *FakeFileService) GetFileStats(ctx context.Context) (*domainFile.Stats, error) {
	if f.GetFileStatsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.GetFileStatsFunc(ctx)
}

// approvedFinder is a FindUserByIDFunc returning an approved account,
// enough to satisfy the approval gate for any authenticated id.
func approvedFinder(role domainUser.Role) func(ctx context.Context, id domainUser.ID) (*domainUser.User, error) {
	return func(ctx context.Context, id domainUser.ID) (*domainUser.User, error) {
		return &domainUser.User{ID: id, Role: role, ApprovalStatus: domainUser.StatusApproved}, nil
	}
}

func bearer(t *testing.T, id domainUser.ID, role domainUser.Role) map[string]string {
	t.Helper()
	tok, err := jwtSvc.New(testSecret).GenerateJWT(
		strconv.FormatInt(int64(id), 10), string(role), time.Hour)
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
	case []byte:
		reader = bytes.NewReader(v)
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		if _, isStr := body.(string); !isStr {
			if _, isBytes := body.([]byte); !isBytes {
				req.Header.Set("Content-Type", "application/json")
			}
		}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type uploadPart struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

func doMultipartReq(t *testing.T, r *gin.Engine, method, path string, parts []uploadPart, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			`form-data; name="`+p.Field+`"; filename="`+p.Filename+`"`)
		h.Set("Content-Type", p.ContentType)
		fw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = fw.Write(p.Content)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	req, err := http.NewRequest(method, path, &b)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

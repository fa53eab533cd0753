package ports

import (
	"context"
	"io"

	"bank-docs-api/internal/domain/storedfile"
	"bank-docs-api/internal/domain/user"
)

type StoreFileInput struct {
	Filename     string
	OriginalName string
	ContentType  string
	SizeBytes    int64
	UploadedBy   user.ID
	FileType     storedfile.FileType
}

type FileService interface {
	StoreFile(ctx context.Context, body io.Reader, in StoreFileInput) (*storedfile.StoredFile, error)
	// GetFileMeta returns the metadata record alone, nil when absent.
	// Authorization happens against it before any blob read.
	GetFileMeta(ctx context.Context, filename string) (*storedfile.StoredFile, error)
	GetFile(ctx context.Context, filename string) (io.ReadCloser, *storedfile.StoredFile, error)
	DeleteFile(ctx context.Context, filename string) error
	// DeleteUserFile is best-effort cleanup: failures are logged, never
	// propagated, so a replacement upload cannot be blocked by them.
	DeleteUserFile(ctx context.Context, userID user.ID, fileType storedfile.FileType)
	GetUserFiles(ctx context.Context, userID user.ID, fileType storedfile.FileType) (storedfile.StoredFiles, error)
	GetFileStats(ctx context.Context) (*storedfile.Stats, error)
}

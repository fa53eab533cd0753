package storedfile

import (
	"context"

	"bank-docs-api/internal/domain/user"
)

type Repository interface {
	FetchFileByName(ctx context.Context, filename string) (*StoredFile, error)
	FetchUserFiles(ctx context.Context, userID user.ID, fileType FileType) (StoredFiles, error)
	CreateFile(ctx context.Context, req *StoredFile) (*StoredFile, error)
	TouchLastAccessed(ctx context.Context, filename string) error
	DeleteFileByName(ctx context.Context, filename string) (bool, error)
	FetchStats(ctx context.Context) (*Stats, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"bank-docs-api/internal/application/ports"
	domain "bank-docs-api/internal/domain/storedfile"
	"bank-docs-api/internal/domain/user"
)

const maxOriginalNameLen = 100

var ErrFileNotFound = errors.New("file not found")

type FileService struct {
	blobs          ports.BlobStore
	fileRepository domain.Repository
	logger         *zap.Logger
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	blobs ports.BlobStore,
	fileRepository domain.Repository,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		blobs:          blobs,
		fileRepository: fileRepository,
		logger:         logger,
		mCounter:       mCounter,
	}
}

// StoreFile writes the blob first and the metadata row second. A failed
// row insert triggers a compensating blob delete so blob and metadata
// always co-exist or are both absent.
func (fs *FileService) StoreFile(ctx context.Context, body io.Reader, in ports.StoreFileInput) (*domain.StoredFile, error) {
	sf := &domain.StoredFile{
		Filename:     in.Filename,
		OriginalName: sanitizeOriginalName(in.OriginalName),
		ContentType:  in.ContentType,
		SizeBytes:    in.SizeBytes,
		UploadedBy:   in.UploadedBy,
		FileType:     in.FileType,
		Bucket:       fs.blobs.GetBucket(),
		StorageKey:   storageKey(in.FileType, in.UploadedBy, in.Filename),
	}

	if err := fs.blobs.Put(ctx, sf.StorageKey, body, sf.ContentType, sf.SizeBytes); err != nil {
		return nil, fmt.Errorf("blob put: %w", err)
	}

	out, err := fs.fileRepository.CreateFile(ctx, sf)
	if err != nil {
		if delErr := fs.blobs.Delete(ctx, sf.StorageKey); delErr != nil {
			// orphaned blob; nothing left to do but record it
			fs.logger.Error("compensating blob delete failed",
				zap.String("storage_key", sf.StorageKey), zap.Error(delErr))
		}
		return nil, err
	}

	fs.mCounter.WithLabelValues("files_stored_total").Inc()

	return out, nil
}

func (fs *FileService) GetFileMeta(ctx context.Context, filename string) (*domain.StoredFile, error) {
	return fs.fileRepository.FetchFileByName(ctx, filename)
}

// GetFile returns the blob stream plus its metadata, touching
// last_accessed_at before handing the stream out.
func (fs *FileService) GetFile(ctx context.Context, filename string) (io.ReadCloser, *domain.StoredFile, error) {
	sf, err := fs.fileRepository.FetchFileByName(ctx, filename)
	if err != nil {
		return nil, nil, err
	}
	if sf == nil {
		return nil, nil, ErrFileNotFound
	}

	if err = fs.fileRepository.TouchLastAccessed(ctx, filename); err != nil {
		fs.logger.Warn("touch last_accessed_at failed",
			zap.String("filename", filename), zap.Error(err))
	}

	stream, err := fs.blobs.Get(ctx, sf.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("blob get: %w", err)
	}

	fs.mCounter.WithLabelValues("files_read_total").Inc()

	return stream, sf, nil
}

// DeleteFile is idempotent: a missing filename is a no-op, not an error.
// Blob goes first, metadata second.
func (fs *FileService) DeleteFile(ctx context.Context, filename string) error {
	sf, err := fs.fileRepository.FetchFileByName(ctx, filename)
	if err != nil {
		return err
	}
	if sf == nil {
		return nil
	}

	if err = fs.blobs.Delete(ctx, sf.StorageKey); err != nil {
		return fmt.Errorf("blob delete: %w", err)
	}

	if _, err = fs.fileRepository.DeleteFileByName(ctx, filename); err != nil {
		return err
	}

	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

// DeleteUserFile drops every stored file of the given category for the
// user. Errors are logged, never returned: this runs as cleanup inside
// a replacement upload and must not fail the caller's operation.
func (fs *FileService) DeleteUserFile(ctx context.Context, userID user.ID, fileType domain.FileType) {
	sfs, err := fs.fileRepository.FetchUserFiles(ctx, userID, fileType)
	if err != nil {
		fs.logger.Warn("cleanup: list user files failed",
			zap.Int64("user_id", int64(userID)), zap.Error(err))
		return
	}

	for _, sf := range sfs {
		if err = fs.DeleteFile(ctx, sf.Filename); err != nil {
			fs.logger.Warn("cleanup: delete file failed",
				zap.String("filename", sf.Filename), zap.Error(err))
		}
	}
}

func (fs *FileService) GetUserFiles(ctx context.Context, userID user.ID, fileType domain.FileType) (domain.StoredFiles, error) {
	sfs, err := fs.fileRepository.FetchUserFiles(ctx, userID, fileType)
	if err != nil {
		return nil, err
	}

	return sfs, nil
}

func (fs *FileService) GetFileStats(ctx context.Context) (*domain.Stats, error) {
	stats, err := fs.fileRepository.FetchStats(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// storageKey: "{fileType}/{ownerId}/{filename}"
func storageKey(fileType domain.FileType, ownerID user.ID, filename string) string {
	return fmt.Sprintf("%s/%d/%s", fileType, ownerID, filename)
}

// sanitizeOriginalName keeps the user-supplied display name ASCII safe.
// It is never used for lookup, only echoed back in listings.
func sanitizeOriginalName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)

	//  [a-z0-9], '-' and '_', dot/space -> '-'
	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		case r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}

	for utf8.RuneCountInString(base)+len(ext) > maxOriginalNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }

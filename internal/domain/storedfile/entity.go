package storedfile

import (
	"time"

	"bank-docs-api/internal/domain/user"
)

type (
	// StoredFile describes one uploaded binary. The blob itself lives in
	// the object store under Bucket/StorageKey; exactly one StoredFile
	// row references a given blob.
	StoredFile struct {
		Filename     string
		OriginalName string
		ContentType  string
		SizeBytes    int64
		UploadedBy   user.ID
		FileType     FileType

		Bucket     string
		StorageKey string

		UploadedAt     time.Time
		LastAccessedAt time.Time
	}
	StoredFiles []*StoredFile

	TypeStat struct {
		Type      FileType
		Count     int64
		SizeBytes int64
	}
	Stats struct {
		TotalFiles int64
		TotalSize  int64
		ByType     []TypeStat
	}
)

// FileType is the fixed upload category, set at creation.
type FileType string

const (
	TypeIDPicture      FileType = "id-picture"
	TypeDocument       FileType = "document"
	TypeProfilePicture FileType = "profile-picture"
)

func ParseFileType(s string) (FileType, bool) {
	switch FileType(s) {
	case TypeIDPicture, TypeDocument, TypeProfilePicture:
		return FileType(s), true
	}
	return "", false
}

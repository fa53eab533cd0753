package storedfile

import (
	"time"
)

type (
	StoredFile struct {
		ID           int64
		Filename     string
		OriginalName string
		ContentType  string
		SizeBytes    int64
		UploadedBy   int64
		FileType     string

		Bucket     string
		StorageKey string

		UploadedAt     time.Time
		LastAccessedAt time.Time
	}
	StoredFiles []*StoredFile
)

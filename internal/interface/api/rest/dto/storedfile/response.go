package storedfile

import (
	"time"
)

type (
	StoredFile struct {
		Filename       string    `json:"filename"`
		OriginalName   string    `json:"original_name"`
		ContentType    string    `json:"content_type"`
		SizeBytes      int64     `json:"size_bytes"`
		FileType       string    `json:"file_type"`
		UploadedAt     time.Time `json:"uploaded_at"`
		LastAccessedAt time.Time `json:"last_accessed_at"`
	}
	StoredFiles []StoredFile

	TypeStat struct {
		Type      string `json:"type"`
		Count     int64  `json:"count"`
		TotalSize int64  `json:"total_size"`
	}
	Stats struct {
		TotalFiles  int64      `json:"total_files"`
		TotalSize   int64      `json:"total_size"`
		FilesByType []TypeStat `json:"files_by_type"`
	}
)

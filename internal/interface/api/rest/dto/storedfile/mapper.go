package storedfile

import (
	"bank-docs-api/internal/domain/storedfile"
)

func ToResponseStoredFile(sfDomain storedfile.StoredFile) StoredFile {
	var sf = StoredFile{
		Filename:       sfDomain.Filename,
		OriginalName:   sfDomain.OriginalName,
		ContentType:    sfDomain.ContentType,
		SizeBytes:      sfDomain.SizeBytes,
		FileType:       string(sfDomain.FileType),
		UploadedAt:     sfDomain.UploadedAt,
		LastAccessedAt: sfDomain.LastAccessedAt,
	}

	return sf
}

func ToResponseStoredFiles(sfsDomain storedfile.StoredFiles) StoredFiles {
	sfs := make(StoredFiles, len(sfsDomain))
	for idx, sf := range sfsDomain {
		sfs[idx] = ToResponseStoredFile(*sf)
	}

	return sfs
}

func ToResponseStats(stDomain storedfile.Stats) Stats {
	st := Stats{
		TotalFiles:  stDomain.TotalFiles,
		TotalSize:   stDomain.TotalSize,
		FilesByType: make([]TypeStat, len(stDomain.ByType)),
	}
	for idx, ts := range stDomain.ByType {
		st.FilesByType[idx] = TypeStat{
			Type:      string(ts.Type),
			Count:     ts.Count,
			TotalSize: ts.SizeBytes,
		}
	}

	return st
}

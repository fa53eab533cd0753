package storedfile

import (
	domain "bank-docs-api/internal/domain/storedfile"
	"bank-docs-api/internal/domain/user"
)

func fromDBModel(model *StoredFile) *domain.StoredFile {
	var sf = &domain.StoredFile{
		Filename:     model.Filename,
		OriginalName: model.OriginalName,
		ContentType:  model.ContentType,
		SizeBytes:    model.SizeBytes,
		UploadedBy:   user.ID(model.UploadedBy),
		FileType:     domain.FileType(model.FileType),

		Bucket:     model.Bucket,
		StorageKey: model.StorageKey,

		UploadedAt:     model.UploadedAt,
		LastAccessedAt: model.LastAccessedAt,
	}

	return sf
}

func fromDBModels(models *StoredFiles) domain.StoredFiles {
	sfs := make(domain.StoredFiles, len(*models))
	for idx, sf := range *models {
		sfs[idx] = fromDBModel(sf)
	}

	return sfs
}

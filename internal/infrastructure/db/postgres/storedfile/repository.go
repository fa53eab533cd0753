package storedfile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"bank-docs-api/internal/domain/storedfile"
	"bank-docs-api/internal/domain/user"
	"bank-docs-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) storedfile.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFileByName(ctx context.Context, filename string) (*storedfile.StoredFile, error) {
	sf := new(StoredFile)
	err := scanFile(r.db.QueryRow(ctx, SelectFileByName, filename), sf)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(sf), err
}

func (r *Repository) FetchUserFiles(ctx context.Context, userID user.ID, fileType storedfile.FileType) (storedfile.StoredFiles, error) {
	rows, err := r.db.Query(ctx, SelectUserFiles, int64(userID), string(fileType))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sfs StoredFiles
	for rows.Next() {
		sf := new(StoredFile)

		if err = scanFile(rows, sf); err != nil {
			return nil, err
		}

		sfs = append(sfs, sf)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&sfs), nil
}

func (r *Repository) CreateFile(ctx context.Context, req *storedfile.StoredFile) (*storedfile.StoredFile, error) {
	sf := new(StoredFile)

	err := scanFile(r.db.QueryRow(
		ctx,
		InsertFile,
		req.Filename, req.OriginalName, req.ContentType, req.SizeBytes,
		int64(req.UploadedBy), string(req.FileType), req.Bucket, req.StorageKey,
	), sf)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrFilenameAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(sf), err
}

func (r *Repository) TouchLastAccessed(ctx context.Context, filename string) error {
	_, err := r.db.Exec(ctx, TouchFileByName, filename)
	return err
}

// DeleteFileByName reports whether a row was actually removed so the
// service can stay idempotent without treating absence as a failure.
func (r *Repository) DeleteFileByName(ctx context.Context, filename string) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteFileByNameQ, filename)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FetchStats(ctx context.Context) (*storedfile.Stats, error) {
	rows, err := r.db.Query(ctx, SelectStatsByType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &storedfile.Stats{}
	for rows.Next() {
		var ts storedfile.TypeStat

		if err = rows.Scan(&ts.Type, &ts.Count, &ts.SizeBytes); err != nil {
			return nil, err
		}

		stats.TotalFiles += ts.Count
		stats.TotalSize += ts.SizeBytes
		stats.ByType = append(stats.ByType, ts)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func scanFile(row pgx.Row, sf *StoredFile) error {
	return row.Scan(
		&sf.ID,
		&sf.Filename,
		&sf.OriginalName,
		&sf.ContentType,
		&sf.SizeBytes,
		&sf.UploadedBy,
		&sf.FileType,

		&sf.Bucket,
		&sf.StorageKey,

		&sf.UploadedAt,
		&sf.LastAccessedAt,
	)
}

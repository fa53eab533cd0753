package storedfile

const (
	SelectFileByName = `
		SELECT id, filename, original_name, content_type, size_bytes, uploaded_by, file_type, bucket, storage_key, uploaded_at, last_accessed_at
		FROM stored_files
		WHERE filename = $1
	`
	SelectUserFiles = `
		SELECT id, filename, original_name, content_type, size_bytes, uploaded_by, file_type, bucket, storage_key, uploaded_at, last_accessed_at
		FROM stored_files
		WHERE uploaded_by = $1 AND ($2 = '' OR file_type = $2)
		ORDER BY uploaded_at DESC
	`
	InsertFile = `
		INSERT INTO stored_files (filename, original_name, content_type, size_bytes, uploaded_by, file_type, bucket, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING
		  id, filename, original_name, content_type, size_bytes, uploaded_by, file_type, bucket, storage_key, uploaded_at, last_accessed_at
	`
	TouchFileByName = `
		UPDATE stored_files
		SET last_accessed_at = now()
		WHERE filename = $1
	`
	DeleteFileByNameQ = `
		DELETE FROM stored_files
		WHERE filename = $1
	`
	SelectStatsByType = `
		SELECT file_type, COUNT(*), COALESCE(SUM(size_bytes), 0)
		FROM stored_files
		GROUP BY file_type
		ORDER BY file_type
	`
)

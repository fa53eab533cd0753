package user

const (
	SelectUsers = `
		SELECT id, email, password_hash, role, name, lastname, phone, approval_status, rejection_reason, pending_branch_id, branch_id, id_picture_path, created_at, updated_at, deleted_at
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	SelectUserByID = `
		SELECT id, email, password_hash, role, name, lastname, phone, approval_status, rejection_reason, pending_branch_id, branch_id, id_picture_path, created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`
	SelectUserByEmail = `
		SELECT id, email, password_hash, role, name, lastname, phone, approval_status, rejection_reason, pending_branch_id, branch_id, id_picture_path, created_at, updated_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, role, name, lastname, phone, approval_status, rejection_reason, pending_branch_id, id_picture_path)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', '', $7, '')
		RETURNING
		  id, email, password_hash, role, name, lastname, phone, approval_status, rejection_reason, pending_branch_id, branch_id, id_picture_path, created_at, updated_at, deleted_at
	`
	UpdateApprovalByID = `
		UPDATE users
		SET approval_status = $1,
		    rejection_reason = $2,
		    branch_id = $3,
		    updated_at = now()
		WHERE id = $4 AND approval_status = 'pending' AND deleted_at IS NULL
		RETURNING
		  id, email, password_hash, role, name, lastname, phone, approval_status, rejection_reason, pending_branch_id, branch_id, id_picture_path, created_at, updated_at, deleted_at
	`
	UpdateIDPicturePathByID = `
		UPDATE users
		SET id_picture_path = $1,
		    updated_at = now()
		WHERE id = $2 AND deleted_at IS NULL
	`
	SoftDeleteUserByID = `
		UPDATE users
		SET deleted_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING
		  id, email, password_hash, role, name, lastname, phone, approval_status, rejection_reason, pending_branch_id, branch_id, id_picture_path, created_at, updated_at, deleted_at
	`
)

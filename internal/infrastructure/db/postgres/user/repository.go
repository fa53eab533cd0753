package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"bank-docs-api/internal/domain/user"
	"bank-docs-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUsers(ctx context.Context, page int) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u := new(User)

		if err = scanUser(rows, u); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := scanUser(r.db.QueryRow(ctx, SelectUserByID, int64(id)), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u := new(User)
	err := scanUser(r.db.QueryRow(ctx, SelectUserByEmail, email), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.PasswordHash, string(req.Role), req.Name, req.Lastname, req.Phone, req.PendingBranchID,
	), u)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

// UpdateApproval moves a still-pending user into the status carried on req.
// Returns nil without error if the user is gone or no longer pending.
func (r *Repository) UpdateApproval(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := scanUser(r.db.QueryRow(ctx, UpdateApprovalByID,
		string(req.ApprovalStatus), req.RejectionReason, req.BranchID, int64(req.ID),
	), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) UpdateIDPicturePath(ctx context.Context, id user.ID, path string) error {
	_, err := r.db.Exec(ctx, UpdateIDPicturePathByID, path, int64(id))
	return err
}

func (r *Repository) DeleteUser(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := scanUser(r.db.QueryRow(ctx, SoftDeleteUserByID, int64(id)), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func scanUser(row pgx.Row, u *User) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Name,
		&u.Lastname,
		&u.Phone,

		&u.ApprovalStatus,
		&u.RejectionReason,
		&u.PendingBranchID,
		&u.BranchID,
		&u.IDPicturePath,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
}

package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchUsers(ctx context.Context, page int) (Users, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateApproval(ctx context.Context, req User) (*User, error)
	UpdateIDPicturePath(ctx context.Context, id ID, path string) error
	DeleteUser(ctx context.Context, id ID) (*User, error)
}

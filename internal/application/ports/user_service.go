package ports

import (
	"context"

	"bank-docs-api/internal/domain/user"
)

type UserService interface {
	Register(ctx context.Context, u user.User, password string) (*user.User, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindUsers(ctx context.Context, page int) (user.Users, error)
	ApproveUser(ctx context.Context, id user.ID) (*user.User, error)
	RejectUser(ctx context.Context, id user.ID, reason string) (*user.User, error)
	AttachIDPicture(ctx context.Context, id user.ID, filename string) error
	DeleteUser(ctx context.Context, id user.ID) error
}

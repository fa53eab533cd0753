package user

import (
	"time"
)

type (
	User struct {
		ID           int64
		Email        string
		PasswordHash *string
		Role         string
		Name         string
		Lastname     string
		Phone        string

		ApprovalStatus  string
		RejectionReason string
		PendingBranchID *int64
		BranchID        *int64
		IDPicturePath   string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Users []*User
)

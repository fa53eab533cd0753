package user

import (
	"time"
)

type (
	ID   int64
	User struct {
		ID           ID
		Email        string
		PasswordHash *string
		Role         Role
		Name         string
		Lastname     string
		Phone        string

		ApprovalStatus  ApprovalStatus
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

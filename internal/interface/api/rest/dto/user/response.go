package user

import (
	"time"
)

type (
	User struct {
		ID              int64     `json:"id"`
		Email           string    `json:"email"`
		Role            string    `json:"role"`
		Name            string    `json:"name"`
		Lastname        string    `json:"lastname"`
		Phone           string    `json:"phone"`
		ApprovalStatus  string    `json:"approval_status"`
		RejectionReason string    `json:"rejection_reason,omitempty"`
		PendingBranchID *int64    `json:"pending_branch_id,omitempty"`
		BranchID        *int64    `json:"branch_id,omitempty"`
		IDPicturePath   string    `json:"id_picture_path,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}
	Users []User

	RejectRequest struct {
		Reason string `json:"reason"`
	}
)

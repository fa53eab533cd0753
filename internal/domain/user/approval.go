package user

// ApprovalStatus is the tri-state review status of a registration.
// A user is created pending; a reviewer moves it exactly once to
// approved or rejected. Neither terminal state transitions back.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

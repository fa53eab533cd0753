package auth

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	RegisterRequest struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		Name            string `json:"name"`
		Lastname        string `json:"lastname"`
		Phone           string `json:"phone"`
		PendingBranchID *int64 `json:"pending_branch_id"`
	}
)

package user

import (
	"bank-docs-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:              int64(uDomain.ID),
		Email:           uDomain.Email,
		Role:            string(uDomain.Role),
		Name:            uDomain.Name,
		Lastname:        uDomain.Lastname,
		Phone:           uDomain.Phone,
		ApprovalStatus:  string(uDomain.ApprovalStatus),
		RejectionReason: uDomain.RejectionReason,
		PendingBranchID: uDomain.PendingBranchID,
		BranchID:        uDomain.BranchID,
		IDPicturePath:   uDomain.IDPicturePath,
		CreatedAt:       uDomain.CreatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

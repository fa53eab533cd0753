package user

import (
	domain "bank-docs-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           domain.ID(model.ID),
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         domain.Role(model.Role),
		Name:         model.Name,
		Lastname:     model.Lastname,
		Phone:        model.Phone,

		ApprovalStatus:  domain.ApprovalStatus(model.ApprovalStatus),
		RejectionReason: model.RejectionReason,
		PendingBranchID: model.PendingBranchID,
		BranchID:        model.BranchID,
		IDPicturePath:   model.IDPicturePath,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}

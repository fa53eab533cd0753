package user

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "bank-docs-api/internal/domain/user"
)

var userColumns = []string{
	"id", "email", "password_hash", "role", "name", "lastname", "phone",
	"approval_status", "rejection_reason", "pending_branch_id", "branch_id",
	"id_picture_path", "created_at", "updated_at", "deleted_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func pendingRow(now time.Time, hash string, branchID int64) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).AddRow(
		int64(42), "jane.doe@example.com", &hash, "customer", "Jane", "Doe", "+33788888888",
		"pending", "", &branchID, (*int64)(nil),
		"", now, now, (*time.Time)(nil),
	)
}

func TestRepository_FetchUserByEmail(t *testing.T) {
	now := time.Now().UTC()
	hash := "$2a$10$hash"
	branchID := int64(3)

	tests := []struct {
		name    string
		email   string
		setup   func(m pgxmock.PgxPoolIface)
		wantNil bool
		wantErr bool
	}{
		{
			name:  "found",
			email: "jane.doe@example.com",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
					WithArgs("jane.doe@example.com").
					WillReturnRows(pendingRow(now, hash, branchID))
			},
		},
		{
			name:  "absent returns nil, nil",
			email: "nobody@example.com",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
					WithArgs("nobody@example.com").
					WillReturnRows(pgxmock.NewRows(userColumns))
			},
			wantNil: true,
		},
		{
			name:  "query error",
			email: "jane.doe@example.com",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
					WithArgs("jane.doe@example.com").
					WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			r := NewRepository(mock)
			got, err := r.FetchUserByEmail(context.Background(), tt.email)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, domain.ID(42), got.ID)
				assert.Equal(t, domain.StatusPending, got.ApprovalStatus)
				require.NotNil(t, got.PendingBranchID)
				assert.Equal(t, branchID, *got.PendingBranchID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateUser_DuplicateEmail(t *testing.T) {
	mock := newMock(t)
	hash := "$2a$10$hash"
	branchID := int64(3)

	mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
		WithArgs("jane.doe@example.com", &hash, "customer", "Jane", "Doe",
			"+33788888888", &branchID).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	r := NewRepository(mock)
	got, err := r.CreateUser(context.Background(), domain.User{
		Email:           "jane.doe@example.com",
		PasswordHash:    &hash,
		Role:            domain.RoleCustomer,
		Name:            "Jane",
		Lastname:        "Doe",
		Phone:           "+33788888888",
		PendingBranchID: &branchID,
	})

	require.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateApproval(t *testing.T) {
	hash := "$2a$10$hash"
	branchID := int64(3)
	now := time.Now().UTC()

	t.Run("approves a pending row", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(UpdateApprovalByID)).
			WithArgs("approved", "", &branchID, int64(42)).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(
				int64(42), "jane.doe@example.com", &hash, "customer", "Jane", "Doe", "+33788888888",
				"approved", "", &branchID, &branchID,
				"", now, now, (*time.Time)(nil),
			))

		r := NewRepository(mock)
		got, err := r.UpdateApproval(context.Background(), domain.User{
			ID:              42,
			ApprovalStatus:  domain.StatusApproved,
			RejectionReason: "",
			BranchID:        &branchID,
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.StatusApproved, got.ApprovalStatus)
		require.NotNil(t, got.BranchID)
		assert.Equal(t, branchID, *got.BranchID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no longer pending returns nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(UpdateApprovalByID)).
			WithArgs("rejected", "too slow", (*int64)(nil), int64(42)).
			WillReturnRows(pgxmock.NewRows(userColumns))

		r := NewRepository(mock)
		got, err := r.UpdateApproval(context.Background(), domain.User{
			ID:              42,
			ApprovalStatus:  domain.StatusRejected,
			RejectionReason: "too slow",
		})
		require.NoError(t, err)
		assert.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_DeleteUser_AlreadyGone(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(SoftDeleteUserByID)).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(userColumns))

	r := NewRepository(mock)
	got, err := r.DeleteUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

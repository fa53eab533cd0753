package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bank-docs-api/internal/application/ports"
	"bank-docs-api/internal/domain/user"
	"bank-docs-api/internal/interface/api/rest/dto"
)

// RequireApproved blocks customers whose registration review is not yet
// approved. Staff roles skip the lookup entirely. The status is read
// fresh per request so a just-rejected account loses access immediately,
// token claims notwithstanding.
func RequireApproved(userService ports.UserService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := ActorRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err("authentication required"))
			return
		}
		if role.IsStaff() {
			c.Next()
			return
		}

		id, ok := ActorID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err("authentication required"))
			return
		}

		u, err := userService.FindUserByID(c.Request.Context(), id)
		if err != nil {
			logger.Error("approval gate: fetch user failed",
				zap.Int64("user_id", int64(id)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Err("internal error"))
			return
		}
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err("account no longer exists"))
			return
		}

		switch u.ApprovalStatus {
		case user.StatusApproved:
			c.Next()
		case user.StatusPending:
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrWithData(
				"account pending approval",
				gin.H{
					"approval_status":   user.StatusPending,
					"pending_branch_id": u.PendingBranchID,
					"requiresApproval":  true,
				},
			))
		case user.StatusRejected:
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrWithData(
				"account rejected",
				gin.H{
					"approval_status":  user.StatusRejected,
					"rejection_reason": u.RejectionReason,
					"requiresApproval": true,
				},
			))
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrWithData(
				"account approval status unclear",
				gin.H{
					"approval_status":  u.ApprovalStatus,
					"requiresApproval": true,
				},
			))
		}
	}
}

// RequirePendingStatus is the inverse gate for routes only a
// not-yet-reviewed account may hit, such as supplying the identity
// document the review needs.
func RequirePendingStatus(userService ports.UserService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := ActorID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err("authentication required"))
			return
		}

		u, err := userService.FindUserByID(c.Request.Context(), id)
		if err != nil {
			logger.Error("approval gate: fetch user failed",
				zap.Int64("user_id", int64(id)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Err("internal error"))
			return
		}
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err("account no longer exists"))
			return
		}

		if u.ApprovalStatus != user.StatusPending {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrWithData(
				"only accounts under review may access this resource",
				gin.H{"approval_status": u.ApprovalStatus},
			))
			return
		}

		c.Next()
	}
}

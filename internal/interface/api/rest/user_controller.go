package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bank-docs-api/internal/application/ports"
	"bank-docs-api/internal/application/services"
	"bank-docs-api/internal/infrastructure/jwt"
	"bank-docs-api/internal/interface/api/rest/dto"
	userDTO "bank-docs-api/internal/interface/api/rest/dto/user"
	"bank-docs-api/internal/interface/api/rest/middleware"
	"bank-docs-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	authed := middleware.AuthMiddleware(jwtService)

	r.GET(RouteUsers, authed, uc.GetUsersHandler)
	r.GET(RouteUser, authed, uc.GetUserHandler)
	r.POST(RouteUserApprove, authed, uc.ApproveUserHandler)
	r.POST(RouteUserReject, authed, uc.RejectUserHandler)
	r.DELETE(RouteUser, authed, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	if !uc.requireReviewer(c) {
		return
	}

	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(err.Error()))
		return
	}

	users, err := uc.userService.FindUsers(c.Request.Context(), page)
	if err != nil {
		uc.logger.Error("FindUsers() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to get users"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("users retrieved", gin.H{
		"users": userDTO.ToResponseUsers(users),
		"page":  page,
	}))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	if !uc.requireReviewer(c) {
		return
	}

	id, err := validator.ValidateUserID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(err.Error()))
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to get a user"))
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, dto.Err("user not found"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("user retrieved", userDTO.ToResponseUser(*u)))
}

func (uc *UserController) ApproveUserHandler(c *gin.Context) {
	if !uc.requireReviewer(c) {
		return
	}

	id, err := validator.ValidateUserID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(err.Error()))
		return
	}

	u, err := uc.userService.ApproveUser(c.Request.Context(), id)
	if err != nil {
		uc.reviewError(c, err, "ApproveUser()")
		return
	}

	c.JSON(http.StatusOK, dto.OK("user approved", userDTO.ToResponseUser(*u)))
}

func (uc *UserController) RejectUserHandler(c *gin.Context) {
	if !uc.requireReviewer(c) {
		return
	}

	id, err := validator.ValidateUserID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(err.Error()))
		return
	}

	var req userDTO.RejectRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid request body", err.Error()))
		return
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		c.JSON(http.StatusBadRequest, dto.Err("rejection reason is required"))
		return
	}

	u, err := uc.userService.RejectUser(c.Request.Context(), id, reason)
	if err != nil {
		uc.reviewError(c, err, "RejectUser()")
		return
	}

	c.JSON(http.StatusOK, dto.OK("user rejected", userDTO.ToResponseUser(*u)))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	role, ok := middleware.ActorRole(c)
	if !ok || !role.CanDeleteUsers() {
		c.JSON(http.StatusForbidden, dto.Err("admin access required"))
		return
	}

	id, err := validator.ValidateUserID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(err.Error()))
		return
	}

	if err = uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("user not found"))
			return
		}
		uc.logger.Error("DeleteUser() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to delete user"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("user deleted", nil))
}

func (uc *UserController) requireReviewer(c *gin.Context) bool {
	role, ok := middleware.ActorRole(c)
	if !ok || !role.CanReviewUsers() {
		c.JSON(http.StatusForbidden, dto.Err("manager or admin access required"))
		return false
	}
	return true
}

// reviewError maps the review transition failures onto the API error
// taxonomy: unknown user is 404, a review already settled is 409.
func (uc *UserController) reviewError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.Err("user not found"))
	case errors.Is(err, services.ErrReviewNotPending):
		c.JSON(http.StatusConflict, dto.Err("user is not pending review"))
	default:
		uc.logger.Error(op+" error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to update review"))
	}
}

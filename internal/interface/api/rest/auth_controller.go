package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bank-docs-api/internal/application/ports"
	"bank-docs-api/internal/application/services"
	"bank-docs-api/internal/domain/storedfile"
	userDomain "bank-docs-api/internal/domain/user"
	userDB "bank-docs-api/internal/infrastructure/db/postgres/user"
	"bank-docs-api/internal/infrastructure/jwt"
	"bank-docs-api/internal/interface/api/rest/dto"
	"bank-docs-api/internal/interface/api/rest/dto/auth"
	storedfileDTO "bank-docs-api/internal/interface/api/rest/dto/storedfile"
	userDTO "bank-docs-api/internal/interface/api/rest/dto/user"
	"bank-docs-api/internal/interface/api/rest/middleware"
	"bank-docs-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	authService ports.Auth
	userService ports.UserService
	logger      *zap.Logger
}

func NewAuthController(
	r *gin.Engine,
	authService ports.Auth,
	userService ports.UserService,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		authService: authService,
		userService: userService,
		logger:      logger,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteUploadIDPicture,
		middleware.AuthMiddleware(jwtService),
		middleware.RequirePendingStatus(userService, logger),
		middleware.UploadCleanup(fileService, logger),
		middleware.UploadGate(middleware.IDPictureRule, fileService, logger),
		ac.UploadIDPictureHandler,
	)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid request body", err.Error()))
		return
	}
	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest,
			dto.Err("invalid request body", validator.Flatten(errs)...))
		return
	}

	u, err := ac.userService.Register(c.Request.Context(), userDomain.User{
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Name:            strings.TrimSpace(req.Name),
		Lastname:        strings.TrimSpace(req.Lastname),
		Phone:           strings.TrimSpace(req.Phone),
		PendingBranchID: req.PendingBranchID,
	}, req.Password)
	if err != nil {
		if errors.Is(err, userDB.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, dto.Err("email already registered"))
			return
		}
		ac.logger.Error("Register() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to register"))
		return
	}

	c.JSON(http.StatusCreated, dto.OK(
		"registration received, awaiting approval",
		userDTO.ToResponseUser(*u),
	))
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("invalid request body", err.Error()))
		return
	}
	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest,
			dto.Err("invalid request body", validator.Flatten(errs)...))
		return
	}

	u, err := ac.userService.FindByEmail(c.Request.Context(),
		strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		ac.logger.Error("FindByEmail() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to login"))
		return
	}

	// a missing user takes the same path as a bad password
	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.Err("invalid credentials"))
			return
		}
		ac.logger.Error("GenerateToken() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to login"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("login successful", gin.H{
		"token": token,
		"user":  userDTO.ToResponseUser(*u),
	}))
}

// UploadIDPictureHandler runs after the upload gate has already stored
// the document. It only has to link the stored filename to the account;
// the cleanup companion removes the blob again if that linking fails.
func (ac *AuthController) UploadIDPictureHandler(c *gin.Context) {
	v, exists := c.Get(middleware.CtxUploadedFile)
	if !exists {
		c.JSON(http.StatusInternalServerError, dto.Err("upload descriptor missing"))
		return
	}
	sf, ok := v.(*storedfile.StoredFile)
	if !ok {
		c.JSON(http.StatusInternalServerError, dto.Err("upload descriptor missing"))
		return
	}

	id, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("authentication required"))
		return
	}

	if err := ac.userService.AttachIDPicture(c.Request.Context(), id, sf.Filename); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("user not found"))
			return
		}
		ac.logger.Error("AttachIDPicture() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to attach id picture"))
		return
	}

	c.JSON(http.StatusCreated, dto.OK("id picture uploaded", gin.H{
		"file": storedfileDTO.ToResponseStoredFile(*sf),
	}))
}

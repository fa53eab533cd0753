package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bank-docs-api/internal/application/ports"
	"bank-docs-api/internal/application/services"
	"bank-docs-api/internal/domain/storedfile"
	"bank-docs-api/internal/domain/user"
	"bank-docs-api/internal/infrastructure/jwt"
	"bank-docs-api/internal/interface/api/rest/dto"
	storedfileDTO "bank-docs-api/internal/interface/api/rest/dto/storedfile"
	"bank-docs-api/internal/interface/api/rest/middleware"
)

const cacheControlPrivate = "private, max-age=3600"

type UploadsController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewUploadsController(
	r *gin.Engine,
	fileService ports.FileService,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UploadsController {
	upc := &UploadsController{
		fileService: fileService,
		logger:      logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	approved := middleware.RequireApproved(userService, logger)

	r.GET(RouteIDPicture, authed, approved, upc.GetIDPictureHandler)
	r.GET(RouteMyFiles, authed, approved, upc.MyFilesHandler)
	r.GET(RouteUploadStats, authed, upc.StatsHandler)
	r.DELETE(RouteUploadFile, authed, approved, upc.DeleteFileHandler)

	return upc
}

// GetIDPictureHandler streams a stored identity document. Ownership is
// checked against the metadata record, not the filename, before any
// blob read happens.
func (upc *UploadsController) GetIDPictureHandler(c *gin.Context) {
	filename := c.Param("filename")
	if _, err := storedfile.ParseOwnerID(filename); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("malformed filename"))
		return
	}

	sf, ok := upc.authorizeFileAccess(c, filename)
	if !ok {
		return
	}

	stream, sf, err := upc.fileService.GetFile(c.Request.Context(), filename)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("file not found"))
			return
		}
		upc.logger.Error("GetFile() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to read file"))
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, sf.SizeBytes, sf.ContentType, stream,
		map[string]string{
			"Content-Disposition": `inline; filename="` + sf.OriginalName + `"`,
			"Cache-Control":       cacheControlPrivate,
			"Last-Modified":       sf.UploadedAt.UTC().Format(http.TimeFormat),
		})
}

func (upc *UploadsController) MyFilesHandler(c *gin.Context) {
	id, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("authentication required"))
		return
	}

	var fileType storedfile.FileType
	if q := c.Query("file_type"); q != "" {
		ft, ok := storedfile.ParseFileType(q)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.Err("unknown file_type"))
			return
		}
		fileType = ft
	}

	sfs, err := upc.fileService.GetUserFiles(c.Request.Context(), id, fileType)
	if err != nil {
		upc.logger.Error("GetUserFiles() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to list files"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("files retrieved", gin.H{
		"files": storedfileDTO.ToResponseStoredFiles(sfs),
		"count": len(sfs),
	}))
}

// DeleteFileHandler removes a stored file: blob first, metadata second.
// Same ownership rule as reads.
func (upc *UploadsController) DeleteFileHandler(c *gin.Context) {
	filename := c.Param("filename")
	if _, err := storedfile.ParseOwnerID(filename); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err("malformed filename"))
		return
	}

	sf, ok := upc.authorizeFileAccess(c, filename)
	if !ok {
		return
	}

	if err := upc.fileService.DeleteFile(c.Request.Context(), sf.Filename); err != nil {
		upc.logger.Error("DeleteFile() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to delete file"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("file deleted", nil))
}

func (upc *UploadsController) StatsHandler(c *gin.Context) {
	role, ok := middleware.ActorRole(c)
	if !ok || !role.CanViewStats() {
		c.JSON(http.StatusForbidden, dto.Err("admin access required"))
		return
	}

	stats, err := upc.fileService.GetFileStats(c.Request.Context())
	if err != nil {
		upc.logger.Error("GetFileStats() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to compute stats"))
		return
	}

	c.JSON(http.StatusOK, dto.OK("stats computed", storedfileDTO.ToResponseStats(*stats)))
}

// authorizeFileAccess fetches the metadata record and enforces the
// owner-or-staff rule. On failure it writes the response itself and
// returns ok=false.
func (upc *UploadsController) authorizeFileAccess(c *gin.Context, filename string) (*storedfile.StoredFile, bool) {
	sf, err := upc.fileService.GetFileMeta(c.Request.Context(), filename)
	if err != nil {
		upc.logger.Error("GetFileMeta() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Err("failed to read file"))
		return nil, false
	}
	if sf == nil {
		c.JSON(http.StatusNotFound, dto.Err("file not found"))
		return nil, false
	}

	id, okID := middleware.ActorID(c)
	role, okRole := middleware.ActorRole(c)
	if !okID || !okRole {
		c.JSON(http.StatusUnauthorized, dto.Err("authentication required"))
		return nil, false
	}
	if !canAccessFile(role, id, sf.UploadedBy) {
		c.JSON(http.StatusForbidden,
			dto.Err("you may only access your own files"))
		return nil, false
	}

	return sf, true
}

func canAccessFile(role user.Role, actor, owner user.ID) bool {
	return role.IsStaff() || actor == owner
}

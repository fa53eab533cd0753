package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bank-docs-api/internal/application/ports"
	"bank-docs-api/internal/domain/storedfile"
	storedfileDB "bank-docs-api/internal/infrastructure/db/postgres/storedfile"
	"bank-docs-api/internal/interface/api/rest/dto"
)

// CtxUploadedFile holds the *storedfile.StoredFile descriptor of the
// file an UploadGate stored for this request.
const CtxUploadedFile = "uploadedFile"

const cleanupTimeout = 10 * time.Second

// UploadRule pins down one upload route: which multipart field carries
// the file, what category it lands in, and the type/size allow-list.
// Declared content type and filename extension must both pass, so a
// mislabelled payload is rejected even when one of the two looks fine.
type UploadRule struct {
	Field        string
	FileType     storedfile.FileType
	MaxSizeBytes int64
	// AllowedTypes maps an accepted Content-Type to the extensions it
	// may legitimately carry.
	AllowedTypes map[string][]string
}

// IDPictureRule accepts identity documents: JPEG only, 5 MiB cap.
var IDPictureRule = UploadRule{
	Field:        "id_picture",
	FileType:     storedfile.TypeIDPicture,
	MaxSizeBytes: 5 << 20,
	AllowedTypes: map[string][]string{
		"image/jpeg": {".jpg", ".jpeg"},
	},
}

// UploadGate validates the multipart upload against the rule and, when
// it passes, stores it through the file service before the handler
// runs. The stored descriptor is attached to the context so the
// handler and UploadCleanup can both reach it.
func UploadGate(rule UploadRule, fileService ports.FileService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, ok := ActorID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err("authentication required"))
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Err("invalid multipart form"))
			return
		}

		files := form.File[rule.Field]
		switch {
		case len(files) == 0:
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.Err(rule.Field+" file is required"))
			return
		case len(files) > 1:
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.Err("exactly one "+rule.Field+" file per request"))
			return
		}

		fh := files[0]
		if fh.Size <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Err("file is empty"))
			return
		}
		if fh.Size > rule.MaxSizeBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.Err("file exceeds the "+sizeMiB(rule.MaxSizeBytes)+" limit"))
			return
		}

		contentType := fh.Header.Get("Content-Type")
		allowedExts, ok := rule.AllowedTypes[contentType]
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.Err("unsupported content type: "+contentType))
			return
		}
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !slices.Contains(allowedExts, ext) {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.Err("file extension does not match the declared content type"))
			return
		}

		src, err := fh.Open()
		if err != nil {
			logger.Error("upload gate: open multipart file failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Err("failed to read upload"))
			return
		}
		defer src.Close()

		sf, err := fileService.StoreFile(c.Request.Context(), src, ports.StoreFileInput{
			Filename:     storedfile.NewFilename(actorID, time.Now(), ext),
			OriginalName: fh.Filename,
			ContentType:  contentType,
			SizeBytes:    fh.Size,
			UploadedBy:   actorID,
			FileType:     rule.FileType,
		})
		if err != nil {
			if errors.Is(err, storedfileDB.ErrFilenameAlreadyExists) {
				c.AbortWithStatusJSON(http.StatusConflict,
					dto.Err("a file with this identifier already exists, retry the upload"))
				return
			}
			logger.Error("upload gate: store file failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Err("failed to store file"))
			return
		}

		c.Set(CtxUploadedFile, sf)

		c.Next()
	}
}

// UploadCleanup pairs with UploadGate: registered before it in the
// chain, it deletes the stored file again when the request ultimately
// fails downstream, so a handler error cannot leave an orphan behind.
func UploadCleanup(fileService ports.FileService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < http.StatusBadRequest {
			return
		}
		v, exists := c.Get(CtxUploadedFile)
		if !exists {
			return
		}
		sf, ok := v.(*storedfile.StoredFile)
		if !ok {
			return
		}

		// request context is about to be cancelled, use a fresh one
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()

		if err := fileService.DeleteFile(ctx, sf.Filename); err != nil {
			logger.Warn("upload cleanup: delete stored file failed",
				zap.String("filename", sf.Filename), zap.Error(err))
		} else {
			logger.Info("upload cleanup: removed stored file after failed request",
				zap.String("filename", sf.Filename),
				zap.Int("status", c.Writer.Status()))
		}
	}
}

func sizeMiB(n int64) string {
	return fmt.Sprintf("%d MiB", n>>20)
}

package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/media"
	"github.com/northpeaklabs/marketing-ops/internal/middleware"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/storage"
)

// Uploads above this size are rejected before decoding.
const maxUploadBytes = 10 << 20

type MediaHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	uploader *storage.Uploader
}

func NewMediaHandler(db *gorm.DB, dispatcher *audit.Dispatcher, uploader *storage.Uploader) *MediaHandler {
	return &MediaHandler{db: db, audit: dispatcher, uploader: uploader}
}

// ======================================================
// UPLOAD (STAFF)
// ======================================================

// Upload accepts an image, converts it to webp and stores it in the
// bucket. The returned URL goes straight into post or case study bodies.
func (h *MediaHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_not_configured", "Media storage is not configured.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file field is required.")
		return
	}

	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "The file exceeds the upload limit.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil || int64(len(data)) > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "The file exceeds the upload limit.")
		return
	}

	processed, err := media.Process(data)
	if err != nil {
		httperr.BadRequest(c, "unsupported_image", "The file is not a supported image.")
		return
	}

	base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	key := fmt.Sprintf("media/%s/%s-%s.webp",
		time.Now().UTC().Format("2006/01"),
		slugify(base),
		uuid.NewString()[:8],
	)

	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", processed)
	if err != nil {
		httperr.Internal(c, "failed_to_upload", "Could not store the file.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	file := models.MediaFile{
		FileName:    fileHeader.Filename,
		ObjectKey:   key,
		ContentType: "image/webp",
		SizeBytes:   int64(len(processed)),
		URL:         url,
		UploadedBy:  &userID,
	}

	if err := h.db.Create(&file).Error; err != nil {
		httperr.Internal(c, "failed_to_save_media", "Could not record the file.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "media_uploaded",
		Entity:   "media_file",
		EntityID: &file.ID,
	})

	c.JSON(http.StatusCreated, file)
}

// ======================================================
// LIST (STAFF)
// ======================================================

func (h *MediaHandler) List(c *gin.Context) {
	var files []models.MediaFile
	if err := h.db.Order("created_at DESC").Limit(200).Find(&files).Error; err != nil {
		httperr.Internal(c, "failed_to_list_media", "Could not list media files.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files, "total": len(files)})
}

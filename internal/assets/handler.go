package assets

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

const maxUploadSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the asset service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterAdminRoutes attaches the upload route.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/assets", h.upload)
}

// RegisterPublicRoutes attaches the asset serving route.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/assets/*key", h.serve)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	folder := strings.TrimSpace(c.PostForm("folder"))

	asset, err := h.Svc.Upload(c.Request.Context(), folder, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "unsupported_type", "only image files are accepted", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store asset", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, asset)
}

func (h *Handler) serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	reader, err := h.Svc.Open(c.Request.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), os.IsNotExist(err):
			respond.Error(c, http.StatusNotFound, "not_found", "asset not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open asset", nil)
		}
		return
	}
	defer reader.Close()

	// Sniff the content type from the first chunk before streaming.
	var sniff [512]byte
	n, readErr := io.ReadFull(reader, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read asset", nil)
		return
	}

	c.Header("Content-Type", http.DetectContentType(sniff[:n]))
	c.Status(http.StatusOK)
	if n > 0 {
		if _, err := c.Writer.Write(sniff[:n]); err != nil {
			return
		}
	}
	_, _ = io.Copy(c.Writer, reader)
}

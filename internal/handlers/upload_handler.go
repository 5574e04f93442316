package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"hiringbooth/internal/middleware"
	"hiringbooth/internal/services"
	"hiringbooth/internal/services/dto"
	"hiringbooth/internal/storage"
	"hiringbooth/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
	store         storage.Storage
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService, store storage.Storage) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
		store:         store,
	}
}

// RegisterRoutes регистрирует маршруты загрузки.
// GET /files раздаёт локальное хранилище; при внешнем baseURL
// клиенты ходят за файлами напрямую и маршрут не используется.
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	uploads := rg.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("", h.Upload)
		uploads.DELETE("", h.Delete)
	}

	rg.GET("/files/*filepath", h.Serve)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file in form field 'file'"))
		return
	}

	folder := c.DefaultPostForm("folder", "documents")

	resp, err := h.uploadService.Upload(c.Request.Context(), userID, folder, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *UploadHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DeleteUploadRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.uploadService.Delete(c.Request.Context(), userID, req.URL); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}

func (h *UploadHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")

	reader, err := h.store.Get(c.Request.Context(), path)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewNotFoundError("file", "File not found"))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, reader)
}

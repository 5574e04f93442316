package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"hiringbooth/internal/config"
	"hiringbooth/internal/services/dto"
	"hiringbooth/internal/storage"
	"hiringbooth/pkg/apperrors"

	"github.com/google/uuid"
)

type UploadService interface {
	Upload(ctx context.Context, userID, folder string, file *multipart.FileHeader) (*dto.UploadResponse, error)
	Delete(ctx context.Context, userID, url string) error
}

type UploadServiceImpl struct {
	store storage.Storage
	cfg   *config.Config
}

func NewUploadService(store storage.Storage, cfg *config.Config) UploadService {
	return &UploadServiceImpl{store: store, cfg: cfg}
}

// разрешённые подпапки; всё остальное сваливается в documents
var uploadFolders = map[string]bool{
	"avatars":   true,
	"resumes":   true,
	"logos":     true,
	"documents": true,
}

// Upload кладёт файл под folder/userID/uuid.ext.
// Тип определяется по содержимому, а не по заголовку клиента.
func (s *UploadServiceImpl) Upload(ctx context.Context, userID, folder string, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if file.Size > s.cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, apperrors.InternalError(err)
	}
	contentType := http.DetectContentType(head[:n])
	// DetectContentType не знает офисные форматы, для них доверяем расширению
	if contentType == "application/zip" || contentType == "application/octet-stream" {
		if byExt := typeByExtension(file.Filename); byExt != "" {
			contentType = byExt
		}
	}
	if !s.typeAllowed(contentType) {
		return nil, apperrors.ErrInvalidFileType
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if !uploadFolders[folder] {
		folder = "documents"
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	path := fmt.Sprintf("%s/%s/%s%s", folder, userID, uuid.NewString(), ext)

	if err := s.store.Save(ctx, path, src, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResponse{
		URL:         url,
		Size:        file.Size,
		ContentType: contentType,
	}, nil
}

// Delete удаляет только файлы из каталога самого пользователя
func (s *UploadServiceImpl) Delete(ctx context.Context, userID, url string) error {
	path, ok := s.store.PathFromURL(url)
	if !ok {
		return apperrors.NewNotFoundError("file", "File not found")
	}

	parts := strings.Split(path, "/")
	if len(parts) < 3 || parts[1] != userID {
		return apperrors.NewNotFoundError("file", "File not found")
	}

	exists, err := s.store.Exists(ctx, path)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.NewNotFoundError("file", "File not found")
	}

	if err := s.store.Delete(ctx, path); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UploadServiceImpl) typeAllowed(contentType string) bool {
	// text/plain; charset=utf-8 и т.п.
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

func typeByExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".pdf":
		return "application/pdf"
	}
	return ""
}

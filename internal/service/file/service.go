package file

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/chiliososada/ems-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

type FileService interface {
	// UploadTimesheet stores a monthly attendance document.
	UploadTimesheet(ctx context.Context, ownerID string, file io.Reader, filename string) (string, error)

	// UploadReceipt stores a transportation expense receipt.
	UploadReceipt(ctx context.Context, ownerID string, file io.Reader, filename string) (string, error)

	// Generic operations
	DownloadFile(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadTimesheet stores the document under timesheets/{ownerID}/ with a
// generated name so repeated submissions never collide.
func (s *fileServiceImpl) UploadTimesheet(ctx context.Context, ownerID string, file io.Reader, filename string) (string, error) {
	return s.uploadDocument(ctx, "timesheets", ownerID, file, filename)
}

// UploadReceipt stores the receipt under receipts/{ownerID}/.
func (s *fileServiceImpl) UploadReceipt(ctx context.Context, ownerID string, file io.Reader, filename string) (string, error) {
	return s.uploadDocument(ctx, "receipts", ownerID, file, filename)
}

func (s *fileServiceImpl) uploadDocument(ctx context.Context, category string, ownerID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	key := path.Join(category, ownerID, newFilename)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	uploadedPath, err := s.storage.Upload(ctx, file, key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return uploadedPath, nil
}

// DownloadFile retrieves a stored document.
func (s *fileServiceImpl) DownloadFile(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

// DeleteFile deletes a stored document.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

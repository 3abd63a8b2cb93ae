// Package drive uploads generated lecture artifacts to Google Drive and shares them.
package drive

import (
	"context"
	"fmt"
	"io"

	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/sirupsen/logrus"
	gdrive "google.golang.org/api/drive/v3"
)

// Permission roles and grantee types used when sharing
const (
	roleReader   = "reader"
	typeUser     = "user"
	typeAnyone   = "anyone"
	uploadedMsg  = "File uploaded successfully to Google Drive and shared"
	uploadErrFmt = "Failed to upload to Google Drive: %v"
)

// fileAPI is the subset of the Drive API the uploader relies on
type fileAPI interface {
	CreateFolder(ctx context.Context, name string) (string, error)
	CreateFile(ctx context.Context, name, mimeType, parentID string, content io.Reader) (*gdrive.File, error)
	CreatePermission(ctx context.Context, fileID string, permission *gdrive.Permission) error
}

// BatchFile is one entry of a batch upload
type BatchFile struct {
	Content  io.Reader
	Filename string
	MimeType string
}

// Uploader stores artifacts in Google Drive
type Uploader struct {
	files fileAPI
}

// NewUploader creates an uploader backed by the given Drive service
func NewUploader(service *gdrive.Service, chunkSize int) *Uploader {
	return &Uploader{
		files: &driveFiles{service: service, chunkSize: chunkSize},
	}
}

// CreateFolder creates a folder and returns its ID, or "" when the folder could not be created
func (u *Uploader) CreateFolder(ctx context.Context, name string) string {
	folderID, err := u.files.CreateFolder(ctx, name)
	if err != nil {
		logrus.Errorf("Error creating folder %s: %v", name, err)
		return ""
	}

	logrus.Infof("Created Drive folder %s (ID: %s)", name, folderID)
	return folderID
}

// Share grants read access to the given email, or to anyone with the link when email is empty.
// Failures are logged and otherwise ignored.
func (u *Uploader) Share(ctx context.Context, fileID, email string) {
	permission := &gdrive.Permission{
		Type: typeAnyone,
		Role: roleReader,
	}
	if email != "" {
		permission.Type = typeUser
		permission.EmailAddress = email
	}

	if err := u.files.CreatePermission(ctx, fileID, permission); err != nil {
		logrus.Warnf("Error sharing file %s: %v", fileID, err)
	}
}

// Upload stores content as a new file, optionally inside folderID, then shares it
func (u *Uploader) Upload(ctx context.Context, content io.Reader, filename, mimeType, folderID, email string) *models.UploadResult {
	file, err := u.files.CreateFile(ctx, filename, mimeType, folderID, content)
	if err != nil {
		logrus.Errorf("Failed to upload %s: %v", filename, err)
		return &models.UploadResult{
			Status:  models.StatusError,
			Message: fmt.Sprintf(uploadErrFmt, err),
		}
	}

	u.Share(ctx, file.Id, email)

	logrus.Infof("Uploaded %s to Drive (ID: %s)", filename, file.Id)
	return &models.UploadResult{
		Status:  models.StatusSuccess,
		FileID:  file.Id,
		WebLink: file.WebViewLink,
		Message: uploadedMsg,
	}
}

// UploadBatch uploads files one after another. A failed file does not stop the batch.
func (u *Uploader) UploadBatch(ctx context.Context, files []BatchFile, folderID, email string) *models.BatchUploadResult {
	results := make([]*models.UploadResult, 0, len(files))
	succeeded := 0

	for _, f := range files {
		result := u.Upload(ctx, f.Content, f.Filename, f.MimeType, folderID, email)
		if result.IsSuccess() {
			succeeded++
		}
		results = append(results, result)
	}

	if succeeded == len(files) {
		return &models.BatchUploadResult{
			Status:  models.StatusSuccess,
			Results: results,
			Message: "All files uploaded successfully",
		}
	}

	return &models.BatchUploadResult{
		Status:  models.StatusError,
		Results: results,
		Message: fmt.Sprintf("Uploaded %d/%d files. Some files failed to upload.", succeeded, len(files)),
	}
}

package drive

import (
	"context"
	"fmt"
	"io"

	"github.com/onegreenvn/lecture-content-backend/internal/config"
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"golang.org/x/oauth2/google"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// NewService authenticates with the service account and returns a Drive client
func NewService(ctx context.Context, account config.ServiceAccount) (*gdrive.Service, error) {
	credentials, err := account.JSON()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentials, gdrive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	service, err := gdrive.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return service, nil
}

// driveFiles adapts the generated Drive client to fileAPI
type driveFiles struct {
	service   *gdrive.Service
	chunkSize int
}

func (d *driveFiles) CreateFolder(ctx context.Context, name string) (string, error) {
	folder, err := d.service.Files.Create(&gdrive.File{
		Name:     name,
		MimeType: models.MimeTypeFolder,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return folder.Id, nil
}

// CreateFile uploads content in chunks; anything larger than one chunk uses the resumable protocol
func (d *driveFiles) CreateFile(ctx context.Context, name, mimeType, parentID string, content io.Reader) (*gdrive.File, error) {
	metadata := &gdrive.File{Name: name}
	if parentID != "" {
		metadata.Parents = []string{parentID}
	}

	options := []googleapi.MediaOption{googleapi.ContentType(mimeType)}
	if d.chunkSize > 0 {
		options = append(options, googleapi.ChunkSize(d.chunkSize))
	}

	return d.service.Files.Create(metadata).
		Media(content, options...).
		Fields("id, webViewLink").
		Context(ctx).
		Do()
}

func (d *driveFiles) CreatePermission(ctx context.Context, fileID string, permission *gdrive.Permission) error {
	_, err := d.service.Permissions.Create(fileID, permission).
		SendNotificationEmail(false).
		Fields("id").
		Context(ctx).
		Do()
	return err
}

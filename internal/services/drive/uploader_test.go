package drive

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gdrive "google.golang.org/api/drive/v3"
)

var (
	errMockFolder     = errors.New("mock folder error")
	errMockUpload     = errors.New("mock upload error")
	errMockPermission = errors.New("mock permission error")
)

// mockFiles is a mock implementation of fileAPI.
type mockFiles struct {
	folderShouldFail     bool
	permissionShouldFail bool
	failUploads          map[string]bool

	uploadedNames   []string
	uploadedParents []string
	uploadedData    [][]byte
	permissions     []*gdrive.Permission
}

func (m *mockFiles) CreateFolder(_ context.Context, name string) (string, error) {
	if m.folderShouldFail {
		return "", errMockFolder
	}
	return "folder-" + name, nil
}

func (m *mockFiles) CreateFile(_ context.Context, name, _, parentID string, content io.Reader) (*gdrive.File, error) {
	if m.failUploads[name] {
		return nil, errMockUpload
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}

	m.uploadedNames = append(m.uploadedNames, name)
	m.uploadedParents = append(m.uploadedParents, parentID)
	m.uploadedData = append(m.uploadedData, data)

	return &gdrive.File{
		Id:          "id-" + name,
		WebViewLink: "https://drive.google.com/file/d/id-" + name + "/view",
	}, nil
}

func (m *mockFiles) CreatePermission(_ context.Context, _ string, permission *gdrive.Permission) error {
	m.permissions = append(m.permissions, permission)
	if m.permissionShouldFail {
		return errMockPermission
	}
	return nil
}

func TestCreateFolder_ReturnsID(t *testing.T) {
	uploader := &Uploader{files: &mockFiles{}}

	assert.Equal(t, "folder-lectures", uploader.CreateFolder(context.Background(), "lectures"))
}

func TestCreateFolder_FailureReturnsEmpty(t *testing.T) {
	uploader := &Uploader{files: &mockFiles{folderShouldFail: true}}

	assert.Empty(t, uploader.CreateFolder(context.Background(), "lectures"))
}

func TestShare_PermissionKinds(t *testing.T) {
	files := &mockFiles{}
	uploader := &Uploader{files: files}

	uploader.Share(context.Background(), "file-1", "")
	uploader.Share(context.Background(), "file-1", "student@example.com")

	require.Len(t, files.permissions, 2)
	assert.Equal(t, "anyone", files.permissions[0].Type)
	assert.Equal(t, "reader", files.permissions[0].Role)
	assert.Empty(t, files.permissions[0].EmailAddress)
	assert.Equal(t, "user", files.permissions[1].Type)
	assert.Equal(t, "reader", files.permissions[1].Role)
	assert.Equal(t, "student@example.com", files.permissions[1].EmailAddress)
}

func TestUpload_Success(t *testing.T) {
	files := &mockFiles{}
	uploader := &Uploader{files: files}

	result := uploader.Upload(context.Background(), bytes.NewReader([]byte("mp3")), "talk.mp3", models.MimeTypeMP3, "folder-1", "")

	require.True(t, result.IsSuccess())
	assert.Equal(t, "id-talk.mp3", result.FileID)
	assert.Equal(t, "https://drive.google.com/file/d/id-talk.mp3/view", result.WebLink)
	assert.Equal(t, "File uploaded successfully to Google Drive and shared", result.Message)
	assert.Equal(t, []string{"folder-1"}, files.uploadedParents)
	assert.Equal(t, []byte("mp3"), files.uploadedData[0])
	assert.Len(t, files.permissions, 1)
}

func TestUpload_ShareFailureStillSucceeds(t *testing.T) {
	uploader := &Uploader{files: &mockFiles{permissionShouldFail: true}}

	result := uploader.Upload(context.Background(), strings.NewReader("x"), "deck.pptx", models.MimeTypePPTX, "", "a@b.c")

	assert.True(t, result.IsSuccess())
}

func TestUpload_FailureWrapsMessage(t *testing.T) {
	files := &mockFiles{failUploads: map[string]bool{"deck.pptx": true}}
	uploader := &Uploader{files: files}

	result := uploader.Upload(context.Background(), strings.NewReader("x"), "deck.pptx", models.MimeTypePPTX, "", "")

	assert.Equal(t, models.StatusError, result.Status)
	assert.Equal(t, "Failed to upload to Google Drive: mock upload error", result.Message)
	assert.Empty(t, result.WebLink)
	assert.Empty(t, files.permissions)
}

func TestUploadBatch_ContinuesAfterFailure(t *testing.T) {
	files := &mockFiles{failUploads: map[string]bool{"b.txt": true}}
	uploader := &Uploader{files: files}

	result := uploader.UploadBatch(context.Background(), []BatchFile{
		{Content: strings.NewReader("a"), Filename: "a.txt", MimeType: "text/plain"},
		{Content: strings.NewReader("b"), Filename: "b.txt", MimeType: "text/plain"},
		{Content: strings.NewReader("c"), Filename: "c.txt", MimeType: "text/plain"},
	}, "folder-1", "")

	assert.Equal(t, models.StatusError, result.Status)
	require.Len(t, result.Results, 3)
	assert.True(t, result.Results[0].IsSuccess())
	assert.False(t, result.Results[1].IsSuccess())
	assert.True(t, result.Results[2].IsSuccess())
	assert.Equal(t, []string{"a.txt", "c.txt"}, files.uploadedNames)
	assert.Equal(t, "Uploaded 2/3 files. Some files failed to upload.", result.Message)
}

func TestUploadBatch_AllSucceed(t *testing.T) {
	uploader := &Uploader{files: &mockFiles{}}

	result := uploader.UploadBatch(context.Background(), []BatchFile{
		{Content: strings.NewReader("a"), Filename: "a.txt", MimeType: "text/plain"},
	}, "", "")

	assert.Equal(t, models.StatusSuccess, result.Status)
	assert.Equal(t, "All files uploaded successfully", result.Message)
}

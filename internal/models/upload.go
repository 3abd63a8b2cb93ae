package models

// MIME types of the generated artifacts
const (
	MimeTypeMP3    = "audio/mpeg"
	MimeTypePPTX   = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MimeTypeFolder = "application/vnd.google-apps.folder"
)

// UploadResult contains the result of uploading one artifact to cloud storage
type UploadResult struct {
	Status  string `json:"status" example:"success"`
	FileID  string `json:"file_id,omitempty" example:"1AbCdEf"`
	WebLink string `json:"web_link,omitempty" example:"https://drive.google.com/file/d/1AbCdEf/view"`
	Message string `json:"message" example:"File uploaded successfully to Google Drive and shared"`
}

// IsSuccess reports whether the upload succeeded
func (r *UploadResult) IsSuccess() bool {
	return r != nil && r.Status == StatusSuccess
}

// Link returns the web link of a successful upload, or an empty string
func (r *UploadResult) Link() string {
	if r == nil {
		return ""
	}
	return r.WebLink
}

// BatchUploadResult aggregates the per-file results of a batch upload
type BatchUploadResult struct {
	Status  string          `json:"status" example:"success"`
	Results []*UploadResult `json:"results"`
	Message string          `json:"message" example:"All files uploaded successfully"`
}

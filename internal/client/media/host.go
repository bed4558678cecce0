package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/dpetrovs/brewclub/internal/client/models"
	"github.com/google/uuid"
)

const (
	multipartFileField   = "file"
	multipartPresetField = "upload_preset"
)

// HostUploader posts the image as multipart form data tagged with an
// upload-preset identifier. The host answers with a JSON body whose
// secure_url field is the durable remote URL.
type HostUploader struct {
	uploadURL    string
	uploadPreset string
	httpClient   *http.Client
}

var _ Uploader = (*HostUploader)(nil)

// NewHostUploader creates an uploader for the given host URL and preset.
// If httpClient is nil, http.DefaultClient is used.
func NewHostUploader(uploadURL, uploadPreset string, httpClient *http.Client) *HostUploader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HostUploader{uploadURL: uploadURL, uploadPreset: uploadPreset, httpClient: httpClient}
}

func (u *HostUploader) Upload(ctx context.Context, image models.PickedImage) (*models.UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreatePart(filePartHeader(fileName(image), image.MIMEType))
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(image.Data); err != nil {
		return nil, fmt.Errorf("write file part: %w", err)
	}
	if err := writer.WriteField(multipartPresetField, u.uploadPreset); err != nil {
		return nil, fmt.Errorf("write preset field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("media host returned %s: %s", resp.Status, body)
	}

	var uploadResp struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if uploadResp.SecureURL == "" {
		return nil, ErrEmptyRemoteURL
	}

	return &models.UploadResult{RemoteURL: uploadResp.SecureURL}, nil
}

// filePartHeader builds the Content-Disposition/Content-Type headers for the
// file part so the image's own MIME type survives the upload.
func filePartHeader(name, mimeType string) textproto.MIMEHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, multipartFileField, name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	h.Set("Content-Type", mimeType)
	return h
}

func fileName(image models.PickedImage) string {
	if image.FileName != "" {
		return image.FileName
	}
	return uuid.NewString()
}

// Package media uploads picked images to an external media host and returns
// the durable remote URL the backend profile record is patched with.
//
// Two hosts are supported: a preset-tagged multipart endpoint (Cloudinary
// shaped) and any S3-compatible object store. The upload pipeline only sees
// the Uploader interface.
package media

import (
	"context"
	"errors"

	"github.com/dpetrovs/brewclub/internal/client/models"
)

var ErrEmptyRemoteURL = errors.New("media host returned no url")

// Uploader sends a raw image payload to the media host.
type Uploader interface {
	Upload(ctx context.Context, image models.PickedImage) (*models.UploadResult, error)
}

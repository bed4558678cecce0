// Package picker abstracts local photo selection. The upload pipeline only
// distinguishes three outcomes: a selected image, a cancelled selection
// (ErrCancelled, no side effects), or a picker failure (logged, never shown).
package picker

import (
	"context"
	"errors"

	"github.com/dpetrovs/brewclub/internal/client/models"
)

var (
	// ErrCancelled reports that the user backed out of the picker.
	ErrCancelled = errors.New("selection cancelled")

	// ErrNotAnImage reports that the selected file is not a photo.
	ErrNotAnImage = errors.New("selected file is not an image")
)

// Picker presents a photo-only selection to the user.
type Picker interface {
	PickPhoto(ctx context.Context) (*models.PickedImage, error)
}

package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dpetrovs/brewclub/internal/client/api"
	"github.com/dpetrovs/brewclub/internal/client/credentials"
	"github.com/dpetrovs/brewclub/internal/client/media"
	"github.com/dpetrovs/brewclub/internal/client/picker"
	"github.com/dpetrovs/brewclub/internal/logging"
)

// State is the upload pipeline's explicit state. Transitions per invocation:
//
//	Idle → Picking → Uploading → Persisting → SettledSuccess
//	                     │            └─────→ SettledFailure
//	                     └────────────────── SettledFailure
//
// Picking returns to Idle on cancel or picker error.
type State int

const (
	StateIdle State = iota
	StatePicking
	StateUploading
	StatePersisting
	StateSettledSuccess
	StateSettledFailure
)

func (s State) String() string {
	switch s {
	case StatePicking:
		return "picking"
	case StateUploading:
		return "uploading"
	case StatePersisting:
		return "persisting"
	case StateSettledSuccess:
		return "settled(success)"
	case StateSettledFailure:
		return "settled(failure)"
	default:
		return "idle"
	}
}

// uploadFailureMessage is the generic alert for both upload and persist
// failures; the backend never contributes a message here.
const uploadFailureMessage = "Failed to upload image."

// Result is what the invoking surface renders after a pipeline run.
type Result struct {
	State State

	// DisplayedImage is the reference the surface should show: the
	// optimistic local path while nothing better exists, the remote URL once
	// the host accepted the upload. Failures do not roll it back; the next
	// full re-fetch restores server truth.
	DisplayedImage string

	// Message is a user-facing alert, empty for silent outcomes (cancel,
	// picker error).
	Message string

	// RedirectToLogin is set when the stored token vanished mid-pipeline.
	RedirectToLogin bool
}

// UploadService orchestrates local image selection, the media-host upload,
// and the backend profile patch.
type UploadService struct {
	picker   picker.Picker
	uploader media.Uploader
	client   api.Client
	store    credentials.Store
	log      logging.Logger

	mu        sync.Mutex
	busy      bool
	state     State
	displayed string
}

func NewUploadService(
	pick picker.Picker,
	uploader media.Uploader,
	client api.Client,
	store credentials.Store,
	log logging.Logger,
) *UploadService {
	return &UploadService{
		picker:   pick,
		uploader: uploader,
		client:   client,
		store:    store,
		log:      log,
	}
}

// State reports the pipeline's current state.
func (u *UploadService) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// DisplayedImage reports what the surface currently shows, persisting across
// invocations so a settled optimistic image survives until the next fetch.
func (u *UploadService) DisplayedImage() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.displayed
}

// SetDisplayedImage seeds the displayed image from an authoritative fetch.
func (u *UploadService) SetDisplayedImage(ref string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.displayed = ref
}

// Run executes one pipeline invocation. Only one run may be in flight;
// overlapping invocations fail fast with ErrUploadInFlight rather than
// racing last-write-wins.
func (u *UploadService) Run(ctx context.Context) (*Result, error) {
	if !u.begin() {
		return nil, ErrUploadInFlight
	}
	defer u.end()

	u.setState(StatePicking)

	image, err := u.picker.PickPhoto(ctx)
	if err != nil {
		u.setState(StateIdle)
		if errors.Is(err, picker.ErrCancelled) {
			u.log.Debug(ctx, "user cancelled image picker")
		} else {
			// Picker errors are logged only, never alerted.
			u.log.Warn(ctx, "image picker failed", "error", err)
		}
		return &Result{State: StateIdle, DisplayedImage: u.DisplayedImage()}, nil
	}

	// Optimistic update: show the local image before the host confirms.
	u.setDisplayed(image.Path)
	u.setState(StateUploading)

	uploaded, err := u.uploader.Upload(ctx, *image)
	if err != nil {
		u.log.Error(ctx, "media host upload failed", "file", image.FileName, "error", err)
		u.setState(StateSettledFailure)
		return &Result{
			State:          StateSettledFailure,
			DisplayedImage: u.DisplayedImage(),
			Message:        uploadFailureMessage,
		}, nil
	}

	u.setDisplayed(uploaded.RemoteURL)
	u.setState(StatePersisting)

	pair, err := u.store.Load(ctx)
	if err != nil || pair == nil {
		// The remote asset stays orphaned on the host; accepted cost.
		u.log.Warn(ctx, "no credentials while persisting profile picture")
		u.setState(StateSettledFailure)
		return &Result{
			State:           StateSettledFailure,
			DisplayedImage:  u.DisplayedImage(),
			Message:         "User not authenticated.",
			RedirectToLogin: true,
		}, nil
	}

	if err := u.client.UpdateProfilePicture(ctx, pair.AccessToken, uploaded.RemoteURL); err != nil {
		u.log.Error(ctx, "profile picture patch failed", "url", uploaded.RemoteURL, "error", err)
		u.setState(StateSettledFailure)
		return &Result{
			State:          StateSettledFailure,
			DisplayedImage: u.DisplayedImage(),
			Message:        uploadFailureMessage,
		}, nil
	}

	u.log.Info(ctx, "profile picture updated", "url", uploaded.RemoteURL)
	u.setState(StateSettledSuccess)
	return &Result{State: StateSettledSuccess, DisplayedImage: uploaded.RemoteURL}, nil
}

func (u *UploadService) begin() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.busy {
		return false
	}
	u.busy = true
	u.state = StateIdle
	return true
}

func (u *UploadService) end() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.busy = false
}

func (u *UploadService) setState(s State) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = s
}

func (u *UploadService) setDisplayed(ref string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.displayed = ref
}

package services

import (
	"context"
	"sync"

	"github.com/dpetrovs/brewclub/internal/client/api"
	"github.com/dpetrovs/brewclub/internal/client/models"
)

// fakeAPI implements api.Client with per-call counters so tests can assert
// "zero network calls" properties.
type fakeAPI struct {
	mu sync.Mutex

	LoginResp *api.LoginResponse
	LoginErr  error

	SignupResp *api.SignupResponse
	SignupErr  error

	Profile        *models.UserProfile
	CurrentUserErr error

	PatchErr error

	LoginCalls       int
	SignupCalls      int
	CurrentUserCalls int
	PatchCalls       int

	LastLoginUsername string
	LastLoginPassword string
	LastSignup        api.SignupRequest
	LastPatchToken    string
	LastPatchURL      string
}

func (f *fakeAPI) networkCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LoginCalls + f.SignupCalls + f.CurrentUserCalls + f.PatchCalls
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*api.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastLoginUsername = username
	f.LastLoginPassword = password
	return f.LoginResp, f.LoginErr
}

func (f *fakeAPI) Signup(ctx context.Context, req api.SignupRequest) (*api.SignupResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignupCalls++
	f.LastSignup = req
	return f.SignupResp, f.SignupErr
}

func (f *fakeAPI) CurrentUser(ctx context.Context, accessToken string) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CurrentUserCalls++
	return f.Profile, f.CurrentUserErr
}

func (f *fakeAPI) UpdateProfilePicture(ctx context.Context, accessToken, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PatchCalls++
	f.LastPatchToken = accessToken
	f.LastPatchURL = imageURL
	return f.PatchErr
}

// fakeStore implements credentials.Store in memory.
type fakeStore struct {
	mu   sync.Mutex
	pair *models.TokenPair

	SaveErr  error
	LoadErr  error
	ClearErr error

	SaveCalls  int
	ClearCalls int
}

func (f *fakeStore) Save(ctx context.Context, pair models.TokenPair) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.pair = &pair
	return nil
}

func (f *fakeStore) Load(ctx context.Context) (*models.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	if f.pair == nil {
		return nil, nil
	}
	cp := *f.pair
	return &cp, nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ClearCalls++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.pair = nil
	return nil
}

func (f *fakeStore) stored() *models.TokenPair {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pair
}

// fakePicker implements picker.Picker. When Block is set, PickPhoto waits on
// it so tests can hold a pipeline invocation in flight.
type fakePicker struct {
	Image *models.PickedImage
	Err   error
	Block chan struct{}
}

func (f *fakePicker) PickPhoto(ctx context.Context) (*models.PickedImage, error) {
	if f.Block != nil {
		<-f.Block
	}
	return f.Image, f.Err
}

// fakeUploader implements media.Uploader.
type fakeUploader struct {
	mu sync.Mutex

	Result *models.UploadResult
	Err    error

	Calls     int
	LastImage models.PickedImage
}

func (f *fakeUploader) Upload(ctx context.Context, image models.PickedImage) (*models.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.LastImage = image
	return f.Result, f.Err
}

package models

// UserProfile is the authenticated user's profile as reported by the backend.
// It is never persisted locally; presenting surfaces re-fetch it on mount.
// Only ProfileImageURL is writable from the client, via the upload pipeline.
type UserProfile struct {
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image"`
}

// FullName joins first and last name for display.
func (p UserProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

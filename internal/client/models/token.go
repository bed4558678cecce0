// Package models defines client-side data models used by the BrewClub CLI.
package models

// TokenPair is the credential pair issued by the backend on login.
// Both tokens are opaque bearer strings; only the access token is presented
// on protected requests. The pair is replaced wholesale, never mutated.
type TokenPair struct {
	// AccessToken authorizes protected backend calls.
	AccessToken string

	// RefreshToken is stored alongside the access token. Signup responses
	// carry no refresh token, in which case it is empty.
	RefreshToken string
}

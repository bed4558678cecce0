package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dpetrovs/brewclub/internal/client/api"
	"github.com/dpetrovs/brewclub/internal/client/services"
)

// Login prompts for the credentials and attempts to sign in. Field errors
// print per field; backend errors print the backend's message when it
// provided one. On success the tokens are already stored, so the app flips
// straight into the authenticated command set.
func (a *App) Login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return
	}

	if err := a.auth.Login(ctx, username, password); err != nil {
		a.printAuthError(err, "Failed to login.")
		return
	}

	fmt.Fprintln(a.out, "Logged in successfully!")
	a.status = services.StatusAuthenticated
}

// Signup prompts for all six fields, so every local validation violation can
// be reported at once.
func (a *App) Signup(ctx context.Context) {
	input := services.SignupInput{}

	fields := []struct {
		prompt string
		dest   *string
		secret bool
	}{
		{"Username", &input.Username, false},
		{"First Name", &input.FirstName, false},
		{"Last Name", &input.LastName, false},
		{"Email", &input.Email, false},
		{"Password", &input.Password, true},
		{"Confirm Password", &input.PasswordConfirmation, true},
	}

	for _, f := range fields {
		var err error
		if f.secret {
			*f.dest, err = GetPassword(f.prompt, a.out)
		} else {
			*f.dest, err = GetSimpleText(a.reader, f.prompt, a.out)
		}
		if err != nil {
			return
		}
	}

	if err := a.auth.Signup(ctx, input); err != nil {
		a.printAuthError(err, "Failed to sign up.")
		return
	}

	fmt.Fprintln(a.out, "Account created successfully!")
	a.status = services.StatusAuthenticated
}

func (a *App) printAuthError(err error, fallback string) {
	var fieldErrs services.FieldErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for f := range fieldErrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(a.out, "%s: %s\n", f, fieldErrs[f])
		}
		return
	}

	if errors.Is(err, services.ErrTokenMissing) {
		fmt.Fprintln(a.out, "Error: Token is missing in the response.")
		return
	}

	if msg := api.BackendMessage(err); msg != "" {
		fmt.Fprintln(a.out, "Error:", msg)
		return
	}
	fmt.Fprintln(a.out, "Error:", fallback)
}

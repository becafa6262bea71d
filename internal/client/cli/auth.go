package cli

import (
	"context"
	"errors"

	"github.com/skillsync/skillsync/internal/client/api"
	"github.com/skillsync/skillsync/internal/client/services"
)

// Input seams, replaceable in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials and authenticates against the backend.
// On success the session is adopted in memory and persisted for the next run.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Please enter your email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	err = a.session.Login(ctx, api.Credentials{Email: email, Password: string(password)})
	if err != nil {
		if errors.Is(err, services.ErrOperationInFlight) {
			printlnFn("Another operation is already running, try again")
			return nil
		}
		printlnFn("Login failed:", err.Error())
		return nil
	}

	if u := a.session.CurrentUser(); u != nil {
		printlnFn("Welcome back,", u.Name)
	}
	return nil
}

// Register prompts for account details and creates the account.
// The user logs in as a separate step afterwards.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Please enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Please enter your email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	err = a.session.Register(ctx, api.NewUser{Name: name, Email: email, Password: string(password)})
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return nil
	}

	printlnFn("Account created. Use 'login' to sign in.")
	return nil
}

// Logout discards the in-memory session and clears the durable store.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return nil
	}
	printlnFn("Logged out")
	return nil
}

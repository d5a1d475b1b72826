package cli

import (
	"context"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. Any failure — wrong
// credentials, server error, unreachable server — surfaces the same generic
// alert and leaves the user where they were.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "err", err)
		a.println("Login failed: check your credentials.")
		return err
	}

	a.user = user
	a.printf("Logged in as %s.\n", user.Username)
	return nil
}

// Register prompts for the new-account fields and creates the account. The
// server-provided message is surfaced when there is one; success sends the
// user on to the login prompt.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, email, username, password); err != nil {
		a.println("Registration failed:", registrationFailureMessage(err))
		return err
	}

	a.println("Account created! You can now log in.")
	return a.Login(ctx)
}

// Logout clears the persisted session and the in-memory profile.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.println("Logged out.")
	return nil
}

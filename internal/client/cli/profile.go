package cli

import (
	"context"
	"errors"

	"github.com/SaraBabic/PayTrackApp/internal/client/api"
	"github.com/SaraBabic/PayTrackApp/internal/client/services"
)

// Profile shows the stored user profile. The screen is a session guard:
// without a persisted profile it sends the user to login instead of
// rendering anything.
func (a *App) Profile(ctx context.Context) {
	user, err := a.auth.CurrentUser(ctx)
	if errors.Is(err, services.ErrNoSession) {
		a.user = nil
		a.println("No active session, please log in.")
		a.Login(ctx)
		return
	}
	if err != nil {
		a.log.Error(ctx, "error loading profile", "err", err)
		a.println("Failed to load user data.")
		return
	}

	a.println("Your Profile")
	a.printf("Username: %s\n", user.Username)
	a.printf("Email: %s\n", user.Email)
}

// registrationFailureMessage prefers the backend's own wording, falling back
// to a generic line when the failure carried no message.
func registrationFailureMessage(err error) string {
	if msg, ok := api.ServerMessage(err); ok {
		return msg
	}
	return "unknown error"
}

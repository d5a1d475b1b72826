package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaraBabic/PayTrackApp/internal/client/api"
	"github.com/SaraBabic/PayTrackApp/internal/client/models"
	"github.com/SaraBabic/PayTrackApp/internal/client/services"
)

func stubInputs(t *testing.T, texts []string, password string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		s := texts[i%len(texts)]
		i++
		return s, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }

	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuth struct {
	loginUser *models.User
	loginErr  error
	loginPass string
	loginMail string

	regErr    error
	regFields []string

	current    *models.User
	currentErr error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.User, error) {
	f.loginMail, f.loginPass = email, password
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, email, username, password string) error {
	f.regFields = []string{email, username, password}
	return f.regErr
}

func (f *fakeAuth) Restore(context.Context) (*models.User, error) {
	return f.current, f.currentErr
}

func (f *fakeAuth) CurrentUser(context.Context) (*models.User, error) {
	return f.current, f.currentErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAuth{loginUser: &models.User{Email: "alice@example.org", Username: "alice"}}
	a, out := testApp(t, nil, "")
	a.auth = f

	restore := stubInputs(t, []string{"alice@example.org"}, "secret")
	defer restore()

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "alice@example.org", f.loginMail)
	assert.Equal(t, "secret", f.loginPass)
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Logged in as alice.")
}

func TestLogin_FailureShowsGenericAlert(t *testing.T) {
	f := &fakeAuth{loginErr: api.ErrUnauthorized}
	a, out := testApp(t, nil, "")
	a.auth = f

	restore := stubInputs(t, []string{"alice@example.org"}, "wrong")
	defer restore()

	err := a.Login(context.Background())
	assert.Error(t, err)
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Login failed: check your credentials.")
}

func TestRegister_SurfacesServerMessage(t *testing.T) {
	f := &fakeAuth{regErr: &api.APIError{StatusCode: 400, Message: "email already taken"}}
	a, out := testApp(t, nil, "")
	a.auth = f

	restore := stubInputs(t, []string{"alice", "alice@example.org"}, "pw")
	defer restore()

	err := a.Register(context.Background())
	assert.Error(t, err)
	assert.Contains(t, out.String(), "Registration failed: email already taken")
}

func TestRegister_GenericMessageWithoutServerText(t *testing.T) {
	f := &fakeAuth{regErr: api.ErrUnavailable}
	a, out := testApp(t, nil, "")
	a.auth = f

	restore := stubInputs(t, []string{"alice", "alice@example.org"}, "pw")
	defer restore()

	err := a.Register(context.Background())
	assert.Error(t, err)
	assert.Contains(t, out.String(), "Registration failed: unknown error")
}

func TestRegister_SuccessContinuesToLogin(t *testing.T) {
	f := &fakeAuth{loginUser: &models.User{Username: "alice"}}
	a, out := testApp(t, nil, "")
	a.auth = f

	restore := stubInputs(t, []string{"alice", "alice@example.org"}, "pw")
	defer restore()

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, []string{"alice@example.org", "alice", "pw"}, f.regFields)
	assert.Contains(t, out.String(), "Account created! You can now log in.")
	assert.True(t, a.isLoggedIn())
}

func TestLogout_ClearsUser(t *testing.T) {
	f := &fakeAuth{}
	a, _ := testApp(t, nil, "")
	a.auth = f
	a.user = &models.User{Username: "alice"}

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, f.logoutCalled)
	assert.False(t, a.isLoggedIn())
}

func TestProfile_RendersStoredProfile(t *testing.T) {
	f := &fakeAuth{current: &models.User{Email: "alice@example.org", Username: "alice"}}
	a, out := testApp(t, nil, "")
	a.auth = f

	a.Profile(context.Background())

	assert.Contains(t, out.String(), "Username: alice")
	assert.Contains(t, out.String(), "Email: alice@example.org")
}

func TestProfile_NoSessionRedirectsToLogin(t *testing.T) {
	f := &fakeAuth{currentErr: services.ErrNoSession, loginErr: api.ErrUnauthorized}
	a, out := testApp(t, nil, "")
	a.auth = f
	a.user = &models.User{Username: "stale"}

	restore := stubInputs(t, []string{"alice@example.org"}, "pw")
	defer restore()

	a.Profile(context.Background())

	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "No active session, please log in.")
	// the login prompt ran instead of the profile rendering
	assert.NotContains(t, out.String(), "Your Profile")
}

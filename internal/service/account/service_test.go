package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPortal/internal/integrations/authprovider"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeProvider struct {
	getSession     func(uid string) (*authprovider.Session, error)
	updateProfile  func(uid string, params authprovider.UpdateProfileParams) error
	updatePassword func(uid, newPassword string) error
	reauthenticate func(email, password string) error

	reauthCalls int
	updateCalls int
}

func (f *fakeProvider) GetSession(_ context.Context, uid string) (*authprovider.Session, error) {
	return f.getSession(uid)
}

func (f *fakeProvider) UpdateProfile(_ context.Context, uid string, params authprovider.UpdateProfileParams) error {
	f.updateCalls++
	return f.updateProfile(uid, params)
}

func (f *fakeProvider) UpdatePassword(_ context.Context, uid, newPassword string) error {
	return f.updatePassword(uid, newPassword)
}

func (f *fakeProvider) Reauthenticate(_ context.Context, email, password string) error {
	f.reauthCalls++
	return f.reauthenticate(email, password)
}

func passwordSession() *authprovider.Session {
	return &authprovider.Session{
		UID:         "uid1",
		Email:       "u@example.com",
		DisplayName: "Anna Petrova",
		Providers:   []string{"password"},
	}
}

func googleSession() *authprovider.Session {
	return &authprovider.Session{
		UID:       "uid2",
		Email:     "g@example.com",
		Providers: []string{authprovider.GoogleProviderID},
	}
}

func TestUpdateProfile_MergesNameAndEmail(t *testing.T) {
	var got authprovider.UpdateProfileParams
	provider := &fakeProvider{
		updateProfile: func(uid string, params authprovider.UpdateProfileParams) error {
			assert.Equal(t, "uid1", uid)
			got = params
			return nil
		},
	}
	svc := NewService(provider, nopLogger{})

	err := svc.UpdateProfile(context.Background(), passwordSession(), &UpdateProfileRequest{
		FirstName: "  Boris ",
		LastName:  " Ivanov ",
		Email:     "b@example.com",
	})
	require.NoError(t, err)

	require.NotNil(t, got.DisplayName)
	assert.Equal(t, "Boris Ivanov", *got.DisplayName)
	require.NotNil(t, got.Email)
	assert.Equal(t, "b@example.com", *got.Email)
}

func TestUpdateProfile_NoChangesSkipsProvider(t *testing.T) {
	provider := &fakeProvider{
		updateProfile: func(string, authprovider.UpdateProfileParams) error { return nil },
	}
	svc := NewService(provider, nopLogger{})

	err := svc.UpdateProfile(context.Background(), passwordSession(), &UpdateProfileRequest{
		FirstName: "Anna",
		LastName:  "Petrova",
		Email:     "u@example.com",
	})
	require.NoError(t, err)
	assert.Zero(t, provider.updateCalls)
}

func TestUpdateProfile_GoogleEmailChangeRejected(t *testing.T) {
	svc := NewService(&fakeProvider{}, nopLogger{})

	err := svc.UpdateProfile(context.Background(), googleSession(), &UpdateProfileRequest{
		Email: "other@example.com",
	})
	assert.ErrorIs(t, err, ErrGoogleAccount)
}

func TestUpdateProfile_MalformedEmail(t *testing.T) {
	svc := NewService(&fakeProvider{}, nopLogger{})

	err := svc.UpdateProfile(context.Background(), passwordSession(), &UpdateProfileRequest{
		Email: "not-an-email",
	})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestUpdateProfile_EmailConflictMapped(t *testing.T) {
	provider := &fakeProvider{
		updateProfile: func(string, authprovider.UpdateProfileParams) error {
			return authprovider.ErrEmailAlreadyInUse
		},
	}
	svc := NewService(provider, nopLogger{})

	err := svc.UpdateProfile(context.Background(), passwordSession(), &UpdateProfileRequest{
		Email: "taken@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestChangePassword_LocalValidation(t *testing.T) {
	svc := NewService(&fakeProvider{}, nopLogger{})

	tests := []struct {
		name    string
		req     *ChangePasswordRequest
		wantErr error
	}{
		{"mismatch", &ChangePasswordRequest{
			CurrentPassword: "old-pass", NewPassword: "new-pass", ConfirmPassword: "other",
		}, ErrPasswordMismatch},
		{"too short", &ChangePasswordRequest{
			CurrentPassword: "old-pass", NewPassword: "abc", ConfirmPassword: "abc",
		}, ErrPasswordTooShort},
		{"unchanged", &ChangePasswordRequest{
			CurrentPassword: "same-pass", NewPassword: "same-pass", ConfirmPassword: "same-pass",
		}, ErrPasswordUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ChangePassword(context.Background(), passwordSession(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChangePassword_GoogleAccountRejected(t *testing.T) {
	svc := NewService(&fakeProvider{}, nopLogger{})

	err := svc.ChangePassword(context.Background(), googleSession(), &ChangePasswordRequest{
		CurrentPassword: "old-pass", NewPassword: "new-pass", ConfirmPassword: "new-pass",
	})
	assert.ErrorIs(t, err, ErrGoogleAccount)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	provider := &fakeProvider{
		reauthenticate: func(string, string) error {
			return authprovider.ErrInvalidCredentials
		},
	}
	svc := NewService(provider, nopLogger{})

	err := svc.ChangePassword(context.Background(), passwordSession(), &ChangePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "new-pass", ConfirmPassword: "new-pass",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestChangePassword_Success(t *testing.T) {
	var updatedTo string
	provider := &fakeProvider{
		reauthenticate: func(email, password string) error {
			assert.Equal(t, "u@example.com", email)
			assert.Equal(t, "old-pass", password)
			return nil
		},
		updatePassword: func(_, newPassword string) error {
			updatedTo = newPassword
			return nil
		},
	}
	svc := NewService(provider, nopLogger{})

	err := svc.ChangePassword(context.Background(), passwordSession(), &ChangePasswordRequest{
		CurrentPassword: "old-pass", NewPassword: "new-pass", ConfirmPassword: "new-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, provider.reauthCalls)
	assert.Equal(t, "new-pass", updatedTo)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vladimiradmaev/glucose-tracker/internal/errors"
	"github.com/vladimiradmaev/glucose-tracker/internal/notices"
)

func newCaregiverFixture(t *testing.T) *CaregiverService {
	svc := NewCaregiverService(newTestStore(t), notices.Discard{})
	svc.loginDelay = 0
	return svc
}

func TestCaregiverLoginSucceeds(t *testing.T) {
	svc := newCaregiverFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "nurse@example.com", "secret1"))

	assert.True(t, svc.LoggedIn())
	assert.Equal(t, "nurse@example.com", svc.Email())
}

func TestCaregiverLoginRejectsBadCredentials(t *testing.T) {
	svc := newCaregiverFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"not email shaped", "nurse.example.com", "secret1"},
		{"missing local part", "@example.com", "secret1"},
		{"missing domain", "nurse@", "secret1"},
		{"password too short", "nurse@example.com", "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Login(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrLoginRejected))
			assert.False(t, svc.LoggedIn())
		})
	}
}

func TestCaregiverLogoutClearsState(t *testing.T) {
	svc := newCaregiverFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "nurse@example.com", "secret1"))
	require.NoError(t, svc.Logout(ctx))

	assert.False(t, svc.LoggedIn())
	assert.Empty(t, svc.Email())
}

func TestCaregiverLoginCancelledContext(t *testing.T) {
	svc := NewCaregiverService(newTestStore(t), notices.Discard{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Login(ctx, "nurse@example.com", "secret1")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, svc.LoggedIn())
}

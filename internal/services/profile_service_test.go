package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimiradmaev/glucose-tracker/internal/domain"
	"github.com/vladimiradmaev/glucose-tracker/internal/notices"
	"github.com/vladimiradmaev/glucose-tracker/internal/storage"
)

func TestProfileDefaults(t *testing.T) {
	svc := NewProfileService(context.Background(), newTestStore(t), notices.Discard{})

	p := svc.Get()
	assert.Equal(t, "Patient", p.Name)
	assert.True(t, p.NotificationsEnabled)
	assert.True(t, p.EmailNotificationsEnabled)
	assert.Empty(t, p.CaregiverEmail)
}

func TestProfileUpdateReplacesWholesale(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewProfileService(ctx, store, notices.Discard{})

	require.NoError(t, svc.Update(ctx, domain.UserProfile{
		Name:                      "Alex",
		Email:                     "alex@example.com",
		Age:                       42,
		CaregiverEmail:            "caregiver@example.com",
		NotificationsEnabled:      true,
		EmailNotificationsEnabled: false,
	}))

	p := svc.Get()
	assert.Equal(t, "Alex", p.Name)
	assert.False(t, p.EmailNotificationsEnabled)

	// A record missing optional fields clears them on the next update.
	require.NoError(t, svc.Update(ctx, domain.UserProfile{Name: "Alex"}))
	p = svc.Get()
	assert.Empty(t, p.CaregiverEmail)
	assert.False(t, p.NotificationsEnabled)
}

func TestProfileSurvivesRehydration(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewProfileService(ctx, store, notices.Discard{})

	require.NoError(t, svc.Update(ctx, domain.UserProfile{Name: "Alex", CaregiverEmail: "c@example.com"}))

	reloaded := NewProfileService(ctx, store, notices.Discard{})
	assert.Equal(t, svc.Get(), reloaded.Get())
}

func TestCorruptProfileBlobFallsBackToDefault(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeyUserProfile, []byte("###")))

	svc := NewProfileService(ctx, store, notices.Discard{})
	assert.Equal(t, domain.DefaultProfile(), svc.Get())
}

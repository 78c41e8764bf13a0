package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/vladimiradmaev/glucose-tracker/internal/domain"
	"github.com/vladimiradmaev/glucose-tracker/internal/logger"
	"github.com/vladimiradmaev/glucose-tracker/internal/notices"
	"github.com/vladimiradmaev/glucose-tracker/internal/storage"
)

// ProfileService owns the singleton user profile record. Updates replace
// the record wholesale; there is no partial-field merge.
type ProfileService struct {
	store storage.Store
	sink  notices.Sink

	mu      sync.RWMutex
	profile domain.UserProfile
}

// NewProfileService creates the service and hydrates it from storage,
// falling back to the default profile.
func NewProfileService(ctx context.Context, store storage.Store, sink notices.Sink) *ProfileService {
	s := &ProfileService{
		store:   store,
		sink:    sink,
		profile: domain.DefaultProfile(),
	}
	s.hydrate(ctx)
	return s
}

func (s *ProfileService) hydrate(ctx context.Context) {
	blob, err := s.store.Get(ctx, storage.KeyUserProfile)
	if err != nil {
		if !storage.IsNotFound(err) {
			logger.Error("failed to load profile", "error", err)
			s.sink.Post(notices.Notice{
				Title:   "Error",
				Message: "Failed to load your profile.",
				Level:   notices.LevelDestructive,
			})
		}
		return
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(blob, &profile); err != nil {
		logger.Error("failed to parse stored profile, using default", "error", err)
		s.sink.Post(notices.Notice{
			Title:   "Error",
			Message: "Failed to load your profile.",
			Level:   notices.LevelDestructive,
		})
		return
	}

	s.profile = profile
}

// Get returns the current profile.
func (s *ProfileService) Get() domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Update replaces the profile and persists it.
func (s *ProfileService) Update(ctx context.Context, profile domain.UserProfile) error {
	s.mu.Lock()
	s.profile = profile
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.sink.Post(notices.Notice{
		Title:   "Profile Saved",
		Message: "Your profile has been updated.",
		Level:   notices.LevelInfo,
	})
	return nil
}

func (s *ProfileService) persistLocked(ctx context.Context) {
	blob, err := json.Marshal(s.profile)
	if err != nil {
		logger.Error("failed to encode profile", "error", err)
		return
	}
	if err := s.store.Set(ctx, storage.KeyUserProfile, blob); err != nil {
		logger.Warn("failed to persist profile", "error", err)
	}
}

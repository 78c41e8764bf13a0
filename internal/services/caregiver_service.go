package services

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/vladimiradmaev/glucose-tracker/internal/errors"
	"github.com/vladimiradmaev/glucose-tracker/internal/logger"
	"github.com/vladimiradmaev/glucose-tracker/internal/notices"
	"github.com/vladimiradmaev/glucose-tracker/internal/storage"
)

const minPasswordLength = 6

// CaregiverService implements the caregiver access gate. This is a
// prototype stub, not a security boundary: any email-shaped address with
// a long-enough password is accepted, and the dashboard checks only the
// stored login flag. There is no server-side verification and no token.
type CaregiverService struct {
	store storage.Store
	sink  notices.Sink

	// loginDelay simulates the round trip a real auth check would take.
	loginDelay time.Duration
}

// NewCaregiverService creates the access gate over local storage.
func NewCaregiverService(store storage.Store, sink notices.Sink) *CaregiverService {
	return &CaregiverService{
		store:      store,
		sink:       sink,
		loginDelay: time.Second,
	}
}

// Login accepts any syntactically email-shaped address and any password
// of at least six characters, then records the login state locally.
func (s *CaregiverService) Login(ctx context.Context, email, password string) error {
	select {
	case <-time.After(s.loginDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	if !emailShaped(email) || len(password) < minPasswordLength {
		s.sink.Post(notices.Notice{
			Title:   "Login Failed",
			Message: "Please check your credentials and try again.",
			Level:   notices.LevelDestructive,
		})
		return apperrors.ErrLoginRejected
	}

	if err := s.store.Set(ctx, storage.KeyCaregiverLoggedIn, []byte("true")); err != nil {
		logger.Warn("failed to persist caregiver login flag", "error", err)
	}
	if err := s.store.Set(ctx, storage.KeyCaregiverEmail, []byte(email)); err != nil {
		logger.Warn("failed to persist caregiver email", "error", err)
	}

	logger.Info("caregiver logged in", "email", email)
	s.sink.Post(notices.Notice{
		Title:   "Login Successful",
		Message: "Welcome to the Caregiver Dashboard.",
		Level:   notices.LevelInfo,
	})
	return nil
}

// Logout clears the stored login state.
func (s *CaregiverService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, storage.KeyCaregiverLoggedIn); err != nil {
		logger.Warn("failed to clear caregiver login flag", "error", err)
	}
	if err := s.store.Delete(ctx, storage.KeyCaregiverEmail); err != nil {
		logger.Warn("failed to clear caregiver email", "error", err)
	}
	s.sink.Post(notices.Notice{
		Title:   "Logged Out",
		Message: "You have been logged out of the Caregiver Dashboard.",
		Level:   notices.LevelInfo,
	})
	return nil
}

// LoggedIn reports whether the caregiver login flag is set. This flag is
// the only thing the dashboard checks before rendering patient data.
func (s *CaregiverService) LoggedIn() bool {
	blob, err := s.store.Get(context.Background(), storage.KeyCaregiverLoggedIn)
	if err != nil {
		return false
	}
	return string(blob) == "true"
}

// Email returns the email submitted at login, or empty.
func (s *CaregiverService) Email() string {
	blob, err := s.store.Get(context.Background(), storage.KeyCaregiverEmail)
	if err != nil {
		return ""
	}
	return string(blob)
}

func emailShaped(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

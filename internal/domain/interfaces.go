package domain

import "context"

// ReadingService handles blood sugar reading operations
type ReadingService interface {
	Add(ctx context.Context, input ReadingInput) (*Reading, error)
	Delete(ctx context.Context, id string) error
	Get(id string) (Reading, bool)
	List() []Reading
	Abnormal() []Reading
}

// MedicationService handles medication and reminder operations
type MedicationService interface {
	Add(ctx context.Context, input MedicationInput) (*Medication, error)
	List() []Medication
	Reminders() []Medication
}

// ProfileService handles the singleton user profile
type ProfileService interface {
	Get() UserProfile
	Update(ctx context.Context, profile UserProfile) error
}

// CaregiverService handles the caregiver access gate
type CaregiverService interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	LoggedIn() bool
	Email() string
}

// Notifier dispatches caregiver notifications for abnormal readings.
// The boolean reports whether a delivery attempt was made and accepted.
type Notifier interface {
	SendCaregiverNotification(ctx context.Context, profile UserProfile, reading Reading) bool
}

// Package storage provides the on-device local storage abstraction: one
// serialized blob per logical key, with no schema versioning or migration.
package storage

import "context"

// Well-known storage keys. The value under each key is a single
// serialized blob owned by exactly one store.
const (
	KeyReadings          = "bloodSugarReadings"
	KeyMedications       = "medications"
	KeyUserProfile       = "userProfile"
	KeyCaregiverLoggedIn = "caregiverLoggedIn"
	KeyCaregiverEmail    = "caregiverEmail"
)

// Store is the interface for local key/value blob storage.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Clear removes every stored key. Nothing survives it.
	Clear(ctx context.Context) error

	Close() error
}

// ErrNotFound is returned when no value exists for a key.
type ErrNotFound struct {
	Key string
}

func (e ErrNotFound) Error() string {
	return "no value stored for key: " + e.Key
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	_, ok := err.(ErrNotFound)
	return ok
}

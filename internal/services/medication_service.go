package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vladimiradmaev/glucose-tracker/internal/domain"
	apperrors "github.com/vladimiradmaev/glucose-tracker/internal/errors"
	"github.com/vladimiradmaev/glucose-tracker/internal/logger"
	"github.com/vladimiradmaev/glucose-tracker/internal/notices"
	"github.com/vladimiradmaev/glucose-tracker/internal/storage"
)

// MedicationService owns the append-only medication collection,
// oldest-first. There is no update or deletion path.
type MedicationService struct {
	store storage.Store
	sink  notices.Sink

	mu   sync.RWMutex
	meds []domain.Medication
}

// NewMedicationService creates the service and hydrates it from storage.
func NewMedicationService(ctx context.Context, store storage.Store, sink notices.Sink) *MedicationService {
	s := &MedicationService{store: store, sink: sink}
	s.hydrate(ctx)
	return s
}

func (s *MedicationService) hydrate(ctx context.Context) {
	blob, err := s.store.Get(ctx, storage.KeyMedications)
	if err != nil {
		if !storage.IsNotFound(err) {
			logger.Error("failed to load medications", "error", err)
			s.sink.Post(notices.Notice{
				Title:   "Error",
				Message: "Failed to load your saved medications.",
				Level:   notices.LevelDestructive,
			})
		}
		return
	}

	var meds []domain.Medication
	if err := json.Unmarshal(blob, &meds); err != nil {
		logger.Error("failed to parse stored medications, starting empty", "error", err)
		s.sink.Post(notices.Notice{
			Title:   "Error",
			Message: "Failed to load your saved medications.",
			Level:   notices.LevelDestructive,
		})
		return
	}

	s.meds = meds
}

// Add appends a new medication to the end of the collection and persists it.
func (s *MedicationService) Add(ctx context.Context, input domain.MedicationInput) (*domain.Medication, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("medication name is required")
	}

	med := domain.Medication{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Dosage:   input.Dosage,
		Schedule: input.Schedule,
		Time:     input.Time,
	}

	s.mu.Lock()
	s.meds = append(s.meds, med)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.sink.Post(notices.Notice{
		Title:   "Medication Added",
		Message: fmt.Sprintf("%s has been added to your medications.", med.Name),
		Level:   notices.LevelInfo,
	})
	return &med, nil
}

// List returns the full collection, oldest-first.
func (s *MedicationService) List() []domain.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Medication, len(s.meds))
	copy(out, s.meds)
	return out
}

// Reminders returns the medications currently considered due. The stored
// schedule is not evaluated: every medication is always due. Real
// schedule filtering is an open design question, not an omission here.
func (s *MedicationService) Reminders() []domain.Medication {
	return s.List()
}

func (s *MedicationService) persistLocked(ctx context.Context) {
	blob, err := json.Marshal(s.meds)
	if err != nil {
		logger.Error("failed to encode medications", "error", err)
		return
	}
	if err := s.store.Set(ctx, storage.KeyMedications, blob); err != nil {
		logger.Warn("failed to persist medications", "error", err)
	}
}

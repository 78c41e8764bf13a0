package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vladimiradmaev/glucose-tracker/internal/bloodsugar"
	"github.com/vladimiradmaev/glucose-tracker/internal/domain"
	"github.com/vladimiradmaev/glucose-tracker/internal/logger"
	"github.com/vladimiradmaev/glucose-tracker/internal/notices"
	"github.com/vladimiradmaev/glucose-tracker/internal/storage"
)

// ReadingService owns the ordered collection of blood sugar readings,
// most-recent-first. It hydrates once from local storage and persists the
// full collection after every mutation.
type ReadingService struct {
	store    storage.Store
	sink     notices.Sink
	profiles domain.ProfileService
	notifier domain.Notifier

	mu       sync.RWMutex
	readings []domain.Reading

	// dispatch runs the caregiver notification after a mutation commits.
	// It is fire-and-forget: the caller never waits on it and its failure
	// never rolls back the saved reading.
	dispatch func(fn func())
	inflight sync.WaitGroup
}

// NewReadingService creates the service and hydrates it from storage.
// Hydration failure degrades to an empty collection with a user notice.
func NewReadingService(ctx context.Context, store storage.Store, sink notices.Sink, profiles domain.ProfileService, notifier domain.Notifier) *ReadingService {
	s := &ReadingService{
		store:    store,
		sink:     sink,
		profiles: profiles,
		notifier: notifier,
	}
	s.dispatch = func(fn func()) {
		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			fn()
		}()
	}
	s.hydrate(ctx)
	return s
}

func (s *ReadingService) hydrate(ctx context.Context) {
	blob, err := s.store.Get(ctx, storage.KeyReadings)
	if err != nil {
		if !storage.IsNotFound(err) {
			logger.Error("failed to load readings", "error", err)
			s.sink.Post(notices.Notice{
				Title:   "Error",
				Message: "Failed to load your saved readings.",
				Level:   notices.LevelDestructive,
			})
		}
		return
	}

	var readings []domain.Reading
	if err := json.Unmarshal(blob, &readings); err != nil {
		logger.Error("failed to parse stored readings, starting empty", "error", err)
		s.sink.Post(notices.Notice{
			Title:   "Error",
			Message: "Failed to load your saved readings.",
			Level:   notices.LevelDestructive,
		})
		return
	}

	s.readings = readings
}

// Add validates the input, classifies it, prepends the new reading and
// persists the collection. If the reading is abnormal, the caregiver
// notification is dispatched after the persist commits.
func (s *ReadingService) Add(ctx context.Context, input domain.ReadingInput) (*domain.Reading, error) {
	if err := bloodsugar.ValidateValue(input.Value); err != nil {
		return nil, err
	}

	reading := domain.Reading{
		ID:       uuid.NewString(),
		Value:    input.Value,
		Date:     input.Date,
		Time:     input.Time,
		TestType: input.TestType,
		Note:     input.Note,
		Status:   bloodsugar.Classify(input.Value),
	}

	s.mu.Lock()
	s.readings = append([]domain.Reading{reading}, s.readings...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.confirmAdd(reading)

	if reading.Status == domain.StatusHigh || reading.Status == domain.StatusLow {
		profile := s.profiles.Get()
		s.dispatch(func() {
			s.notifier.SendCaregiverNotification(context.Background(), profile, reading)
		})
	}

	return &reading, nil
}

// Delete removes the reading with the given id. A missing id is a benign
// no-op, not an error.
func (s *ReadingService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	for i, r := range s.readings {
		if r.ID == id {
			s.readings = append(s.readings[:i], s.readings[i+1:]...)
			s.persistLocked(ctx)
			break
		}
	}
	s.mu.Unlock()

	s.sink.Post(notices.Notice{
		Title:   "Reading Deleted",
		Message: "The blood sugar reading has been deleted.",
		Level:   notices.LevelInfo,
	})
	return nil
}

// Get returns the reading with the given id, if present.
func (s *ReadingService) Get(id string) (domain.Reading, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.readings {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Reading{}, false
}

// List returns the full ordered collection, most-recent-first.
func (s *ReadingService) List() []domain.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Reading, len(s.readings))
	copy(out, s.readings)
	return out
}

// Abnormal returns the readings classified high or low, in collection order.
func (s *ReadingService) Abnormal() []domain.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Reading
	for _, r := range s.readings {
		if r.Status != domain.StatusNormal {
			out = append(out, r)
		}
	}
	return out
}

// Wait blocks until any in-flight notification dispatches have finished.
// It exists so process shutdown does not abandon a dispatch mid-flight;
// the save flow itself never waits.
func (s *ReadingService) Wait() {
	s.inflight.Wait()
}

// persistLocked writes the collection to storage. Saves are best-effort:
// a failure is logged but the in-memory state stands.
func (s *ReadingService) persistLocked(ctx context.Context) {
	blob, err := json.Marshal(s.readings)
	if err != nil {
		logger.Error("failed to encode readings", "error", err)
		return
	}
	if err := s.store.Set(ctx, storage.KeyReadings, blob); err != nil {
		logger.Warn("failed to persist readings", "error", err)
	}
}

func (s *ReadingService) confirmAdd(reading domain.Reading) {
	switch reading.Status {
	case domain.StatusHigh:
		s.sink.Post(notices.Notice{
			Title:   "High Blood Sugar",
			Message: "Your blood sugar reading is high.",
			Level:   notices.LevelDestructive,
		})
	case domain.StatusLow:
		s.sink.Post(notices.Notice{
			Title:   "Low Blood Sugar",
			Message: "Your blood sugar reading is low.",
			Level:   notices.LevelDestructive,
		})
	default:
		s.sink.Post(notices.Notice{
			Title:   "Reading Saved",
			Message: fmt.Sprintf("Blood sugar (%g mg/dL) saved successfully.", reading.Value),
			Level:   notices.LevelInfo,
		})
	}
}

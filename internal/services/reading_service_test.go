package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimiradmaev/glucose-tracker/internal/domain"
	"github.com/vladimiradmaev/glucose-tracker/internal/notices"
	"github.com/vladimiradmaev/glucose-tracker/internal/storage"
	"github.com/vladimiradmaev/glucose-tracker/internal/storage/sqlite"
)

type fakeNotifier struct {
	mu    sync.Mutex
	calls []domain.Reading
}

func (f *fakeNotifier) SendCaregiverNotification(_ context.Context, _ domain.UserProfile, reading domain.Reading) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, reading)
	return true
}

func (f *fakeNotifier) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestStore(t *testing.T) storage.Store {
	store, err := sqlite.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// newReadingFixture wires a reading service with a caregiver configured
// and email notifications enabled, dispatching synchronously.
func newReadingFixture(t *testing.T, store storage.Store) (*ReadingService, *fakeNotifier, *notices.Recorder) {
	ctx := context.Background()
	recorder := &notices.Recorder{}
	notifier := &fakeNotifier{}

	profiles := NewProfileService(ctx, store, notices.Discard{})
	require.NoError(t, profiles.Update(ctx, domain.UserProfile{
		Name:                      "Alex",
		CaregiverEmail:            "caregiver@example.com",
		NotificationsEnabled:      true,
		EmailNotificationsEnabled: true,
	}))

	svc := NewReadingService(ctx, store, recorder, profiles, notifier)
	svc.dispatch = func(fn func()) { fn() }
	return svc, notifier, recorder
}

func TestAddPrependsReading(t *testing.T) {
	svc, _, _ := newReadingFixture(t, newTestStore(t))
	ctx := context.Background()

	first, err := svc.Add(ctx, domain.ReadingInput{Value: 100, Date: "06/01/2024", Time: "08:00", TestType: domain.TestTypeFingerPrick})
	require.NoError(t, err)
	second, err := svc.Add(ctx, domain.ReadingInput{Value: 110, Date: "06/01/2024", Time: "12:00", TestType: domain.TestTypeFingerPrick})
	require.NoError(t, err)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddHighReadingNotifiesCaregiver(t *testing.T) {
	svc, notifier, recorder := newReadingFixture(t, newTestStore(t))

	reading, err := svc.Add(context.Background(), domain.ReadingInput{
		Value: 220, Date: "06/01/2024", Time: "09:00", TestType: domain.TestTypeFingerPrick,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusHigh, reading.Status)
	assert.Equal(t, reading.ID, svc.List()[0].ID)
	require.Equal(t, 1, notifier.callCount())
	assert.Equal(t, domain.StatusHigh, notifier.calls[0].Status)

	all := recorder.All()
	require.NotEmpty(t, all)
	assert.Equal(t, "High Blood Sugar", all[0].Title)
}

func TestAddLowReadingNotifiesCaregiver(t *testing.T) {
	svc, notifier, recorder := newReadingFixture(t, newTestStore(t))

	reading, err := svc.Add(context.Background(), domain.ReadingInput{
		Value: 55, Date: "06/01/2024", Time: "09:00", TestType: domain.TestTypeFingerPrick,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusLow, reading.Status)
	require.Equal(t, 1, notifier.callCount())

	all := recorder.All()
	require.NotEmpty(t, all)
	assert.Equal(t, "Low Blood Sugar", all[0].Title)
}

func TestAddNormalReadingDoesNotNotify(t *testing.T) {
	svc, notifier, recorder := newReadingFixture(t, newTestStore(t))

	reading, err := svc.Add(context.Background(), domain.ReadingInput{
		Value: 150, Date: "06/01/2024", Time: "09:00", TestType: domain.TestTypeFingerPrick,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNormal, reading.Status)
	assert.Equal(t, 0, notifier.callCount())

	all := recorder.All()
	require.NotEmpty(t, all)
	assert.Equal(t, "Reading Saved", all[0].Title)
}

func TestAddRejectsNonFiniteValue(t *testing.T) {
	svc, notifier, _ := newReadingFixture(t, newTestStore(t))

	_, err := svc.Add(context.Background(), domain.ReadingInput{Value: -1})
	require.Error(t, err)
	assert.Empty(t, svc.List())
	assert.Equal(t, 0, notifier.callCount())
}

func TestDeleteRemovesReading(t *testing.T) {
	svc, _, _ := newReadingFixture(t, newTestStore(t))
	ctx := context.Background()

	reading, err := svc.Add(ctx, domain.ReadingInput{Value: 100, Date: "06/01/2024", Time: "08:00", TestType: domain.TestTypeFingerPrick})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, reading.ID))
	assert.Empty(t, svc.List())

	_, ok := svc.Get(reading.ID)
	assert.False(t, ok)
}

func TestDeleteMissingIDIsNoop(t *testing.T) {
	svc, _, _ := newReadingFixture(t, newTestStore(t))
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.ReadingInput{Value: 100, Date: "06/01/2024", Time: "08:00", TestType: domain.TestTypeFingerPrick})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "no-such-id"))
	assert.Len(t, svc.List(), 1)
}

func TestReadingsSurviveRehydration(t *testing.T) {
	store := newTestStore(t)
	svc, _, _ := newReadingFixture(t, store)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.ReadingInput{Value: 100, Date: "06/01/2024", Time: "08:00", TestType: domain.TestTypeFingerPrick, Note: "after breakfast"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.ReadingInput{Value: 210, Date: "06/01/2024", Time: "13:00", TestType: domain.TestTypeLabTest})
	require.NoError(t, err)

	reloaded := NewReadingService(ctx, store, notices.Discard{}, NewProfileService(ctx, store, notices.Discard{}), &fakeNotifier{})

	assert.Equal(t, svc.List(), reloaded.List())
}

func TestCorruptBlobFallsBackToEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeyReadings, []byte("{not json")))

	recorder := &notices.Recorder{}
	svc := NewReadingService(ctx, store, recorder, NewProfileService(ctx, store, notices.Discard{}), &fakeNotifier{})

	assert.Empty(t, svc.List())

	all := recorder.All()
	require.Len(t, all, 1)
	assert.Equal(t, notices.LevelDestructive, all[0].Level)
}

func TestAbnormalFiltersNormalReadings(t *testing.T) {
	svc, _, _ := newReadingFixture(t, newTestStore(t))
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.ReadingInput{Value: 100, Date: "06/01/2024", Time: "08:00", TestType: domain.TestTypeFingerPrick})
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.ReadingInput{Value: 220, Date: "06/01/2024", Time: "09:00", TestType: domain.TestTypeFingerPrick})
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.ReadingInput{Value: 55, Date: "06/01/2024", Time: "10:00", TestType: domain.TestTypeFingerPrick})
	require.NoError(t, err)

	abnormal := svc.Abnormal()
	require.Len(t, abnormal, 2)
	assert.Equal(t, domain.StatusLow, abnormal[0].Status)
	assert.Equal(t, domain.StatusHigh, abnormal[1].Status)
}

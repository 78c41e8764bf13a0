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

func TestAddMedicationAppends(t *testing.T) {
	svc := NewMedicationService(context.Background(), newTestStore(t), notices.Discard{})
	ctx := context.Background()

	first, err := svc.Add(ctx, domain.MedicationInput{Name: "Metformin", Dosage: "500mg", Schedule: "daily", Time: "08:00"})
	require.NoError(t, err)
	second, err := svc.Add(ctx, domain.MedicationInput{Name: "Insulin", Dosage: "10 units", Schedule: "daily", Time: "20:00"})
	require.NoError(t, err)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestAddMedicationRequiresName(t *testing.T) {
	svc := NewMedicationService(context.Background(), newTestStore(t), notices.Discard{})

	_, err := svc.Add(context.Background(), domain.MedicationInput{Dosage: "500mg"})
	require.Error(t, err)
	assert.Empty(t, svc.List())
}

func TestRemindersReturnEveryMedication(t *testing.T) {
	svc := NewMedicationService(context.Background(), newTestStore(t), notices.Discard{})
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.MedicationInput{Name: "Metformin", Schedule: "weekly", Time: "08:00"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.MedicationInput{Name: "Insulin", Schedule: "daily", Time: "20:00"})
	require.NoError(t, err)

	// No schedule filtering: everything stored is due.
	assert.Equal(t, svc.List(), svc.Reminders())
}

func TestMedicationsSurviveRehydration(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewMedicationService(ctx, store, notices.Discard{})

	_, err := svc.Add(ctx, domain.MedicationInput{Name: "Metformin", Dosage: "500mg", Schedule: "daily", Time: "08:00"})
	require.NoError(t, err)

	reloaded := NewMedicationService(ctx, store, notices.Discard{})
	assert.Equal(t, svc.List(), reloaded.List())
}

func TestCorruptMedicationBlobFallsBackToEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeyMedications, []byte("not json")))

	recorder := &notices.Recorder{}
	svc := NewMedicationService(ctx, store, recorder)

	assert.Empty(t, svc.List())
	require.Len(t, recorder.All(), 1)
}

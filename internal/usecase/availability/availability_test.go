package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beleza-studio/internal/catalog"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/repository"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

var (
	friday = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
)

func fixedClock() time.Time { return friday }

func TestEligibleSpecialists_Corte(t *testing.T) {
	specialists := repository.NewSpecialistStore(storage.NewMemory(), nil, nil)
	uc := NewEligibleSpecialists(specialists)

	list, err := uc.Execute(context.Background(), "corte")
	require.NoError(t, err)

	names := []string{}
	for _, s := range list {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Ana Carolina")
	assert.NotContains(t, names, "Juliana Oliveira")

	_, err = uc.Execute(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func newSlots(t *testing.T, policy domain.BlockedSlotPolicy) (*AvailableSlots, *repository.AppointmentStore) {
	t.Helper()
	b := storage.NewMemory()
	appts := repository.NewAppointmentStore(b, nil)
	uc := NewAvailableSlots(repository.NewScheduleStore(b, nil), appts, policy, time.UTC).
		WithClock(fixedClock)
	return uc, appts
}

func TestAvailableSlots_StaticPolicy(t *testing.T) {
	uc, _ := newSlots(t, domain.BlockedStatic)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{SpecialistID: "ana", Date: monday})
	require.NoError(t, err)
	// segunda da Ana: 09,10,11,14,15,16 menos 10:00
	assert.Equal(t, []string{"09:00", "11:00", "14:00", "15:00", "16:00"}, slots)
}

func TestAvailableSlots_NoScheduleIsEmpty(t *testing.T) {
	uc, _ := newSlots(t, domain.BlockedStatic)

	sunday := monday.AddDate(0, 0, -1)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{SpecialistID: "ana", Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlots_PastDate(t *testing.T) {
	uc, _ := newSlots(t, domain.BlockedStatic)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		SpecialistID: "ana",
		Date:         friday.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrDateInPast)

	// hoje ainda é permitido
	_, err = uc.Execute(context.Background(), domain.AvailabilityInput{SpecialistID: "ana", Date: friday})
	assert.NoError(t, err)
}

func TestAvailableSlots_BookedPolicy(t *testing.T) {
	uc, appts := newSlots(t, domain.BlockedBooked)
	ctx := context.Background()

	svc, _ := catalog.ServiceByID("corte")
	ana := catalog.DefaultSpecialists()[0]
	date := monday
	require.NoError(t, appts.Append(ctx, &models.Appointment{
		ID: "APT-1", Service: &svc, Specialist: &ana, Date: &date, Time: "09:00",
		Status: "pending", PaymentStatus: "pending",
	}))
	require.NoError(t, appts.Append(ctx, &models.Appointment{
		ID: "APT-2", Service: &svc, Specialist: &ana, Date: &date, Time: "15:00",
		Status: "cancelled", PaymentStatus: "expired",
	}))

	slots, err := uc.Execute(ctx, domain.AvailabilityInput{SpecialistID: "ana", Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00", "14:00", "15:00", "16:00"}, slots)
}

package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	"github.com/BruksfildServices01/beleza-studio/internal/catalog"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/repository"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

func seed(t *testing.T, ids ...string) *repository.AppointmentStore {
	t.Helper()
	store := repository.NewAppointmentStore(storage.NewMemory(), nil)

	svc, _ := catalog.ServiceByID("corte")
	ana := catalog.DefaultSpecialists()[0]
	for _, id := range ids {
		require.NoError(t, store.Append(context.Background(), &models.Appointment{
			ID:            id,
			Service:       &svc,
			Specialist:    &ana,
			Status:        "pending",
			PaymentStatus: "pending",
			CreatedAt:     time.Now(),
		}))
	}
	return store
}

func TestCompletePayment_OnlyTarget(t *testing.T) {
	ctx := context.Background()
	store := seed(t, "APT-1", "APT-2", "APT-3")

	ap, err := NewCompletePayment(Deps{Repo: store}).Execute(ctx, "APT-2")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)
	assert.Equal(t, "paid", ap.PaymentStatus)

	all, err := store.All(ctx)
	require.NoError(t, err)
	for _, a := range all {
		if a.ID == "APT-2" {
			continue
		}
		assert.Equal(t, "pending", a.Status, a.ID)
		assert.Equal(t, "pending", a.PaymentStatus, a.ID)
	}
}

func TestExpire_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := seed(t, "APT-1")
	uc := NewExpireAppointment(Deps{Repo: store})

	ap, err := uc.Execute(ctx, "APT-1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
	assert.Equal(t, "expired", ap.PaymentStatus)

	ap, err = uc.Execute(ctx, "APT-1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
	assert.Equal(t, "expired", ap.PaymentStatus)
}

func TestExpire_UnknownID(t *testing.T) {
	_, err := NewExpireAppointment(Deps{Repo: seed(t)}).Execute(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrAppointmentNotFound)
}

func TestConfirmAndCancel_Audited(t *testing.T) {
	ctx := context.Background()
	store := seed(t, "APT-1", "APT-2")
	sink := audit.NewMemorySink(10)
	d := audit.NewDispatcher(sink, nil)
	deps := Deps{Repo: store, Audit: d}

	ap, err := NewConfirmAppointment(deps).Execute(ctx, 7, "APT-1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)
	assert.Equal(t, "paid", ap.PaymentStatus)

	ap, err = NewCancelAppointment(deps).Execute(ctx, 7, "APT-2")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
	assert.Equal(t, "pending", ap.PaymentStatus)

	d.Close()
	logs, _ := sink.List(ctx, 0)
	require.Len(t, logs, 2)
	assert.Equal(t, "appointment_cancelled", logs[0].Action)
	require.NotNil(t, logs[0].ActorID)
	assert.Equal(t, uint(7), *logs[0].ActorID)
}

func TestListAppointments_Filters(t *testing.T) {
	ctx := context.Background()
	store := seed(t, "APT-1", "APT-2", "APT-3")
	_, err := NewCompletePayment(Deps{Repo: store}).Execute(ctx, "APT-1")
	require.NoError(t, err)

	uc := NewListAppointments(store)

	res, err := uc.Execute(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, res.Appointments, 3)
	assert.Equal(t, "APT-3", res.Appointments[0].ID)
	assert.Equal(t, 80.0, res.Summary.PaidRevenue)

	// filtros não mexem no resumo
	res, err = uc.Execute(ctx, "pending", "ana")
	require.NoError(t, err)
	assert.Len(t, res.Appointments, 2)
	assert.Equal(t, 3, res.Summary.Total)
	assert.Equal(t, 1, res.Summary.Confirmed)
	assert.Equal(t, 2, res.Summary.Pending)
	assert.Equal(t, 80.0, res.Summary.PaidRevenue)

	res, err = uc.Execute(ctx, "all", "marina")
	require.NoError(t, err)
	assert.Empty(t, res.Appointments)

	_, err = uc.Execute(ctx, "archived", "")
	assert.Error(t, err)
}

func TestSpecialistStats(t *testing.T) {
	ctx := context.Background()
	store := seed(t, "APT-1", "APT-2")
	_, err := NewCompletePayment(Deps{Repo: store}).Execute(ctx, "APT-2")
	require.NoError(t, err)

	specialists := repository.NewSpecialistStore(storage.NewMemory(), nil, nil)
	stats, err := NewSpecialistStats(store, specialists).Execute(ctx)
	require.NoError(t, err)

	require.Len(t, stats, 4)
	assert.Equal(t, "ana", stats[0].SpecialistID)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 80.0, stats[0].PaidRevenue)
	assert.Equal(t, 0, stats[1].Count)
}

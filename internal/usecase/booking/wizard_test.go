package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/domain/booking"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/idgen"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/repository"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
	ucappt "github.com/BruksfildServices01/beleza-studio/internal/usecase/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/usecase/availability"
)

var friday = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return friday }

func sp(s string) *string { return &s }

func newWizard(t *testing.T, opts Options) (*Wizard, *repository.AppointmentStore) {
	t.Helper()

	b := storage.NewMemory()
	appts := repository.NewAppointmentStore(b, nil)
	specialists := repository.NewSpecialistStore(b, idgen.NewSpecialistIDs(), nil)
	schedules := repository.NewScheduleStore(b, nil)
	deps := ucappt.Deps{Repo: appts}

	if opts.Location == nil {
		opts.Location = time.UTC
	}

	w := NewWizard(Deps{
		Appointments: appts,
		Specialists:  specialists,
		Slots: availability.NewAvailableSlots(schedules, appts, domain.BlockedStatic, time.UTC).
			WithClock(clock),
		Complete: ucappt.NewCompletePayment(deps),
		Expire:   ucappt.NewExpireAppointment(deps),
		IDs:      idgen.NewAppointmentIDs(),
	}, opts).WithClock(clock)
	t.Cleanup(w.Close)

	return w, appts
}

// walk percorre o cenário corte / Ana / segunda 09:00 / Maria Souza.
func walk(t *testing.T, w *Wizard) string {
	t.Helper()
	ctx := context.Background()
	sid := w.Start().SessionID

	_, err := w.UpdateDraft(ctx, sid, DraftInput{ServiceID: sp("corte")})
	require.NoError(t, err)
	_, err = w.Next(sid)
	require.NoError(t, err)

	_, err = w.UpdateDraft(ctx, sid, DraftInput{Date: sp("2026-10-19")})
	require.NoError(t, err)
	_, err = w.Next(sid)
	require.NoError(t, err)

	_, err = w.UpdateDraft(ctx, sid, DraftInput{SpecialistID: sp("juliana")})
	require.ErrorIs(t, err, ErrSpecialistNotEligible)
	_, err = w.UpdateDraft(ctx, sid, DraftInput{SpecialistID: sp("ana")})
	require.NoError(t, err)
	_, err = w.Next(sid)
	require.NoError(t, err)

	_, err = w.UpdateDraft(ctx, sid, DraftInput{Time: sp("09:00")})
	require.NoError(t, err)
	_, err = w.Next(sid)
	require.NoError(t, err)

	v, err := w.UpdateCustomer(sid, CustomerInput{
		FirstName: sp("Maria"),
		LastName:  sp("Souza"),
		Phone:     sp("11912345678"),
	})
	require.NoError(t, err)
	require.True(t, v.CanFinalize)
	require.Equal(t, "(11) 91234-5678", v.Draft.Customer.Phone)

	return sid
}

func TestWizard_CorteScenario(t *testing.T) {
	w, appts := newWizard(t, Options{})
	sid := walk(t, w)

	v, err := w.Finalize(context.Background(), sid)
	require.NoError(t, err)

	require.NotNil(t, v.Appointment)
	assert.Equal(t, booking.OverlayAwaitingPayment, v.Overlay)
	assert.Equal(t, 80.0, v.Appointment.Service.Price)
	assert.Equal(t, "pending", v.Appointment.Status)
	assert.Equal(t, "pending", v.Appointment.PaymentStatus)
	assert.Equal(t, 300, v.PaymentRemainingSeconds)

	stored, err := appts.Get(context.Background(), v.Appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Carolina", stored.Specialist.Name)

	v, err = w.CompletePayment(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, booking.OverlayConfirmed, v.Overlay)
	assert.Equal(t, "confirmed", v.Appointment.Status)
	assert.Equal(t, "paid", v.Appointment.PaymentStatus)
}

func TestWizard_DistinctIDsAcrossRuns(t *testing.T) {
	w, _ := newWizard(t, Options{})

	a, err := w.Finalize(context.Background(), walk(t, w))
	require.NoError(t, err)
	b, err := w.Finalize(context.Background(), walk(t, w))
	require.NoError(t, err)

	assert.NotEqual(t, a.Appointment.ID, b.Appointment.ID)
}

func TestWizard_StepGating(t *testing.T) {
	w, _ := newWizard(t, Options{})
	ctx := context.Background()
	sid := w.Start().SessionID

	_, err := w.Next(sid)
	assert.ErrorIs(t, err, ErrStepIncomplete)

	_, err = w.GoTo(sid, 3)
	assert.ErrorIs(t, err, ErrStepIncomplete)

	_, err = w.UpdateDraft(ctx, sid, DraftInput{SpecialistID: sp("ana")})
	assert.ErrorIs(t, err, ErrSelectServiceFirst)

	_, err = w.UpdateDraft(ctx, sid, DraftInput{Time: sp("09:00")})
	assert.ErrorIs(t, err, ErrSelectSpecialistFirst)

	_, err = w.UpdateDraft(ctx, sid, DraftInput{Date: sp("2026-10-15")})
	assert.ErrorIs(t, err, availability.ErrDateInPast)

	_, err = w.UpdateDraft(ctx, sid, DraftInput{Date: sp("15/10/2026")})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = w.Finalize(ctx, sid)
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))

	_, err = w.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWizard_BlockedSlotRejected(t *testing.T) {
	w, _ := newWizard(t, Options{})
	ctx := context.Background()
	sid := w.Start().SessionID

	_, err := w.UpdateDraft(ctx, sid, DraftInput{
		ServiceID:    sp("corte"),
		Date:         sp("2026-10-19"),
		SpecialistID: sp("ana"),
	})
	require.NoError(t, err)

	_, err = w.UpdateDraft(ctx, sid, DraftInput{Time: sp("10:00")})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestWizard_ServiceChangeClearsSpecialist(t *testing.T) {
	w, _ := newWizard(t, Options{})
	ctx := context.Background()
	sid := w.Start().SessionID

	_, err := w.UpdateDraft(ctx, sid, DraftInput{ServiceID: sp("corte"), SpecialistID: sp("ana")})
	require.NoError(t, err)

	v, err := w.UpdateDraft(ctx, sid, DraftInput{ServiceID: sp("manicure")})
	require.NoError(t, err)
	assert.Nil(t, v.Draft.Specialist)
}

func TestWizard_PaymentExpires(t *testing.T) {
	w, appts := newWizard(t, Options{PaymentWindow: 5 * time.Millisecond, TickInterval: time.Millisecond})
	sid := walk(t, w)

	v, err := w.Finalize(context.Background(), sid)
	require.NoError(t, err)
	id := v.Appointment.ID

	require.Eventually(t, func() bool {
		cur, err := w.Get(sid)
		return err == nil && cur.PaymentExpired
	}, 2*time.Second, 5*time.Millisecond)

	ap, err := appts.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
	assert.Equal(t, "expired", ap.PaymentStatus)

	_, err = w.CompletePayment(context.Background(), sid)
	assert.ErrorIs(t, err, ErrPaymentExpired)

	v, err = w.Reset(sid)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Step)
	assert.False(t, v.PaymentExpired)
}

func TestWizard_LeavePaymentStopsTimer(t *testing.T) {
	w, appts := newWizard(t, Options{PaymentWindow: 20 * time.Millisecond, TickInterval: time.Millisecond})
	sid := walk(t, w)

	v, err := w.Finalize(context.Background(), sid)
	require.NoError(t, err)
	id := v.Appointment.ID

	v, err = w.LeavePayment(sid)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Step)
	assert.Equal(t, booking.OverlayNone, v.Overlay)

	time.Sleep(60 * time.Millisecond)

	ap, err := appts.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "pending", ap.PaymentStatus)
}

func TestWizard_Sweep(t *testing.T) {
	w, _ := newWizard(t, Options{SessionTTL: time.Minute})
	sid := w.Start().SessionID

	now := friday
	w.WithClock(func() time.Time { return now })

	assert.Equal(t, 0, w.Sweep())

	now = friday.Add(2 * time.Minute)
	assert.Equal(t, 1, w.Sweep())

	_, err := w.Get(sid)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

package appointment

import (
	"context"

	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

type ExpireAppointment struct {
	Deps
}

func NewExpireAppointment(d Deps) *ExpireAppointment {
	return &ExpireAppointment{Deps: d}
}

// Execute é idempotente: um agendamento já expirado é devolvido sem erro
// e sem nova gravação.
func (uc *ExpireAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	current, err := uc.Repo.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if domain.IsExpired(current) {
		return current, nil
	}

	ch := domain.PaymentTimedOut()
	ap, err := uc.Repo.UpdateStatus(ctx, appointmentID, ch.Status, ch.Payment)
	if err != nil {
		return nil, err
	}

	uc.Metrics.PaymentTimedOut()
	uc.Metrics.StatusChanged(ap.Status, ap.PaymentStatus, "expiry")
	uc.Audit.Dispatch(audit.Event{
		Action:   "payment_expired",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

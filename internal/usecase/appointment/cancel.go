package appointment

import (
	"context"

	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

type CancelAppointment struct {
	Deps
}

func NewCancelAppointment(d Deps) *CancelAppointment {
	return &CancelAppointment{Deps: d}
}

// Execute cancela pelo painel; o status de pagamento fica como está.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID string,
) (*models.Appointment, error) {

	ch := domain.CancelledByStaff()
	ap, err := uc.Repo.UpdateStatus(ctx, appointmentID, ch.Status, ch.Payment)
	if err != nil {
		return nil, err
	}

	uc.Metrics.StatusChanged(ap.Status, ap.PaymentStatus, "dashboard")
	uc.Audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

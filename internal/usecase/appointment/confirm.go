package appointment

import (
	"context"

	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

type ConfirmAppointment struct {
	Deps
}

func NewConfirmAppointment(d Deps) *ConfirmAppointment {
	return &ConfirmAppointment{Deps: d}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID string,
) (*models.Appointment, error) {

	ch := domain.ConfirmedByStaff()
	ap, err := uc.Repo.UpdateStatus(ctx, appointmentID, ch.Status, ch.Payment)
	if err != nil {
		return nil, err
	}

	uc.Metrics.StatusChanged(ap.Status, ap.PaymentStatus, "dashboard")
	uc.Audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

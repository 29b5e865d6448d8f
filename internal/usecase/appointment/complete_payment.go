package appointment

import (
	"context"

	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

type CompletePayment struct {
	Deps
}

func NewCompletePayment(d Deps) *CompletePayment {
	return &CompletePayment{Deps: d}
}

// Execute marca confirmed/paid apenas o agendamento informado.
func (uc *CompletePayment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ch := domain.PaymentCompleted()
	ap, err := uc.Repo.UpdateStatus(ctx, appointmentID, ch.Status, ch.Payment)
	if err != nil {
		return nil, err
	}

	uc.Metrics.StatusChanged(ap.Status, ap.PaymentStatus, "payment")
	uc.Audit.Dispatch(audit.Event{
		Action:   "payment_completed",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

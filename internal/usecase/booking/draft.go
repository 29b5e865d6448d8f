package booking

import (
	"context"

	"github.com/BruksfildServices01/beleza-studio/internal/catalog"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/domain/booking"
	"github.com/BruksfildServices01/beleza-studio/internal/timezone"
	"github.com/BruksfildServices01/beleza-studio/internal/usecase/availability"
)

// DraftInput chega do cliente com ids e data "YYYY-MM-DD".
// Campo nil não é alterado.
type DraftInput struct {
	ServiceID    *string `json:"service_id"`
	Date         *string `json:"date"`
	SpecialistID *string `json:"specialist_id"`
	Time         *string `json:"time"`
}

type CustomerInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

// UpdateDraft valida cada seleção no momento em que é feita e então
// faz o merge no rascunho.
func (w *Wizard) UpdateDraft(ctx context.Context, sid string, in DraftInput) (View, error) {
	return w.with(sid, func(s *session) error {
		if s.machine.Locked() {
			return ErrSessionLocked
		}

		patch, err := w.buildPatch(ctx, s.machine.Draft(), in)
		if err != nil {
			return err
		}

		s.machine.UpdateDraft(patch)
		return nil
	})
}

func (w *Wizard) buildPatch(ctx context.Context, current booking.Draft, in DraftInput) (booking.DraftPatch, error) {
	var p booking.DraftPatch

	svc := current.Service
	if in.ServiceID != nil {
		found, ok := catalog.ServiceByID(*in.ServiceID)
		if !ok {
			return p, availability.ErrServiceNotFound
		}
		p.Service = &found
		svc = &found
	}

	date := current.Date
	if in.Date != nil {
		d, err := timezone.ParseDate(*in.Date, w.opts.Location)
		if err != nil {
			return p, ErrInvalidDate
		}
		today := timezone.StartOfDay(w.now().In(w.opts.Location))
		if d.Before(today) {
			return p, availability.ErrDateInPast
		}
		p.Date = &d
		date = &d
	}

	specialistID := ""
	if current.Specialist != nil && p.Service == nil {
		specialistID = current.Specialist.ID
	}
	if in.SpecialistID != nil {
		if svc == nil {
			return p, ErrSelectServiceFirst
		}
		sp, err := w.deps.Specialists.Get(ctx, *in.SpecialistID)
		if err != nil {
			return p, err
		}
		if !domain.IsEligible(*svc, *sp) {
			return p, ErrSpecialistNotEligible
		}
		p.Specialist = sp
		specialistID = sp.ID
	}

	if in.Time != nil {
		if specialistID == "" || date == nil {
			return p, ErrSelectSpecialistFirst
		}
		slots, err := w.deps.Slots.Execute(ctx, domain.AvailabilityInput{
			SpecialistID: specialistID,
			Date:         *date,
		})
		if err != nil {
			return p, err
		}
		if !contains(slots, *in.Time) {
			return p, ErrSlotUnavailable
		}
		p.Time = in.Time
	}

	return p, nil
}

func (w *Wizard) UpdateCustomer(sid string, in CustomerInput) (View, error) {
	return w.with(sid, func(s *session) error {
		if s.machine.Locked() {
			return ErrSessionLocked
		}
		s.machine.UpdateCustomer(booking.CustomerPatch{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Phone:     in.Phone,
		})
		return nil
	})
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

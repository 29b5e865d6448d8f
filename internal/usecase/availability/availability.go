package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/beleza-studio/internal/catalog"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
	"github.com/BruksfildServices01/beleza-studio/internal/timezone"
)

var (
	ErrServiceNotFound = httperr.ErrNotFound("service_not_found")
	ErrDateInPast      = httperr.ErrBusiness("date_in_past")
)

// ===============================
// Profissionais elegíveis
// ===============================

type EligibleSpecialists struct {
	specialists domain.SpecialistRepository
}

func NewEligibleSpecialists(specialists domain.SpecialistRepository) *EligibleSpecialists {
	return &EligibleSpecialists{specialists: specialists}
}

// Execute devolve lista vazia (não erro) quando ninguém atende o serviço.
func (uc *EligibleSpecialists) Execute(
	ctx context.Context,
	serviceID string,
) ([]models.Specialist, error) {

	svc, ok := catalog.ServiceByID(serviceID)
	if !ok {
		return nil, ErrServiceNotFound
	}

	all, err := uc.specialists.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.EligibleSpecialists(svc, all), nil
}

// ===============================
// Horários disponíveis
// ===============================

type AvailableSlots struct {
	schedules    domain.ScheduleRepository
	appointments domain.Repository
	policy       domain.BlockedSlotPolicy
	loc          *time.Location
	now          func() time.Time
}

func NewAvailableSlots(
	schedules domain.ScheduleRepository,
	appointments domain.Repository,
	policy domain.BlockedSlotPolicy,
	loc *time.Location,
) *AvailableSlots {
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}
	return &AvailableSlots{
		schedules:    schedules,
		appointments: appointments,
		policy:       policy,
		loc:          loc,
		now:          time.Now,
	}
}

// WithClock troca o relógio (testes).
func (uc *AvailableSlots) WithClock(now func() time.Time) *AvailableSlots {
	uc.now = now
	return uc
}

// Blocked devolve os horários indisponíveis segundo a política configurada.
func (uc *AvailableSlots) Blocked(ctx context.Context, in domain.AvailabilityInput) ([]string, error) {
	blocked := domain.DefaultBlockedSlots()
	if uc.policy != domain.BlockedBooked {
		return blocked, nil
	}

	all, err := uc.appointments.All(ctx)
	if err != nil {
		return nil, err
	}
	return append(blocked, domain.BookedSlots(all, in.SpecialistID, in.Date)...), nil
}

func (uc *AvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	day := timezone.StartOfDay(in.Date.In(uc.loc))
	if day.Before(timezone.StartOfDay(uc.now().In(uc.loc))) {
		return nil, ErrDateInPast
	}
	in.Date = day

	table, err := uc.schedules.Table(ctx)
	if err != nil {
		return nil, err
	}

	candidates := domain.SlotsFor(in.SpecialistID, int(day.Weekday()), table)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	blocked, err := uc.Blocked(ctx, in)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(candidates, blocked), nil
}

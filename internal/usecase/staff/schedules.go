package staff

import (
	"context"

	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	"github.com/BruksfildServices01/beleza-studio/internal/catalog"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/repository"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

// DayRow é uma linha da tabela de horários do painel.
type DayRow struct {
	DayOfWeek int      `json:"day_of_week"`
	DayName   string   `json:"day_name"`
	Slots     []string `json:"slots"`
}

type SpecialistWeek struct {
	SpecialistID string   `json:"specialist_id"`
	Name         string   `json:"name"`
	Days         []DayRow `json:"days"`
}

type Schedules struct {
	store       *repository.ScheduleStore
	specialists *repository.SpecialistStore
	audit       *audit.Dispatcher
}

func NewSchedules(
	store *repository.ScheduleStore,
	specialists *repository.SpecialistStore,
	dispatcher *audit.Dispatcher,
) *Schedules {
	return &Schedules{store: store, specialists: specialists, audit: dispatcher}
}

// Week monta a semana (domingo a sábado) dos profissionais pedidos;
// specialistID vazio ou "all" traz todos.
func (uc *Schedules) Week(ctx context.Context, specialistID string) ([]SpecialistWeek, error) {
	sps, err := uc.specialists.List(ctx)
	if err != nil {
		return nil, err
	}
	table, err := uc.store.Table(ctx)
	if err != nil {
		return nil, err
	}

	out := []SpecialistWeek{}
	for _, sp := range sps {
		if specialistID != "" && specialistID != "all" && sp.ID != specialistID {
			continue
		}
		week := SpecialistWeek{SpecialistID: sp.ID, Name: sp.Name}
		for d := 0; d < 7; d++ {
			week.Days = append(week.Days, DayRow{
				DayOfWeek: d,
				DayName:   catalog.FullDayNames[d],
				Slots:     slotsOf(table, sp.ID, d),
			})
		}
		out = append(out, week)
	}
	return out, nil
}

func slotsOf(table []models.SpecialistSchedule, specialistID string, day int) []string {
	for _, row := range table {
		if row.SpecialistID == specialistID && row.DayOfWeek == day {
			return append([]string{}, row.Slots...)
		}
	}
	return []string{}
}

func (uc *Schedules) Replace(
	ctx context.Context,
	actorID uint,
	specialistID string,
	day int,
	slots []string,
) (*models.SpecialistSchedule, error) {

	if _, err := uc.specialists.Get(ctx, specialistID); err != nil {
		return nil, err
	}

	row, err := uc.store.Update(ctx, specialistID, day, slots)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "schedule_replaced",
		Entity:   "schedule",
		EntityID: specialistID,
		Metadata: map[string]any{"day": day, "slots": row.Slots},
	})
	return row, nil
}

func (uc *Schedules) Toggle(
	ctx context.Context,
	actorID uint,
	specialistID string,
	day int,
	slot string,
) (*models.SpecialistSchedule, error) {

	if _, err := uc.specialists.Get(ctx, specialistID); err != nil {
		return nil, err
	}

	row, err := uc.store.Toggle(ctx, specialistID, day, slot)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "schedule_toggled",
		Entity:   "schedule",
		EntityID: specialistID,
		Metadata: map[string]any{"day": day, "slot": slot},
	})
	return row, nil
}

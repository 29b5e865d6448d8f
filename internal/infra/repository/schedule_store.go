package repository

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/beleza-studio/internal/catalog"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
	"github.com/BruksfildServices01/beleza-studio/internal/logger"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

var (
	ErrInvalidWeekday = httperr.ErrBusiness("invalid_weekday")
	ErrInvalidSlot    = httperr.ErrBusiness("invalid_slot")
)

// ScheduleStore guarda a tabela (profissional, dia da semana) -> horários.
type ScheduleStore struct {
	backing storage.Backing
	log     *zap.Logger

	mu sync.Mutex
}

func NewScheduleStore(b storage.Backing, log *zap.Logger) *ScheduleStore {
	return &ScheduleStore{backing: b, log: logger.OrNop(log)}
}

var _ domain.ScheduleRepository = (*ScheduleStore)(nil)

func (s *ScheduleStore) load(ctx context.Context) ([]models.SpecialistSchedule, error) {
	var table []models.SpecialistSchedule
	ok, err := loadBlob(ctx, s.backing, s.log, SchedulesKey, &table)
	if err != nil {
		return nil, err
	}
	if !ok {
		table = catalog.DefaultSchedules()
		if err := saveBlob(ctx, s.backing, SchedulesKey, table); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func (s *ScheduleStore) Table(ctx context.Context) ([]models.SpecialistSchedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// SlotsFor nunca cai na grade padrão quando a entrada não existe.
func (s *ScheduleStore) SlotsFor(ctx context.Context, specialistID string, weekday int) ([]string, error) {
	table, err := s.Table(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SlotsFor(specialistID, weekday, table), nil
}

// Update substitui os horários do dia (ou cria a entrada).
func (s *ScheduleStore) Update(
	ctx context.Context,
	specialistID string,
	weekday int,
	slots []string,
) (*models.SpecialistSchedule, error) {

	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}
	for _, sl := range slots {
		if !domain.IsValidSlotLabel(sl) {
			return nil, ErrInvalidSlot
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	entry := upsert(&table, specialistID, weekday)
	entry.Slots = append([]string{}, slots...)

	if err := saveBlob(ctx, s.backing, SchedulesKey, table); err != nil {
		return nil, err
	}
	out := *entry
	return &out, nil
}

// Toggle liga ou desliga um único horário, mantendo a lista ordenada.
func (s *ScheduleStore) Toggle(
	ctx context.Context,
	specialistID string,
	weekday int,
	slot string,
) (*models.SpecialistSchedule, error) {

	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}
	if !domain.IsValidSlotLabel(slot) {
		return nil, ErrInvalidSlot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	entry := upsert(&table, specialistID, weekday)

	idx := -1
	for i, sl := range entry.Slots {
		if sl == slot {
			idx = i
			break
		}
	}
	if idx >= 0 {
		entry.Slots = append(entry.Slots[:idx], entry.Slots[idx+1:]...)
	} else {
		entry.Slots = append(entry.Slots, slot)
		sort.Strings(entry.Slots)
	}

	if err := saveBlob(ctx, s.backing, SchedulesKey, table); err != nil {
		return nil, err
	}
	out := *entry
	out.Slots = append([]string{}, entry.Slots...)
	return &out, nil
}

// RemoveSpecialist apaga todas as linhas do profissional.
func (s *ScheduleStore) RemoveSpecialist(ctx context.Context, specialistID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load(ctx)
	if err != nil {
		return err
	}

	out := table[:0]
	for _, row := range table {
		if row.SpecialistID != specialistID {
			out = append(out, row)
		}
	}
	return saveBlob(ctx, s.backing, SchedulesKey, out)
}

func upsert(table *[]models.SpecialistSchedule, specialistID string, weekday int) *models.SpecialistSchedule {
	for i := range *table {
		row := &(*table)[i]
		if row.SpecialistID == specialistID && row.DayOfWeek == weekday {
			return row
		}
	}
	*table = append(*table, models.SpecialistSchedule{
		SpecialistID: specialistID,
		DayOfWeek:    weekday,
		Slots:        []string{},
	})
	return &(*table)[len(*table)-1]
}

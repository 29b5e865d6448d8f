package repository

import (
	"context"
	"sync"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
	"github.com/BruksfildServices01/beleza-studio/internal/logger"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

var ErrAppointmentNotFound = httperr.ErrNotFound("appointment_not_found")

// AppointmentStore persiste a coleção inteira sob uma única chave.
// O mutex serializa o read-modify-write dentro do processo; dois processos
// no mesmo backing podem sobrescrever um ao outro.
type AppointmentStore struct {
	backing storage.Backing
	log     *zap.Logger

	mu sync.Mutex
}

func NewAppointmentStore(b storage.Backing, log *zap.Logger) *AppointmentStore {
	return &AppointmentStore{backing: b, log: logger.OrNop(log)}
}

var _ domain.Repository = (*AppointmentStore)(nil)

// load devolve a coleção em ordem de inserção.
func (s *AppointmentStore) load(ctx context.Context) ([]models.Appointment, error) {
	var list []models.Appointment
	ok, err := loadBlob(ctx, s.backing, s.log, AppointmentsKey, &list)
	if err != nil {
		return nil, err
	}
	if !ok {
		list = []models.Appointment{}
		if err := saveBlob(ctx, s.backing, AppointmentsKey, list); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (s *AppointmentStore) Append(ctx context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}

	list = append(list, *ap)
	return saveBlob(ctx, s.backing, AppointmentsKey, list)
}

func (s *AppointmentStore) All(ctx context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Appointment, len(list))
	for i := range list {
		out[len(list)-1-i] = list[i]
	}
	return out, nil
}

func (s *AppointmentStore) Get(ctx context.Context, id string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			ap := list[i]
			return &ap, nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// UpdateStatus altera apenas o registro com o id informado.
func (s *AppointmentStore) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.Status,
	payment *domain.PaymentStatus,
) (*models.Appointment, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range list {
		if list[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrAppointmentNotFound
	}

	domain.Change{Status: status, Payment: payment}.Apply(&list[idx])

	if err := saveBlob(ctx, s.backing, AppointmentsKey, list); err != nil {
		return nil, err
	}

	ap := list[idx]
	return &ap, nil
}

package repository

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/beleza-studio/internal/catalog"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
	"github.com/BruksfildServices01/beleza-studio/internal/logger"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

var ErrSpecialistNotFound = httperr.ErrNotFound("specialist_not_found")

type IDGenerator interface {
	Next() string
}

type NewSpecialist struct {
	Name        string
	Role        string
	Avatar      string
	Specialties []string
}

// SpecialistPatch: campos nil não são alterados.
type SpecialistPatch struct {
	Name        *string
	Role        *string
	Avatar      *string
	Specialties []string
}

type SpecialistStore struct {
	backing storage.Backing
	ids     IDGenerator
	log     *zap.Logger

	mu sync.Mutex
}

func NewSpecialistStore(b storage.Backing, ids IDGenerator, log *zap.Logger) *SpecialistStore {
	return &SpecialistStore{backing: b, ids: ids, log: logger.OrNop(log)}
}

var _ domain.SpecialistRepository = (*SpecialistStore)(nil)

func (s *SpecialistStore) load(ctx context.Context) ([]models.Specialist, error) {
	var list []models.Specialist
	ok, err := loadBlob(ctx, s.backing, s.log, SpecialistsKey, &list)
	if err != nil {
		return nil, err
	}
	if !ok {
		list = catalog.DefaultSpecialists()
		if err := saveBlob(ctx, s.backing, SpecialistsKey, list); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (s *SpecialistStore) List(ctx context.Context) ([]models.Specialist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *SpecialistStore) Get(ctx context.Context, id string) (*models.Specialist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			sp := list[i]
			return &sp, nil
		}
	}
	return nil, ErrSpecialistNotFound
}

// Add cria o profissional com nota 5.0 e nenhuma avaliação.
func (s *SpecialistStore) Add(ctx context.Context, in NewSpecialist) (*models.Specialist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	avatar := in.Avatar
	if avatar == "" {
		avatar = catalog.DefaultAvatar
	}
	specialties := in.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	sp := models.Specialist{
		ID:          s.ids.Next(),
		Name:        in.Name,
		Role:        in.Role,
		Avatar:      avatar,
		Rating:      5.0,
		Reviews:     0,
		Specialties: specialties,
	}

	list = append(list, sp)
	if err := saveBlob(ctx, s.backing, SpecialistsKey, list); err != nil {
		return nil, err
	}
	return &sp, nil
}

func (s *SpecialistStore) Update(ctx context.Context, id string, p SpecialistPatch) (*models.Specialist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}
		if p.Name != nil {
			list[i].Name = *p.Name
		}
		if p.Role != nil {
			list[i].Role = *p.Role
		}
		if p.Avatar != nil {
			list[i].Avatar = *p.Avatar
		}
		if p.Specialties != nil {
			list[i].Specialties = p.Specialties
		}

		if err := saveBlob(ctx, s.backing, SpecialistsKey, list); err != nil {
			return nil, err
		}
		sp := list[i]
		return &sp, nil
	}
	return nil, ErrSpecialistNotFound
}

func (s *SpecialistStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}

	out := list[:0]
	found := false
	for _, sp := range list {
		if sp.ID == id {
			found = true
			continue
		}
		out = append(out, sp)
	}
	if !found {
		return ErrSpecialistNotFound
	}
	return saveBlob(ctx, s.backing, SpecialistsKey, out)
}

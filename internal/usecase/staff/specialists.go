package staff

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	"github.com/BruksfildServices01/beleza-studio/internal/avatar"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/repository"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

var ErrNameRequired = httperr.ErrBusiness("name_required")

// Specialists concentra o CRUD de profissionais feito no painel.
type Specialists struct {
	store     *repository.SpecialistStore
	schedules *repository.ScheduleStore
	avatars   *avatar.Store
	audit     *audit.Dispatcher
}

func NewSpecialists(
	store *repository.SpecialistStore,
	schedules *repository.ScheduleStore,
	avatars *avatar.Store,
	dispatcher *audit.Dispatcher,
) *Specialists {
	return &Specialists{
		store:     store,
		schedules: schedules,
		avatars:   avatars,
		audit:     dispatcher,
	}
}

func (uc *Specialists) List(ctx context.Context) ([]models.Specialist, error) {
	return uc.store.List(ctx)
}

func (uc *Specialists) Add(
	ctx context.Context,
	actorID uint,
	in repository.NewSpecialist,
) (*models.Specialist, error) {

	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	in.Specialties = cleanLabels(in.Specialties)

	sp, err := uc.store.Add(ctx, in)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "specialist_created",
		Entity:   "specialist",
		EntityID: sp.ID,
		Metadata: map[string]any{"name": sp.Name},
	})
	return sp, nil
}

func (uc *Specialists) Update(
	ctx context.Context,
	actorID uint,
	id string,
	p repository.SpecialistPatch,
) (*models.Specialist, error) {

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		p.Name = &name
	}
	if p.Specialties != nil {
		p.Specialties = cleanLabels(p.Specialties)
	}

	sp, err := uc.store.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "specialist_updated",
		Entity:   "specialist",
		EntityID: sp.ID,
	})
	return sp, nil
}

// Delete remove o profissional e as linhas de horário dele.
// Agendamentos antigos mantêm o snapshot do profissional.
func (uc *Specialists) Delete(ctx context.Context, actorID uint, id string) error {
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.schedules.RemoveSpecialist(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "specialist_deleted",
		Entity:   "specialist",
		EntityID: id,
	})
	return nil
}

// SetAvatar processa a imagem enviada e aponta o avatar para a URL interna.
func (uc *Specialists) SetAvatar(
	ctx context.Context,
	actorID uint,
	id string,
	raw []byte,
) (*models.Specialist, error) {

	if _, err := uc.store.Get(ctx, id); err != nil {
		return nil, err
	}

	url, err := uc.avatars.Save(ctx, id, raw)
	if err != nil {
		return nil, err
	}

	sp, err := uc.store.Update(ctx, id, repository.SpecialistPatch{Avatar: &url})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "specialist_avatar_updated",
		Entity:   "specialist",
		EntityID: id,
	})
	return sp, nil
}

func cleanLabels(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, l := range in {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

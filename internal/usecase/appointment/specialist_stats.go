package appointment

import (
	"context"

	"github.com/BruksfildServices01/beleza-studio/internal/dashboard"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
)

type SpecialistStats struct {
	repo        domain.Repository
	specialists domain.SpecialistRepository
}

func NewSpecialistStats(
	repo domain.Repository,
	specialists domain.SpecialistRepository,
) *SpecialistStats {
	return &SpecialistStats{repo: repo, specialists: specialists}
}

func (uc *SpecialistStats) Execute(ctx context.Context) ([]dashboard.SpecialistStats, error) {
	all, err := uc.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	sps, err := uc.specialists.List(ctx)
	if err != nil {
		return nil, err
	}

	return dashboard.PerSpecialist(all, sps), nil
}

package appointment

import (
	"context"

	"github.com/BruksfildServices01/beleza-studio/internal/dashboard"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

type ListResult struct {
	Appointments []models.Appointment
	Summary      dashboard.Summary
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute aplica os filtros só à lista; o resumo do painel é sempre
// calculado sobre todos os agendamentos.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	statusFilter string,
	specialistFilter string,
) (*ListResult, error) {

	status, err := domain.ParseStatusFilter(statusFilter)
	if err != nil {
		return nil, err
	}
	if specialistFilter == "" {
		specialistFilter = domain.FilterAll
	}

	all, err := uc.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	list := dashboard.FilterAppointments(all, dashboard.Filter{
		Status:       status,
		SpecialistID: specialistFilter,
	})

	return &ListResult{
		Appointments: list,
		Summary:      dashboard.Summarize(all),
	}, nil
}

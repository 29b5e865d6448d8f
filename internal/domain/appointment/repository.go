package appointment

import (
	"context"

	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	Append(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// All devolve do mais recente para o mais antigo.
	All(
		ctx context.Context,
	) ([]models.Appointment, error)

	Get(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateStatus(
		ctx context.Context,
		id string,
		status Status,
		payment *PaymentStatus,
	) (*models.Appointment, error)
}

type SpecialistRepository interface {
	List(ctx context.Context) ([]models.Specialist, error)
	Get(ctx context.Context, id string) (*models.Specialist, error)
}

type ScheduleRepository interface {
	Table(ctx context.Context) ([]models.SpecialistSchedule, error)
}

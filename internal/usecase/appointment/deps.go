package appointment

import (
	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/metrics"
)

// Deps reúne o que todos os casos de uso de status compartilham.
type Deps struct {
	Repo    domain.Repository
	Audit   *audit.Dispatcher
	Metrics *metrics.BookingMetrics
}

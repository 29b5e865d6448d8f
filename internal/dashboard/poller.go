package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/beleza-studio/internal/logger"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

type Snapshot struct {
	Appointments []models.Appointment `json:"appointments"`
	Summary      Summary              `json:"summary"`
	At           time.Time            `json:"at"`
}

type Source interface {
	All(ctx context.Context) ([]models.Appointment, error)
}

// Poller relê a coleção a cada intervalo enquanto o ctx estiver vivo.
type Poller struct {
	source   Source
	interval time.Duration
	filter   Filter
	log      *zap.Logger
}

func NewPoller(source Source, interval time.Duration, filter Filter, log *zap.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{source: source, interval: interval, filter: filter, log: logger.OrNop(log)}
}

func (p *Poller) snapshot(ctx context.Context) (Snapshot, error) {
	all, err := p.source.All(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Appointments: FilterAppointments(all, p.filter),
		Summary:      Summarize(all),
		At:           time.Now(),
	}, nil
}

// Run emite um snapshot imediato e depois um por tick. Retorna quando
// ctx é cancelado ou emit devolve false.
func (p *Poller) Run(ctx context.Context, emit func(Snapshot) bool) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		snap, err := p.snapshot(ctx)
		if err != nil {
			p.log.Warn("dashboard poll failed", zap.Error(err))
		} else if !emit(snap) {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

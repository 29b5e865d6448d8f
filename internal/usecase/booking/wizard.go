package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/domain/booking"
	"github.com/BruksfildServices01/beleza-studio/internal/logger"
	"github.com/BruksfildServices01/beleza-studio/internal/metrics"
	"github.com/BruksfildServices01/beleza-studio/internal/timezone"
	ucappt "github.com/BruksfildServices01/beleza-studio/internal/usecase/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/usecase/availability"
)

type IDGenerator interface {
	Next() string
}

type Options struct {
	PaymentWindow time.Duration
	TickInterval  time.Duration
	SessionTTL    time.Duration
	Location      *time.Location
}

type Deps struct {
	Appointments domain.Repository
	Specialists  domain.SpecialistRepository
	Slots        *availability.AvailableSlots
	Complete     *ucappt.CompletePayment
	Expire       *ucappt.ExpireAppointment
	IDs          IDGenerator
	Metrics      *metrics.BookingMetrics
	Log          *zap.Logger
}

// Wizard mantém as sessões de agendamento em memória e os timers de
// pagamento de cada uma.
type Wizard struct {
	deps Deps
	opts Options
	now  func() time.Time
	log  *zap.Logger

	// timers de pagamento vivem sob este contexto
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*session
}

func NewWizard(deps Deps, opts Options) *Wizard {
	if opts.PaymentWindow <= 0 {
		opts.PaymentWindow = booking.DefaultPaymentWindow
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	if opts.Location == nil {
		opts.Location = timezone.Location(timezone.DefaultTimezone)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Wizard{
		deps:     deps,
		opts:     opts,
		now:      time.Now,
		log:      logger.OrNop(deps.Log),
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[string]*session),
	}
}

// WithClock troca o relógio (testes).
func (w *Wizard) WithClock(now func() time.Time) *Wizard {
	w.now = now
	return w
}

// ===============================
// Registro de sessões
// ===============================

func (w *Wizard) Start() View {
	s := newSession(uuid.NewString(), w.now())

	w.mu.Lock()
	w.sessions[s.id] = s
	n := len(w.sessions)
	w.mu.Unlock()

	w.deps.Metrics.SetActiveSessions(n)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// with executa fn com a sessão travada.
func (w *Wizard) with(sid string, fn func(s *session) error) (View, error) {
	w.mu.Lock()
	s, ok := w.sessions[sid]
	w.mu.Unlock()
	if !ok {
		return View{}, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = w.now()
	if err := fn(s); err != nil {
		return View{}, err
	}
	return s.view(), nil
}

func (w *Wizard) Get(sid string) (View, error) {
	return w.with(sid, func(*session) error { return nil })
}

// Sweep remove sessões sem atividade há mais de SessionTTL e para
// os timers que ainda estiverem rodando nelas.
func (w *Wizard) Sweep() int {
	cutoff := w.now().Add(-w.opts.SessionTTL)

	w.mu.Lock()
	var removed int
	for id, s := range w.sessions {
		s.mu.Lock()
		idle := s.lastSeen.Before(cutoff)
		if idle {
			s.stopCountdown()
		}
		s.mu.Unlock()

		if idle {
			delete(w.sessions, id)
			removed++
		}
	}
	n := len(w.sessions)
	w.mu.Unlock()

	w.deps.Metrics.SetActiveSessions(n)
	return removed
}

// RunJanitor chama Sweep periodicamente até ctx ser cancelado.
func (w *Wizard) RunJanitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := w.Sweep(); n > 0 {
				w.log.Debug("booking sessions evicted", zap.Int("count", n))
			}
		}
	}
}

// Close cancela todos os timers de pagamento.
func (w *Wizard) Close() {
	w.cancel()
}

// ===============================
// Navegação
// ===============================

func (w *Wizard) Next(sid string) (View, error) {
	return w.with(sid, func(s *session) error {
		if s.machine.Locked() {
			return ErrSessionLocked
		}
		if !s.machine.CanAdvance() {
			return ErrStepIncomplete
		}
		s.machine.Next()
		return nil
	})
}

func (w *Wizard) Prev(sid string) (View, error) {
	return w.with(sid, func(s *session) error {
		if s.machine.Locked() {
			return ErrSessionLocked
		}
		s.machine.Prev()
		return nil
	})
}

// GoTo volta livremente; avançar exige todos os passos anteriores completos.
func (w *Wizard) GoTo(sid string, step int) (View, error) {
	return w.with(sid, func(s *session) error {
		if s.machine.Locked() {
			return ErrSessionLocked
		}
		d := s.machine.Draft()
		for i := booking.FirstStep; i < step && i <= booking.LastStep; i++ {
			if !booking.StepComplete(i, d) {
				return ErrStepIncomplete
			}
		}
		s.machine.GoTo(step)
		return nil
	})
}

// Reset inicia um novo agendamento na mesma sessão.
func (w *Wizard) Reset(sid string) (View, error) {
	return w.with(sid, func(s *session) error {
		s.stopCountdown()
		s.expired = false
		s.machine.Reset()
		return nil
	})
}

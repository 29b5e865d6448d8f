package booking

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/beleza-studio/internal/domain/booking"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

// session é o estado de um visitante. Toda leitura/escrita passa por mu.
type session struct {
	id string

	mu        sync.Mutex
	machine   *booking.Machine
	countdown *booking.PaymentCountdown
	expired   bool
	lastSeen  time.Time
}

func newSession(id string, now time.Time) *session {
	return &session{
		id:       id,
		machine:  booking.NewMachine(),
		lastSeen: now,
	}
}

// stopCountdown encerra o timer de pagamento, se houver.
func (s *session) stopCountdown() bool {
	if s.countdown == nil {
		return true
	}
	ok := s.countdown.Stop()
	s.countdown = nil
	return ok
}

type View struct {
	SessionID   string          `json:"session_id"`
	Step        int             `json:"step"`
	Overlay     booking.Overlay `json:"overlay"`
	Draft       booking.Draft   `json:"draft"`
	CanAdvance  bool            `json:"can_advance"`
	CanFinalize bool            `json:"can_finalize"`

	Appointment             *models.Appointment `json:"appointment,omitempty"`
	PaymentRemainingSeconds int                 `json:"payment_remaining_seconds,omitempty"`
	PaymentExpired          bool                `json:"payment_expired"`
}

func (s *session) view() View {
	m := s.machine
	v := View{
		SessionID:      s.id,
		Step:           m.Step(),
		Overlay:        m.Overlay(),
		Draft:          m.Draft(),
		CanAdvance:     m.CanAdvance(),
		CanFinalize:    m.CanFinalize(),
		Appointment:    m.Appointment(),
		PaymentExpired: s.expired,
	}
	if s.countdown != nil && !s.expired {
		v.PaymentRemainingSeconds = int(s.countdown.Remaining() / time.Second)
	}
	return v
}

package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/beleza-studio/internal/domain/booking"
)

// Finalize grava o agendamento (pending/pending) e inicia o contador de
// pagamento da sessão.
func (w *Wizard) Finalize(ctx context.Context, sid string) (View, error) {
	return w.with(sid, func(s *session) error {
		ap, err := s.machine.Finalize(ctx, w.deps.Appointments, w.deps.IDs.Next(), w.now())
		if err != nil {
			return err
		}

		w.deps.Metrics.AppointmentCreated()
		w.log.Info("appointment created",
			zap.String("appointment_id", ap.ID),
			zap.String("service", ap.Service.ID),
			zap.String("specialist", ap.SpecialistID()),
		)

		s.expired = false
		s.countdown = booking.NewPaymentCountdown(
			w.opts.PaymentWindow,
			w.opts.TickInterval,
			w.onExpire(s, ap.ID),
		)
		s.countdown.Start(w.ctx)
		return nil
	})
}

// onExpire roda na goroutine do contador, fora do lock da sessão.
func (w *Wizard) onExpire(s *session, appointmentID string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(w.ctx, 10*time.Second)
		defer cancel()

		ap, err := w.deps.Expire.Execute(ctx, appointmentID)
		if err != nil {
			w.log.Error("payment expiry failed",
				zap.String("appointment_id", appointmentID),
				zap.Error(err),
			)
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		// a sessão pode ter sido reiniciada enquanto o timer disparava
		cur := s.machine.Appointment()
		if cur == nil || cur.ID != appointmentID {
			return
		}
		s.expired = true
		s.machine.SyncAppointment(ap)
	}
}

// CompletePayment simula o retorno positivo do pagamento. Falha com
// payment_expired se o contador já tiver chegado a zero.
func (w *Wizard) CompletePayment(ctx context.Context, sid string) (View, error) {
	return w.with(sid, func(s *session) error {
		if s.machine.Overlay() != booking.OverlayAwaitingPayment {
			return booking.ErrNotAwaiting
		}
		if s.expired || !s.stopCountdown() {
			return ErrPaymentExpired
		}

		ap, err := w.deps.Complete.Execute(ctx, s.machine.Appointment().ID)
		if err != nil {
			return err
		}

		s.machine.SyncAppointment(ap)
		return s.machine.MarkPaid()
	})
}

// LeavePayment: o visitante saiu da tela de pagamento. O timer para e a
// sessão volta ao passo 1; o agendamento continua pending.
func (w *Wizard) LeavePayment(sid string) (View, error) {
	return w.with(sid, func(s *session) error {
		if s.machine.Overlay() != booking.OverlayAwaitingPayment {
			return booking.ErrNotAwaiting
		}
		s.stopCountdown()
		s.expired = false
		s.machine.Reset()
		return nil
	})
}

package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

const (
	FirstStep = 1
	LastStep  = 5
)

// Overlay são as telas terminais alcançadas a partir do passo 5.
type Overlay string

const (
	OverlayNone            Overlay = ""
	OverlayAwaitingPayment Overlay = "awaiting-payment"
	OverlayConfirmed       Overlay = "confirmed"
)

var (
	ErrIncompleteDraft  = httperr.ErrUnprocessable("incomplete_draft")
	ErrInvalidStep      = httperr.ErrUnprocessable("invalid_step")
	ErrAlreadyFinalized = httperr.ErrConflict("already_finalized")
	ErrNotAwaiting      = httperr.ErrConflict("not_awaiting_payment")
)

// Appender é a única dependência de persistência do finalize.
type Appender interface {
	Append(ctx context.Context, ap *models.Appointment) error
}

// Machine guarda passo, overlay e rascunho de uma sessão.
// Não é segura para uso concorrente; quem a possui serializa o acesso.
type Machine struct {
	step    int
	overlay Overlay
	draft   Draft

	appointment *models.Appointment
}

func NewMachine() *Machine {
	return &Machine{step: FirstStep}
}

func (m *Machine) Step() int { return m.step }
func (m *Machine) Overlay() Overlay { return m.overlay }
func (m *Machine) Draft() Draft { return m.draft }
func (m *Machine) CanAdvance() bool { return StepComplete(m.step, m.draft) }
func (m *Machine) CanFinalize() bool { return m.step == LastStep && m.draft.Complete() }
func (m *Machine) Locked() bool { return m.overlay != OverlayNone }

// Appointment devolve o registro criado pelo último finalize.
func (m *Machine) Appointment() *models.Appointment {
	return m.appointment
}

// SyncAppointment atualiza a cópia local depois de uma mudança de status.
func (m *Machine) SyncAppointment(ap *models.Appointment) {
	if ap == nil || m.appointment == nil || m.appointment.ID != ap.ID {
		return
	}
	cp := *ap
	m.appointment = &cp
}

func (m *Machine) Next() {
	if m.step < LastStep {
		m.step++
	}
}

func (m *Machine) Prev() {
	if m.step > FirstStep {
		m.step--
	}
}

// GoTo posiciona o passo dentro de [1, 5].
func (m *Machine) GoTo(step int) {
	switch {
	case step < FirstStep:
		m.step = FirstStep
	case step > LastStep:
		m.step = LastStep
	default:
		m.step = step
	}
}

func (m *Machine) UpdateDraft(p DraftPatch) {
	m.draft.apply(p)
}

func (m *Machine) UpdateCustomer(p CustomerPatch) {
	m.draft.applyCustomer(p)
}

// Finalize copia o rascunho para um Appointment pending/pending e o grava.
// O overlay só muda depois que o append teve sucesso.
func (m *Machine) Finalize(
	ctx context.Context,
	store Appender,
	id string,
	now time.Time,
) (*models.Appointment, error) {

	if m.overlay != OverlayNone {
		return nil, ErrAlreadyFinalized
	}
	if m.step != LastStep {
		return nil, ErrInvalidStep
	}
	if !m.draft.Complete() {
		return nil, ErrIncompleteDraft
	}

	status, payment := appointment.InitialStatus()

	svc := *m.draft.Service
	sp := *m.draft.Specialist
	sp.Specialties = append([]string(nil), m.draft.Specialist.Specialties...)
	date := *m.draft.Date

	ap := &models.Appointment{
		ID:            id,
		Service:       &svc,
		Date:          &date,
		Specialist:    &sp,
		Time:          m.draft.Time,
		Customer:      m.draft.Customer,
		Status:        string(status),
		PaymentStatus: string(payment),
		CreatedAt:     now,
	}

	if err := store.Append(ctx, ap); err != nil {
		return nil, err
	}

	m.appointment = ap
	m.overlay = OverlayAwaitingPayment
	return ap, nil
}

// MarkPaid leva o overlay para a tela de confirmação.
func (m *Machine) MarkPaid() error {
	if m.overlay != OverlayAwaitingPayment {
		return ErrNotAwaiting
	}
	m.overlay = OverlayConfirmed
	return nil
}

// Reset limpa rascunho e overlay; agendamentos já gravados não são tocados.
func (m *Machine) Reset() {
	m.step = FirstStep
	m.overlay = OverlayNone
	m.draft = Draft{}
	m.appointment = nil
}

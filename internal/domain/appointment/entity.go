package appointment

import "github.com/BruksfildServices01/beleza-studio/internal/models"

// ===============================
// Domain Actions
// ===============================

// Change descreve uma atualização de status; Payment nil mantém o
// status de pagamento atual.
type Change struct {
	Status  Status
	Payment *PaymentStatus
}

func (c Change) Apply(ap *models.Appointment) {
	ap.Status = string(c.Status)
	if c.Payment != nil {
		ap.PaymentStatus = string(*c.Payment)
	}
}

func paymentPtr(p PaymentStatus) *PaymentStatus {
	return &p
}

// PaymentCompleted: pagamento simulado aprovado.
func PaymentCompleted() Change {
	return Change{Status: StatusConfirmed, Payment: paymentPtr(PaymentPaid)}
}

// PaymentTimedOut: o contador de pagamento chegou a zero.
func PaymentTimedOut() Change {
	return Change{Status: StatusCancelled, Payment: paymentPtr(PaymentExpired)}
}

// ConfirmedByStaff: confirmação manual no painel (pagamento recebido no balcão).
func ConfirmedByStaff() Change {
	return Change{Status: StatusConfirmed, Payment: paymentPtr(PaymentPaid)}
}

// CancelledByStaff não altera o status de pagamento.
func CancelledByStaff() Change {
	return Change{Status: StatusCancelled}
}

// IsExpired indica que o agendamento já passou pela expiração do pagamento.
func IsExpired(ap *models.Appointment) bool {
	return ap.Status == string(StatusCancelled) && ap.PaymentStatus == string(PaymentExpired)
}

package appointment

import "github.com/BruksfildServices01/beleza-studio/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentExpired PaymentStatus = "expired"
)

// FilterAll casa com qualquer status ou profissional nos filtros do painel.
const FilterAll = "all"

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentExpired:
		return true
	}
	return false
}

// ParseStatusFilter aceita "all" (ou vazio) e os status concretos.
func ParseStatusFilter(raw string) (string, error) {
	if raw == "" || raw == FilterAll {
		return FilterAll, nil
	}
	if !Status(raw).Valid() {
		return "", httperr.ErrBusiness("invalid_status")
	}
	return raw, nil
}

// InitialStatus é o par de status de todo agendamento recém-finalizado.
func InitialStatus() (Status, PaymentStatus) {
	return StatusPending, PaymentPending
}

package models

import "time"

// Customer é preenchido no último passo do agendamento.
type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Appointment é o snapshot persistido de um rascunho finalizado.
type Appointment struct {
	ID string `json:"id"`

	Service    *Service    `json:"service"`
	Date       *time.Time  `json:"date"`
	Specialist *Specialist `json:"specialist"`
	Time       string      `json:"time"`
	Customer   Customer    `json:"customer"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
}

func (a Appointment) SpecialistID() string {
	if a.Specialist == nil {
		return ""
	}
	return a.Specialist.ID
}

func (a Appointment) Price() float64 {
	if a.Service == nil {
		return 0
	}
	return a.Service.Price
}

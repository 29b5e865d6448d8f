package dto

import (
	"time"

	"github.com/BruksfildServices01/beleza-studio/internal/models"
	"github.com/BruksfildServices01/beleza-studio/internal/timezone"
)

// AppointmentListDTO é a linha da tabela de agendamentos do painel.
type AppointmentListDTO struct {
	ID             string    `json:"id"`
	ServiceID      string    `json:"service_id"`
	ServiceName    string    `json:"service_name"`
	SpecialistID   string    `json:"specialist_id"`
	SpecialistName string    `json:"specialist_name"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	Price          float64   `json:"price"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromAppointment(ap models.Appointment, loc *time.Location) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:            ap.ID,
		SpecialistID:  ap.SpecialistID(),
		Time:          ap.Time,
		CustomerName:  ap.Customer.FullName(),
		CustomerPhone: ap.Customer.Phone,
		Price:         ap.Price(),
		Status:        ap.Status,
		PaymentStatus: ap.PaymentStatus,
		CreatedAt:     ap.CreatedAt,
	}
	if ap.Service != nil {
		out.ServiceID = ap.Service.ID
		out.ServiceName = ap.Service.Name
	}
	if ap.Specialist != nil {
		out.SpecialistName = ap.Specialist.Name
	}
	if ap.Date != nil {
		if loc == nil {
			loc = ap.Date.Location()
		}
		out.Date = ap.Date.In(loc).Format(timezone.DateLayout)
	}
	return out
}

func FromAppointments(list []models.Appointment, loc *time.Location) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(list))
	for _, ap := range list {
		out = append(out, FromAppointment(ap, loc))
	}
	return out
}

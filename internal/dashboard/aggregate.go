package dashboard

import (
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

type Filter struct {
	// Status é "all" ou um status concreto.
	Status string
	// SpecialistID é "all" ou o id de um profissional.
	SpecialistID string
}

type Summary struct {
	Total       int     `json:"total"`
	Confirmed   int     `json:"confirmed"`
	Pending     int     `json:"pending"`
	PaidRevenue float64 `json:"paid_revenue"`
}

type SpecialistStats struct {
	SpecialistID string  `json:"specialist_id"`
	Name         string  `json:"name"`
	Avatar       string  `json:"avatar"`
	Count        int     `json:"count"`
	PaidRevenue  float64 `json:"paid_revenue"`
}

func matches(v, want string) bool {
	return want == "" || want == domain.FilterAll || v == want
}

// FilterAppointments preserva a ordem recebida.
func FilterAppointments(list []models.Appointment, f Filter) []models.Appointment {
	out := make([]models.Appointment, 0, len(list))
	for _, ap := range list {
		if !matches(ap.Status, f.Status) {
			continue
		}
		if !matches(ap.SpecialistID(), f.SpecialistID) {
			continue
		}
		out = append(out, ap)
	}
	return out
}

// Summarize soma preço de serviço apenas dos agendamentos pagos.
func Summarize(list []models.Appointment) Summary {
	var s Summary
	for _, ap := range list {
		s.Total++
		switch domain.Status(ap.Status) {
		case domain.StatusConfirmed:
			s.Confirmed++
		case domain.StatusPending:
			s.Pending++
		}
		if domain.PaymentStatus(ap.PaymentStatus) == domain.PaymentPaid {
			s.PaidRevenue += ap.Price()
		}
	}
	return s
}

// PerSpecialist é o Summarize com o filtro de profissional fixo em cada um.
func PerSpecialist(list []models.Appointment, specialists []models.Specialist) []SpecialistStats {
	out := make([]SpecialistStats, 0, len(specialists))
	for _, sp := range specialists {
		sum := Summarize(FilterAppointments(list, Filter{SpecialistID: sp.ID}))
		out = append(out, SpecialistStats{
			SpecialistID: sp.ID,
			Name:         sp.Name,
			Avatar:       sp.Avatar,
			Count:        sum.Total,
			PaidRevenue:  sum.PaidRevenue,
		})
	}
	return out
}

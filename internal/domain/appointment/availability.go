package appointment

import (
	"time"

	"github.com/BruksfildServices01/beleza-studio/internal/catalog"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

type BlockedSlotPolicy string

const (
	// BlockedStatic reproduz a lista fixa de horários indisponíveis.
	BlockedStatic BlockedSlotPolicy = "static"
	// BlockedBooked soma à lista fixa os horários já reservados
	// (pending/confirmed) do profissional na mesma data.
	BlockedBooked BlockedSlotPolicy = "booked"
)

func ParseBlockedSlotPolicy(raw string) BlockedSlotPolicy {
	if BlockedSlotPolicy(raw) == BlockedBooked {
		return BlockedBooked
	}
	return BlockedStatic
}

// DefaultBlockedSlots simula horários já ocupados.
func DefaultBlockedSlots() []string {
	return []string{"10:00", "14:30", "17:00"}
}

type AvailabilityInput struct {
	SpecialistID string
	Date         time.Time
}

type DayPeriods struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

// EligibleSpecialists devolve os profissionais cuja lista de especialidades
// intersecta a exigida pelo serviço, na ordem recebida. Sem exigência
// cadastrada, todos são elegíveis.
func EligibleSpecialists(service models.Service, all []models.Specialist) []models.Specialist {
	required, ok := catalog.RequiredSpecialties(service.ID)
	if !ok {
		return append([]models.Specialist{}, all...)
	}

	out := []models.Specialist{}
	for _, sp := range all {
		if CanPerform(sp, required) {
			out = append(out, sp)
		}
	}
	return out
}

func CanPerform(sp models.Specialist, required []string) bool {
	for _, r := range required {
		if sp.HasSpecialty(r) {
			return true
		}
	}
	return false
}

// IsEligible avalia um único profissional para o serviço.
func IsEligible(service models.Service, sp models.Specialist) bool {
	required, ok := catalog.RequiredSpecialties(service.ID)
	if !ok {
		return true
	}
	return CanPerform(sp, required)
}

// SlotsFor devolve os horários cadastrados para (profissional, dia da semana).
// Sem entrada na tabela o resultado é vazio; não há fallback para a grade padrão.
func SlotsFor(specialistID string, weekday int, table []models.SpecialistSchedule) []string {
	for _, s := range table {
		if s.SpecialistID == specialistID && s.DayOfWeek == weekday {
			return append([]string{}, s.Slots...)
		}
	}
	return []string{}
}

// AvailableSlots remove os horários bloqueados mantendo a ordem.
func AvailableSlots(candidates, blocked []string) []string {
	skip := make(map[string]struct{}, len(blocked))
	for _, b := range blocked {
		skip[b] = struct{}{}
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := skip[c]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

// BookedSlots lista os horários ocupados por agendamentos ativos
// do profissional no mesmo dia civil de date.
func BookedSlots(appointments []models.Appointment, specialistID string, date time.Time) []string {
	y, m, d := date.Date()
	var out []string
	for _, ap := range appointments {
		if ap.SpecialistID() != specialistID || ap.Date == nil || ap.Time == "" {
			continue
		}
		if ap.Status != string(StatusPending) && ap.Status != string(StatusConfirmed) {
			continue
		}
		ay, am, ad := ap.Date.In(date.Location()).Date()
		if ay == y && am == m && ad == d {
			out = append(out, ap.Time)
		}
	}
	return out
}

// GroupByPeriod separa os horários em manhã (< 12h), tarde (12h–17h59)
// e noite (>= 18h).
func GroupByPeriod(slots []string) DayPeriods {
	p := DayPeriods{Morning: []string{}, Afternoon: []string{}, Evening: []string{}}
	for _, s := range slots {
		t, err := time.Parse("15:04", s)
		if err != nil {
			continue
		}
		switch {
		case t.Hour() < 12:
			p.Morning = append(p.Morning, s)
		case t.Hour() < 18:
			p.Afternoon = append(p.Afternoon, s)
		default:
			p.Evening = append(p.Evening, s)
		}
	}
	return p
}

// IsValidSlotLabel aceita apenas rótulos "HH:MM".
func IsValidSlotLabel(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

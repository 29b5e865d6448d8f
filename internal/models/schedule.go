package models

// SpecialistSchedule guarda os horários reserváveis de um profissional
// em um dia da semana (0 = domingo).
type SpecialistSchedule struct {
	SpecialistID string   `json:"specialist_id"`
	DayOfWeek    int      `json:"day_of_week"`
	Slots        []string `json:"slots"`
}

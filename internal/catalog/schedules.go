package catalog

import "github.com/BruksfildServices01/beleza-studio/internal/models"

// AllTimeSlots é a grade exibida no editor de horários do painel.
var AllTimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
}

var DayNames = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

var FullDayNames = []string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

var defaultSchedules = []models.SpecialistSchedule{
	// Ana Carolina (segunda a sábado)
	{SpecialistID: "ana", DayOfWeek: 1, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}},
	{SpecialistID: "ana", DayOfWeek: 2, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}},
	{SpecialistID: "ana", DayOfWeek: 3, Slots: []string{"10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}},
	{SpecialistID: "ana", DayOfWeek: 4, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}},
	{SpecialistID: "ana", DayOfWeek: 5, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}},
	{SpecialistID: "ana", DayOfWeek: 6, Slots: []string{"09:00", "10:00", "11:00", "12:00"}},

	// Marina Santos (segunda a sexta)
	{SpecialistID: "marina", DayOfWeek: 1, Slots: []string{"10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}},
	{SpecialistID: "marina", DayOfWeek: 2, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00"}},
	{SpecialistID: "marina", DayOfWeek: 3, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}},
	{SpecialistID: "marina", DayOfWeek: 4, Slots: []string{"10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}},
	{SpecialistID: "marina", DayOfWeek: 5, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}},

	// Juliana Oliveira (segunda a sábado)
	{SpecialistID: "juliana", DayOfWeek: 1, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "18:00"}},
	{SpecialistID: "juliana", DayOfWeek: 2, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "18:00"}},
	{SpecialistID: "juliana", DayOfWeek: 3, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}},
	{SpecialistID: "juliana", DayOfWeek: 4, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "18:00"}},
	{SpecialistID: "juliana", DayOfWeek: 5, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "18:00"}},
	{SpecialistID: "juliana", DayOfWeek: 6, Slots: []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00"}},

	// Fernanda Lima (terça a sábado)
	{SpecialistID: "fernanda", DayOfWeek: 2, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}},
	{SpecialistID: "fernanda", DayOfWeek: 3, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}},
	{SpecialistID: "fernanda", DayOfWeek: 4, Slots: []string{"10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}},
	{SpecialistID: "fernanda", DayOfWeek: 5, Slots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}},
	{SpecialistID: "fernanda", DayOfWeek: 6, Slots: []string{"09:00", "10:00", "11:00", "12:00"}},
}

func DefaultSchedules() []models.SpecialistSchedule {
	out := make([]models.SpecialistSchedule, len(defaultSchedules))
	for i, s := range defaultSchedules {
		s.Slots = append([]string(nil), s.Slots...)
		out[i] = s
	}
	return out
}

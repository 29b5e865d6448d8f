package catalog

import "github.com/BruksfildServices01/beleza-studio/internal/models"

const DefaultAvatar = "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=200&h=200&fit=crop&crop=face"

var defaultSpecialists = []models.Specialist{
	{
		ID:          "ana",
		Name:        "Ana Carolina",
		Role:        "Hair Stylist Senior",
		Avatar:      "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&h=200&fit=crop&crop=face",
		Rating:      4.9,
		Reviews:     234,
		Specialties: []string{"Coloração", "Corte", "Progressiva"},
	},
	{
		ID:          "marina",
		Name:        "Marina Santos",
		Role:        "Especialista em Tratamentos",
		Avatar:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop&crop=face",
		Rating:      4.8,
		Reviews:     189,
		Specialties: []string{"Hidratação", "Tratamentos Capilares"},
	},
	{
		ID:          "juliana",
		Name:        "Juliana Oliveira",
		Role:        "Nail Designer",
		Avatar:      "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=200&h=200&fit=crop&crop=face",
		Rating:      5.0,
		Reviews:     312,
		Specialties: []string{"Manicure", "Pedicure", "Nail Art"},
	},
	{
		ID:          "fernanda",
		Name:        "Fernanda Lima",
		Role:        "Esteticista",
		Avatar:      "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=200&h=200&fit=crop&crop=face",
		Rating:      4.7,
		Reviews:     156,
		Specialties: []string{"Design de Sobrancelhas", "Estética Facial"},
	},
}

// DefaultSpecialists é a equipe usada para semear o armazenamento.
func DefaultSpecialists() []models.Specialist {
	out := make([]models.Specialist, len(defaultSpecialists))
	for i, s := range defaultSpecialists {
		s.Specialties = append([]string(nil), s.Specialties...)
		out[i] = s
	}
	return out
}

package catalog

import "github.com/BruksfildServices01/beleza-studio/internal/models"

const CategoryAll = "Todos"

var categories = []string{CategoryAll, "Cabelo", "Tratamentos", "Unhas", "Estética"}

var services = []models.Service{
	{
		ID:          "coloracao",
		Name:        "Coloração Profissional",
		Description: "Transforme seu visual com nossa coloração premium de longa duração",
		Duration:    "2h",
		Price:       180,
		Icon:        models.IconPalette,
		Category:    "Cabelo",
		Popular:     true,
	},
	{
		ID:          "corte",
		Name:        "Corte & Styling",
		Description: "Corte personalizado que valoriza sua beleza natural",
		Duration:    "1h",
		Price:       80,
		Icon:        models.IconScissors,
		Category:    "Cabelo",
		Popular:     true,
	},
	{
		ID:          "sobrancelha",
		Name:        "Design de Sobrancelhas",
		Description: "Desenho profissional para realçar seu olhar",
		Duration:    "30min",
		Price:       45,
		Icon:        models.IconSparkles,
		Category:    "Estética",
	},
	{
		ID:          "manutencao",
		Name:        "Retoque & Manutenção",
		Description: "Manutenção completa para manter seu visual impecável",
		Duration:    "1h30",
		Price:       120,
		Icon:        models.IconStar,
		Category:    "Cabelo",
	},
	{
		ID:          "alisamento-express",
		Name:        "Alisamento Express",
		Description: "Fios lisos e brilhantes em uma única sessão",
		Duration:    "2h",
		Price:       200,
		Icon:        models.IconDroplets,
		Category:    "Tratamentos",
		Popular:     true,
	},
	{
		ID:          "spa-maos-pes",
		Name:        "Spa Mãos & Pés",
		Description: "Manicure e pedicure completa com tratamento relaxante",
		Duration:    "1h30",
		Price:       90,
		Icon:        models.IconHand,
		Category:    "Unhas",
	},
	{
		ID:          "pedicure",
		Name:        "Pedicure Completa",
		Description: "Cuidado completo para seus pés com esmaltação",
		Duration:    "45min",
		Price:       50,
		Icon:        models.IconHeart,
		Category:    "Unhas",
	},
	{
		ID:          "manicure",
		Name:        "Manicure Completa",
		Description: "Tratamento completo para unhas impecáveis",
		Duration:    "45min",
		Price:       40,
		Icon:        models.IconSparkles,
		Category:    "Unhas",
	},
	{
		ID:          "hidratacao-profunda",
		Name:        "Hidratação Profunda",
		Description: "Tratamento intensivo que devolve a vida aos seus fios",
		Duration:    "1h30",
		Price:       150,
		Icon:        models.IconDroplets,
		Category:    "Tratamentos",
	},
	{
		ID:          "transformacao-total",
		Name:        "Pacote Transformação Total",
		Description: "Progressiva premium com tratamento completo",
		Duration:    "4h",
		Price:       450,
		Icon:        models.IconCrown,
		Category:    "Tratamentos",
		Popular:     true,
		Bonus: []string{
			"Pré-química inclusa",
			"Kit Cronograma Capilar para casa",
			"Acompanhamento personalizado",
		},
	},
}

// Services devolve uma cópia do catálogo compilado.
func Services() []models.Service {
	out := make([]models.Service, len(services))
	for i, s := range services {
		out[i] = cloneService(s)
	}
	return out
}

func ServiceByID(id string) (models.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return cloneService(s), true
		}
	}
	return models.Service{}, false
}

func Categories() []string {
	return append([]string(nil), categories...)
}

func cloneService(s models.Service) models.Service {
	if s.Bonus != nil {
		s.Bonus = append([]string(nil), s.Bonus...)
	}
	return s
}

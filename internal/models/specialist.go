package models

type Specialist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Avatar      string   `json:"avatar"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Specialties []string `json:"specialties"`
}

func (s Specialist) HasSpecialty(label string) bool {
	for _, sp := range s.Specialties {
		if sp == label {
			return true
		}
	}
	return false
}

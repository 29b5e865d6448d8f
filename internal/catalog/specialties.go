package catalog

// serviceSpecialties define quais especialidades habilitam cada serviço.
// Serviço sem entrada pode ser atendido por qualquer profissional.
var serviceSpecialties = map[string][]string{
	// cabelo
	"coloracao":           {"Coloração"},
	"corte":               {"Corte"},
	"manutencao":          {"Coloração", "Corte"},
	"alisamento-express":  {"Progressiva"},
	"transformacao-total": {"Progressiva", "Coloração"},

	// tratamentos
	"hidratacao-profunda": {"Hidratação", "Tratamentos Capilares"},

	// unhas
	"spa-maos-pes": {"Manicure", "Pedicure"},
	"pedicure":     {"Pedicure"},
	"manicure":     {"Manicure"},

	// estética
	"sobrancelha": {"Design de Sobrancelhas"},
}

// RequiredSpecialties devolve as especialidades exigidas pelo serviço.
// ok == false significa que não há restrição.
func RequiredSpecialties(serviceID string) (labels []string, ok bool) {
	req, ok := serviceSpecialties[serviceID]
	if !ok {
		return nil, false
	}
	return append([]string(nil), req...), true
}

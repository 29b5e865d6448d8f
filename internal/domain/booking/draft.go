package booking

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/beleza-studio/internal/models"
	"github.com/BruksfildServices01/beleza-studio/internal/validators"
)

// Draft é o rascunho em memória de uma sessão de agendamento.
type Draft struct {
	Service    *models.Service    `json:"service"`
	Date       *time.Time         `json:"date"`
	Specialist *models.Specialist `json:"specialist"`
	Time       string             `json:"time"`
	Customer   models.Customer    `json:"customer"`
}

// DraftPatch tem semântica de merge raso: campo nil não é alterado.
// ClearX zera o campo correspondente.
type DraftPatch struct {
	Service    *models.Service
	Date       *time.Time
	Specialist *models.Specialist
	Time       *string

	ClearDate       bool
	ClearSpecialist bool
	ClearTime       bool
}

type CustomerPatch struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

func (d Draft) CustomerComplete() bool {
	c := d.Customer
	return strings.TrimSpace(c.FirstName) != "" &&
		strings.TrimSpace(c.LastName) != "" &&
		strings.TrimSpace(c.Phone) != ""
}

func (d Draft) Complete() bool {
	return d.Service != nil &&
		d.Date != nil &&
		d.Specialist != nil &&
		d.Time != "" &&
		d.CustomerComplete()
}

// StepComplete informa se o passo já tem o que precisa para avançar.
func StepComplete(step int, d Draft) bool {
	switch step {
	case 1:
		return d.Service != nil
	case 2:
		return d.Date != nil
	case 3:
		return d.Specialist != nil
	case 4:
		return d.Time != ""
	case 5:
		return d.CustomerComplete()
	}
	return false
}

func (d *Draft) apply(p DraftPatch) {
	if p.Service != nil {
		svc := *p.Service
		d.Service = &svc
		// elegibilidade depende do serviço
		if p.Specialist == nil {
			d.Specialist = nil
		}
	}

	if p.ClearDate {
		d.Date = nil
	}
	if p.Date != nil {
		dt := *p.Date
		d.Date = &dt
	}

	if p.ClearSpecialist {
		d.Specialist = nil
	}
	if p.Specialist != nil {
		sp := *p.Specialist
		sp.Specialties = append([]string(nil), p.Specialist.Specialties...)
		d.Specialist = &sp
	}

	if p.ClearTime {
		d.Time = ""
	}
	if p.Time != nil {
		d.Time = *p.Time
	}
}

func (d *Draft) applyCustomer(p CustomerPatch) {
	if p.FirstName != nil {
		d.Customer.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		d.Customer.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.Phone != nil {
		d.Customer.Phone = validators.FormatPhone(*p.Phone)
	}
}

package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

type SortOption string

const (
	SortPopular      SortOption = "popular"
	SortPriceAsc     SortOption = "price_asc"
	SortPriceDesc    SortOption = "price_desc"
	SortDurationAsc  SortOption = "duration_asc"
	SortDurationDesc SortOption = "duration_desc"
)

func ParseSortOption(raw string) (SortOption, bool) {
	switch opt := SortOption(strings.ToLower(strings.TrimSpace(raw))); opt {
	case "":
		return SortPopular, true
	case SortPopular, SortPriceAsc, SortPriceDesc, SortDurationAsc, SortDurationDesc:
		return opt, true
	default:
		return "", false
	}
}

// FilterAndSort aplica o filtro de categoria e a ordenação da vitrine.
// Categoria vazia ou "Todos" devolve todos os serviços.
func FilterAndSort(list []models.Service, category string, opt SortOption) []models.Service {
	out := make([]models.Service, 0, len(list))
	for _, s := range list {
		if category == "" || category == CategoryAll || strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}

	col := collate.New(language.BrazilianPortuguese)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch opt {
		case SortPriceAsc:
			return a.Price < b.Price
		case SortPriceDesc:
			return a.Price > b.Price
		case SortDurationAsc:
			return DurationMinutes(a.Duration) < DurationMinutes(b.Duration)
		case SortDurationDesc:
			return DurationMinutes(a.Duration) > DurationMinutes(b.Duration)
		default:
			if a.Popular != b.Popular {
				return a.Popular
			}
			return col.CompareString(a.Name, b.Name) < 0
		}
	})

	return out
}

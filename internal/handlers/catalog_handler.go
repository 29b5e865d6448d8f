package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beleza-studio/internal/catalog"
	domain "github.com/BruksfildServices01/beleza-studio/internal/domain/appointment"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/httpresp"
	"github.com/BruksfildServices01/beleza-studio/internal/timezone"
	"github.com/BruksfildServices01/beleza-studio/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type CatalogHandler struct {
	eligible *availability.EligibleSpecialists
	slots    *availability.AvailableSlots
	loc      *time.Location
}

func NewCatalogHandler(
	eligible *availability.EligibleSpecialists,
	slots *availability.AvailableSlots,
	loc *time.Location,
) *CatalogHandler {
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}
	return &CatalogHandler{eligible: eligible, slots: slots, loc: loc}
}

// ======================================================
// SERVIÇOS
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	opt, ok := catalog.ParseSortOption(c.Query("sort"))
	if !ok {
		httperr.BadRequest(c, "invalid_sort", "Ordenação inválida.")
		return
	}

	list := catalog.FilterAndSort(catalog.Services(), c.Query("category"), opt)
	httpresp.List(c, list)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	httpresp.List(c, catalog.Categories())
}

// ======================================================
// PROFISSIONAIS ELEGÍVEIS
// ======================================================

func (h *CatalogHandler) EligibleSpecialists(c *gin.Context) {
	list, err := h.eligible.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	// dead_end: nenhum profissional atende; o cliente mostra o estado vazio
	httpresp.Choices(c, list)
}

// ======================================================
// HORÁRIOS
// ======================================================

func (h *CatalogHandler) Slots(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (AAAA-MM-DD).")
		return
	}

	date, err := timezone.ParseDate(raw, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use AAAA-MM-DD.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), domain.AvailabilityInput{
		SpecialistID: c.Param("id"),
		Date:         date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":    raw,
		"slots":   slots,
		"periods": domain.GroupByPeriod(slots),
	})
}

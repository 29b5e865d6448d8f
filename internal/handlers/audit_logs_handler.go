package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
	"github.com/BruksfildServices01/beleza-studio/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

// auditWindow é quantos registros recentes são lidos antes do filtro.
const auditWindow = 1000

type AuditLogsHandler struct {
	audit *audit.Dispatcher
}

func NewAuditLogsHandler(dispatcher *audit.Dispatcher) *AuditLogsHandler {
	return &AuditLogsHandler{audit: dispatcher}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, err := h.audit.List(c.Request.Context(), auditWindow)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	var from, to time.Time
	if fromStr != "" {
		if t, err := time.Parse(timezone.DateLayout, fromStr); err == nil {
			from = t
		}
	}
	if toStr != "" {
		if t, err := time.Parse(timezone.DateLayout, toStr); err == nil {
			to = t.Add(24 * time.Hour)
		}
	}

	filtered := make([]models.AuditLog, 0, len(logs))
	for _, l := range logs {
		if action != "" && l.Action != action {
			continue
		}
		if entity != "" && l.Entity != entity {
			continue
		}
		if !from.IsZero() && l.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !l.CreatedAt.Before(to) {
			continue
		}
		filtered = append(filtered, l)
	}

	// --------------------------------------------------
	// Página
	// --------------------------------------------------

	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": len(filtered),
		"logs":  filtered[start:end],
	})
}

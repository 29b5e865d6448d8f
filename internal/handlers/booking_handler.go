package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/httpresp"
	"github.com/BruksfildServices01/beleza-studio/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler expõe o assistente de agendamento: uma sessão por
// visitante, navegada passo a passo.
type BookingHandler struct {
	wizard *booking.Wizard
}

func NewBookingHandler(wizard *booking.Wizard) *BookingHandler {
	return &BookingHandler{wizard: wizard}
}

func (h *BookingHandler) respond(c *gin.Context, v booking.View, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, v)
}

// ======================================================
// SESSÃO
// ======================================================

func (h *BookingHandler) Start(c *gin.Context) {
	c.JSON(http.StatusCreated, h.wizard.Start())
}

func (h *BookingHandler) Get(c *gin.Context) {
	v, err := h.wizard.Get(c.Param("sid"))
	h.respond(c, v, err)
}

func (h *BookingHandler) Reset(c *gin.Context) {
	v, err := h.wizard.Reset(c.Param("sid"))
	h.respond(c, v, err)
}

// ======================================================
// RASCUNHO
// ======================================================

func (h *BookingHandler) UpdateDraft(c *gin.Context) {
	var req booking.DraftInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	v, err := h.wizard.UpdateDraft(c.Request.Context(), c.Param("sid"), req)
	h.respond(c, v, err)
}

func (h *BookingHandler) UpdateCustomer(c *gin.Context) {
	var req booking.CustomerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	v, err := h.wizard.UpdateCustomer(c.Param("sid"), req)
	h.respond(c, v, err)
}

// ======================================================
// NAVEGAÇÃO
// ======================================================

func (h *BookingHandler) Next(c *gin.Context) {
	v, err := h.wizard.Next(c.Param("sid"))
	h.respond(c, v, err)
}

func (h *BookingHandler) Prev(c *gin.Context) {
	v, err := h.wizard.Prev(c.Param("sid"))
	h.respond(c, v, err)
}

func (h *BookingHandler) GoTo(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		httperr.BadRequest(c, "invalid_step", "Etapa inválida.")
		return
	}

	v, err := h.wizard.GoTo(c.Param("sid"), step)
	h.respond(c, v, err)
}

// ======================================================
// FINALIZAÇÃO / PAGAMENTO
// ======================================================

func (h *BookingHandler) Finalize(c *gin.Context) {
	v, err := h.wizard.Finalize(c.Request.Context(), c.Param("sid"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *BookingHandler) CompletePayment(c *gin.Context) {
	v, err := h.wizard.CompletePayment(c.Request.Context(), c.Param("sid"))
	h.respond(c, v, err)
}

func (h *BookingHandler) LeavePayment(c *gin.Context) {
	v, err := h.wizard.LeavePayment(c.Param("sid"))
	h.respond(c, v, err)
}

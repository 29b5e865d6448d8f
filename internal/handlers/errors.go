package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
)

// Mensagens dos erros de negócio devolvidos pelos use cases; o status
// HTTP vem do próprio erro.
var businessMessages = map[string]string{
	// catálogo / disponibilidade
	"service_not_found":    "Serviço não encontrado.",
	"specialist_not_found": "Profissional não encontrado.",
	"date_in_past":         "Escolha uma data a partir de hoje.",
	"invalid_status":       "Filtro de status inválido.",
	"invalid_weekday":      "Dia da semana inválido.",
	"invalid_slot":         "Horário inválido. Use HH:MM.",

	// sessão de agendamento
	"session_not_found":                "Sessão de agendamento não encontrada.",
	"session_locked":                   "Agendamento já finalizado. Inicie um novo.",
	"step_incomplete":                  "Preencha esta etapa antes de continuar.",
	"invalid_date":                     "Data inválida. Use AAAA-MM-DD.",
	"select_service_first":             "Escolha um serviço primeiro.",
	"select_specialist_and_date_first": "Escolha profissional e data primeiro.",
	"specialist_not_eligible":          "Este profissional não realiza o serviço escolhido.",
	"slot_unavailable":                 "Horário indisponível.",
	"payment_expired":                  "O tempo para pagamento expirou.",
	"incomplete_draft":                 "Agendamento incompleto.",
	"invalid_step":                     "Conclua todas as etapas antes de finalizar.",
	"already_finalized":                "Agendamento já finalizado.",
	"not_awaiting_payment":             "Nenhum pagamento pendente nesta sessão.",

	// painel
	"appointment_not_found": "Agendamento não encontrado.",
	"name_required":         "Informe o nome do profissional.",
	"invalid_image":         "Imagem inválida.",
	"image_too_large":       "Imagem muito grande (máx. 5MB).",
	"avatar_not_found":      "Avatar não encontrado.",

	// auth
	"email_already_exists": "Já existe um usuário com este e-mail.",
	"user_not_found":       "Usuário não encontrado.",
}

// writeError traduz erros de negócio em status + mensagem; o resto vira 500.
func writeError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		msg, found := businessMessages[be.Code]
		if !found {
			msg = "Requisição inválida."
		}
		httperr.Write(c, be.HTTPStatus(), be.Code, msg)
		return
	}

	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
}

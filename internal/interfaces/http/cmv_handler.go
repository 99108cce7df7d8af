package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/calculadora-cmv/internal/application/calculator"
	"github.com/tu-usuario/calculadora-cmv/internal/application/dto"
	"github.com/tu-usuario/calculadora-cmv/internal/application/report"
	"github.com/tu-usuario/calculadora-cmv/internal/domain"
)

// CMVHandler trata as requisições do fluxo público da calculadora.
type CMVHandler struct {
	calcularUC *calculator.CalcularUseCase
	enviarUC   *report.EnviarRelatorioUseCase
}

// NewCMVHandler constrói o handler.
func NewCMVHandler(calcularUC *calculator.CalcularUseCase, enviarUC *report.EnviarRelatorioUseCase) *CMVHandler {
	return &CMVHandler{calcularUC: calcularUC, enviarUC: enviarUC}
}

// Calcular godoc
// @Summary      Calcular CMV
// @Tags         cmv
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalcularRequest  true  "Campos do formulário como digitados"
// @Success      200   {object}  dto.RelatorioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cmv/calcular [post]
func (h *CMVHandler) Calcular(c *fiber.Ctx) error {
	var in dto.CalcularRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.calcularUC.Calcular(in)
	if err != nil {
		var ev *domain.ErroValidacao
		if errors.As(err, &ev) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Campo: ev.Campo, Message: ev.Msg})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// EnviarRelatorio godoc
// @Summary      Receber o relatório completo por e-mail (captura de lead)
// @Tags         cmv
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EnviarRelatorioRequest  true  "ID do relatório, nome e e-mail"
// @Success      200   {object}  dto.RelatorioCompletoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/cmv/relatorio [post]
func (h *CMVHandler) EnviarRelatorio(c *fiber.Ctx) error {
	var in dto.EnviarRelatorioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.enviarUC.Enviar(c.Context(), in)
	if err != nil {
		var ev *domain.ErroValidacao
		switch {
		case errors.As(err, &ev):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Campo: ev.Campo, Message: ev.Msg})
		case errors.Is(err, domain.ErrRelatorioExpirado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "relatório expirado; calcule novamente"})
		case errors.Is(err, domain.ErrEnvioEmAndamento):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SENDING", Message: "envio em andamento; aguarde"})
		default:
			// Falha do colaborador: mensagem textual para o toast, retry liberado.
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "COLLABORATOR", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

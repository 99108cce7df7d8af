package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/calculadora-cmv/internal/application/calculator"
	"github.com/tu-usuario/calculadora-cmv/internal/application/report"
	"github.com/tu-usuario/calculadora-cmv/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CalcularUC *calculator.CalcularUseCase
	EnviarUC   *report.EnviarRelatorioUseCase
	LeadUC     *usecase.LeadUseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Fluxo público da calculadora
	cmvGroup := api.Group("/cmv")
	cmvHandler := NewCMVHandler(deps.CalcularUC, deps.EnviarUC)
	cmvGroup.Post("/calcular", cmvHandler.Calcular)
	cmvGroup.Post("/relatorio", cmvHandler.EnviarRelatorio)

	// Back office (requer Bearer Token do provedor de identidade externo)
	leads := api.Group("/leads", AuthMiddleware(deps.JWTSecret), RequireRole("backoffice"))
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Get("/", leadHandler.List)
	leads.Get("/:id", leadHandler.GetByID)
}

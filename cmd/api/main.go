package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/calculadora-cmv/internal/application/calculator"
	"github.com/tu-usuario/calculadora-cmv/internal/application/report"
	"github.com/tu-usuario/calculadora-cmv/internal/application/usecase"
	"github.com/tu-usuario/calculadora-cmv/internal/infrastructure/mail"
	infrapdf "github.com/tu-usuario/calculadora-cmv/internal/infrastructure/pdf"
	"github.com/tu-usuario/calculadora-cmv/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/calculadora-cmv/internal/interfaces/http"
	"github.com/tu-usuario/calculadora-cmv/pkg/config"
	"github.com/tu-usuario/calculadora-cmv/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	leadRepo := postgres.NewLeadReportRepository(pool)

	// Fluxo público: sessões de cálculo em memória + variante do relatório
	sessoes := report.NewSessaoStore(time.Duration(cfg.Relatorio.SessaoTTLMinutos) * time.Minute)
	calcularUC := calculator.NewCalcularUseCase(sessoes, report.Opcoes{
		MostrarExplicacao:     cfg.Relatorio.MostrarExplicacao,
		MascararSeNaoSaudavel: cfg.Relatorio.MascararSeNaoSaudavel,
		VarianteCTA:           cfg.Relatorio.VarianteCTA,
	})

	// Captura do lead: persistir, gerar o PDF e enviar pelo Resend
	mailer := mail.NewResendClient(mail.Config{
		APIKey: cfg.Mail.ResendAPIKey,
		From:   cfg.Mail.From,
	})
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	enviarUC := report.NewEnviarRelatorioUseCase(sessoes, leadRepo, mailer, pdfGenerator)

	leadUC := usecase.NewLeadUseCase(leadRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Calculadora CMV API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CalcularUC: calcularUC,
		EnviarUC:   enviarUC,
		LeadUC:     leadUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}

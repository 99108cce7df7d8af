package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/calculadora-cmv/internal/application/calculator"
	"github.com/tu-usuario/calculadora-cmv/internal/application/dto"
	"github.com/tu-usuario/calculadora-cmv/internal/application/report"
	"github.com/tu-usuario/calculadora-cmv/internal/application/usecase"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/entity"
	apphttp "github.com/tu-usuario/calculadora-cmv/internal/interfaces/http"
)

// ── Mocks dos portos ──────────────────────────────────────────────────────────

type leadRepoMem struct {
	leads []*entity.LeadReport
}

func (m *leadRepoMem) Create(_ context.Context, lead *entity.LeadReport) error {
	m.leads = append(m.leads, lead)
	return nil
}

func (m *leadRepoMem) GetByID(_ context.Context, id string) (*entity.LeadReport, error) {
	for _, l := range m.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (m *leadRepoMem) List(_ context.Context, limit, offset int) ([]*entity.LeadReport, error) {
	if offset >= len(m.leads) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.leads) {
		end = len(m.leads)
	}
	return m.leads[offset:end], nil
}

type mailerStub struct {
	falha    error
	enviados int
}

func (m *mailerStub) EnviarRelatorio(context.Context, report.EmailRelatorio) error {
	if m.falha != nil {
		return m.falha
	}
	m.enviados++
	return nil
}

// ── App de teste ──────────────────────────────────────────────────────────────

func buildCMVApp(repo *leadRepoMem, mailer *mailerStub) *fiber.App {
	sessoes := report.NewSessaoStore(time.Minute)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CalcularUC: calculator.NewCalcularUseCase(sessoes, report.OpcoesPadrao()),
		EnviarUC:   report.NewEnviarRelatorioUseCase(sessoes, repo, mailer, nil),
		LeadUC:     usecase.NewLeadUseCase(repo),
		JWTSecret:  testJWTSecret,
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ── Testes do fluxo público ───────────────────────────────────────────────────

func TestCalcular_RelatorioMascarado(t *testing.T) {
	app := buildCMVApp(&leadRepoMem{}, &mailerStub{})

	resp := postJSON(t, app, "/api/cmv/calcular", dto.CalcularRequest{
		Faturamento:  "R$ 10.000,00",
		IncluiTaxas:  "nao",
		TotalCompras: "R$ 4.000,00",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.RelatorioResponse](t, resp)
	assert.NotEmpty(t, out.RelatorioID)
	assert.False(t, out.Saudavel)
	assert.Equal(t, "R$ 10.000,00", out.FaturamentoReal)
	assert.Equal(t, "**%", out.CMVPercentual, "percentual mascarado até a captura do lead")
}

func TestCalcular_ErroDeValidacaoNomeiaOCampo(t *testing.T) {
	app := buildCMVApp(&leadRepoMem{}, &mailerStub{})

	resp := postJSON(t, app, "/api/cmv/calcular", dto.CalcularRequest{
		Faturamento: "R$ 5.000,00",
		IncluiTaxas: "nao",
		// total_compras ausente
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "total_compras", out.Campo)
}

func TestFluxoCompleto_CalculaEEnviaRelatorio(t *testing.T) {
	repo := &leadRepoMem{}
	mailer := &mailerStub{}
	app := buildCMVApp(repo, mailer)

	resp := postJSON(t, app, "/api/cmv/calcular", dto.CalcularRequest{
		Faturamento:     "R$ 10.000,00",
		IncluiTaxas:     "sim",
		TaxasRepassadas: "R$ 1.000,00",
		TotalCompras:    "R$ 4.000,00",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	relatorio := decode[dto.RelatorioResponse](t, resp)

	resp = postJSON(t, app, "/api/cmv/relatorio", dto.EnviarRelatorioRequest{
		RelatorioID: relatorio.RelatorioID,
		Nome:        "Maria",
		Email:       "maria@pizzaria.com.br",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	completo := decode[dto.RelatorioCompletoResponse](t, resp)
	// 4000 / 9000 × 100 ≈ 44,44%: figuras completas em claro após a captura.
	assert.Equal(t, "44.44", completo.CMVPercentual.StringFixed(2))
	assert.Equal(t, 1, mailer.enviados)
	require.Len(t, repo.leads, 1)
	assert.Equal(t, "maria@pizzaria.com.br", repo.leads[0].Email)
}

func TestEnviarRelatorio_SessaoDesconhecida404(t *testing.T) {
	app := buildCMVApp(&leadRepoMem{}, &mailerStub{})

	resp := postJSON(t, app, "/api/cmv/relatorio", dto.EnviarRelatorioRequest{
		RelatorioID: "inexistente", Nome: "Maria", Email: "a@b.c",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEnviarRelatorio_FalhaDoColaborador502(t *testing.T) {
	repo := &leadRepoMem{}
	mailer := &mailerStub{falha: errors.New("resend: status 500")}
	app := buildCMVApp(repo, mailer)

	resp := postJSON(t, app, "/api/cmv/calcular", dto.CalcularRequest{
		Faturamento: "1000000", IncluiTaxas: "nao", TotalCompras: "400000",
	})
	relatorio := decode[dto.RelatorioResponse](t, resp)

	resp = postJSON(t, app, "/api/cmv/relatorio", dto.EnviarRelatorioRequest{
		RelatorioID: relatorio.RelatorioID, Nome: "Maria", Email: "a@b.c",
	})
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "COLLABORATOR", out.Code)
	assert.Contains(t, out.Message, "resend", "a mensagem do colaborador sobe textual")

	// A sessão voltou para aberta: a retentativa depois de corrigir funciona.
	mailer.falha = nil
	resp = postJSON(t, app, "/api/cmv/relatorio", dto.EnviarRelatorioRequest{
		RelatorioID: relatorio.RelatorioID, Nome: "Maria", Email: "a@b.c",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ── Testes do back office ─────────────────────────────────────────────────────

func TestLeads_ExigeToken(t *testing.T) {
	app := buildCMVApp(&leadRepoMem{}, &mailerStub{})
	req := httptest.NewRequest(http.MethodGet, "/api/leads/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLeads_ListaComToken(t *testing.T) {
	repo := &leadRepoMem{leads: []*entity.LeadReport{
		{ID: "l1", Nome: "Maria", Email: "maria@pizzaria.com.br", CreatedAt: time.Now()},
	}}
	app := buildCMVApp(repo, &mailerStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/leads/", nil)
	req.Header.Set("Authorization", tokenForRole(t, "backoffice"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.LeadListResponse](t, resp)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "maria@pizzaria.com.br", out.Items[0].Email)
}

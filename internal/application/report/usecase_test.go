package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/calculadora-cmv/internal/application/dto"
	"github.com/tu-usuario/calculadora-cmv/internal/domain"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/cmv"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/entity"
)

// ── Mocks dos portos ──────────────────────────────────────────────────────────

type leadRepoMock struct {
	criados []*entity.LeadReport
	falha   error
}

func (m *leadRepoMock) Create(_ context.Context, lead *entity.LeadReport) error {
	if m.falha != nil {
		return m.falha
	}
	m.criados = append(m.criados, lead)
	return nil
}

func (m *leadRepoMock) GetByID(context.Context, string) (*entity.LeadReport, error) {
	return nil, nil
}

func (m *leadRepoMock) List(context.Context, int, int) ([]*entity.LeadReport, error) {
	return nil, nil
}

type mailerMock struct {
	enviados []EmailRelatorio
	falha    error
}

func (m *mailerMock) EnviarRelatorio(_ context.Context, email EmailRelatorio) error {
	if m.falha != nil {
		return m.falha
	}
	m.enviados = append(m.enviados, email)
	return nil
}

type pdfMock struct{ conteudo []byte }

func (m *pdfMock) GerarRelatorioPDF(context.Context, string, cmv.ResultadoCalculo) ([]byte, error) {
	return m.conteudo, nil
}

// ── Testes ────────────────────────────────────────────────────────────────────

func novoAmbiente() (*EnviarRelatorioUseCase, *SessaoStore, *leadRepoMock, *mailerMock) {
	sessoes := NewSessaoStore(time.Minute)
	repo := &leadRepoMock{}
	mailer := &mailerMock{}
	uc := NewEnviarRelatorioUseCase(sessoes, repo, mailer, nil)
	return uc, sessoes, repo, mailer
}

func TestEnviar_FluxoFeliz(t *testing.T) {
	uc, sessoes, repo, mailer := novoAmbiente()
	sessao := sessoes.Abrir(resultadoTeste())

	out, err := uc.Enviar(context.Background(), dto.EnviarRelatorioRequest{
		RelatorioID: sessao.ID,
		Nome:        "Maria",
		Email:       "maria@pizzaria.com.br",
	})
	require.NoError(t, err)

	// Persistiu o lead com as quatro figuras e enviou o e-mail.
	require.Len(t, repo.criados, 1)
	lead := repo.criados[0]
	assert.Equal(t, "maria@pizzaria.com.br", lead.Email)
	assert.True(t, lead.CMVPercentual.Equal(resultadoTeste().CMVPercentual))

	require.Len(t, mailer.enviados, 1)
	assert.Equal(t, "maria@pizzaria.com.br", mailer.enviados[0].Para)
	assert.Equal(t, "Maria", mailer.enviados[0].Nome)

	// Figuras completas em claro na resposta.
	assert.True(t, out.LucroPerdido.Equal(resultadoTeste().LucroPerdido))

	// Sessão concluída: não dá para reenviar.
	_, err = uc.Enviar(context.Background(), dto.EnviarRelatorioRequest{
		RelatorioID: sessao.ID, Nome: "Maria", Email: "maria@pizzaria.com.br",
	})
	assert.ErrorIs(t, err, domain.ErrRelatorioExpirado)
}

func TestEnviar_ValidacaoAntesDoColaborador(t *testing.T) {
	uc, sessoes, repo, mailer := novoAmbiente()
	sessao := sessoes.Abrir(resultadoTeste())

	casos := []struct {
		req   dto.EnviarRelatorioRequest
		campo string
	}{
		{dto.EnviarRelatorioRequest{RelatorioID: sessao.ID, Email: "a@b.c"}, "nome"},
		{dto.EnviarRelatorioRequest{RelatorioID: sessao.ID, Nome: "Maria"}, "email"},
		{dto.EnviarRelatorioRequest{Nome: "Maria", Email: "a@b.c"}, "relatorio_id"},
	}
	for _, c := range casos {
		_, err := uc.Enviar(context.Background(), c.req)
		var ev *domain.ErroValidacao
		require.ErrorAs(t, err, &ev)
		assert.Equal(t, c.campo, ev.Campo)
	}

	// Nenhuma falha de validação tocou a persistência ou o e-mail.
	assert.Empty(t, repo.criados)
	assert.Empty(t, mailer.enviados)
}

func TestEnviar_FalhaDoEmailLiberaRetry(t *testing.T) {
	uc, sessoes, repo, mailer := novoAmbiente()
	sessao := sessoes.Abrir(resultadoTeste())
	mailer.falha = errors.New("resend: 429 too many requests")

	_, err := uc.Enviar(context.Background(), dto.EnviarRelatorioRequest{
		RelatorioID: sessao.ID, Nome: "Maria", Email: "maria@pizzaria.com.br",
	})
	require.Error(t, err)
	// A mensagem do colaborador é exibível ao usuário.
	assert.Contains(t, err.Error(), "429 too many requests")

	// O lead já persistido não é desfeito (responsabilidade do colaborador).
	assert.Len(t, repo.criados, 1)

	// A sessão voltou para aberta: a segunda tentativa funciona.
	mailer.falha = nil
	_, err = uc.Enviar(context.Background(), dto.EnviarRelatorioRequest{
		RelatorioID: sessao.ID, Nome: "Maria", Email: "maria@pizzaria.com.br",
	})
	assert.NoError(t, err)
	assert.Len(t, mailer.enviados, 1)
}

func TestEnviar_FalhaDoBancoNaoEnviaEmail(t *testing.T) {
	uc, sessoes, repo, mailer := novoAmbiente()
	sessao := sessoes.Abrir(resultadoTeste())
	repo.falha = errors.New("conexão recusada")

	_, err := uc.Enviar(context.Background(), dto.EnviarRelatorioRequest{
		RelatorioID: sessao.ID, Nome: "Maria", Email: "maria@pizzaria.com.br",
	})
	require.Error(t, err)
	assert.Empty(t, mailer.enviados, "persistir vem antes de enviar; falha no banco não dispara e-mail")
}

func TestEnviar_AnexaPDFQuandoConfigurado(t *testing.T) {
	sessoes := NewSessaoStore(time.Minute)
	repo := &leadRepoMock{}
	mailer := &mailerMock{}
	uc := NewEnviarRelatorioUseCase(sessoes, repo, mailer, &pdfMock{conteudo: []byte("%PDF-1.7")})
	sessao := sessoes.Abrir(resultadoTeste())

	_, err := uc.Enviar(context.Background(), dto.EnviarRelatorioRequest{
		RelatorioID: sessao.ID, Nome: "Maria", Email: "maria@pizzaria.com.br",
	})
	require.NoError(t, err)
	require.Len(t, mailer.enviados, 1)
	assert.Equal(t, []byte("%PDF-1.7"), mailer.enviados[0].AnexoPDF)
}

func TestEnviar_SessaoInexistente(t *testing.T) {
	uc, _, _, _ := novoAmbiente()
	_, err := uc.Enviar(context.Background(), dto.EnviarRelatorioRequest{
		RelatorioID: "fantasma", Nome: "Maria", Email: "a@b.c",
	})
	assert.ErrorIs(t, err, domain.ErrRelatorioExpirado)
}

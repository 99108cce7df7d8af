package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/calculadora-cmv/internal/application/dto"
	"github.com/tu-usuario/calculadora-cmv/internal/domain"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/entity"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/repository"
)

// EnviarRelatorioUseCase captura o lead e envia o relatório completo:
// persiste o registro, gera o PDF e dispara o e-mail, nessa ordem.
// Falhas do colaborador devolvem a sessão para aberta (retry permitido) e
// nunca alteram o resultado calculado.
type EnviarRelatorioUseCase struct {
	sessoes  *SessaoStore
	leadRepo repository.LeadReportRepository
	mailer   Mailer
	pdf      GeradorPDF
}

// NewEnviarRelatorioUseCase constrói o caso de uso. pdf pode ser nil para
// enviar o e-mail sem anexo.
func NewEnviarRelatorioUseCase(
	sessoes *SessaoStore,
	leadRepo repository.LeadReportRepository,
	mailer Mailer,
	pdf GeradorPDF,
) *EnviarRelatorioUseCase {
	return &EnviarRelatorioUseCase{
		sessoes:  sessoes,
		leadRepo: leadRepo,
		mailer:   mailer,
		pdf:      pdf,
	}
}

// Enviar valida nome e e-mail, trava a sessão em "enviando" e executa o fluxo
// persistir-depois-enviar. Erros de validação nunca chegam ao colaborador.
func (uc *EnviarRelatorioUseCase) Enviar(ctx context.Context, in dto.EnviarRelatorioRequest) (*dto.RelatorioCompletoResponse, error) {
	if in.Nome == "" {
		return nil, domain.NovoErroValidacao("nome", "informe como prefere ser chamado(a)")
	}
	if in.Email == "" {
		return nil, domain.NovoErroValidacao("email", "informe seu melhor e-mail")
	}
	if in.RelatorioID == "" {
		return nil, domain.NovoErroValidacao("relatorio_id", "relatório não informado")
	}

	res, err := uc.sessoes.IniciarEnvio(in.RelatorioID)
	if err != nil {
		return nil, err
	}

	sucesso := false
	defer func() { uc.sessoes.FinalizarEnvio(in.RelatorioID, sucesso) }()

	lead := &entity.LeadReport{
		ID:              uuid.New().String(),
		Nome:            in.Nome,
		Email:           in.Email,
		FaturamentoReal: res.FaturamentoReal,
		CMVValor:        res.CMVValor,
		CMVPercentual:   res.CMVPercentual,
		LucroPerdido:    res.LucroPerdido,
		CreatedAt:       time.Now(),
	}
	if err := uc.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("salvar lead: %w", err)
	}

	var anexo []byte
	if uc.pdf != nil {
		anexo, err = uc.pdf.GerarRelatorioPDF(ctx, in.Nome, res)
		if err != nil {
			return nil, fmt.Errorf("gerar PDF do relatório: %w", err)
		}
	}

	// O lead já persistido não é desfeito se o e-mail falhar; o colaborador
	// é quem responde pelo estado parcial.
	if err := uc.mailer.EnviarRelatorio(ctx, EmailRelatorio{
		Para:      in.Email,
		Nome:      in.Nome,
		Resultado: res,
		AnexoPDF:  anexo,
	}); err != nil {
		return nil, fmt.Errorf("enviar e-mail: %w", err)
	}

	sucesso = true
	return &dto.RelatorioCompletoResponse{
		Mensagem:        res.Status().Mensagem(),
		FaturamentoReal: res.FaturamentoReal,
		CMVValor:        res.CMVValor,
		CMVPercentual:   res.CMVPercentual.Round(2),
		LucroPerdido:    res.LucroPerdido.Round(2),
	}, nil
}

package calculator

import (
	"strings"

	"github.com/tu-usuario/calculadora-cmv/internal/application/dto"
	"github.com/tu-usuario/calculadora-cmv/internal/application/report"
	"github.com/tu-usuario/calculadora-cmv/internal/domain"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/cmv"
)

// CalcularUseCase é o coletor do formulário: aplica o contrato de centavos em
// cada campo monetário, valida na ordem exigida, calcula e abre a sessão de
// relatório com o resultado.
type CalcularUseCase struct {
	sessoes *report.SessaoStore
	opcoes  report.Opcoes
}

// NewCalcularUseCase constrói o caso de uso.
func NewCalcularUseCase(sessoes *report.SessaoStore, opcoes report.Opcoes) *CalcularUseCase {
	return &CalcularUseCase{sessoes: sessoes, opcoes: opcoes}
}

// Calcular valida e calcula. Na primeira falha devolve um ErroValidacao com o
// campo; em sucesso devolve o relatório renderizado (possivelmente mascarado)
// com o ID da sessão para a captura posterior do lead.
func (uc *CalcularUseCase) Calcular(in dto.CalcularRequest) (*dto.RelatorioResponse, error) {
	entrada, err := montarEntrada(in)
	if err != nil {
		return nil, err
	}
	res, err := cmv.Calcular(entrada)
	if err != nil {
		return nil, err
	}
	sessao := uc.sessoes.Abrir(res)
	return report.Render(sessao, uc.opcoes), nil
}

// montarEntrada converte o texto bruto dos campos. Campo sem dígitos vira
// "sem valor" (zero aqui), que falha nas mesmas regras de presença do Validar.
func montarEntrada(in dto.CalcularRequest) (cmv.EntradaCalculo, error) {
	entrada := cmv.EntradaCalculo{}
	entrada.Faturamento, _ = cmv.ParseCentavos(in.Faturamento)
	entrada.TaxasRepassadas, _ = cmv.ParseCentavos(in.TaxasRepassadas)
	entrada.TotalCompras, _ = cmv.ParseCentavos(in.TotalCompras)

	switch strings.ToLower(strings.TrimSpace(in.IncluiTaxas)) {
	case "sim", "s", "yes":
		entrada.IncluiTaxas = cmv.Sim
	case "nao", "não", "n", "no":
		entrada.IncluiTaxas = cmv.Nao
	case "":
		entrada.IncluiTaxas = cmv.NaoRespondida
	default:
		return cmv.EntradaCalculo{}, domain.NovoErroValidacao("inclui_taxas", "resposta inválida: use \"sim\" ou \"nao\"")
	}
	return entrada, nil
}

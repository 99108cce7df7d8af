package report

import (
	"github.com/tu-usuario/calculadora-cmv/internal/application/dto"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/cmv"
)

// Opcoes diferenças cosméticas entre as versões do produto, parametrizadas
// em vez de ramificadas no código (as variantes só mudam cópia e máscara).
type Opcoes struct {
	MostrarExplicacao     bool   // accordion "como o CMV é calculado?"
	MascararSeNaoSaudavel bool   // mascara percentual e lucro perdido quando CMV > 38
	VarianteCTA           string // padrao | urgencia | email
}

// OpcoesPadrao variante canônica: explicação visível, máscara quando o CMV
// não é saudável (escolha de política documentada em DESIGN.md).
func OpcoesPadrao() Opcoes {
	return Opcoes{
		MostrarExplicacao:     true,
		MascararSeNaoSaudavel: true,
		VarianteCTA:           "padrao",
	}
}

const explicacaoCMV = "O CMV (Custo da Mercadoria Vendida) é calculado dividindo o total de compras " +
	"pelo faturamento real e multiplicando por 100 para obter a porcentagem. " +
	"Fórmula: CMV = (Total de Compras ÷ Faturamento Real) × 100. " +
	"Para o setor de pizzarias, um CMV saudável deve estar em torno de 38%."

var ctaPorVariante = map[string]string{
	"padrao":   "Ver resultado completo",
	"urgencia": "Descubra quanto você está deixando na mesa",
	"email":    "Receber relatório por e-mail",
}

var nomeStatus = map[cmv.StatusCMV]string{
	cmv.StatusSaudavel: "saudavel",
	cmv.StatusAlerta:   "alerta",
	cmv.StatusCritico:  "critico",
}

// Render monta o relatório exibido após o cálculo. Faturamento real e valor
// do CMV sempre em claro; percentual e lucro perdido mascarados quando o
// resultado não é saudável e a variante pede máscara.
func Render(sessao *Sessao, opts Opcoes) *dto.RelatorioResponse {
	res := sessao.Resultado
	saudavel := res.Saudavel()
	mascarar := opts.MascararSeNaoSaudavel && !saudavel

	percentual := cmv.FormatarPercentual(res.CMVPercentual)
	lucroPerdido := cmv.FormatarBRL(res.LucroPerdido)
	if mascarar {
		percentual = cmv.Asteriscos(res.CMVPercentual) + "%"
		lucroPerdido = "R$ " + cmv.Asteriscos(res.LucroPerdido)
	}

	out := &dto.RelatorioResponse{
		RelatorioID:     sessao.ID,
		Saudavel:        saudavel,
		Status:          nomeStatus[res.Status()],
		Mensagem:        res.Status().Mensagem(),
		FaturamentoReal: cmv.FormatarBRL(res.FaturamentoReal),
		CMVValor:        cmv.FormatarBRL(res.CMVValor),
		CMVPercentual:   percentual,
		LucroPerdido:    lucroPerdido,
		Mascarado:       mascarar,
		CTA:             ctaPorVariante[opts.VarianteCTA],
	}
	if out.CTA == "" {
		out.CTA = ctaPorVariante["padrao"]
	}
	if opts.MostrarExplicacao {
		out.Explicacao = explicacaoCMV
	}
	return out
}

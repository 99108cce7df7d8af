// Package pdf gera o relatório de CMV em PDF, anexado ao e-mail do lead.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de CMV + nome do lead + data              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STATUS: faixa do CMV com a mensagem qualitativa             │
//	│  GRID: Faturamento Real | Valor do CMV                       │
//	│        Percentual do CMV | Lucro Perdido                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EXPLICAÇÃO: fórmula e referência de 38% do setor            │
//	│  DICAS: como melhorar o CMV                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/calculadora-cmv/internal/application/report"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/cmv"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 234, Green: 88, Blue: 12} // laranja da marca
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}

	corPorStatus = map[cmv.StatusCMV]*props.Color{
		cmv.StatusSaudavel: {Red: 22, Green: 130, Blue: 60},
		cmv.StatusAlerta:   {Red: 202, Green: 138, Blue: 4},
		cmv.StatusCritico:  {Red: 185, Green: 28, Blue: 28},
	}
)

var _ report.GeradorPDF = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.GeradorPDF usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GerarRelatorioPDF gera o PDF de uma página e devolve seus bytes.
func (g *MarotoReportGenerator) GerarRelatorioPDF(_ context.Context, nome string, res cmv.ResultadoCalculo) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Relatório de CMV", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(nome))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statusRow(res))
	m.AddRows(gridRows(res)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(explicacaoRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow(nome string) core.Row {
	data := time.Now().Format("02/01/2006")
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Relatório de CMV", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New("Preparado para "+nome, props.Text{
				Size: 10, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(data, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func statusRow(res cmv.ResultadoCalculo) core.Row {
	status := res.Status()
	return row.New(12).Add(
		col.New(12).Add(
			text.New(status.Mensagem(), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 3, Color: corPorStatus[status],
			}),
		),
	)
}

func gridRows(res cmv.ResultadoCalculo) []core.Row {
	celula := func(rotulo, valor string) core.Col {
		return col.New(6).Add(
			text.New(rotulo, props.Text{Size: 8, Top: 1, Color: colorGray}),
			text.New(valor, props.Text{Style: fontstyle.Bold, Size: 13, Top: 6}),
		)
	}
	return []core.Row{
		row.New(16).Add(
			celula("Faturamento Real", cmv.FormatarBRL(res.FaturamentoReal)),
			celula("Valor do CMV", cmv.FormatarBRL(res.CMVValor)),
		),
		row.New(16).Add(
			celula("Percentual do CMV", cmv.FormatarPercentual(res.CMVPercentual)),
			celula("Lucro Perdido (mensal)", cmv.FormatarBRL(res.LucroPerdido)),
		),
	}
}

func explicacaoRows() []core.Row {
	linhas := []string{
		"O CMV (Custo da Mercadoria Vendida) é calculado dividindo o total de compras pelo",
		"faturamento real e multiplicando por 100. Para o setor de pizzarias, um CMV saudável",
		"deve estar em torno de 38%.",
		"",
		"Para melhorar seu CMV, considere: revisar fornecedores e negociar melhores preços,",
		"otimizar o cardápio e as fichas técnicas, controlar melhor o estoque e evitar perdas,",
		"e analisar sua precificação.",
	}
	rows := make([]core.Row, 0, len(linhas))
	for _, l := range linhas {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(l, props.Text{Size: 9, Top: 1, Color: colorGray})),
		))
	}
	return rows
}

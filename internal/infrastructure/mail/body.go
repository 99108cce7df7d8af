package mail

import (
	"html/template"
	"strings"

	"github.com/tu-usuario/calculadora-cmv/internal/domain/cmv"
)

// Corpo do e-mail: as quatro figuras formatadas, a mensagem da faixa com a
// cor correspondente e as dicas de melhoria do relatório original.
var tmplRelatorio = template.Must(template.New("relatorio").Parse(`
<h1>Relatório de CMV</h1>
{{if .Nome}}<p>{{.Nome}}, aqui está o resultado da sua análise de CMV:</p>{{else}}<p>Aqui está o resultado da sua análise de CMV:</p>{{end}}

<ul>
  <li><strong>Faturamento Real:</strong> {{.FaturamentoReal}}</li>
  <li><strong>Valor do CMV:</strong> {{.CMVValor}}</li>
  <li><strong>Percentual do CMV:</strong> {{.CMVPercentual}}</li>
  <li><strong>Lucro Perdido:</strong> {{.LucroPerdido}}</li>
</ul>

<p style="color: {{.Cor}}">{{.Mensagem}}</p>

<p>Para melhorar seu CMV, considere:</p>
<ul>
  <li>Revisar seus fornecedores e negociar melhores preços</li>
  <li>Otimizar seu cardápio e fichas técnicas</li>
  <li>Controlar melhor o estoque e evitar perdas</li>
  <li>Analisar sua precificação</li>
</ul>

<p>Obrigado por usar nossa calculadora!</p>
`))

var corPorStatus = map[cmv.StatusCMV]string{
	cmv.StatusSaudavel: "green",
	cmv.StatusAlerta:   "orange",
	cmv.StatusCritico:  "red",
}

func corpoRelatorio(nome string, res cmv.ResultadoCalculo) string {
	status := res.Status()
	var sb strings.Builder
	// Template fixo sobre campos próprios: Execute não tem como falhar aqui.
	_ = tmplRelatorio.Execute(&sb, map[string]string{
		"Nome":            nome,
		"FaturamentoReal": cmv.FormatarBRL(res.FaturamentoReal),
		"CMVValor":        cmv.FormatarBRL(res.CMVValor),
		"CMVPercentual":   cmv.FormatarPercentual(res.CMVPercentual),
		"LucroPerdido":    cmv.FormatarBRL(res.LucroPerdido),
		"Cor":             corPorStatus[status],
		"Mensagem":        status.Mensagem(),
	})
	return sb.String()
}

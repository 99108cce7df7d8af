package dto

import "github.com/shopspring/decimal"

// CalcularRequest body para POST /api/cmv/calcular.
// Os campos monetários chegam como o texto bruto digitado ("R$ 1.234,56" ou
// só dígitos); o parsing de centavos acontece no caso de uso.
type CalcularRequest struct {
	Faturamento     string `json:"faturamento"`
	IncluiTaxas     string `json:"inclui_taxas"` // "sim" | "nao" | "" (não respondida)
	TaxasRepassadas string `json:"taxas_repassadas,omitempty"`
	TotalCompras    string `json:"total_compras"`
}

// RelatorioResponse relatório renderizado para POST /api/cmv/calcular.
// Faturamento real e valor do CMV sempre em claro; percentual e lucro perdido
// podem vir mascarados ("**,**") até a captura do lead.
type RelatorioResponse struct {
	RelatorioID     string `json:"relatorio_id"`
	Saudavel        bool   `json:"saudavel"`
	Status          string `json:"status"` // saudavel | alerta | critico
	Mensagem        string `json:"mensagem"`
	FaturamentoReal string `json:"faturamento_real"`
	CMVValor        string `json:"cmv_valor"`
	CMVPercentual   string `json:"cmv_percentual"`
	LucroPerdido    string `json:"lucro_perdido"`
	Mascarado       bool   `json:"mascarado"`
	Explicacao      string `json:"explicacao,omitempty"` // accordion "como o CMV é calculado?"
	CTA             string `json:"cta"`
}

// EnviarRelatorioRequest body para POST /api/cmv/relatorio (captura de lead).
type EnviarRelatorioRequest struct {
	RelatorioID string `json:"relatorio_id"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
}

// RelatorioCompletoResponse figuras completas em claro, devolvidas após a
// captura do lead e o envio do e-mail.
type RelatorioCompletoResponse struct {
	Mensagem        string          `json:"mensagem"`
	FaturamentoReal decimal.Decimal `json:"faturamento_real"`
	CMVValor        decimal.Decimal `json:"cmv_valor"`
	CMVPercentual   decimal.Decimal `json:"cmv_percentual"`
	LucroPerdido    decimal.Decimal `json:"lucro_perdido"`
}

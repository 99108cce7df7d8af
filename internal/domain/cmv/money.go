package cmv

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printerPtBR = message.NewPrinter(language.BrazilianPortuguese)

// ParseCentavos interpreta o texto digitado como um fluxo de centavos, o
// mesmo contrato do campo de caixa: todo caractere não numérico é descartado
// e os dois últimos dígitos viram centavos ("123456" → 1234,56).
// Texto sem nenhum dígito significa "sem valor", distinto de zero: ok == false.
func ParseCentavos(texto string) (valor decimal.Decimal, ok bool) {
	var b strings.Builder
	for _, r := range texto {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digitos := b.String()
	if digitos == "" {
		return decimal.Zero, false
	}
	centavos, err := decimal.NewFromString(digitos)
	if err != nil {
		return decimal.Zero, false
	}
	return centavos.Shift(-2), true
}

// FormatarBRL formata o valor em moeda brasileira ("R$ 1.234,56").
// Apenas exibição: o valor decimal é mantido à parte para o cálculo.
func FormatarBRL(valor decimal.Decimal) string {
	f, _ := valor.Round(2).Float64()
	return printerPtBR.Sprintf("R$ %v",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatarPercentual formata o percentual com duas casas ("40,00%").
func FormatarPercentual(valor decimal.Decimal) string {
	f, _ := valor.Round(2).Float64()
	return printerPtBR.Sprintf("%v%%",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Asteriscos devolve a máscara do valor: um asterisco por dígito da parte
// inteira, como no relatório bloqueado ("1234,56" → "****").
func Asteriscos(valor decimal.Decimal) string {
	return strings.Repeat("*", len(valor.Floor().String()))
}

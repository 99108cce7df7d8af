package cmv

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/calculadora-cmv/internal/domain"
)

// Limites de referência do setor de pizzarias (percentual sobre o faturamento real).
// LimiteSaudavel é o valor canônico; versões antigas do produto usaram 30,
// tratado como defeito (ver DESIGN.md).
var (
	LimiteSaudavel = decimal.NewFromInt(38)
	LimiteAlerta   = decimal.NewFromInt(42)

	cem = decimal.NewFromInt(100)
)

// RespostaSimNao é a resposta de três estados à pergunta "as taxas de entrega
// estão inclusas no faturamento?". NaoRespondida é um estado de primeira
// classe: o formulário precisa distinguir "ainda não respondeu" de "não".
type RespostaSimNao int

const (
	NaoRespondida RespostaSimNao = iota
	Sim
	Nao
)

// EntradaCalculo dados do formulário já convertidos para decimal.
type EntradaCalculo struct {
	Faturamento     decimal.Decimal // faturamento total do último mês
	IncluiTaxas     RespostaSimNao  // taxas de entregadores inclusas no faturamento?
	TaxasRepassadas decimal.Decimal // total repassado em taxas (exigido se IncluiTaxas == Sim)
	TotalCompras    decimal.Decimal // total de compras do último mês
}

// ResultadoCalculo resultado do cálculo de CMV. Criado a cada submissão e
// descartado em "calcular novamente"; nada aqui é persistido pelo núcleo.
type ResultadoCalculo struct {
	FaturamentoReal decimal.Decimal // faturamento menos taxas repassadas, quando inclusas
	CMVValor        decimal.Decimal // total de compras, sem alteração
	CMVPercentual   decimal.Decimal // (compras / faturamento real) × 100
	LucroPerdido    decimal.Decimal // projeção mensal do excedente sobre o limite saudável
}

// Saudavel indica se o CMV está dentro do limite de referência do setor.
func (r ResultadoCalculo) Saudavel() bool {
	return r.CMVPercentual.LessThanOrEqual(LimiteSaudavel)
}

// StatusCMV classificação do resultado em faixas, usada na mensagem do
// relatório e na cor do e-mail.
type StatusCMV int

const (
	StatusSaudavel StatusCMV = iota // CMV ≤ 38
	StatusAlerta                    // 38 < CMV ≤ 42
	StatusCritico                   // CMV > 42
)

// Status devolve a faixa do CMV calculado.
func (r ResultadoCalculo) Status() StatusCMV {
	switch {
	case r.CMVPercentual.LessThanOrEqual(LimiteSaudavel):
		return StatusSaudavel
	case r.CMVPercentual.LessThanOrEqual(LimiteAlerta):
		return StatusAlerta
	default:
		return StatusCritico
	}
}

// Mensagem texto qualitativo da faixa (mesma régua usada no e-mail).
func (s StatusCMV) Mensagem() string {
	switch s {
	case StatusSaudavel:
		return "Seu CMV está dentro do ideal para o setor!"
	case StatusAlerta:
		return "Seu CMV está um pouco acima do ideal. Há espaço para melhorias."
	default:
		return "Seu CMV está muito alto! Isso está impactando significativamente sua lucratividade."
	}
}

// Validar aplica as regras do formulário na ordem exigida e devolve o erro do
// primeiro campo que falhar: faturamento → resposta sobre taxas → taxas
// repassadas (se inclusas) → total de compras → faturamento real > 0.
// Não avalia os campos seguintes após a primeira falha.
func Validar(in EntradaCalculo) error {
	if in.Faturamento.IsZero() {
		return domain.NovoErroValidacao("faturamento", "informe o faturamento total do último mês")
	}
	if in.Faturamento.IsNegative() {
		return domain.NovoErroValidacao("faturamento", "o faturamento não pode ser negativo")
	}
	if in.IncluiTaxas == NaoRespondida {
		return domain.NovoErroValidacao("inclui_taxas", "responda se as taxas de entregadores estão inclusas no faturamento")
	}
	if in.IncluiTaxas == Sim {
		if in.TaxasRepassadas.IsZero() {
			return domain.NovoErroValidacao("taxas_repassadas", "informe o total repassado em taxas")
		}
		if in.TaxasRepassadas.IsNegative() {
			return domain.NovoErroValidacao("taxas_repassadas", "as taxas repassadas não podem ser negativas")
		}
	}
	if in.TotalCompras.IsZero() {
		return domain.NovoErroValidacao("total_compras", "informe o total de compras do último mês")
	}
	if in.TotalCompras.IsNegative() {
		return domain.NovoErroValidacao("total_compras", "o total de compras não pode ser negativo")
	}
	// Guarda da divisão por zero: é erro de validação, nunca Infinity/NaN.
	if faturamentoReal(in).LessThanOrEqual(decimal.Zero) {
		return domain.NovoErroValidacao("taxas_repassadas", "o faturamento deve ser maior que as taxas repassadas")
	}
	return nil
}

// Calcular é a função pura do núcleo: valida e deriva o resultado.
// Determinística e sem efeitos: a mesma entrada produz sempre o mesmo resultado.
func Calcular(in EntradaCalculo) (ResultadoCalculo, error) {
	if err := Validar(in); err != nil {
		return ResultadoCalculo{}, err
	}

	real := faturamentoReal(in)
	percentual := in.TotalCompras.Div(real).Mul(cem)

	lucroPerdido := decimal.Zero
	if percentual.GreaterThan(LimiteSaudavel) {
		lucroPerdido = percentual.Sub(LimiteSaudavel).Div(cem).Mul(real)
	}

	return ResultadoCalculo{
		FaturamentoReal: real,
		CMVValor:        in.TotalCompras,
		CMVPercentual:   percentual,
		LucroPerdido:    lucroPerdido,
	}, nil
}

func faturamentoReal(in EntradaCalculo) decimal.Decimal {
	if in.IncluiTaxas == Sim {
		return in.Faturamento.Sub(in.TaxasRepassadas)
	}
	return in.Faturamento
}

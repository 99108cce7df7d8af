package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadReport registro de captura de lead: o resultado calculado mais o contato
// informado na tela de relatório completo. É o único dado durável do produto.
type LeadReport struct {
	ID              string
	Nome            string
	Email           string
	FaturamentoReal decimal.Decimal
	CMVValor        decimal.Decimal
	CMVPercentual   decimal.Decimal
	LucroPerdido    decimal.Decimal
	CreatedAt       time.Time
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadResponse lead capturado, para o back office.
type LeadResponse struct {
	ID              string          `json:"id"`
	Nome            string          `json:"nome"`
	Email           string          `json:"email"`
	FaturamentoReal decimal.Decimal `json:"faturamento_real"`
	CMVValor        decimal.Decimal `json:"cmv_valor"`
	CMVPercentual   decimal.Decimal `json:"cmv_percentual"`
	LucroPerdido    decimal.Decimal `json:"lucro_perdido"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LeadListResponse listagem paginada de leads.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

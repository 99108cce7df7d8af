// Package mail implementa o envio do relatório de CMV via Resend
// (https://resend.com).
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tu-usuario/calculadora-cmv/internal/application/report"
)

const (
	resendURL = "https://api.resend.com/emails"

	assuntoRelatorio = "Seu Relatório de CMV"
	nomeAnexoPDF     = "relatorio-cmv.pdf"
)

var _ report.Mailer = (*ResendClient)(nil)

// Config do cliente Resend.
type Config struct {
	APIKey string
	From   string // ex.: "Calculadora de CMV <onboarding@resend.dev>"
}

// ResendClient implementa report.Mailer usando a API HTTP da Resend.
type ResendClient struct {
	cfg        Config
	url        string
	httpClient *http.Client
}

// NewResendClient constrói o cliente com timeout de rede próprio: a UI segura
// um único envio por vez, então uma chamada lenta não pode ficar pendurada.
func NewResendClient(cfg Config) *ResendClient {
	return &ResendClient{
		cfg:        cfg,
		url:        resendURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ── Payloads da API ───────────────────────────────────────────────────────────

type resendRequest struct {
	From        string        `json:"from"`
	To          []string      `json:"to"`
	Subject     string        `json:"subject"`
	HTML        string        `json:"html"`
	Attachments []resendAnexo `json:"attachments,omitempty"`
}

type resendAnexo struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"` // base64 no JSON
}

type resendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// EnviarRelatorio envia o e-mail com as figuras completas e o anexo, quando houver.
// O corpo de erro da Resend é devolvido textual para exibição ao usuário.
func (c *ResendClient) EnviarRelatorio(ctx context.Context, email report.EmailRelatorio) error {
	if c.cfg.APIKey == "" {
		return fmt.Errorf("resend: API key não configurada")
	}

	payload := resendRequest{
		From:    c.cfg.From,
		To:      []string{email.Para},
		Subject: assuntoRelatorio,
		HTML:    corpoRelatorio(email.Nome, email.Resultado),
	}
	if len(email.AnexoPDF) > 0 {
		payload.Attachments = []resendAnexo{{Filename: nomeAnexoPDF, Content: email.AnexoPDF}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("resend: montar payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("resend: criar request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var apiErr resendError
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
		return fmt.Errorf("resend: %d %s: %s", resp.StatusCode, apiErr.Name, apiErr.Message)
	}
	return fmt.Errorf("resend: status %d: %s", resp.StatusCode, string(raw))
}

package report

import (
	"context"

	"github.com/tu-usuario/calculadora-cmv/internal/domain/cmv"
)

// EmailRelatorio dados para o envio do relatório completo por e-mail.
type EmailRelatorio struct {
	Para      string
	Nome      string
	Resultado cmv.ResultadoCalculo
	AnexoPDF  []byte // opcional; nil envia só o HTML
}

// Mailer define o porto de saída para o colaborador de e-mail.
// A implementação concreta usa a API HTTP da Resend; para testes se injeta um mock.
type Mailer interface {
	EnviarRelatorio(ctx context.Context, email EmailRelatorio) error
}

// GeradorPDF define o porto para a geração do relatório em PDF anexado ao e-mail.
type GeradorPDF interface {
	GerarRelatorioPDF(ctx context.Context, nome string, res cmv.ResultadoCalculo) ([]byte, error)
}

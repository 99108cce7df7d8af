package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrRelatorioExpirado = errors.New("relatório expirado ou inexistente")
	ErrEnvioEmAndamento  = errors.New("já existe um envio em andamento para este relatório")
	ErrUnauthorized      = errors.New("não autorizado")
)

// ErroValidacao falha de validação de um campo específico do formulário.
// É recuperável: o usuário corrige o campo e reenvia.
type ErroValidacao struct {
	Campo string // primeiro campo que falhou na ordem de validação
	Msg   string
}

func (e *ErroValidacao) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Msg)
}

// NovoErroValidacao constrói o erro de validação para um campo.
func NovoErroValidacao(campo, msg string) *ErroValidacao {
	return &ErroValidacao{Campo: campo, Msg: msg}
}

package report

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/calculadora-cmv/internal/domain"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/cmv"
)

// EstadoSessao estados do relatório aberto: aberta → enviando → concluída.
// Um erro no envio devolve a sessão para aberta (o usuário pode tentar de novo).
type EstadoSessao int

const (
	SessaoAberta EstadoSessao = iota
	SessaoEnviando
	SessaoConcluida
)

// Sessao guarda o resultado calculado no servidor enquanto o relatório está
// aberto. Os valores mascarados nunca saem em claro antes da captura do lead.
type Sessao struct {
	ID        string
	Resultado cmv.ResultadoCalculo
	Estado    EstadoSessao
	CriadaEm  time.Time
}

// SessaoStore guarda sessões de relatório em memória com TTL. Um novo cálculo
// sempre abre uma sessão nova ("calcular novamente" descarta a anterior no
// cliente); a expiração cobre o abandono da página.
type SessaoStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	sessoes map[string]*Sessao
	agora   func() time.Time // injetável nos testes
}

// NewSessaoStore constrói o store com o TTL dado.
func NewSessaoStore(ttl time.Duration) *SessaoStore {
	return &SessaoStore{
		ttl:     ttl,
		sessoes: make(map[string]*Sessao),
		agora:   time.Now,
	}
}

// Abrir cria uma sessão nova para o resultado e devolve seu ID.
func (s *SessaoStore) Abrir(res cmv.ResultadoCalculo) *Sessao {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limparExpiradas()
	sessao := &Sessao{
		ID:        uuid.New().String(),
		Resultado: res,
		Estado:    SessaoAberta,
		CriadaEm:  s.agora(),
	}
	s.sessoes[sessao.ID] = sessao
	return sessao
}

// IniciarEnvio transiciona aberta → enviando e devolve o resultado guardado.
// Apenas um envio em voo por sessão: um segundo pedido enquanto o primeiro
// não termina é rejeitado com ErrEnvioEmAndamento.
func (s *SessaoStore) IniciarEnvio(id string) (cmv.ResultadoCalculo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessao, ok := s.sessoes[id]
	if !ok || s.expirada(sessao) {
		return cmv.ResultadoCalculo{}, domain.ErrRelatorioExpirado
	}
	switch sessao.Estado {
	case SessaoEnviando:
		return cmv.ResultadoCalculo{}, domain.ErrEnvioEmAndamento
	case SessaoConcluida:
		return cmv.ResultadoCalculo{}, domain.ErrRelatorioExpirado
	}
	sessao.Estado = SessaoEnviando
	return sessao.Resultado, nil
}

// FinalizarEnvio fecha a sessão após um envio bem-sucedido ou a devolve para
// aberta em caso de falha, liberando nova tentativa.
func (s *SessaoStore) FinalizarEnvio(id string, sucesso bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessao, ok := s.sessoes[id]
	if !ok {
		return
	}
	if sucesso {
		sessao.Estado = SessaoConcluida
		delete(s.sessoes, id)
		return
	}
	sessao.Estado = SessaoAberta
}

func (s *SessaoStore) expirada(sessao *Sessao) bool {
	return s.agora().Sub(sessao.CriadaEm) > s.ttl
}

// limparExpiradas remove sessões vencidas. Chamada com o mutex tomado.
func (s *SessaoStore) limparExpiradas() {
	for id, sessao := range s.sessoes {
		// Sessões em envio não expiram no meio da chamada externa.
		if sessao.Estado != SessaoEnviando && s.expirada(sessao) {
			delete(s.sessoes, id)
		}
	}
}

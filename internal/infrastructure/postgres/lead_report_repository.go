package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tu-usuario/calculadora-cmv/internal/domain/entity"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/repository"
)

// Querier abstrai pool ou transação pgx (Exec/Query/QueryRow).
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.LeadReportRepository = (*LeadReportRepo)(nil)

// LeadReportRepo implementação de LeadReportRepository sobre a tabela
// calculadora_cmv no Supabase.
type LeadReportRepo struct {
	q Querier
}

// NewLeadReportRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewLeadReportRepository(q Querier) *LeadReportRepo {
	return &LeadReportRepo{q: q}
}

// Create persiste o lead com as quatro figuras do relatório.
func (r *LeadReportRepo) Create(ctx context.Context, lead *entity.LeadReport) error {
	query := `
		INSERT INTO calculadora_cmv (id, nome, user_email, faturamento_real, cmv_valor, cmv_percentual, lucro_perdido, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		lead.ID, lead.Nome, lead.Email,
		lead.FaturamentoReal, lead.CMVValor, lead.CMVPercentual, lead.LucroPerdido,
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtém um lead por ID, ou nil se não existir.
func (r *LeadReportRepo) GetByID(ctx context.Context, id string) (*entity.LeadReport, error) {
	query := `
		SELECT id, nome, user_email, faturamento_real, cmv_valor, cmv_percentual, lucro_perdido, created_at
		FROM calculadora_cmv WHERE id = $1`
	var l entity.LeadReport
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Nome, &l.Email,
		&l.FaturamentoReal, &l.CMVValor, &l.CMVPercentual, &l.LucroPerdido,
		&l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// List lista leads com paginação, do mais recente para o mais antigo.
func (r *LeadReportRepo) List(ctx context.Context, limit, offset int) ([]*entity.LeadReport, error) {
	query := `
		SELECT id, nome, user_email, faturamento_real, cmv_valor, cmv_percentual, lucro_perdido, created_at
		FROM calculadora_cmv ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.LeadReport
	for rows.Next() {
		var l entity.LeadReport
		if err := rows.Scan(
			&l.ID, &l.Nome, &l.Email,
			&l.FaturamentoReal, &l.CMVValor, &l.CMVPercentual, &l.LucroPerdido,
			&l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

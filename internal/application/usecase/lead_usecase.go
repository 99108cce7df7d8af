package usecase

import (
	"context"

	"github.com/tu-usuario/calculadora-cmv/internal/application/dto"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/entity"
	"github.com/tu-usuario/calculadora-cmv/internal/domain/repository"
)

// LeadUseCase consulta de leads capturados para o back office.
type LeadUseCase struct {
	repo repository.LeadReportRepository
}

// NewLeadUseCase constrói o caso de uso.
func NewLeadUseCase(repo repository.LeadReportRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// List lista leads com paginação, do mais recente para o mais antigo.
func (uc *LeadUseCase) List(ctx context.Context, limit, offset int) (*dto.LeadListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLeadResponse(l))
	}
	return &dto.LeadListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID devolve um lead por ID, ou nil se não existir.
func (uc *LeadUseCase) GetByID(ctx context.Context, id string) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	return toLeadResponse(lead), nil
}

func toLeadResponse(l *entity.LeadReport) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	return &dto.LeadResponse{
		ID:              l.ID,
		Nome:            l.Nome,
		Email:           l.Email,
		FaturamentoReal: l.FaturamentoReal,
		CMVValor:        l.CMVValor,
		CMVPercentual:   l.CMVPercentual,
		LucroPerdido:    l.LucroPerdido,
		CreatedAt:       l.CreatedAt,
	}
}

package repository

import (
	"context"

	"github.com/tu-usuario/calculadora-cmv/internal/domain/entity"
)

// LeadReportRepository define o porto de persistência para leads capturados.
type LeadReportRepository interface {
	Create(ctx context.Context, lead *entity.LeadReport) error
	GetByID(ctx context.Context, id string) (*entity.LeadReport, error)
	List(ctx context.Context, limit, offset int) ([]*entity.LeadReport, error)
}

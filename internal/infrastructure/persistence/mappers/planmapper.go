package mappers

import (
	"skymaint/internal/domain/maintenance"
	"skymaint/internal/infrastructure/persistence/models"
	"skymaint/internal/shared/biztime"
)

type PlanMapper struct{}

func NewPlanMapper() PlanMapper {
	return PlanMapper{}
}

func (m PlanMapper) ToModel(p *maintenance.Plan) *models.MaintenancePlanModel {
	return &models.MaintenancePlanModel{
		ID:           p.ID(),
		OwnerID:      p.OwnerID(),
		Name:         p.Name(),
		CycleHours:   p.CycleHours(),
		CycleFlights: p.CycleFlights(),
		CycleDays:    p.CycleDays(),
		CreatedAt:    biztime.ToMillis(p.CreatedAt()),
		UpdatedAt:    biztime.ToMillis(p.UpdatedAt()),
	}
}

func (m PlanMapper) ToDomain(model *models.MaintenancePlanModel) (*maintenance.Plan, error) {
	return maintenance.ReconstructPlan(
		model.ID,
		model.OwnerID,
		model.Name,
		model.CycleHours,
		model.CycleFlights,
		model.CycleDays,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

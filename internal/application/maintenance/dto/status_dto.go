package dto

import (
	"skymaint/internal/domain/asset"
	"skymaint/internal/domain/maintenance"
)

// TriggeredDimensionDTO is one wear axis past the alert ratio.
type TriggeredDimensionDTO struct {
	Dimension string  `json:"dimension"`
	Consumed  float64 `json:"consumed"`
	Threshold float64 `json:"threshold"`
	Fraction  float64 `json:"fraction"`
}

// EntityStatusDTO is the evaluated maintenance status of one asset or
// component, as exposed by the fleet status listing.
type EntityStatusDTO struct {
	EntityID    uint                    `json:"entity_id"`
	Kind        string                  `json:"kind"`
	Status      string                  `json:"status"`
	Triggered   []TriggeredDimensionDTO `json:"triggered"`
	NoUsageData bool                    `json:"no_usage_data"`
}

// FromEvaluation converts an evaluator result for transport.
func FromEvaluation(entityID uint, kind asset.EntityKind, eval maintenance.Evaluation) EntityStatusDTO {
	triggered := make([]TriggeredDimensionDTO, 0, len(eval.Triggered))
	for _, td := range eval.Triggered {
		triggered = append(triggered, TriggeredDimensionDTO{
			Dimension: td.Dimension.String(),
			Consumed:  td.Consumed,
			Threshold: td.Threshold,
			Fraction:  td.Fraction,
		})
	}

	return EntityStatusDTO{
		EntityID:    entityID,
		Kind:        kind.String(),
		Status:      eval.Status.String(),
		Triggered:   triggered,
		NoUsageData: eval.NoUsageData,
	}
}

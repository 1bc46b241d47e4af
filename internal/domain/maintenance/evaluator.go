package maintenance

import (
	"time"

	"skymaint/internal/domain/asset"
	vo "skymaint/internal/domain/maintenance/valueobjects"
	"skymaint/internal/shared/biztime"
)

// DefaultAlertRatio is the fraction of a cycle threshold at which status
// escalates from ok to alert when no per-owner override is configured.
const DefaultAlertRatio = 0.8

// TriggeredDimension is one wear axis whose consumed fraction crossed the
// alert ratio. Fractions are uncapped; values above 1 are meaningful.
type TriggeredDimension struct {
	Dimension vo.Dimension `json:"dimension"`
	Consumed  float64      `json:"consumed"`
	Threshold float64      `json:"threshold"`
	Fraction  float64      `json:"fraction"`
}

// Evaluation is the result of classifying a single entity against its plan.
type Evaluation struct {
	Status    vo.TriggerStatus
	Triggered []TriggeredDimension
	// NoUsageData marks an ok that may be a data-collection gap rather
	// than a genuinely fresh entity.
	NoUsageData bool
}

// Evaluator classifies entities against their plan thresholds. It is
// stateless and side-effect-free; identical inputs yield identical output.
type Evaluator struct {
	alertRatio float64
}

func NewEvaluator(alertRatio float64) *Evaluator {
	if alertRatio <= 0 || alertRatio > 1 {
		alertRatio = DefaultAlertRatio
	}
	return &Evaluator{alertRatio: alertRatio}
}

func (e *Evaluator) AlertRatio() float64 {
	return e.alertRatio
}

// Evaluate classifies one entity. A nil plan or a plan with no positive
// threshold yields ok: absence of thresholds is a normal "not applicable"
// case, never an error and never "already due".
func (e *Evaluator) Evaluate(snap asset.UsageSnapshot, plan *Plan, now time.Time) Evaluation {
	result := Evaluation{
		Status:      vo.StatusOK,
		NoUsageData: !snap.HasUsage,
	}

	if plan == nil || !plan.HasAnyThreshold() {
		return result
	}

	fractions := e.fractions(snap, plan, now)
	if len(fractions) == 0 {
		return result
	}

	maxFraction := 0.0
	for _, f := range fractions {
		if f.Fraction > maxFraction {
			maxFraction = f.Fraction
		}
		if f.Fraction >= e.alertRatio {
			result.Triggered = append(result.Triggered, f)
		}
	}

	switch {
	case maxFraction >= 1.0:
		result.Status = vo.StatusDue
	case maxFraction >= e.alertRatio:
		result.Status = vo.StatusAlert
	}

	return result
}

// EvaluateWithRatio evaluates with a caller-supplied alert ratio override.
func (e *Evaluator) EvaluateWithRatio(snap asset.UsageSnapshot, plan *Plan, now time.Time, ratio float64) Evaluation {
	return NewEvaluator(ratio).Evaluate(snap, plan, now)
}

func (e *Evaluator) fractions(snap asset.UsageSnapshot, plan *Plan, now time.Time) []TriggeredDimension {
	var out []TriggeredDimension

	if plan.CycleHours() > 0 {
		out = append(out, TriggeredDimension{
			Dimension: vo.DimensionHours,
			Consumed:  snap.Hours,
			Threshold: plan.CycleHours(),
			Fraction:  snap.Hours / plan.CycleHours(),
		})
	}

	if plan.CycleFlights() > 0 {
		consumed := float64(snap.Flights)
		threshold := float64(plan.CycleFlights())
		out = append(out, TriggeredDimension{
			Dimension: vo.DimensionFlights,
			Consumed:  consumed,
			Threshold: threshold,
			Fraction:  consumed / threshold,
		})
	}

	// The days dimension needs a last-maintenance clock; without one there
	// is nothing to measure against, so it is skipped like a zero threshold.
	if plan.CycleDays() > 0 && !snap.LastMaintenance.IsZero() {
		consumed := float64(biztime.CalendarDaysBetweenUTC(snap.LastMaintenance, now))
		threshold := float64(plan.CycleDays())
		out = append(out, TriggeredDimension{
			Dimension: vo.DimensionDays,
			Consumed:  consumed,
			Threshold: threshold,
			Fraction:  consumed / threshold,
		})
	}

	return out
}

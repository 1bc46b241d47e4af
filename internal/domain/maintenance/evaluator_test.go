package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skymaint/internal/domain/asset"
	vo "skymaint/internal/domain/maintenance/valueobjects"
)

func mustPlan(t *testing.T, cycleHours float64, cycleFlights, cycleDays uint) *Plan {
	t.Helper()
	p, err := ReconstructPlan(1, 1, "test plan", cycleHours, cycleFlights, cycleDays, time.Now(), time.Now())
	require.NoError(t, err)
	return p
}

func TestEvaluator_Evaluate(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	evaluator := NewEvaluator(0.8)

	t.Run("no plan yields ok", func(t *testing.T) {
		snap := asset.UsageSnapshot{EntityID: 1, Kind: asset.KindAsset, Hours: 9999, Flights: 9999, HasUsage: true}

		result := evaluator.Evaluate(snap, nil, now)

		assert.Equal(t, vo.StatusOK, result.Status)
		assert.Empty(t, result.Triggered)
	})

	t.Run("zero thresholds exclude dimensions regardless of counters", func(t *testing.T) {
		plan := mustPlan(t, 0, 0, 0)
		snap := asset.UsageSnapshot{
			EntityID:        1,
			Kind:            asset.KindAsset,
			Hours:           500,
			Flights:         2000,
			LastMaintenance: now.AddDate(-2, 0, 0),
			HasUsage:        true,
		}

		result := evaluator.Evaluate(snap, plan, now)

		assert.Equal(t, vo.StatusOK, result.Status)
		assert.Empty(t, result.Triggered)
	})

	t.Run("hours below alert ratio yields ok", func(t *testing.T) {
		plan := mustPlan(t, 100, 0, 0)
		snap := asset.UsageSnapshot{EntityID: 1, Kind: asset.KindAsset, Hours: 50, HasUsage: true}

		result := evaluator.Evaluate(snap, plan, now)

		assert.Equal(t, vo.StatusOK, result.Status)
		assert.Empty(t, result.Triggered)
	})

	t.Run("fraction at alert ratio boundary yields alert", func(t *testing.T) {
		plan := mustPlan(t, 100, 0, 0)
		snap := asset.UsageSnapshot{EntityID: 1, Kind: asset.KindAsset, Hours: 80, HasUsage: true}

		result := evaluator.Evaluate(snap, plan, now)

		assert.Equal(t, vo.StatusAlert, result.Status)
		require.Len(t, result.Triggered, 1)
		assert.Equal(t, vo.DimensionHours, result.Triggered[0].Dimension)
		assert.InDelta(t, 0.8, result.Triggered[0].Fraction, 1e-9)
	})

	t.Run("fraction at one yields due", func(t *testing.T) {
		plan := mustPlan(t, 100, 0, 0)
		snap := asset.UsageSnapshot{EntityID: 1, Kind: asset.KindAsset, Hours: 100, HasUsage: true}

		result := evaluator.Evaluate(snap, plan, now)

		assert.Equal(t, vo.StatusDue, result.Status)
	})

	t.Run("overrun asset is due with uncapped fractions", func(t *testing.T) {
		// cycle 100h/500fl/180d, last maintenance 200 days ago, 85h and 420
		// flights consumed: days is past its cycle, hours and flights are in
		// alert range.
		plan := mustPlan(t, 100, 500, 180)
		snap := asset.UsageSnapshot{
			EntityID:        1,
			Kind:            asset.KindAsset,
			Hours:           85,
			Flights:         420,
			LastMaintenance: now.AddDate(0, 0, -200),
			HasUsage:        true,
		}

		result := evaluator.Evaluate(snap, plan, now)

		assert.Equal(t, vo.StatusDue, result.Status)
		require.Len(t, result.Triggered, 3)

		byDim := map[vo.Dimension]TriggeredDimension{}
		for _, td := range result.Triggered {
			byDim[td.Dimension] = td
		}

		hours, ok := byDim[vo.DimensionHours]
		require.True(t, ok)
		assert.InDelta(t, 0.85, hours.Fraction, 1e-9)

		flights, ok := byDim[vo.DimensionFlights]
		require.True(t, ok)
		assert.InDelta(t, 0.84, flights.Fraction, 1e-9)

		days, ok := byDim[vo.DimensionDays]
		require.True(t, ok)
		assert.Greater(t, days.Fraction, 1.0)
	})

	t.Run("component with single flights threshold alerts at 0.95", func(t *testing.T) {
		plan := mustPlan(t, 0, 400, 0)
		snap := asset.UsageSnapshot{EntityID: 7, Kind: asset.KindComponent, Flights: 380, HasUsage: true}

		result := evaluator.Evaluate(snap, plan, now)

		assert.Equal(t, vo.StatusAlert, result.Status)
		require.Len(t, result.Triggered, 1)
		assert.Equal(t, vo.DimensionFlights, result.Triggered[0].Dimension)
		assert.InDelta(t, 0.95, result.Triggered[0].Fraction, 1e-9)
	})

	t.Run("days dimension skipped without a last maintenance clock", func(t *testing.T) {
		plan := mustPlan(t, 0, 0, 30)
		snap := asset.UsageSnapshot{EntityID: 1, Kind: asset.KindAsset, HasUsage: false}

		result := evaluator.Evaluate(snap, plan, now)

		assert.Equal(t, vo.StatusOK, result.Status)
		assert.True(t, result.NoUsageData)
	})

	t.Run("missing usage data is marked", func(t *testing.T) {
		plan := mustPlan(t, 100, 0, 0)
		snap := asset.UsageSnapshot{EntityID: 1, Kind: asset.KindAsset, HasUsage: false}

		result := evaluator.Evaluate(snap, plan, now)

		assert.Equal(t, vo.StatusOK, result.Status)
		assert.True(t, result.NoUsageData)
	})

	t.Run("evaluation is idempotent", func(t *testing.T) {
		plan := mustPlan(t, 100, 500, 180)
		snap := asset.UsageSnapshot{
			EntityID:        1,
			Kind:            asset.KindAsset,
			Hours:           85,
			Flights:         420,
			LastMaintenance: now.AddDate(0, 0, -200),
			HasUsage:        true,
		}

		first := evaluator.Evaluate(snap, plan, now)
		second := evaluator.Evaluate(snap, plan, now)

		assert.Equal(t, first, second)
	})
}

func TestEvaluator_EvaluateWithRatio(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	evaluator := NewEvaluator(0.8)
	plan := mustPlan(t, 100, 0, 0)
	snap := asset.UsageSnapshot{EntityID: 1, Kind: asset.KindAsset, Hours: 60, HasUsage: true}

	assert.Equal(t, vo.StatusOK, evaluator.Evaluate(snap, plan, now).Status)
	assert.Equal(t, vo.StatusAlert, evaluator.EvaluateWithRatio(snap, plan, now, 0.5).Status)
}

func TestNewEvaluator_InvalidRatioFallsBack(t *testing.T) {
	assert.Equal(t, DefaultAlertRatio, NewEvaluator(0).AlertRatio())
	assert.Equal(t, DefaultAlertRatio, NewEvaluator(-1).AlertRatio())
	assert.Equal(t, DefaultAlertRatio, NewEvaluator(1.5).AlertRatio())
	assert.Equal(t, 0.9, NewEvaluator(0.9).AlertRatio())
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skymaint/internal/domain/asset"
	"skymaint/internal/domain/maintenance"
	"skymaint/internal/shared/errors"
)

func TestAssetRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	t.Run("save and load round trip", func(t *testing.T) {
		planID := uint(3)
		a, err := asset.NewAsset(1, "UAV-001", "SN-100", &planID)
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, a))
		assert.NotZero(t, a.ID())

		found, err := repo.GetByID(ctx, a.ID(), 1)
		require.NoError(t, err)
		assert.Equal(t, "UAV-001", found.Code())
		assert.True(t, found.IsActive())
		require.NotNil(t, found.PlanID())
		assert.Equal(t, planID, *found.PlanID())
	})

	t.Run("code is unique per owner", func(t *testing.T) {
		a1, err := asset.NewAsset(1, "UAV-DUP", "SN-101", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a1))

		a2, err := asset.NewAsset(1, "UAV-DUP", "SN-102", nil)
		require.NoError(t, err)
		assert.Error(t, repo.Save(ctx, a2))

		// A different owner may reuse the code.
		a3, err := asset.NewAsset(2, "UAV-DUP", "SN-103", nil)
		require.NoError(t, err)
		assert.NoError(t, repo.Save(ctx, a3))
	})

	t.Run("update persists deactivation", func(t *testing.T) {
		a, err := asset.NewAsset(1, "UAV-002", "SN-200", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a))

		a.Deactivate()
		require.NoError(t, repo.Update(ctx, a))

		found, err := repo.GetByID(ctx, a.ID(), 1)
		require.NoError(t, err)
		assert.False(t, found.IsActive())
	})

	t.Run("lookup by code is owner scoped", func(t *testing.T) {
		a, err := asset.NewAsset(1, "UAV-003", "SN-300", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a))

		_, err = repo.GetByCode(ctx, "UAV-003", 2)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestComponentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComponentRepository(db)
	ctx := context.Background()

	seed := func(assetID uint, serial string) *asset.Component {
		c, err := asset.NewComponent(assetID, 1, serial, nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))
		return c
	}

	c1 := seed(10, "CMP-1")
	c2 := seed(10, "CMP-2")
	seed(11, "CMP-3")

	t.Run("lists components of an asset", func(t *testing.T) {
		components, err := repo.ListByAssetID(ctx, 10, 1)
		require.NoError(t, err)
		assert.Len(t, components, 2)
	})

	t.Run("list by ids skips foreign owners", func(t *testing.T) {
		components, err := repo.ListByIDs(ctx, []uint{c1.ID(), c2.ID()}, 2)
		require.NoError(t, err)
		assert.Empty(t, components)
	})

	t.Run("empty id list returns nothing", func(t *testing.T) {
		components, err := repo.ListByIDs(ctx, nil, 1)
		require.NoError(t, err)
		assert.Empty(t, components)
	})

	t.Run("deactivate by asset cascades to all its components", func(t *testing.T) {
		require.NoError(t, repo.DeactivateByAssetID(ctx, 10, 1))

		components, err := repo.ListByAssetID(ctx, 10, 1)
		require.NoError(t, err)
		for _, c := range components {
			assert.False(t, c.IsActive())
		}
	})
}

func TestPlanRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	t.Run("save and update thresholds", func(t *testing.T) {
		p, err := maintenance.NewPlan(1, "Rotor overhaul", 100, 500, 180)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))
		assert.NotZero(t, p.ID())

		require.NoError(t, p.UpdateThresholds(120, 0, 180))
		require.NoError(t, repo.Update(ctx, p))

		found, err := repo.GetByID(ctx, p.ID(), 1)
		require.NoError(t, err)
		assert.Equal(t, 120.0, found.CycleHours())
		assert.Zero(t, found.CycleFlights())
	})

	t.Run("list is owner scoped and ordered by name", func(t *testing.T) {
		p, err := maintenance.NewPlan(1, "Battery cycle", 0, 300, 0)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))

		plans, err := repo.List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, "Battery cycle", plans[0].Name())

		other, err := repo.List(ctx, 9)
		require.NoError(t, err)
		assert.Empty(t, other)
	})
}

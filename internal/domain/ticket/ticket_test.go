package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "skymaint/internal/domain/ticket/valueobjects"
)

func newOpenTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(1, 10, []uint{100, 101}, vo.TypeBasic, vo.PriorityLow, nil, nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(7))
	require.NoError(t, tk.SetNumber("M-20260801-0001"))
	return tk
}

func TestNewTicket(t *testing.T) {
	t.Run("starts open with no closed time", func(t *testing.T) {
		tk, err := NewTicket(1, 10, nil, vo.TypeBasic, vo.PriorityLow, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, vo.StatusOpen, tk.Status())
		assert.Nil(t, tk.ClosedAt())
		assert.Equal(t, 1, tk.Version())
		assert.Empty(t, tk.ComponentIDs())
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		_, err := NewTicket(1, 10, nil, vo.Type("weekly"), vo.PriorityLow, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		_, err := NewTicket(1, 10, nil, vo.TypeBasic, vo.Priority("urgent"), nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects zero component id", func(t *testing.T) {
		_, err := NewTicket(1, 10, []uint{0}, vo.TypeBasic, vo.PriorityLow, nil, nil)
		assert.Error(t, err)
	})

	t.Run("keeps initial assignee without leaving open", func(t *testing.T) {
		assignee := uint(3)
		tk, err := NewTicket(1, 10, nil, vo.TypeStandard, vo.PriorityHigh, &assignee, nil)
		require.NoError(t, err)

		assert.Equal(t, vo.StatusOpen, tk.Status())
		require.NotNil(t, tk.AssigneeID())
		assert.Equal(t, uint(3), *tk.AssigneeID())
	})
}

func TestTicket_Assign(t *testing.T) {
	t.Run("promotes open to assigned", func(t *testing.T) {
		tk := newOpenTicket(t)

		require.NoError(t, tk.Assign(3))

		assert.Equal(t, vo.StatusAssigned, tk.Status())
		require.NotNil(t, tk.AssigneeID())
		assert.Equal(t, uint(3), *tk.AssigneeID())
		assert.Equal(t, 2, tk.Version())
	})

	t.Run("leaves in_progress unchanged on reassign", func(t *testing.T) {
		tk := newOpenTicket(t)
		require.NoError(t, tk.Assign(3))
		require.NoError(t, tk.StartWork())

		require.NoError(t, tk.Assign(4))

		assert.Equal(t, vo.StatusInProgress, tk.Status())
		assert.Equal(t, uint(4), *tk.AssigneeID())
	})

	t.Run("fails on closed ticket", func(t *testing.T) {
		tk := newOpenTicket(t)
		require.NoError(t, tk.Close("done", time.Now()))

		assert.Error(t, tk.Assign(3))
		assert.Equal(t, vo.StatusClosed, tk.Status())
	})

	t.Run("rejects zero technician", func(t *testing.T) {
		tk := newOpenTicket(t)
		assert.Error(t, tk.Assign(0))
	})
}

func TestTicket_StartWork(t *testing.T) {
	t.Run("promotes assigned to in_progress", func(t *testing.T) {
		tk := newOpenTicket(t)
		require.NoError(t, tk.Assign(3))

		require.NoError(t, tk.StartWork())

		assert.Equal(t, vo.StatusInProgress, tk.Status())
	})

	t.Run("no-op on open ticket", func(t *testing.T) {
		tk := newOpenTicket(t)

		require.NoError(t, tk.StartWork())

		assert.Equal(t, vo.StatusOpen, tk.Status())
	})

	t.Run("fails on closed ticket", func(t *testing.T) {
		tk := newOpenTicket(t)
		require.NoError(t, tk.Close("done", time.Now()))

		assert.Error(t, tk.StartWork())
	})
}

func TestTicket_LoadedVersion(t *testing.T) {
	t.Run("stays at the loaded value through mutations", func(t *testing.T) {
		now := time.Now()
		tk, err := ReconstructTicket(
			7, "M-20260801-0001", 1, 10, nil,
			vo.TypeBasic, vo.PriorityLow, vo.StatusAssigned,
			nil, nil, "", 3, now, nil, now, now,
		)
		require.NoError(t, err)
		assert.Equal(t, 3, tk.LoadedVersion())

		require.NoError(t, tk.Assign(3))
		require.NoError(t, tk.StartWork())

		assert.Equal(t, 5, tk.Version())
		assert.Equal(t, 3, tk.LoadedVersion())
	})

	t.Run("unchanged when a mutation does not bump the version", func(t *testing.T) {
		tk := newOpenTicket(t)

		require.NoError(t, tk.StartWork())

		assert.Equal(t, 1, tk.Version())
		assert.Equal(t, 1, tk.LoadedVersion())
	})
}

func TestTicket_TouchUsesUTC(t *testing.T) {
	tk := newOpenTicket(t)

	require.NoError(t, tk.Assign(3))

	assert.Equal(t, time.UTC, tk.UpdatedAt().Location())
}

func TestTicket_Close(t *testing.T) {
	t.Run("open may close directly", func(t *testing.T) {
		tk := newOpenTicket(t)
		closedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, tk.Close("replaced rotor", closedAt))

		assert.Equal(t, vo.StatusClosed, tk.Status())
		require.NotNil(t, tk.ClosedAt())
		assert.Equal(t, closedAt, *tk.ClosedAt())
		assert.Equal(t, "replaced rotor", tk.ClosingNote())
		assert.Equal(t, 2, tk.Version())
	})

	t.Run("second close fails", func(t *testing.T) {
		tk := newOpenTicket(t)
		require.NoError(t, tk.Close("done", time.Now()))
		version := tk.Version()

		assert.Error(t, tk.Close("again", time.Now()))
		assert.Equal(t, version, tk.Version())
	})
}

func TestReconstructTicket_ClosedAtInvariant(t *testing.T) {
	now := time.Now()

	t.Run("closed status requires closed_at", func(t *testing.T) {
		_, err := ReconstructTicket(
			7, "M-20260801-0001", 1, 10, nil,
			vo.TypeBasic, vo.PriorityLow, vo.StatusClosed,
			nil, nil, "", 2, now, nil, now, now,
		)
		assert.Error(t, err)
	})

	t.Run("open status rejects closed_at", func(t *testing.T) {
		_, err := ReconstructTicket(
			7, "M-20260801-0001", 1, 10, nil,
			vo.TypeBasic, vo.PriorityLow, vo.StatusOpen,
			nil, nil, "", 1, now, &now, now, now,
		)
		assert.Error(t, err)
	})
}

func TestTicket_ReferencesComponent(t *testing.T) {
	tk := newOpenTicket(t)

	assert.True(t, tk.ReferencesComponent(100))
	assert.False(t, tk.ReferencesComponent(999))
}

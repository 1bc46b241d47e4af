package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skymaint/internal/domain/asset"
	"skymaint/internal/domain/ticket"
	tvo "skymaint/internal/domain/ticket/valueobjects"
	"skymaint/internal/shared/errors"
)

func storedTicket(t *testing.T, status tvo.Status, componentIDs []uint) *ticket.Ticket {
	t.Helper()

	now := time.Now()
	var closedAt *time.Time
	if status.IsClosed() {
		closedAt = &now
	}

	tk, err := ticket.ReconstructTicket(
		7, "M-20260801-0007", 5, 1, componentIDs,
		tvo.TypeBasic, tvo.PriorityLow, status,
		nil, nil, "", 1, now, closedAt, now, now,
	)
	require.NoError(t, err)
	return tk
}

func ticketRepoReturning(tk *ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint, ownerID uint) (*ticket.Ticket, error) {
			if tk == nil {
				return nil, errors.NewNotFoundError("ticket not found")
			}
			return tk, nil
		},
	}
}

func TestAssignTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes open to assigned with one event", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusOpen, nil)
		eventRepo := &mockEventRepository{}

		uc := NewAssignTicketUseCase(ticketRepoReturning(tk), eventRepo, &mockTxRunner{}, &mockEventDispatcher{}, newTestLogger())

		result, err := uc.Execute(ctx, AssignTicketCommand{OwnerID: 5, ActorID: 9, TicketID: 7, TechnicianID: 3})

		require.NoError(t, err)
		assert.Equal(t, "assigned", result.Ticket.Status)
		require.NotNil(t, result.Ticket.AssigneeID)
		assert.Equal(t, uint(3), *result.Ticket.AssigneeID)
		require.Len(t, eventRepo.appended, 1)
		assert.Equal(t, tvo.EventAssigned, eventRepo.appended[0].Type())
	})

	t.Run("closed ticket fails invalid state without events", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusClosed, nil)
		eventRepo := &mockEventRepository{}

		uc := NewAssignTicketUseCase(ticketRepoReturning(tk), eventRepo, &mockTxRunner{}, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(ctx, AssignTicketCommand{OwnerID: 5, ActorID: 9, TicketID: 7, TechnicianID: 3})

		assert.True(t, errors.IsInvalidStateError(err))
		assert.Empty(t, eventRepo.appended)
	})

	t.Run("unknown ticket fails not found", func(t *testing.T) {
		uc := NewAssignTicketUseCase(ticketRepoReturning(nil), &mockEventRepository{}, &mockTxRunner{}, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(ctx, AssignTicketCommand{OwnerID: 5, ActorID: 9, TicketID: 7, TechnicianID: 3})

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("lost write race surfaces conflict", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusOpen, nil)
		repo := ticketRepoReturning(tk)
		repo.UpdateFunc = func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.NewConflictError("ticket was modified concurrently")
		}

		uc := NewAssignTicketUseCase(repo, &mockEventRepository{}, &mockTxRunner{}, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(ctx, AssignTicketCommand{OwnerID: 5, ActorID: 9, TicketID: 7, TechnicianID: 3})

		assert.True(t, errors.IsConflictError(err))
	})
}

func TestCloseTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("closes and resets counters for asset and components", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusOpen, []uint{100, 101})
		eventRepo := &mockEventRepository{}
		ledger := &mockUsageLedger{}
		cache := &mockCacheInvalidator{}

		uc := NewCloseTicketUseCase(ticketRepoReturning(tk), eventRepo, ledger, &mockTxRunner{}, cache, &mockEventDispatcher{}, newTestLogger())

		result, err := uc.Execute(ctx, CloseTicketCommand{OwnerID: 5, ActorID: 9, TicketID: 7, Note: "rotor replaced"})

		require.NoError(t, err)
		assert.Equal(t, "closed", result.Ticket.Status)
		require.NotNil(t, result.Ticket.ClosedAt)

		require.Len(t, eventRepo.appended, 1)
		assert.Equal(t, tvo.EventClosed, eventRepo.appended[0].Type())

		require.Len(t, ledger.resets, 3)
		assert.Equal(t, asset.KindAsset, ledger.resets[0].Kind)
		assert.Equal(t, uint(1), ledger.resets[0].EntityID)
		assert.Equal(t, asset.KindComponent, ledger.resets[1].Kind)
		assert.Equal(t, uint(100), ledger.resets[1].EntityID)
		assert.Equal(t, asset.KindComponent, ledger.resets[2].Kind)
		assert.Equal(t, uint(101), ledger.resets[2].EntityID)

		assert.Equal(t, []uint{5}, cache.invalidated)
	})

	t.Run("already closed fails invalid state without events", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusClosed, nil)
		eventRepo := &mockEventRepository{}
		ledger := &mockUsageLedger{}

		uc := NewCloseTicketUseCase(ticketRepoReturning(tk), eventRepo, ledger, &mockTxRunner{}, nil, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(ctx, CloseTicketCommand{OwnerID: 5, ActorID: 9, TicketID: 7, Note: "again"})

		assert.True(t, errors.IsInvalidStateError(err))
		assert.Empty(t, eventRepo.appended)
		assert.Empty(t, ledger.resets)
	})

	t.Run("reset failure aborts the transaction", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusOpen, nil)
		ledger := &mockUsageLedger{
			ResetCountersFunc: func(ctx context.Context, kind asset.EntityKind, entityID uint, at time.Time) error {
				return errors.NewStorageError("reset failed", nil)
			},
		}
		cache := &mockCacheInvalidator{}

		uc := NewCloseTicketUseCase(ticketRepoReturning(tk), &mockEventRepository{}, ledger, &mockTxRunner{}, cache, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(ctx, CloseTicketCommand{OwnerID: 5, ActorID: 9, TicketID: 7, Note: "rotor replaced"})

		assert.True(t, errors.IsStorageError(err))
		assert.Empty(t, cache.invalidated)
	})
}

func TestAddReportUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("report on assigned ticket starts work", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusAssigned, nil)
		eventRepo := &mockEventRepository{}
		ledger := &mockUsageLedger{}

		uc := NewAddReportUseCase(ticketRepoReturning(tk), eventRepo, ledger, &mockTxRunner{}, nil, &mockEventDispatcher{}, newTestLogger())

		result, err := uc.Execute(ctx, AddReportCommand{OwnerID: 5, ActorID: 9, TicketID: 7, Text: "inspected rotor"})

		require.NoError(t, err)
		assert.Equal(t, "in_progress", result.Ticket.Status)
		require.Len(t, eventRepo.appended, 1)
		assert.Equal(t, tvo.EventReport, eventRepo.appended[0].Type())
		assert.Empty(t, ledger.resets)
	})

	t.Run("closing report closes and resets counters with one event", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusInProgress, []uint{100})
		eventRepo := &mockEventRepository{}
		ledger := &mockUsageLedger{}
		cache := &mockCacheInvalidator{}

		uc := NewAddReportUseCase(ticketRepoReturning(tk), eventRepo, ledger, &mockTxRunner{}, cache, &mockEventDispatcher{}, newTestLogger())

		result, err := uc.Execute(ctx, AddReportCommand{OwnerID: 5, ActorID: 9, TicketID: 7, Text: "replaced and tested", Close: true})

		require.NoError(t, err)
		assert.Equal(t, "closed", result.Ticket.Status)
		require.NotNil(t, result.Ticket.ClosedAt)

		require.Len(t, eventRepo.appended, 1)
		assert.Equal(t, tvo.EventReport, eventRepo.appended[0].Type())

		require.Len(t, ledger.resets, 2)
		assert.Equal(t, []uint{5}, cache.invalidated)
	})

	t.Run("closed ticket fails invalid state", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusClosed, nil)
		eventRepo := &mockEventRepository{}

		uc := NewAddReportUseCase(ticketRepoReturning(tk), eventRepo, &mockUsageLedger{}, &mockTxRunner{}, nil, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(ctx, AddReportCommand{OwnerID: 5, ActorID: 9, TicketID: 7, Text: "too late"})

		assert.True(t, errors.IsInvalidStateError(err))
		assert.Empty(t, eventRepo.appended)
	})

	t.Run("empty text fails validation", func(t *testing.T) {
		uc := NewAddReportUseCase(&mockTicketRepository{}, &mockEventRepository{}, &mockUsageLedger{}, &mockTxRunner{}, nil, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(ctx, AddReportCommand{OwnerID: 5, ActorID: 9, TicketID: 7, Text: "   "})

		assert.True(t, errors.IsValidationError(err))
	})
}

func TestAttachFileUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("stores attachment with one event and no status change", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusAssigned, nil)
		eventRepo := &mockEventRepository{}
		attachmentRepo := &mockAttachmentRepository{}

		uc := NewAttachFileUseCase(ticketRepoReturning(tk), eventRepo, attachmentRepo, &mockTxRunner{}, &mockEventDispatcher{}, newTestLogger())

		result, err := uc.Execute(ctx, AttachFileCommand{OwnerID: 5, ActorID: 9, TicketID: 7, FileRef: "s3://bucket/report.pdf", Description: "inspection photos"})

		require.NoError(t, err)
		assert.Equal(t, "s3://bucket/report.pdf", result.Attachment.FileRef)
		assert.Equal(t, tvo.StatusAssigned, tk.Status())
		require.Len(t, eventRepo.appended, 1)
		assert.Equal(t, tvo.EventAttachment, eventRepo.appended[0].Type())
	})

	t.Run("missing file reference fails validation", func(t *testing.T) {
		uc := NewAttachFileUseCase(&mockTicketRepository{}, &mockEventRepository{}, &mockAttachmentRepository{}, &mockTxRunner{}, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(ctx, AttachFileCommand{OwnerID: 5, ActorID: 9, TicketID: 7})

		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetTicketEventsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns events for an owned ticket", func(t *testing.T) {
		tk := storedTicket(t, tvo.StatusOpen, nil)
		e, err := ticket.NewEvent(7, tvo.EventCreated, "created", 9)
		require.NoError(t, err)
		require.NoError(t, e.SetID(1))

		eventRepo := &mockEventRepository{
			ListByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Event, error) {
				return []*ticket.Event{e}, nil
			},
		}

		uc := NewGetTicketEventsUseCase(ticketRepoReturning(tk), eventRepo, newTestLogger())

		result, err := uc.Execute(ctx, GetTicketEventsQuery{OwnerID: 5, TicketID: 7})

		require.NoError(t, err)
		require.Len(t, result.Events, 1)
		assert.Equal(t, "created", result.Events[0].Type)
	})

	t.Run("cross-owner ticket is not found", func(t *testing.T) {
		uc := NewGetTicketEventsUseCase(ticketRepoReturning(nil), &mockEventRepository{}, newTestLogger())

		_, err := uc.Execute(ctx, GetTicketEventsQuery{OwnerID: 6, TicketID: 7})

		assert.True(t, errors.IsNotFoundError(err))
	})
}

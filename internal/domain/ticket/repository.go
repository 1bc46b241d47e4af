package ticket

import (
	"context"

	vo "skymaint/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket listings. Nil fields are ignored.
type Filter struct {
	Status     *vo.Status
	Type       *vo.Type
	Priority   *vo.Priority
	AssetID    *uint
	AssigneeID *uint
}

// Repository persists tickets. All lookups are owner-scoped. Update is a
// compare-and-set on the version column; a lost race returns a conflict
// error rather than silently overwriting.
type Repository interface {
	GetByID(ctx context.Context, id uint, ownerID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string, ownerID uint) (*Ticket, error)
	List(ctx context.Context, ownerID uint, filter Filter, page, pageSize int) ([]*Ticket, int64, error)
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	CountByDate(ctx context.Context, dateKey string) (int64, error)
}

// EventRepository is the append-only audit trail. The contract deliberately
// has no update or delete.
type EventRepository interface {
	Append(ctx context.Context, e *Event) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Event, error)
}

// AttachmentRepository persists ticket attachments.
type AttachmentRepository interface {
	Save(ctx context.Context, a *Attachment) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
}

package ticket

import (
	"fmt"
	"time"

	vo "skymaint/internal/domain/ticket/valueobjects"
	"skymaint/internal/shared/biztime"
)

// ReasonEntry is one triggered dimension captured at ticket creation,
// persisted as the ticket's auto_reason snapshot.
type ReasonEntry struct {
	Dimension string  `json:"dimension"`
	Consumed  float64 `json:"consumed"`
	Threshold float64 `json:"threshold"`
	Fraction  float64 `json:"fraction"`
}

// Ticket is a unit of maintenance work opened against one asset and an
// arbitrary subset of its components.
type Ticket struct {
	id           uint
	number       string
	ownerID      uint
	assetID      uint
	componentIDs []uint
	ticketType   vo.Type
	priority     vo.Priority
	status       vo.Status
	assigneeID   *uint
	autoReason   []ReasonEntry
	closingNote  string
	version      int
	// loadedVersion is the version the aggregate was loaded at. It is the
	// compare-and-set baseline for updates and never moves after load, so
	// mutations that leave the version untouched still persist cleanly.
	loadedVersion int
	openedAt      time.Time
	closedAt      *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewTicket(
	ownerID uint,
	assetID uint,
	componentIDs []uint,
	ticketType vo.Type,
	priority vo.Priority,
	assigneeID *uint,
	autoReason []ReasonEntry,
) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if assigneeID != nil && *assigneeID == 0 {
		return nil, fmt.Errorf("assignee ID cannot be zero")
	}
	for _, cid := range componentIDs {
		if cid == 0 {
			return nil, fmt.Errorf("component ID cannot be zero")
		}
	}

	if componentIDs == nil {
		componentIDs = []uint{}
	}
	if autoReason == nil {
		autoReason = []ReasonEntry{}
	}

	now := biztime.NowUTC()

	return &Ticket{
		ownerID:       ownerID,
		assetID:       assetID,
		componentIDs:  componentIDs,
		ticketType:    ticketType,
		priority:      priority,
		status:        vo.StatusOpen,
		assigneeID:    assigneeID,
		autoReason:    autoReason,
		version:       1,
		loadedVersion: 1,
		openedAt:      now,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	ownerID uint,
	assetID uint,
	componentIDs []uint,
	ticketType vo.Type,
	priority vo.Priority,
	status vo.Status,
	assigneeID *uint,
	autoReason []ReasonEntry,
	closingNote string,
	version int,
	openedAt time.Time,
	closedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if status.IsClosed() != (closedAt != nil) {
		return nil, fmt.Errorf("closed_at must be set exactly when status is closed")
	}

	if componentIDs == nil {
		componentIDs = []uint{}
	}
	if autoReason == nil {
		autoReason = []ReasonEntry{}
	}

	return &Ticket{
		id:            id,
		number:        number,
		ownerID:       ownerID,
		assetID:       assetID,
		componentIDs:  componentIDs,
		ticketType:    ticketType,
		priority:      priority,
		status:        status,
		assigneeID:    assigneeID,
		autoReason:    autoReason,
		closingNote:   closingNote,
		version:       version,
		loadedVersion: version,
		openedAt:      openedAt,
		closedAt:      closedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) AssetID() uint {
	return t.assetID
}

func (t *Ticket) ComponentIDs() []uint {
	idsCopy := make([]uint, len(t.componentIDs))
	copy(idsCopy, t.componentIDs)
	return idsCopy
}

func (t *Ticket) Type() vo.Type {
	return t.ticketType
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) AutoReason() []ReasonEntry {
	reasonCopy := make([]ReasonEntry, len(t.autoReason))
	copy(reasonCopy, t.autoReason)
	return reasonCopy
}

func (t *Ticket) ClosingNote() string {
	return t.closingNote
}

func (t *Ticket) Version() int {
	return t.version
}

// LoadedVersion returns the version the aggregate carried when it was
// created or reconstructed from storage.
func (t *Ticket) LoadedVersion() int {
	return t.loadedVersion
}

func (t *Ticket) OpenedAt() time.Time {
	return t.openedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// Assign sets the technician. Open tickets are promoted to assigned; a
// ticket already being worked on keeps its status.
func (t *Ticket) Assign(technicianID uint) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}
	if t.status.IsClosed() {
		return fmt.Errorf("cannot assign a closed ticket")
	}

	t.assigneeID = &technicianID
	if t.status.IsOpen() {
		t.status = vo.StatusAssigned
	}
	t.touch()

	return nil
}

// StartWork promotes an assigned ticket to in_progress. Adding the first
// work report is what drives this in practice.
func (t *Ticket) StartWork() error {
	if t.status.IsClosed() {
		return fmt.Errorf("cannot start work on a closed ticket")
	}
	if t.status.IsAssigned() {
		t.status = vo.StatusInProgress
		t.touch()
	}
	return nil
}

// Close performs the terminal transition. The caller is responsible for
// resetting usage counters in the same transaction.
func (t *Ticket) Close(note string, at time.Time) error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is already closed")
	}
	if !t.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close ticket with status %s", t.status)
	}

	t.status = vo.StatusClosed
	t.closingNote = note
	closedAt := at
	t.closedAt = &closedAt
	t.updatedAt = at
	t.version++

	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
	t.version++
}

// ReferencesComponent reports whether the ticket covers the given component.
func (t *Ticket) ReferencesComponent(componentID uint) bool {
	for _, cid := range t.componentIDs {
		if cid == componentID {
			return true
		}
	}
	return false
}

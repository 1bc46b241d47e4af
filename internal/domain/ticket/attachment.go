package ticket

import (
	"fmt"
	"time"
)

// Attachment links an opaque file reference to a ticket. Upload mechanics
// live outside this core.
type Attachment struct {
	id          uint
	ticketID    uint
	description string
	fileRef     string
	uploadedBy  uint
	createdAt   time.Time
}

func NewAttachment(
	ticketID uint,
	description string,
	fileRef string,
	uploadedBy uint,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(fileRef) == 0 {
		return nil, fmt.Errorf("file reference is required")
	}
	if uploadedBy == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	return &Attachment{
		ticketID:    ticketID,
		description: description,
		fileRef:     fileRef,
		uploadedBy:  uploadedBy,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	description string,
	fileRef string,
	uploadedBy uint,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(fileRef) == 0 {
		return nil, fmt.Errorf("file reference is required")
	}

	return &Attachment{
		id:          id,
		ticketID:    ticketID,
		description: description,
		fileRef:     fileRef,
		uploadedBy:  uploadedBy,
		createdAt:   createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) Description() string {
	return a.description
}

func (a *Attachment) FileRef() string {
	return a.fileRef
}

func (a *Attachment) UploadedBy() uint {
	return a.uploadedBy
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

package ticket

import (
	"time"

	"github.com/gin-gonic/gin"

	"skymaint/internal/application/ticket/usecases"
	"skymaint/internal/shared/utils"
)

// CreateTicketRequest is the POST /api/tickets body.
type CreateTicketRequest struct {
	AssetID      uint   `json:"asset_id" binding:"required"`
	ComponentIDs []uint `json:"component_ids"`
	Type         string `json:"type" binding:"required"`
	Priority     string `json:"priority" binding:"required"`
	AssigneeID   *uint  `json:"assignee_id"`
	Note         string `json:"note"`
}

func (r *CreateTicketRequest) ToCommand(ownerID, actorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		OwnerID:      ownerID,
		ActorID:      actorID,
		AssetID:      r.AssetID,
		ComponentIDs: r.ComponentIDs,
		Type:         r.Type,
		Priority:     r.Priority,
		AssigneeID:   r.AssigneeID,
		Note:         r.Note,
	}
}

// AssignTicketRequest is the POST /api/tickets/:id/assign body.
type AssignTicketRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

// AddReportRequest is the POST /api/tickets/:id/reports body.
type AddReportRequest struct {
	Text      string     `json:"text" binding:"required"`
	WorkStart *time.Time `json:"work_start"`
	WorkEnd   *time.Time `json:"work_end"`
	Close     bool       `json:"close"`
}

// CloseTicketRequest is the POST /api/tickets/:id/close body.
type CloseTicketRequest struct {
	Note string `json:"note"`
}

// AttachFileRequest is the POST /api/tickets/:id/attachments body.
type AttachFileRequest struct {
	FileRef     string `json:"file_ref" binding:"required"`
	Description string `json:"description"`
}

// ListTicketsRequest carries the GET /api/tickets query filters.
type ListTicketsRequest struct {
	Status     string
	Type       string
	Priority   string
	AssetID    *uint
	AssigneeID *uint
	Page       int
	PageSize   int
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	req := &ListTicketsRequest{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Priority: c.Query("priority"),
	}

	if raw := c.Query("asset_id"); raw != "" {
		id, err := utils.ParseUintQuery(c, "asset_id")
		if err != nil {
			return nil, err
		}
		req.AssetID = &id
	}

	if raw := c.Query("assignee_id"); raw != "" {
		id, err := utils.ParseUintQuery(c, "assignee_id")
		if err != nil {
			return nil, err
		}
		req.AssigneeID = &id
	}

	req.Page, req.PageSize = utils.ParsePagination(c)
	return req, nil
}

func (r *ListTicketsRequest) ToQuery(ownerID uint) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		OwnerID:    ownerID,
		Status:     r.Status,
		Type:       r.Type,
		Priority:   r.Priority,
		AssetID:    r.AssetID,
		AssigneeID: r.AssigneeID,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}

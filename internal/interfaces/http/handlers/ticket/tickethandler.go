package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skymaint/internal/application/ticket/usecases"
	"skymaint/internal/shared/logger"
	"skymaint/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	assignTicketUC usecases.AssignTicketExecutor
	addReportUC    usecases.AddReportExecutor
	closeTicketUC  usecases.CloseTicketExecutor
	attachFileUC   usecases.AttachFileExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	getEventsUC    usecases.GetTicketEventsExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	addReportUC usecases.AddReportExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	attachFileUC usecases.AttachFileExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getEventsUC usecases.GetTicketEventsExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		assignTicketUC: assignTicketUC,
		addReportUC:    addReportUC,
		closeTicketUC:  closeTicketUC,
		attachFileUC:   attachFileUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		getEventsUC:    getEventsUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	ownerID, actorID, err := identity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(ownerID, actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Ticket, "Ticket created successfully")
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ownerID, err := utils.OwnerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(ownerID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ownerID, err := utils.OwnerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		OwnerID:  ownerID,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignTicket handles POST /api/tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ownerID, actorID, err := identity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		OwnerID:      ownerID,
		ActorID:      actorID,
		TicketID:     ticketID,
		TechnicianID: req.TechnicianID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result.Ticket)
}

// AddReport handles POST /api/tickets/:id/reports
func (h *TicketHandler) AddReport(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add report", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	ownerID, actorID, err := identity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addReportUC.Execute(c.Request.Context(), usecases.AddReportCommand{
		OwnerID:   ownerID,
		ActorID:   actorID,
		TicketID:  ticketID,
		Text:      req.Text,
		WorkStart: req.WorkStart,
		WorkEnd:   req.WorkEnd,
		Close:     req.Close,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Ticket, "Report recorded successfully")
}

// CloseTicket handles POST /api/tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ownerID, actorID, err := identity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.closeTicketUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		OwnerID:  ownerID,
		ActorID:  actorID,
		TicketID: ticketID,
		Note:     req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed successfully", result.Ticket)
}

// AttachFile handles POST /api/tickets/:id/attachments
func (h *TicketHandler) AttachFile(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AttachFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ownerID, actorID, err := identity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.attachFileUC.Execute(c.Request.Context(), usecases.AttachFileCommand{
		OwnerID:     ownerID,
		ActorID:     actorID,
		TicketID:    ticketID,
		FileRef:     req.FileRef,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Attachment, "Attachment added successfully")
}

// GetTicketEvents handles GET /api/tickets/:id/events
func (h *TicketHandler) GetTicketEvents(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ownerID, err := utils.OwnerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getEventsUC.Execute(c.Request.Context(), usecases.GetTicketEventsQuery{
		OwnerID:  ownerID,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Events)
}

func identity(c *gin.Context) (ownerID, actorID uint, err error) {
	ownerID, err = utils.OwnerID(c)
	if err != nil {
		return 0, 0, err
	}
	actorID, err = utils.ActorID(c)
	if err != nil {
		return 0, 0, err
	}
	return ownerID, actorID, nil
}

package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atende/internal/application/ticket/usecases"
	"atende/internal/interfaces/http/middleware"
	"atende/internal/shared/logger"
	"atende/internal/shared/utils"
)

type TicketHandler struct {
	createUC       usecases.CreateTicketExecutor
	getUC          usecases.GetTicketExecutor
	listMineUC     usecases.ListMyTicketsExecutor
	listAllUC      usecases.ListAllTicketsExecutor
	updateUC       usecases.UpdateTicketExecutor
	addCommentUC   usecases.AddCommentExecutor
	listCommentsUC usecases.ListCommentsExecutor
	listHistoryUC  usecases.ListHistoryExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	getUC usecases.GetTicketExecutor,
	listMineUC usecases.ListMyTicketsExecutor,
	listAllUC usecases.ListAllTicketsExecutor,
	updateUC usecases.UpdateTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	listHistoryUC usecases.ListHistoryExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:       createUC,
		getUC:          getUC,
		listMineUC:     listMineUC,
		listAllUC:      listAllUC,
		updateUC:       updateUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		listHistoryUC:  listHistoryUC,
		logger:         logger,
	}
}

// Create handles POST /tickets/create
func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create ticket request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := req.ToCommand(middleware.CurrentUserID(c))

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created successfully")
}

// MyTickets handles GET /tickets/my-tickets
func (h *TicketHandler) MyTickets(c *gin.Context) {
	p := utils.ParsePagination(c)
	cmd := usecases.ListMyTicketsCommand{
		OwnerID:  middleware.CurrentUserID(c),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	result, err := h.listMineUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, p.Page, p.PageSize)
}

// Get handles GET /tickets/:id
func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.GetTicketCommand{
		TicketID:    ticketID,
		RequesterID: middleware.CurrentUserID(c),
		IsAdmin:     middleware.IsAdminRequest(c),
	}

	result, err := h.getUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID: ticketID,
		AuthorID: middleware.CurrentUserID(c),
		IsAdmin:  middleware.IsAdminRequest(c),
		Comment:  req.Comment,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "comment added successfully")
}

// ListComments handles GET /tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ListCommentsCommand{
		TicketID:    ticketID,
		RequesterID: middleware.CurrentUserID(c),
		IsAdmin:     middleware.IsAdminRequest(c),
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListHistory handles GET /tickets/:id/history
func (h *TicketHandler) ListHistory(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ListHistoryCommand{
		TicketID:    ticketID,
		RequesterID: middleware.CurrentUserID(c),
		IsAdmin:     middleware.IsAdminRequest(c),
	}

	result, err := h.listHistoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAll handles GET /admin/tickets
func (h *TicketHandler) ListAll(c *gin.Context) {
	cmd := parseListAllTicketsCommand(c)

	result, err := h.listAllUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, cmd.Page, cmd.PageSize)
}

// Update handles PUT /admin/tickets/:id
func (h *TicketHandler) Update(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := req.ToCommand(ticketID, middleware.CurrentUserID(c))

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated successfully", result)
}

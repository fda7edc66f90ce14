package ticket

import (
	"github.com/gin-gonic/gin"

	"atende/internal/application/ticket/usecases"
	"atende/internal/shared/utils"
)

type CreateTicketRequest struct {
	Titulo     string `json:"titulo" binding:"required,max=200"`
	Descricao  string `json:"descricao" binding:"required,max=5000"`
	Categoria  string `json:"categoria" binding:"required,max=50"`
	Prioridade string `json:"prioridade"`
}

func (r *CreateTicketRequest) ToCommand(ownerID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		OwnerID:    ownerID,
		Titulo:     r.Titulo,
		Descricao:  r.Descricao,
		Categoria:  r.Categoria,
		Prioridade: r.Prioridade,
	}
}

type AddCommentRequest struct {
	Comment string `json:"comment" binding:"required,max=5000"`
}

type UpdateTicketRequest struct {
	Status     *string `json:"status"`
	Prioridade *string `json:"prioridade"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, changedBy uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:   ticketID,
		Status:     r.Status,
		Prioridade: r.Prioridade,
		ChangedBy:  changedBy,
	}
}

func parseListAllTicketsCommand(c *gin.Context) usecases.ListAllTicketsCommand {
	p := utils.ParsePagination(c)
	return usecases.ListAllTicketsCommand{
		Status:     c.Query("status"),
		Prioridade: c.Query("prioridade"),
		Search:     c.Query("search"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}

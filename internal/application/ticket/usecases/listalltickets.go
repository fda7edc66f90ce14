package usecases

import (
	"context"
	"strings"

	"atende/internal/application/ticket/dto"
	"atende/internal/domain/ticket"
	vo "atende/internal/domain/ticket/value_objects"
	"atende/internal/domain/user"
	"atende/internal/shared/biztime"
	"atende/internal/shared/errors"
	"atende/internal/shared/logger"
)

// ListAllTicketsCommand is the admin triage listing. DateFrom/DateTo are
// YYYY-MM-DD strings interpreted as inclusive day bounds in the business
// timezone.
type ListAllTicketsCommand struct {
	Status     string
	Prioridade string
	Search     string
	DateFrom   string
	DateTo     string
	Page       int
	PageSize   int
}

type ListAllTicketsResult struct {
	Tickets []dto.TicketDTO `json:"tickets"`
	Total   int64           `json:"total"`
}

type ListAllTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListAllTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListAllTicketsUseCase {
	return &ListAllTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListAllTicketsUseCase) Execute(ctx context.Context, cmd ListAllTicketsCommand) (*ListAllTicketsResult, error) {
	filter, err := uc.buildFilter(cmd)
	if err != nil {
		uc.logger.Warnw("invalid ticket list filter", "error", err)
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	owners, err := uc.loadOwners(ctx, tickets)
	if err != nil {
		uc.logger.Errorw("failed to load ticket owners", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	dtos := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, toTicketDTOWithOwner(t, owners[t.OwnerID()]))
	}

	return &ListAllTicketsResult{Tickets: dtos, Total: total}, nil
}

func (uc *ListAllTicketsUseCase) buildFilter(cmd ListAllTicketsCommand) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		Search:   strings.TrimSpace(cmd.Search),
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.Status != "" {
		status, err := vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return ticket.TicketFilter{}, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if cmd.Prioridade != "" {
		priority, err := vo.NewPriority(cmd.Prioridade)
		if err != nil {
			return ticket.TicketFilter{}, errors.NewValidationError("invalid prioridade filter")
		}
		filter.Priority = &priority
	}

	if cmd.DateFrom != "" {
		day, err := biztime.ParseDateInBizTimezone(cmd.DateFrom)
		if err != nil {
			return ticket.TicketFilter{}, errors.NewValidationError("invalid date_from, expected YYYY-MM-DD")
		}
		from := biztime.StartOfDayUTC(day)
		filter.CreatedFrom = &from
	}

	if cmd.DateTo != "" {
		day, err := biztime.ParseDateInBizTimezone(cmd.DateTo)
		if err != nil {
			return ticket.TicketFilter{}, errors.NewValidationError("invalid date_to, expected YYYY-MM-DD")
		}
		to := biztime.EndOfDayUTC(day)
		filter.CreatedTo = &to
	}

	return filter, nil
}

func (uc *ListAllTicketsUseCase) loadOwners(ctx context.Context, tickets []*ticket.Ticket) (map[uint]*user.User, error) {
	if len(tickets) == 0 {
		return nil, nil
	}

	seen := make(map[uint]bool, len(tickets))
	ids := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		if !seen[t.OwnerID()] {
			seen[t.OwnerID()] = true
			ids = append(ids, t.OwnerID())
		}
	}

	users, err := uc.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}
	return byID, nil
}

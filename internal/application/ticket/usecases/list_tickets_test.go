package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atende/internal/domain/ticket"
	vo "atende/internal/domain/ticket/value_objects"
	"atende/internal/domain/user"
	apperrors "atende/internal/shared/errors"
)

func reconstructTestUser(t *testing.T, id uint, email, name string) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, email, name, "hash", true, now, now)
	require.NoError(t, err)
	return u
}

func TestListMyTicketsUseCase_Execute(t *testing.T) {
	mine := reconstructTestTicket(t, 1, vo.StatusAberto)

	var gotFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			gotFilter = filter
			return []*ticket.Ticket{mine}, 1, nil
		},
	}

	useCase := NewListMyTicketsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListMyTicketsCommand{
		OwnerID:  10,
		Page:     1,
		PageSize: 20,
	})

	require.NoError(t, err)
	require.Len(t, result.Tickets, 1)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, uint(1), result.Tickets[0].ID)
	assert.Empty(t, result.Tickets[0].OwnerName)

	require.NotNil(t, gotFilter.OwnerID)
	assert.Equal(t, uint(10), *gotFilter.OwnerID)
}

func TestListMyTicketsUseCase_Execute_RequiresOwner(t *testing.T) {
	useCase := NewListMyTicketsUseCase(&mockTicketRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListMyTicketsCommand{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsUnauthorizedError(err))
}

func TestListAllTicketsUseCase_Execute_AnnotatesOwners(t *testing.T) {
	t1 := reconstructTestTicket(t, 1, vo.StatusAberto)
	t2 := reconstructTestTicket(t, 2, vo.StatusVisto)

	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			return []*ticket.Ticket{t1, t2}, 2, nil
		},
	}

	var requestedIDs []uint
	mockUsers := &mockUserRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			requestedIDs = ids
			return []*user.User{
				reconstructTestUser(t, 10, "dono@example.com", "Dono"),
			}, nil
		},
	}

	useCase := NewListAllTicketsUseCase(mockRepo, mockUsers, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListAllTicketsCommand{})

	require.NoError(t, err)
	require.Len(t, result.Tickets, 2)
	assert.Equal(t, "Dono", result.Tickets[0].OwnerName)
	assert.Equal(t, "dono@example.com", result.Tickets[0].OwnerEmail)
	// Both tickets share an owner; the lookup is deduplicated.
	assert.Equal(t, []uint{10}, requestedIDs)
}

func TestListAllTicketsUseCase_Execute_Filters(t *testing.T) {
	var gotFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	useCase := NewListAllTicketsUseCase(mockRepo, &mockUserRepository{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ListAllTicketsCommand{
		Status:     "aberto",
		Prioridade: "alta",
		Search:     "  fatura  ",
		DateFrom:   "2026-01-05",
		DateTo:     "2026-01-05",
	})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, vo.StatusAberto, *gotFilter.Status)
	require.NotNil(t, gotFilter.Priority)
	assert.Equal(t, vo.PriorityAlta, *gotFilter.Priority)
	assert.Equal(t, "fatura", gotFilter.Search)

	// Single-day range covers the whole business-timezone day.
	require.NotNil(t, gotFilter.CreatedFrom)
	require.NotNil(t, gotFilter.CreatedTo)
	assert.True(t, gotFilter.CreatedFrom.Before(*gotFilter.CreatedTo))
	assert.WithinDuration(t, *gotFilter.CreatedFrom, *gotFilter.CreatedTo, 24*time.Hour)
}

func TestListAllTicketsUseCase_Execute_InvalidFilters(t *testing.T) {
	tests := []struct {
		name string
		cmd  ListAllTicketsCommand
	}{
		{name: "bad status", cmd: ListAllTicketsCommand{Status: "pendente"}},
		{name: "bad prioridade", cmd: ListAllTicketsCommand{Prioridade: "minima"}},
		{name: "bad date_from", cmd: ListAllTicketsCommand{DateFrom: "05/01/2026"}},
		{name: "bad date_to", cmd: ListAllTicketsCommand{DateTo: "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewListAllTicketsUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestGetTicketUseCase_Execute_Access(t *testing.T) {
	tests := []struct {
		name        string
		requesterID uint
		isAdmin     bool
		wantErr     bool
	}{
		{name: "owner reads own ticket", requesterID: 10},
		{name: "admin reads any ticket", requesterID: 99, isAdmin: true},
		{name: "other user is refused", requesterID: 55, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := reconstructTestTicket(t, 1, vo.StatusAberto)

			mockRepo := &mockTicketRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return existing, nil
				},
			}

			useCase := NewGetTicketUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), GetTicketCommand{
				TicketID:    1,
				RequesterID: tt.requesterID,
				IsAdmin:     tt.isAdmin,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsForbiddenError(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(1), result.Ticket.ID)
			assert.Equal(t, uint(10), result.Ticket.UserID)
		})
	}
}

func TestListCommentsUseCase_Execute_OldestFirstPassthrough(t *testing.T) {
	existing := reconstructTestTicket(t, 1, vo.StatusFechado)

	c1, err := ticket.ReconstructComment(1, 1, 10, vo.AuthorRoleUser, "primeiro", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	c2, err := ticket.ReconstructComment(2, 1, 99, vo.AuthorRoleStaff, "segundo", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	mockTicketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockCommentRepo := &mockCommentRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{c1, c2}, nil
		},
	}

	// Reading a closed ticket's transcript stays allowed; only writes lock.
	useCase := NewListCommentsUseCase(mockTicketRepo, mockCommentRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsCommand{
		TicketID:    1,
		RequesterID: 10,
	})

	require.NoError(t, err)
	require.Len(t, result.Comments, 2)
	assert.Equal(t, "primeiro", result.Comments[0].Comment)
	assert.Equal(t, "user", result.Comments[0].AuthorRole)
	assert.Equal(t, "staff", result.Comments[1].AuthorRole)
}

func TestListHistoryUseCase_Execute(t *testing.T) {
	existing := reconstructTestTicket(t, 1, vo.StatusEmAndamento)

	h1, err := ticket.ReconstructStatusHistory(1, 1, vo.StatusAberto, vo.StatusVisto, 99, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	h2, err := ticket.ReconstructStatusHistory(2, 1, vo.StatusVisto, vo.StatusEmAndamento, 99, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	mockTicketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockHistoryRepo := &mockStatusHistoryRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.StatusHistory, error) {
			return []*ticket.StatusHistory{h1, h2}, nil
		},
	}

	useCase := NewListHistoryUseCase(mockTicketRepo, mockHistoryRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListHistoryCommand{
		TicketID:    1,
		RequesterID: 10,
	})

	require.NoError(t, err)
	require.Len(t, result.History, 2)
	assert.Equal(t, "aberto", result.History[0].OldStatus)
	assert.Equal(t, "visto", result.History[0].NewStatus)
	assert.Equal(t, "em_andamento", result.History[1].NewStatus)
}

func TestListHistoryUseCase_Execute_OtherUserForbidden(t *testing.T) {
	existing := reconstructTestTicket(t, 1, vo.StatusAberto)

	mockTicketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	useCase := NewListHistoryUseCase(mockTicketRepo, &mockStatusHistoryRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListHistoryCommand{
		TicketID:    1,
		RequesterID: 55,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsForbiddenError(err))
}

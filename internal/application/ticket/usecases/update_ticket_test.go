package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atende/internal/domain/ticket"
	vo "atende/internal/domain/ticket/value_objects"
	apperrors "atende/internal/shared/errors"
)

func reconstructTestTicket(t *testing.T, id uint, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()
	created := time.Now().UTC().Add(-time.Hour)
	tk, err := ticket.ReconstructTicket(
		id, 10, "titulo", "descricao", "conta",
		vo.PriorityMedia, status, created, created,
	)
	require.NoError(t, err)
	return tk
}

func strPtr(s string) *string {
	return &s
}

func TestUpdateTicketUseCase_Execute_StatusChangeWritesHistory(t *testing.T) {
	existing := reconstructTestTicket(t, 1, vo.StatusAberto)

	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}

	var savedHistory *ticket.StatusHistory
	mockHistory := &mockStatusHistoryRepository{
		SaveFunc: func(ctx context.Context, h *ticket.StatusHistory) error {
			savedHistory = h
			return nil
		},
	}

	notified := false
	notifier := &mockNotifier{
		NotifyStatusChangeFunc: func(ctx context.Context, tk *ticket.Ticket, old vo.TicketStatus) error {
			notified = true
			assert.Equal(t, vo.StatusAberto, old)
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, mockHistory, &mockTransactor{}, notifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:  1,
		Status:    strPtr("em_andamento"),
		ChangedBy: 99,
	})

	require.NoError(t, err)
	assert.Equal(t, "em_andamento", result.Status)
	require.NotNil(t, updated)

	require.NotNil(t, savedHistory)
	assert.Equal(t, vo.StatusAberto, savedHistory.OldStatus())
	assert.Equal(t, vo.StatusEmAndamento, savedHistory.NewStatus())
	assert.Equal(t, uint(99), savedHistory.ChangedBy())
	assert.True(t, notified)
}

func TestUpdateTicketUseCase_Execute_SameStatusWritesNoHistory(t *testing.T) {
	existing := reconstructTestTicket(t, 1, vo.StatusVisto)

	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	historySaved := false
	mockHistory := &mockStatusHistoryRepository{
		SaveFunc: func(ctx context.Context, h *ticket.StatusHistory) error {
			historySaved = true
			return nil
		},
	}

	notified := false
	notifier := &mockNotifier{
		NotifyStatusChangeFunc: func(ctx context.Context, tk *ticket.Ticket, old vo.TicketStatus) error {
			notified = true
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, mockHistory, &mockTransactor{}, notifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:  1,
		Status:    strPtr("visto"),
		ChangedBy: 99,
	})

	require.NoError(t, err)
	assert.Equal(t, "visto", result.Status)
	assert.False(t, historySaved)
	assert.False(t, notified)
}

func TestUpdateTicketUseCase_Execute_PriorityOnlyWritesNoHistory(t *testing.T) {
	existing := reconstructTestTicket(t, 1, vo.StatusAberto)

	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	historySaved := false
	mockHistory := &mockStatusHistoryRepository{
		SaveFunc: func(ctx context.Context, h *ticket.StatusHistory) error {
			historySaved = true
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, mockHistory, &mockTransactor{}, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   1,
		Prioridade: strPtr("alta"),
		ChangedBy:  99,
	})

	require.NoError(t, err)
	assert.Equal(t, "alta", result.Prioridade)
	assert.Equal(t, "aberto", result.Status)
	assert.False(t, historySaved)
}

func TestUpdateTicketUseCase_Execute_ReopenClosedTicket(t *testing.T) {
	existing := reconstructTestTicket(t, 1, vo.StatusFechado)

	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	var savedHistory *ticket.StatusHistory
	mockHistory := &mockStatusHistoryRepository{
		SaveFunc: func(ctx context.Context, h *ticket.StatusHistory) error {
			savedHistory = h
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, mockHistory, &mockTransactor{}, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:  1,
		Status:    strPtr("aberto"),
		ChangedBy: 99,
	})

	require.NoError(t, err)
	assert.Equal(t, "aberto", result.Status)
	require.NotNil(t, savedHistory)
	assert.Equal(t, vo.StatusFechado, savedHistory.OldStatus())
}

func TestUpdateTicketUseCase_Execute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		cmd  UpdateTicketCommand
	}{
		{
			name: "nothing to update",
			cmd:  UpdateTicketCommand{TicketID: 1, ChangedBy: 99},
		},
		{
			name: "invalid status",
			cmd:  UpdateTicketCommand{TicketID: 1, Status: strPtr("encerrado"), ChangedBy: 99},
		},
		{
			name: "invalid prioridade",
			cmd:  UpdateTicketCommand{TicketID: 1, Prioridade: strPtr("critica"), ChangedBy: 99},
		},
		{
			name: "missing changed by",
			cmd:  UpdateTicketCommand{TicketID: 1, Status: strPtr("visto")},
		},
		{
			name: "missing ticket id",
			cmd:  UpdateTicketCommand{Status: strPtr("visto"), ChangedBy: 99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewUpdateTicketUseCase(&mockTicketRepository{}, &mockStatusHistoryRepository{}, &mockTransactor{}, nil, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestUpdateTicketUseCase_Execute_TicketNotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.New("record not found")
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockStatusHistoryRepository{}, &mockTransactor{}, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:  404,
		Status:    strPtr("visto"),
		ChangedBy: 99,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateTicketUseCase_Execute_NotifierFailureDoesNotFailUpdate(t *testing.T) {
	existing := reconstructTestTicket(t, 1, vo.StatusAberto)

	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	notifier := &mockNotifier{
		NotifyStatusChangeFunc: func(ctx context.Context, tk *ticket.Ticket, old vo.TicketStatus) error {
			return errors.New("smtp unreachable")
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockStatusHistoryRepository{}, &mockTransactor{}, notifier, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:  1,
		Status:    strPtr("resolvido"),
		ChangedBy: 99,
	})

	require.NoError(t, err)
	assert.Equal(t, "resolvido", result.Status)
}

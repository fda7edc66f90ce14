package usecases

import "context"

// Transactor runs a function inside a database transaction. Satisfied by
// db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error)
}

type ListMyTicketsExecutor interface {
	Execute(ctx context.Context, cmd ListMyTicketsCommand) (*ListMyTicketsResult, error)
}

type ListAllTicketsExecutor interface {
	Execute(ctx context.Context, cmd ListAllTicketsCommand) (*ListAllTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, cmd ListCommentsCommand) (*ListCommentsResult, error)
}

type ListHistoryExecutor interface {
	Execute(ctx context.Context, cmd ListHistoryCommand) (*ListHistoryResult, error)
}

package usecases

import "context"

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TicketCascade removes a user's tickets and the notes on them.
type TicketCascade interface {
	Execute(ctx context.Context, userID uint) (int64, error)
}

// NoteRemover removes the notes a user wrote on other users' tickets.
type NoteRemover interface {
	DeleteByUserID(ctx context.Context, userID uint) (int64, error)
}

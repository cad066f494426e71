package interfaces

import (
	"context"

	"discord_clerk/internal/domain/entities"
)

// IPointsRepository abstracts DynamoDB persistence for the infraction ledger.
//
// The ledger has two shapes: an append-only history of entries and a
// current-total projection keyed by user id. Append must commit the history
// row and the projection update together so the two can never be observed out
// of sync for the same user.

type IPointsRepository interface {
	// GetTotal returns the current projection value, 0 for unknown users.
	GetTotal(ctx context.Context, userID string) (int, error)
	// Append writes the entry and sets the user's projection to entry.NewTotal
	// in a single transaction.
	Append(ctx context.Context, entry entities.PointsEntry) error
	// History returns up to limit entries for the user, most recent first.
	History(ctx context.Context, userID string, limit int) ([]entities.PointsEntry, error)
	// ListTotals returns every user with a positive total.
	ListTotals(ctx context.Context) ([]entities.UserPoints, error)
}

package interfaces

import (
	"context"
	"time"

	"discord_clerk/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order plus the
// order-intake singleton.
//
// Lookup methods follow the convention of returning a zero-value entity (no
// error) when the record does not exist; the use case decides whether absence
// is an error.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	// SetChannelID attaches the discussion channel. Returns a zero-value order
	// when no order with that id exists.
	SetChannelID(ctx context.Context, id, channelID string) (entities.Order, error)
	// MarkTermsAccepted flips terms_accepted and moves the order to
	// in_progress. Returns a zero-value order when no order with that id
	// exists.
	MarkTermsAccepted(ctx context.Context, id string, at time.Time) (entities.Order, error)

	// GetIntakeState returns the intake singleton; a zero-value state (empty
	// status) means it has never been set.
	GetIntakeState(ctx context.Context) (entities.IntakeState, error)
	SetIntakeState(ctx context.Context, state entities.IntakeState) error
}

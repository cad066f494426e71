package interfaces

import (
	"context"

	"discord_clerk/internal/domain/entities"
)

// ISubmissionRepository abstracts DynamoDB persistence for Submission.

type ISubmissionRepository interface {
	Create(ctx context.Context, s entities.Submission) (entities.Submission, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Submission, error)
}

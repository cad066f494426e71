package entities

import "time"

// PointsAction is the kind of mutation recorded in the infraction ledger.

type PointsAction string

const (
	PointsActionAdd    PointsAction = "add"
	PointsActionRemove PointsAction = "remove"
	PointsActionReset  PointsAction = "reset"
)

// PointsEntry is one immutable row of the infraction points ledger.
//
// Storage model (DynamoDB):
//   - history table PK: id
//   - GSI1 (user_id-index): user_id, sort key timestamp
//
// PreviousTotal/NewTotal snapshot the projection around the mutation so the
// full balance history can be reconstructed from the entries alone.
type PointsEntry struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	Action        PointsAction `json:"action"`
	Amount        int          `json:"amount"`
	Reason        string       `json:"reason"`
	ModeratorID   string       `json:"moderator_id"`
	Timestamp     time.Time    `json:"timestamp"`
	PreviousTotal int          `json:"previous_total"`
	NewTotal      int          `json:"new_total"`
}

// UserPoints is one row of the current-total projection.
type UserPoints struct {
	UserID string `json:"user_id"`
	Total  int    `json:"total"`
}

package response

import (
	"time"

	"discord_clerk/internal/domain/entities"
)

type PointsEntryResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Action        string    `json:"action"`
	Amount        int       `json:"amount"`
	Reason        string    `json:"reason"`
	ModeratorID   string    `json:"moderator_id"`
	Timestamp     time.Time `json:"timestamp"`
	PreviousTotal int       `json:"previous_total"`
	NewTotal      int       `json:"new_total"`
}

func FromPointsEntry(e entities.PointsEntry) PointsEntryResponse {
	return PointsEntryResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		Action:        string(e.Action),
		Amount:        e.Amount,
		Reason:        e.Reason,
		ModeratorID:   e.ModeratorID,
		Timestamp:     e.Timestamp,
		PreviousTotal: e.PreviousTotal,
		NewTotal:      e.NewTotal,
	}
}

type PointsSummaryResponse struct {
	UserID  string                `json:"user_id"`
	Total   int                   `json:"total"`
	History []PointsEntryResponse `json:"history"`
}

func FromPointsSummary(userID string, total int, history []entities.PointsEntry) PointsSummaryResponse {
	entries := make([]PointsEntryResponse, 0, len(history))
	for _, e := range history {
		entries = append(entries, FromPointsEntry(e))
	}
	return PointsSummaryResponse{UserID: userID, Total: total, History: entries}
}

type LeaderboardRowResponse struct {
	UserID string `json:"user_id"`
	Total  int    `json:"total"`
}

func FromLeaderboard(rows []entities.UserPoints) []LeaderboardRowResponse {
	out := make([]LeaderboardRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, LeaderboardRowResponse{UserID: r.UserID, Total: r.Total})
	}
	return out
}

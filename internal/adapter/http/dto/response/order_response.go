package response

import (
	"time"

	"discord_clerk/internal/domain/entities"
)

type OrderResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	OrderType       string                 `json:"order_type"`
	Details         map[string]interface{} `json:"details,omitempty"`
	GuildID         string                 `json:"guild_id"`
	ChannelID       string                 `json:"channel_id,omitempty"`
	Status          string                 `json:"status"`
	TermsAccepted   bool                   `json:"terms_accepted"`
	TermsAcceptedAt *time.Time             `json:"terms_accepted_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		OrderType:       string(o.OrderType),
		Details:         o.Details,
		GuildID:         o.GuildID,
		ChannelID:       o.ChannelID,
		Status:          string(o.Status),
		TermsAccepted:   o.TermsAccepted,
		TermsAcceptedAt: o.TermsAcceptedAt,
		CreatedAt:       o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type IntakeStateResponse struct {
	Status    string    `json:"status"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromIntakeState(s entities.IntakeState) IntakeStateResponse {
	return IntakeStateResponse{
		Status:    string(s.Status),
		UpdatedBy: s.UpdatedBy,
		UpdatedAt: s.UpdatedAt,
	}
}

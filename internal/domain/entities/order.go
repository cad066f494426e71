package entities

import "time"

// OrderStatus represents the lifecycle of a commissioned design order.
//
// Domain notes:
//   - An order is created as pending_terms together with its private
//     discussion channel.
//   - It moves to in_progress when the requester accepts the Terms &
//     Conditions; fulfillment past that point is handled manually by the
//     design team, outside this service.

type OrderStatus string

const (
	OrderStatusPendingTerms OrderStatus = "pending_terms"
	OrderStatusInProgress   OrderStatus = "in_progress"
)

// OrderType enumerates the service categories offered by the design team.

type OrderType string

const (
	OrderTypeLiveries OrderType = "liveries"
	OrderTypeAvatars  OrderType = "avatars"
	OrderTypeELS      OrderType = "els"
	OrderTypeOthers   OrderType = "others"
)

// ValidOrderType reports whether t is one of the offered categories.
func ValidOrderType(t OrderType) bool {
	switch t {
	case OrderTypeLiveries, OrderTypeAvatars, OrderTypeELS, OrderTypeOthers:
		return true
	}
	return false
}

// IntakeStatus is the global switch controlling whether new orders may be
// placed. It is a singleton value, independent of individual orders.

type IntakeStatus string

const (
	IntakeStatusAvailable IntakeStatus = "available"
	IntakeStatusDelayed   IntakeStatus = "delayed"
	IntakeStatusClosed    IntakeStatus = "closed"
)

// ValidIntakeStatus reports whether s is a known intake status.
func ValidIntakeStatus(s IntakeStatus) bool {
	switch s {
	case IntakeStatusAvailable, IntakeStatusDelayed, IntakeStatusClosed:
		return true
	}
	return false
}

// IntakeState is the persisted intake singleton.
type IntakeState struct {
	Status    IntakeStatus `json:"status"`
	UpdatedBy string       `json:"updated_by,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Order is a commissioned unit of design work persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// ChannelID stays empty until the private discussion channel has been
// provisioned; once set it never changes. TermsAcceptedAt is nil until the
// requester accepts the terms.
type Order struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	OrderType       OrderType              `json:"order_type"`
	Details         map[string]interface{} `json:"details,omitempty"`
	GuildID         string                 `json:"guild_id"`
	ChannelID       string                 `json:"channel_id,omitempty"`
	Status          OrderStatus            `json:"status"`
	TermsAccepted   bool                   `json:"terms_accepted"`
	TermsAcceptedAt *time.Time             `json:"terms_accepted_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrdersClosed           = errors.New("orders are currently closed")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrInvalidOrderUserID     = errors.New("invalid order user id")
	ErrInvalidOrderGuildID    = errors.New("invalid guild id")
	ErrInvalidOrderType       = errors.New("invalid order type")
	ErrInvalidIntakeStatus    = errors.New("invalid intake status")
	ErrInvalidChannelID       = errors.New("invalid channel id")
	ErrChannelAlreadyAttached = errors.New("order already has a discussion channel")
	ErrTermsAlreadyAccepted   = errors.New("terms already accepted for this order")
	ErrChannelProvisioning    = errors.New("failed to provision order channel")
)

// AcceptTermsCustomIDPrefix prefixes the component custom id posted with the
// terms message; the selection intake strips it to recover the order id.
const AcceptTermsCustomIDPrefix = "accept_terms_"

// PlacedOrder is the outcome of a successful order placement.
//
// Warnings report non-fatal side-effect failures (member add, terms message)
// that happened after the order and its channel already existed.
type PlacedOrder struct {
	Order    entities.Order
	Warnings []string
}

// IOrderUseCase drives the commissioned-order lifecycle:
// pending_terms -> in_progress, gated on terms acceptance, plus the global
// intake switch consulted before any new order.

type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, userID string, orderType entities.OrderType, details map[string]interface{}, guildID string) (PlacedOrder, error)
	AttachChannel(ctx context.Context, orderID, channelID string) (entities.Order, error)
	AcceptTerms(ctx context.Context, orderID, userID string) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	SetIntakeStatus(ctx context.Context, status entities.IntakeStatus, actorID string) (entities.IntakeState, error)
	IntakeStatus(ctx context.Context) (entities.IntakeState, error)
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	gateway interfaces.IPlatformGateway

	// orderLocks serializes attach/accept per order id.
	mu         sync.Mutex
	orderLocks map[string]*sync.Mutex
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, gateway interfaces.IPlatformGateway) *OrderUseCase {
	return &OrderUseCase{
		repo:       repo,
		gateway:    gateway,
		orderLocks: make(map[string]*sync.Mutex),
	}
}

func (u *OrderUseCase) lockOrder(orderID string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.orderLocks[orderID]
	if !ok {
		l = &sync.Mutex{}
		u.orderLocks[orderID] = l
	}
	return l
}

// PlaceOrder creates the order, provisions its private discussion channel and
// posts the Terms & Conditions there.
//
// The order record is the authoritative state: if channel provisioning fails
// the order survives without a channel and ErrChannelProvisioning is
// returned (staff can re-provision manually). Later side effects only degrade
// to warnings.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, userID string, orderType entities.OrderType, details map[string]interface{}, guildID string) (PlacedOrder, error) {
	userID = strings.TrimSpace(userID)
	guildID = strings.TrimSpace(guildID)
	if userID == "" {
		return PlacedOrder{}, ErrInvalidOrderUserID
	}
	if guildID == "" {
		return PlacedOrder{}, ErrInvalidOrderGuildID
	}
	if !entities.ValidOrderType(orderType) {
		return PlacedOrder{}, ErrInvalidOrderType
	}

	intake, err := u.IntakeStatus(ctx)
	if err != nil {
		return PlacedOrder{}, err
	}
	if intake.Status == entities.IntakeStatusClosed {
		return PlacedOrder{}, ErrOrdersClosed
	}

	order := entities.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		OrderType: orderType,
		Details:   details,
		GuildID:   guildID,
		Status:    entities.OrderStatusPendingTerms,
		CreatedAt: time.Now().UTC(),
	}
	order, err = u.repo.Create(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] create failed user_id=%s type=%s err=%v", userID, orderType, err)
		return PlacedOrder{}, err
	}
	log.Printf("[order][usecase] created order_id=%s user_id=%s type=%s", order.ID, userID, orderType)

	channelName := fmt.Sprintf("order-%s-%s", orderType, shortID(order.ID))
	channelID, err := u.gateway.CreatePrivateChannel(ctx, guildID, channelName)
	if err != nil {
		log.Printf("[order][usecase] channel provisioning failed order_id=%s err=%v", order.ID, err)
		return PlacedOrder{Order: order}, fmt.Errorf("%w: %v", ErrChannelProvisioning, err)
	}

	order, err = u.AttachChannel(ctx, order.ID, channelID)
	if err != nil {
		return PlacedOrder{Order: order}, err
	}

	var warnings []string
	if err := u.gateway.AddChannelMember(ctx, channelID, userID); err != nil {
		log.Printf("[order][usecase] member add failed order_id=%s channel_id=%s err=%v", order.ID, channelID, err)
		warnings = append(warnings, "Could not add you to the order channel; staff will invite you manually.")
	}
	if err := u.gateway.SendChannelMessage(ctx, channelID, termsMessage(order)); err != nil {
		log.Printf("[order][usecase] terms message failed order_id=%s channel_id=%s err=%v", order.ID, channelID, err)
		warnings = append(warnings, "Could not post the Terms & Conditions; staff will follow up in the order channel.")
	}

	return PlacedOrder{Order: order, Warnings: warnings}, nil
}

func (u *OrderUseCase) AttachChannel(ctx context.Context, orderID, channelID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	channelID = strings.TrimSpace(channelID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if channelID == "" {
		return entities.Order{}, ErrInvalidChannelID
	}

	l := u.lockOrder(orderID)
	l.Lock()
	defer l.Unlock()

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.ChannelID == channelID {
		// Re-attaching the same channel is idempotent.
		return order, nil
	}
	if order.ChannelID != "" {
		return entities.Order{}, ErrChannelAlreadyAttached
	}

	updated, err := u.repo.SetChannelID(ctx, orderID, channelID)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) AcceptTerms(ctx context.Context, orderID, userID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	userID = strings.TrimSpace(userID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if userID == "" {
		return entities.Order{}, ErrInvalidOrderUserID
	}

	l := u.lockOrder(orderID)
	l.Lock()
	defer l.Unlock()

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	// An order that exists but belongs to someone else is reported exactly
	// like a missing one.
	if order.ID == "" || order.UserID != userID {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.TermsAccepted {
		return entities.Order{}, ErrTermsAlreadyAccepted
	}

	updated, err := u.repo.MarkTermsAccepted(ctx, orderID, time.Now().UTC())
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] terms accepted order_id=%s user_id=%s", orderID, userID)
	return updated, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrderUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidOrderUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *OrderUseCase) SetIntakeStatus(ctx context.Context, status entities.IntakeStatus, actorID string) (entities.IntakeState, error) {
	actorID = strings.TrimSpace(actorID)
	if !entities.ValidIntakeStatus(status) {
		return entities.IntakeState{}, ErrInvalidIntakeStatus
	}
	if actorID == "" {
		return entities.IntakeState{}, ErrInvalidOrderUserID
	}

	state := entities.IntakeState{
		Status:    status,
		UpdatedBy: actorID,
		UpdatedAt: time.Now().UTC(),
	}
	if err := u.repo.SetIntakeState(ctx, state); err != nil {
		return entities.IntakeState{}, err
	}
	log.Printf("[order][usecase] intake status set status=%s actor=%s", status, actorID)
	return state, nil
}

func (u *OrderUseCase) IntakeStatus(ctx context.Context) (entities.IntakeState, error) {
	state, err := u.repo.GetIntakeState(ctx)
	if err != nil {
		return entities.IntakeState{}, err
	}
	if state.Status == "" {
		// Never-set intake defaults to open.
		state.Status = entities.IntakeStatusAvailable
	}
	return state, nil
}

func termsMessage(o entities.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Welcome <@%s>! Please review and accept our Terms & Conditions to proceed with your **%s** order.\n\n", o.UserID, o.OrderType)
	b.WriteString("**Payment** — payment is required before work begins.\n")
	b.WriteString("**Delivery** — standard delivery is 3-7 business days.\n")
	b.WriteString("**Revisions** — up to 3 free revisions included.\n")
	b.WriteString("**Copyright** — full commercial rights upon payment.\n")
	b.WriteString("**Refunds** — available before work begins.\n")
	b.WriteString("**Communication** — keep all order communication in this channel.\n\n")
	fmt.Fprintf(&b, "Accept with the button below. [%s%s]", AcceptTermsCustomIDPrefix, o.ID)
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

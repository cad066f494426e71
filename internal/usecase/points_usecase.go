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
	ErrInvalidPointsUserID = errors.New("invalid user id")
	ErrInvalidPointsActor  = errors.New("invalid moderator id")
	ErrInvalidAddAmount    = errors.New("add amount must be between 1 and 10")
	ErrInvalidRemoveAmount = errors.New("remove amount must be between 1 and 20")
)

const (
	// DefaultBanThreshold is the total at which an add triggers the auto-ban.
	DefaultBanThreshold = 16

	addAmountMin    = 1
	addAmountMax    = 10
	removeAmountMin = 1
	removeAmountMax = 20

	defaultHistoryLimit = 10
	defaultReason       = "No reason provided"
)

// PointsMutation is the outcome of one ledger mutation.
//
// Warning carries the report of a failed downstream enforcement action (the
// auto-ban). The ledger write it refers to has already committed and is never
// rolled back.
type PointsMutation struct {
	Entry         entities.PointsEntry
	PreviousTotal int
	NewTotal      int
	BanTriggered  bool
	Warning       string
}

// PointsSummary is a user's current total plus their recent history.
type PointsSummary struct {
	UserID  string
	Total   int
	History []entities.PointsEntry
}

// IPointsUseCase exposes the infraction ledger operations.
//
// These map to the moderation commands:
//   - /addpoints    => Add() (threshold enforcement included)
//   - /removepoints => Remove()
//   - /checkpoints  => Check()

type IPointsUseCase interface {
	Add(ctx context.Context, guildID, userID string, amount int, reason, actorID string) (PointsMutation, error)
	Remove(ctx context.Context, userID string, amount int, reason, actorID string) (PointsMutation, error)
	Reset(ctx context.Context, userID, reason, actorID string) (PointsMutation, error)
	Check(ctx context.Context, userID string) (PointsSummary, error)
	Leaderboard(ctx context.Context) ([]entities.UserPoints, error)
}

type PointsUseCase struct {
	repo      interfaces.IPointsRepository
	gateway   interfaces.IPlatformGateway
	threshold int

	// userLocks serializes read-modify-write per user so two interleaved
	// mutations cannot lose an update (see the atomicity contract on
	// IPointsRepository.Append for the storage side).
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

var _ IPointsUseCase = (*PointsUseCase)(nil)

func NewPointsUseCase(repo interfaces.IPointsRepository, gateway interfaces.IPlatformGateway, banThreshold int) *PointsUseCase {
	if banThreshold <= 0 {
		banThreshold = DefaultBanThreshold
	}
	return &PointsUseCase{
		repo:      repo,
		gateway:   gateway,
		threshold: banThreshold,
		userLocks: make(map[string]*sync.Mutex),
	}
}

func (u *PointsUseCase) lockUser(userID string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		u.userLocks[userID] = l
	}
	return l
}

func (u *PointsUseCase) Add(ctx context.Context, guildID, userID string, amount int, reason, actorID string) (PointsMutation, error) {
	userID = strings.TrimSpace(userID)
	actorID = strings.TrimSpace(actorID)
	if userID == "" {
		return PointsMutation{}, ErrInvalidPointsUserID
	}
	if actorID == "" {
		return PointsMutation{}, ErrInvalidPointsActor
	}
	if amount < addAmountMin || amount > addAmountMax {
		return PointsMutation{}, ErrInvalidAddAmount
	}

	mut, err := u.mutate(ctx, userID, entities.PointsActionAdd, amount, reason, actorID, func(current int) int {
		return current + amount
	})
	if err != nil {
		return PointsMutation{}, err
	}

	// Threshold enforcement runs after the ledger write committed. A ban
	// failure is reported as a warning on the successful mutation, never as a
	// rollback.
	if mut.NewTotal >= u.threshold {
		mut.BanTriggered = true
		banReason := fmt.Sprintf("Auto-ban: Reached %d infraction points", mut.NewTotal)
		if strings.TrimSpace(guildID) == "" {
			mut.Warning = fmt.Sprintf("User reached %d points but no guild was provided; please ban manually.", mut.NewTotal)
		} else if err := u.gateway.BanMember(ctx, guildID, userID, banReason); err != nil {
			log.Printf("[points][usecase] auto-ban failed user_id=%s total=%d err=%v", userID, mut.NewTotal, err)
			mut.Warning = fmt.Sprintf("User reached %d points but could not be auto-banned. Please ban manually.", mut.NewTotal)
		} else {
			log.Printf("[points][usecase] auto-ban executed user_id=%s total=%d", userID, mut.NewTotal)
		}
	}
	return mut, nil
}

func (u *PointsUseCase) Remove(ctx context.Context, userID string, amount int, reason, actorID string) (PointsMutation, error) {
	userID = strings.TrimSpace(userID)
	actorID = strings.TrimSpace(actorID)
	if userID == "" {
		return PointsMutation{}, ErrInvalidPointsUserID
	}
	if actorID == "" {
		return PointsMutation{}, ErrInvalidPointsActor
	}
	if amount < removeAmountMin || amount > removeAmountMax {
		return PointsMutation{}, ErrInvalidRemoveAmount
	}

	return u.mutate(ctx, userID, entities.PointsActionRemove, amount, reason, actorID, func(current int) int {
		// Totals never go negative.
		if amount >= current {
			return 0
		}
		return current - amount
	})
}

func (u *PointsUseCase) Reset(ctx context.Context, userID, reason, actorID string) (PointsMutation, error) {
	userID = strings.TrimSpace(userID)
	actorID = strings.TrimSpace(actorID)
	if userID == "" {
		return PointsMutation{}, ErrInvalidPointsUserID
	}
	if actorID == "" {
		return PointsMutation{}, ErrInvalidPointsActor
	}

	// The reset entry records the forfeited amount, i.e. the previous total.
	return u.mutateWithAmount(ctx, userID, entities.PointsActionReset, reason, actorID,
		func(current int) (amount, newTotal int) { return current, 0 })
}

func (u *PointsUseCase) mutate(ctx context.Context, userID string, action entities.PointsAction, amount int, reason, actorID string, apply func(current int) int) (PointsMutation, error) {
	return u.mutateWithAmount(ctx, userID, action, reason, actorID,
		func(current int) (int, int) { return amount, apply(current) })
}

func (u *PointsUseCase) mutateWithAmount(ctx context.Context, userID string, action entities.PointsAction, reason, actorID string, apply func(current int) (amount, newTotal int)) (PointsMutation, error) {
	if reason = strings.TrimSpace(reason); reason == "" {
		reason = defaultReason
	}

	l := u.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	current, err := u.repo.GetTotal(ctx, userID)
	if err != nil {
		return PointsMutation{}, err
	}
	amount, newTotal := apply(current)

	entry := entities.PointsEntry{
		ID:            uuid.NewString(),
		UserID:        userID,
		Action:        action,
		Amount:        amount,
		Reason:        reason,
		ModeratorID:   actorID,
		Timestamp:     time.Now().UTC(),
		PreviousTotal: current,
		NewTotal:      newTotal,
	}
	if err := u.repo.Append(ctx, entry); err != nil {
		log.Printf("[points][usecase] append failed user_id=%s action=%s err=%v", userID, action, err)
		return PointsMutation{}, err
	}
	log.Printf("[points][usecase] %s user_id=%s amount=%d previous=%d new=%d moderator=%s", action, userID, amount, current, newTotal, actorID)

	return PointsMutation{Entry: entry, PreviousTotal: current, NewTotal: newTotal}, nil
}

func (u *PointsUseCase) Check(ctx context.Context, userID string) (PointsSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return PointsSummary{}, ErrInvalidPointsUserID
	}

	total, err := u.repo.GetTotal(ctx, userID)
	if err != nil {
		return PointsSummary{}, err
	}
	history, err := u.repo.History(ctx, userID, defaultHistoryLimit)
	if err != nil {
		return PointsSummary{}, err
	}
	return PointsSummary{UserID: userID, Total: total, History: history}, nil
}

func (u *PointsUseCase) Leaderboard(ctx context.Context) ([]entities.UserPoints, error) {
	return u.repo.ListTotals(ctx)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"discord_clerk/internal/domain/entities"
	mock_interfaces "discord_clerk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPointsUseCase_Add(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewPointsUseCase(nil, nil, DefaultBanThreshold)
		_, err := uc.Add(context.Background(), "g-1", "   ", 5, "spam", "mod-1")
		if !errors.Is(err, ErrInvalidPointsUserID) {
			t.Fatalf("expected ErrInvalidPointsUserID, got %v", err)
		}
	})

	t.Run("invalid actor", func(t *testing.T) {
		uc := NewPointsUseCase(nil, nil, DefaultBanThreshold)
		_, err := uc.Add(context.Background(), "g-1", "u-1", 5, "spam", "")
		if !errors.Is(err, ErrInvalidPointsActor) {
			t.Fatalf("expected ErrInvalidPointsActor, got %v", err)
		}
	})

	t.Run("amount out of range", func(t *testing.T) {
		uc := NewPointsUseCase(nil, nil, DefaultBanThreshold)
		for _, amount := range []int{0, -1, 11} {
			_, err := uc.Add(context.Background(), "g-1", "u-1", amount, "spam", "mod-1")
			if !errors.Is(err, ErrInvalidAddAmount) {
				t.Fatalf("amount %d: expected ErrInvalidAddAmount, got %v", amount, err)
			}
		}
	})

	t.Run("repo get total error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPointsRepository(ctrl)
		uc := NewPointsUseCase(repo, nil, DefaultBanThreshold)

		repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(0, errors.New("db"))

		_, err := uc.Add(context.Background(), "g-1", "u-1", 5, "spam", "mod-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("add below threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPointsRepository(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewPointsUseCase(repo, gateway, DefaultBanThreshold)

		repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(3, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.PointsEntry{})).DoAndReturn(
			func(_ context.Context, e entities.PointsEntry) error {
				if e.ID == "" || e.UserID != "u-1" || e.Action != entities.PointsActionAdd {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.Amount != 5 || e.PreviousTotal != 3 || e.NewTotal != 8 {
					t.Fatalf("unexpected totals: %+v", e)
				}
				if e.Timestamp.IsZero() {
					t.Fatalf("expected timestamp")
				}
				return nil
			},
		)

		mut, err := uc.Add(context.Background(), "g-1", " u-1 ", 5, "spam", "mod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mut.BanTriggered || mut.Warning != "" {
			t.Fatalf("unexpected ban/warning: %+v", mut)
		}
		if mut.PreviousTotal != 3 || mut.NewTotal != 8 {
			t.Fatalf("unexpected totals: %+v", mut)
		}
	})

	t.Run("defaults empty reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPointsRepository(ctrl)
		uc := NewPointsUseCase(repo, nil, DefaultBanThreshold)

		repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(0, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.PointsEntry{})).DoAndReturn(
			func(_ context.Context, e entities.PointsEntry) error {
				if e.Reason != "No reason provided" {
					t.Fatalf("unexpected reason: %q", e.Reason)
				}
				return nil
			},
		)

		if _, err := uc.Add(context.Background(), "g-1", "u-1", 1, "  ", "mod-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reaching threshold bans once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPointsRepository(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewPointsUseCase(repo, gateway, DefaultBanThreshold)

		repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(8, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		gateway.EXPECT().BanMember(gomock.Any(), "g-1", "u-1", "Auto-ban: Reached 16 infraction points").Return(nil).Times(1)

		mut, err := uc.Add(context.Background(), "g-1", "u-1", 8, "raid", "mod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mut.PreviousTotal != 8 || mut.NewTotal != 16 || !mut.BanTriggered {
			t.Fatalf("unexpected mutation: %+v", mut)
		}
		if mut.Warning != "" {
			t.Fatalf("unexpected warning: %q", mut.Warning)
		}
	})

	t.Run("ban failure surfaces warning, never rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPointsRepository(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewPointsUseCase(repo, gateway, DefaultBanThreshold)

		repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(10, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		gateway.EXPECT().BanMember(gomock.Any(), "g-1", "u-1", gomock.Any()).Return(errors.New("missing permission"))

		mut, err := uc.Add(context.Background(), "g-1", "u-1", 6, "raid", "mod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !mut.BanTriggered || mut.Warning == "" {
			t.Fatalf("expected triggered ban with warning, got %+v", mut)
		}
		if mut.NewTotal != 16 {
			t.Fatalf("expected total 16, got %d", mut.NewTotal)
		}
	})

	t.Run("threshold without guild warns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPointsRepository(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewPointsUseCase(repo, gateway, DefaultBanThreshold)

		repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(15, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		mut, err := uc.Add(context.Background(), "  ", "u-1", 1, "raid", "mod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !mut.BanTriggered || mut.Warning == "" {
			t.Fatalf("expected warning without gateway call, got %+v", mut)
		}
	})
}

func TestPointsUseCase_AddBanExactlyAtThreshold(t *testing.T) {
	// Two adds for the same user: 6 then 10 crosses 16 exactly once.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPointsRepository(ctrl)
	gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
	uc := NewPointsUseCase(repo, gateway, DefaultBanThreshold)

	repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(0, nil)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	first, err := uc.Add(context.Background(), "g-1", "u-1", 6, "spam", "mod-1")
	if err != nil || first.BanTriggered {
		t.Fatalf("unexpected first add result: %+v err=%v", first, err)
	}

	repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(6, nil)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	gateway.EXPECT().BanMember(gomock.Any(), "g-1", "u-1", "Auto-ban: Reached 16 infraction points").Return(nil).Times(1)

	second, err := uc.Add(context.Background(), "g-1", "u-1", 10, "raid", "mod-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.PreviousTotal != 6 || second.NewTotal != 16 || !second.BanTriggered {
		t.Fatalf("unexpected totals: %+v", second)
	}
}

func TestPointsUseCase_Remove(t *testing.T) {
	t.Run("amount out of range", func(t *testing.T) {
		uc := NewPointsUseCase(nil, nil, DefaultBanThreshold)
		for _, amount := range []int{0, -3, 21} {
			_, err := uc.Remove(context.Background(), "u-1", amount, "appeal", "mod-1")
			if !errors.Is(err, ErrInvalidRemoveAmount) {
				t.Fatalf("amount %d: expected ErrInvalidRemoveAmount, got %v", amount, err)
			}
		}
	})

	t.Run("clamps at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPointsRepository(ctrl)
		uc := NewPointsUseCase(repo, nil, DefaultBanThreshold)

		repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(4, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PointsEntry) error {
				if e.NewTotal != 0 || e.PreviousTotal != 4 {
					t.Fatalf("expected clamp to zero, got %+v", e)
				}
				return nil
			},
		)

		mut, err := uc.Remove(context.Background(), "u-1", 10, "appeal", "mod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mut.NewTotal != 0 {
			t.Fatalf("expected total 0, got %d", mut.NewTotal)
		}
	})

	t.Run("partial removal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPointsRepository(ctrl)
		uc := NewPointsUseCase(repo, nil, DefaultBanThreshold)

		repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(9, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		mut, err := uc.Remove(context.Background(), "u-1", 4, "appeal", "mod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mut.PreviousTotal != 9 || mut.NewTotal != 5 {
			t.Fatalf("unexpected totals: %+v", mut)
		}
	})
}

func TestPointsUseCase_Reset(t *testing.T) {
	t.Run("records forfeited amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPointsRepository(ctrl)
		uc := NewPointsUseCase(repo, nil, DefaultBanThreshold)

		repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(12, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.PointsEntry) error {
				if e.Action != entities.PointsActionReset || e.Amount != 12 || e.NewTotal != 0 {
					t.Fatalf("unexpected reset entry: %+v", e)
				}
				return nil
			},
		)

		mut, err := uc.Reset(context.Background(), "u-1", "fresh start", "mod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mut.PreviousTotal != 12 || mut.NewTotal != 0 {
			t.Fatalf("unexpected totals: %+v", mut)
		}
	})

	t.Run("invalid user id", func(t *testing.T) {
		uc := NewPointsUseCase(nil, nil, DefaultBanThreshold)
		if _, err := uc.Reset(context.Background(), "", "fresh start", "mod-1"); !errors.Is(err, ErrInvalidPointsUserID) {
			t.Fatalf("expected ErrInvalidPointsUserID, got %v", err)
		}
	})
}

func TestPointsUseCase_Check(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewPointsUseCase(nil, nil, DefaultBanThreshold)
		if _, err := uc.Check(context.Background(), "  "); !errors.Is(err, ErrInvalidPointsUserID) {
			t.Fatalf("expected ErrInvalidPointsUserID, got %v", err)
		}
	})

	t.Run("returns total and history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPointsRepository(ctrl)
		uc := NewPointsUseCase(repo, nil, DefaultBanThreshold)

		history := []entities.PointsEntry{{ID: "e-1", UserID: "u-1", Action: entities.PointsActionAdd, Amount: 3}}
		repo.EXPECT().GetTotal(gomock.Any(), "u-1").Return(3, nil)
		repo.EXPECT().History(gomock.Any(), "u-1", defaultHistoryLimit).Return(history, nil)

		summary, err := uc.Check(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Total != 3 || len(summary.History) != 1 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})
}

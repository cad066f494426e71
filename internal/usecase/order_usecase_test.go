package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"discord_clerk/internal/domain/entities"
	mock_interfaces "discord_clerk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.PlaceOrder(context.Background(), "  ", entities.OrderTypeLiveries, nil, "g-1")
		if !errors.Is(err, ErrInvalidOrderUserID) {
			t.Fatalf("expected ErrInvalidOrderUserID, got %v", err)
		}
	})

	t.Run("invalid guild id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.PlaceOrder(context.Background(), "u-1", entities.OrderTypeLiveries, nil, "")
		if !errors.Is(err, ErrInvalidOrderGuildID) {
			t.Fatalf("expected ErrInvalidOrderGuildID, got %v", err)
		}
	})

	t.Run("invalid order type", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.PlaceOrder(context.Background(), "u-1", "tattoos", nil, "g-1")
		if !errors.Is(err, ErrInvalidOrderType) {
			t.Fatalf("expected ErrInvalidOrderType, got %v", err)
		}
	})

	t.Run("intake closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetIntakeState(gomock.Any()).Return(entities.IntakeState{Status: entities.IntakeStatusClosed}, nil)

		_, err := uc.PlaceOrder(context.Background(), "u-1", entities.OrderTypeLiveries, nil, "g-1")
		if !errors.Is(err, ErrOrdersClosed) {
			t.Fatalf("expected ErrOrdersClosed, got %v", err)
		}
	})

	t.Run("full provisioning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewOrderUseCase(repo, gateway)

		repo.EXPECT().GetIntakeState(gomock.Any()).Return(entities.IntakeState{}, nil)
		var created entities.Order
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.UserID != "u-1" || o.Status != entities.OrderStatusPendingTerms {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.TermsAccepted || o.CreatedAt.IsZero() {
					t.Fatalf("unexpected initial state: %+v", o)
				}
				created = o
				return o, nil
			},
		)
		gateway.EXPECT().CreatePrivateChannel(gomock.Any(), "g-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, name string) (string, error) {
				if !strings.HasPrefix(name, "order-liveries-") {
					t.Fatalf("unexpected channel name: %q", name)
				}
				return "c-1", nil
			},
		)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.Order, error) { return created, nil },
		)
		repo.EXPECT().SetChannelID(gomock.Any(), gomock.Any(), "c-1").DoAndReturn(
			func(_ context.Context, id, channelID string) (entities.Order, error) {
				o := created
				o.ChannelID = channelID
				return o, nil
			},
		)
		gateway.EXPECT().AddChannelMember(gomock.Any(), "c-1", "u-1").Return(nil)
		gateway.EXPECT().SendChannelMessage(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, content string) error {
				if !strings.Contains(content, AcceptTermsCustomIDPrefix+created.ID) {
					t.Fatalf("terms message missing accept id: %q", content)
				}
				return nil
			},
		)

		placed, err := uc.PlaceOrder(context.Background(), "u-1", entities.OrderTypeLiveries, map[string]interface{}{"note": "red"}, "g-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if placed.Order.ChannelID != "c-1" || len(placed.Warnings) != 0 {
			t.Fatalf("unexpected result: %+v", placed)
		}
	})

	t.Run("channel provisioning failure keeps order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewOrderUseCase(repo, gateway)

		repo.EXPECT().GetIntakeState(gomock.Any()).Return(entities.IntakeState{Status: entities.IntakeStatusAvailable}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		gateway.EXPECT().CreatePrivateChannel(gomock.Any(), "g-1", gomock.Any()).Return("", errors.New("missing permission"))

		placed, err := uc.PlaceOrder(context.Background(), "u-1", entities.OrderTypeAvatars, nil, "g-1")
		if !errors.Is(err, ErrChannelProvisioning) {
			t.Fatalf("expected ErrChannelProvisioning, got %v", err)
		}
		if placed.Order.ID == "" {
			t.Fatalf("expected created order to survive")
		}
	})

	t.Run("side effect failures degrade to warnings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewOrderUseCase(repo, gateway)

		var created entities.Order
		repo.EXPECT().GetIntakeState(gomock.Any()).Return(entities.IntakeState{Status: entities.IntakeStatusDelayed}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				created = o
				return o, nil
			},
		)
		gateway.EXPECT().CreatePrivateChannel(gomock.Any(), "g-1", gomock.Any()).Return("c-1", nil)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string) (entities.Order, error) { return created, nil },
		)
		repo.EXPECT().SetChannelID(gomock.Any(), gomock.Any(), "c-1").DoAndReturn(
			func(_ context.Context, id, channelID string) (entities.Order, error) {
				o := created
				o.ChannelID = channelID
				return o, nil
			},
		)
		gateway.EXPECT().AddChannelMember(gomock.Any(), "c-1", "u-1").Return(errors.New("boom"))
		gateway.EXPECT().SendChannelMessage(gomock.Any(), "c-1", gomock.Any()).Return(errors.New("boom"))

		placed, err := uc.PlaceOrder(context.Background(), "u-1", entities.OrderTypeOthers, nil, "g-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(placed.Warnings) != 2 {
			t.Fatalf("expected 2 warnings, got %v", placed.Warnings)
		}
	})
}

func TestOrderUseCase_AttachChannel(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{}, nil)

		_, err := uc.AttachChannel(context.Background(), "o-1", "c-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("same channel is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", ChannelID: "c-1"}, nil)

		order, err := uc.AttachChannel(context.Background(), "o-1", "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ChannelID != "c-1" {
			t.Fatalf("unexpected order: %+v", order)
		}
	})

	t.Run("different channel conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", ChannelID: "c-1"}, nil)

		_, err := uc.AttachChannel(context.Background(), "o-1", "c-2")
		if !errors.Is(err, ErrChannelAlreadyAttached) {
			t.Fatalf("expected ErrChannelAlreadyAttached, got %v", err)
		}
	})
}

func TestOrderUseCase_AcceptTerms(t *testing.T) {
	t.Run("wrong owner looks like missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", UserID: "someone-else"}, nil)

		_, err := uc.AcceptTerms(context.Background(), "o-1", "u-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("double accept rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", UserID: "u-1", TermsAccepted: true}, nil)

		_, err := uc.AcceptTerms(context.Background(), "o-1", "u-1")
		if !errors.Is(err, ErrTermsAlreadyAccepted) {
			t.Fatalf("expected ErrTermsAlreadyAccepted, got %v", err)
		}
	})

	t.Run("accept moves to in_progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", UserID: "u-1", Status: entities.OrderStatusPendingTerms}, nil)
		repo.EXPECT().MarkTermsAccepted(gomock.Any(), "o-1", gomock.AssignableToTypeOf(time.Time{})).DoAndReturn(
			func(_ context.Context, id string, at time.Time) (entities.Order, error) {
				return entities.Order{ID: id, UserID: "u-1", Status: entities.OrderStatusInProgress, TermsAccepted: true, TermsAcceptedAt: &at}, nil
			},
		)

		order, err := uc.AcceptTerms(context.Background(), "o-1", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.OrderStatusInProgress || !order.TermsAccepted || order.TermsAcceptedAt == nil {
			t.Fatalf("unexpected order: %+v", order)
		}
	})
}

func TestOrderUseCase_IntakeStatus(t *testing.T) {
	t.Run("never set defaults to available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetIntakeState(gomock.Any()).Return(entities.IntakeState{}, nil)

		state, err := uc.IntakeStatus(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Status != entities.IntakeStatusAvailable {
			t.Fatalf("expected available, got %s", state.Status)
		}
	})

	t.Run("set validates status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.SetIntakeStatus(context.Background(), "busy", "mod-1")
		if !errors.Is(err, ErrInvalidIntakeStatus) {
			t.Fatalf("expected ErrInvalidIntakeStatus, got %v", err)
		}
	})

	t.Run("set records actor and time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().SetIntakeState(gomock.Any(), gomock.AssignableToTypeOf(entities.IntakeState{})).DoAndReturn(
			func(_ context.Context, s entities.IntakeState) error {
				if s.Status != entities.IntakeStatusDelayed || s.UpdatedBy != "mod-1" || s.UpdatedAt.IsZero() {
					t.Fatalf("unexpected state: %+v", s)
				}
				return nil
			},
		)

		state, err := uc.SetIntakeStatus(context.Background(), entities.IntakeStatusDelayed, "mod-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Status != entities.IntakeStatusDelayed {
			t.Fatalf("unexpected state: %+v", state)
		}
	})
}

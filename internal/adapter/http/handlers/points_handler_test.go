package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"discord_clerk/internal/adapter/http/handlers/mocks"
	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPointsHandler_GetUserPoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPointsUseCase(ctrl)
		h := NewPointsHandler(uc)

		r := gin.New()
		r.GET("/v1/points/:user_id", h.GetUserPoints)

		uc.EXPECT().Check(gomock.Any(), gomock.Any()).Return(usecase.PointsSummary{}, usecase.ErrInvalidPointsUserID)

		req := httptest.NewRequest(http.MethodGet, "/v1/points/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPointsUseCase(ctrl)
		h := NewPointsHandler(uc)

		r := gin.New()
		r.GET("/v1/points/:user_id", h.GetUserPoints)

		uc.EXPECT().Check(gomock.Any(), "u-1").Return(usecase.PointsSummary{
			UserID:  "u-1",
			Total:   7,
			History: []entities.PointsEntry{{ID: "e-1", Action: entities.PointsActionAdd, Amount: 7}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/points/u-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			UserID  string `json:"user_id"`
			Total   int    `json:"total"`
			History []struct {
				ID string `json:"id"`
			} `json:"history"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.UserID != "u-1" || resp.Total != 7 || len(resp.History) != 1 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestPointsHandler_Leaderboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPointsUseCase(ctrl)
	h := NewPointsHandler(uc)

	r := gin.New()
	r.GET("/v1/points", h.Leaderboard)

	uc.EXPECT().Leaderboard(gomock.Any()).Return([]entities.UserPoints{
		{UserID: "u-1", Total: 12},
		{UserID: "u-2", Total: 4},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/points", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var rows []struct {
		UserID string `json:"user_id"`
		Total  int    `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(rows) != 2 || rows[0].UserID != "u-1" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"brightcover/internal/adapter/http/handlers/mocks"
	"brightcover/internal/domain/entities"
	"brightcover/internal/premium"
	"brightcover/internal/usecase"
	"brightcover/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func validQuoteBody() map[string]any {
	return map[string]any{
		"first_name":      "Asha",
		"last_name":       "Patel",
		"email":           "asha.patel@example.com",
		"phone":           "9876543210",
		"age":             30,
		"product":         "health",
		"plan_type":       "individual",
		"coverage_amount": 500000,
		"city_tier":       1,
	}
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation errors are all reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		body := map[string]any{
			"first_name": "Jo",
			"email":      "bad",
			"phone":      "123",
			"age":        17,
			"product":    "health",
			"plan_type":  "individual",
		}
		w := postJSON(r, "/v1/quotes", body)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if resp.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %q", resp.Code)
		}
		if len(resp.Errors) < 4 {
			t.Fatalf("expected at least 4 field errors, got %d: %v", len(resp.Errors), resp.Errors)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{
			Reference:        "QT240101120000AB12CD",
			EstimatedPremium: 5400,
			MonthlyPremium:   450,
			Status:           entities.QuoteStatusPending,
		}, nil)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)
		w := postJSON(r, "/v1/quotes", validQuoteBody())

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Success          bool   `json:"success"`
			QuoteID          string `json:"quote_id"`
			EstimatedPremium int64  `json:"estimated_premium"`
			Status           string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if !resp.Success || resp.QuoteID != "QT240101120000AB12CD" || resp.EstimatedPremium != 5400 || resp.Status != "pending" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("duplicate submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(entities.QuoteRequest{}, usecase.ErrDuplicateSubmission)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)
		w := postJSON(r, "/v1/quotes", validQuoteBody())

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(entities.QuoteRequest{}, errors.New("dynamodb unavailable"))

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)
		w := postJSON(r, "/v1/quotes", validQuoteBody())

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_EstimatePremium(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the preview without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Estimate(gomock.Any()).Return(premium.Quote{Annual: 5400, Monthly: 450}, nil)

		r := gin.New()
		r.POST("/v1/quotes/estimate", h.EstimatePremium)
		w := postJSON(r, "/v1/quotes/estimate", validQuoteBody())

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Success          bool  `json:"success"`
			EstimatedPremium int64 `json:"estimated_premium"`
			MonthlyPremium   int64 `json:"monthly_premium"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if !resp.Success || resp.EstimatedPremium != 5400 || resp.MonthlyPremium != 450 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("estimation error maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Estimate(gomock.Any()).Return(premium.Quote{}, premium.ErrCoverageRange)

		r := gin.New()
		r.POST("/v1/quotes/estimate", h.EstimatePremium)
		w := postJSON(r, "/v1/quotes/estimate", validQuoteBody())

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

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
	"brightcover/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func validContactBody() map[string]any {
	return map[string]any{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"phone":   "9876543210",
		"subject": "policy-question",
		"message": "I would like to understand the waiting period on my policy.",
	}
}

func TestContactHandler_CreateContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/v1/contact", h.CreateContact)

		req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewBufferString("not json"))
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
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/v1/contact", h.CreateContact)
		w := postJSON(r, "/v1/contact", map[string]any{
			"name":    "R",
			"email":   "bad",
			"subject": "gossip",
			"message": "short",
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if resp.Code != "VALIDATION_ERROR" || len(resp.Errors) != 4 {
			t.Fatalf("unexpected error response: %+v", resp)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ContactMessage{
			Reference: "CM240101120000AB12CD",
			Status:    entities.ContactStatusNew,
		}, nil)

		r := gin.New()
		r.POST("/v1/contact", h.CreateContact)
		w := postJSON(r, "/v1/contact", validContactBody())

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Success     bool   `json:"success"`
			ReferenceID string `json:"reference_id"`
			Status      string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if !resp.Success || resp.ReferenceID != "CM240101120000AB12CD" || resp.Status != "new" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(entities.ContactMessage{}, errors.New("dynamodb unavailable"))

		r := gin.New()
		r.POST("/v1/contact", h.CreateContact)
		w := postJSON(r, "/v1/contact", validContactBody())

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"electripro/internal/adapter/http/handlers/mocks"
	"electripro/internal/domain/entities"
	"electripro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func asOwner(ownerID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ownerContextKey, ownerID)
		c.Next()
	}
}

func savedEstimate() entities.Estimate {
	now := time.Now().UTC()
	return entities.Estimate{
		ID:           "est-1",
		OwnerID:      "owner-1",
		ProjectTitle: "Office Rewiring",
		ClientName:   "Kwame Mensah",
		Date:         "2026-08-29",
		Materials: []entities.MaterialLine{
			{ID: "m-1", Name: "Cable 2.5mm", Quantity: 2, UnitCost: 5.5, Total: 11},
		},
		Labor: []entities.LaborLine{
			{ID: "l-1", Description: "Installation", Hours: 3, HourlyRate: 65, Total: 195},
		},
		TaxRate:  8.5,
		Currency: entities.DefaultCurrency(),
		Status:   entities.EstimateStatusDraft,
		Totals: entities.Totals{
			MaterialsCost: 11,
			LaborCost:     195,
			Subtotal:      206,
			TaxAmount:     17.51,
			GrandTotal:    223.51,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", asOwner("owner-1"), h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown currency code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", asOwner("owner-1"), h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"project_title":"Job","currency_code":"XXX"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", asOwner("owner-1"), h.CreateEstimate)

		uc.EXPECT().Save(gomock.Any(), "owner-1", gomock.Any()).Return(entities.Estimate{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"project_title":"Job"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success computes totals before save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", asOwner("owner-1"), h.CreateEstimate)

		uc.EXPECT().Save(gomock.Any(), "owner-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" {
					t.Fatalf("expected generated id")
				}
				if e.Date == "" {
					t.Fatalf("expected issue date")
				}
				if e.Totals.GrandTotal != 223.51 {
					t.Fatalf("expected grand total 223.51, got %v", e.Totals.GrandTotal)
				}
				return e, nil
			})

		body := `{
			"project_title": "Office Rewiring",
			"client_name": "Kwame Mensah",
			"tax_rate": 8.5,
			"materials": [{"name": "Cable 2.5mm", "quantity": 2, "unit_cost": 5.5}],
			"labor": [{"description": "Installation", "hours": 3, "hourly_rate": 65}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["grand_total"] != 223.51 {
			t.Fatalf("expected grand_total 223.51, got %v", resp["grand_total"])
		}
		if resp["status"] != string(entities.EstimateStatusDraft) {
			t.Fatalf("expected draft status, got %v", resp["status"])
		}
	})
}

func TestEstimateHandler_UpdateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id", asOwner("owner-1"), h.UpdateEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "owner-1", "missing").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/missing", bytes.NewBufferString(`{"project_title":"Job"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("keeps id and date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.PUT("/v1/estimates/:id", asOwner("owner-1"), h.UpdateEstimate)

		existing := savedEstimate()
		existing.Date = "2026-01-15"
		uc.EXPECT().GetByID(gomock.Any(), "owner-1", "est-1").Return(existing, nil)
		uc.EXPECT().Save(gomock.Any(), "owner-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, e entities.Estimate) (entities.Estimate, error) {
				if e.ID != "est-1" {
					t.Fatalf("expected id est-1, got %q", e.ID)
				}
				if e.Date != "2026-01-15" {
					t.Fatalf("expected original date preserved, got %q", e.Date)
				}
				return e, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/estimates/est-1", bytes.NewBufferString(`{"project_title":"Renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id", asOwner("owner-1"), h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "owner-1", "missing").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id", asOwner("owner-1"), h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "owner-1", "est-1").Return(savedEstimate(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "est-1" {
			t.Fatalf("expected id est-1, got %v", resp["id"])
		}
	})
}

func TestEstimateHandler_ListEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates", asOwner("owner-1"), h.ListEstimates)

		uc.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := strings.TrimSpace(w.Body.String()); body != "[]" {
			t.Fatalf("expected empty json array, got %q", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates", asOwner("owner-1"), h.ListEstimates)

		uc.EXPECT().ListByOwner(gomock.Any(), "owner-1").Return([]entities.Estimate{savedEstimate()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 1 {
			t.Fatalf("expected 1 estimate, got %d", len(resp))
		}
	})
}

func TestEstimateHandler_DeleteEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", asOwner("owner-1"), h.DeleteEstimate)

		uc.EXPECT().DeleteByID(gomock.Any(), "owner-1", "missing").Return(usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", asOwner("owner-1"), h.DeleteEstimate)

		uc.EXPECT().DeleteByID(gomock.Any(), "owner-1", "est-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/stats", asOwner("owner-1"), h.GetStats)

		uc.EXPECT().StatsByOwner(gomock.Any(), "owner-1").Return(usecase.EstimateStats{Count: 2, TotalValue: 350, AverageValue: 175}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["count"] != float64(2) {
			t.Fatalf("expected count 2, got %v", resp["count"])
		}
		if resp["average_value"] != float64(175) {
			t.Fatalf("expected average 175, got %v", resp["average_value"])
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/stats", asOwner("owner-1"), h.GetStats)

		uc.EXPECT().StatsByOwner(gomock.Any(), "owner-1").Return(usecase.EstimateStats{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id/document", asOwner("owner-1"), h.GetDocument)

		uc.EXPECT().GetByID(gomock.Any(), "owner-1", "est-1").Return(savedEstimate(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !strings.Contains(resp["document"], "Office Rewiring") {
			t.Fatalf("expected document to mention the project title")
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/estimates/:id/document", asOwner("owner-1"), h.GetDocument)

		uc.EXPECT().GetByID(gomock.Any(), "owner-1", "missing").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/missing/document", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetShareMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.GET("/v1/estimates/:id/share", asOwner("owner-1"), h.GetShareMessage)

	uc.EXPECT().GetByID(gomock.Any(), "owner-1", "est-1").Return(savedEstimate(), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/estimates/est-1/share", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !strings.Contains(resp["message"], "Office Rewiring") {
		t.Fatalf("expected message to mention the project title")
	}
}

func TestMapEstimateError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid owner", usecase.ErrInvalidOwnerID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"invalid id", usecase.ErrInvalidEstimateID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"not found", usecase.ErrEstimateNotFound, http.StatusNotFound, "ESTIMATE_NOT_FOUND"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapEstimateError(tc.err)
			if appErr.HTTPStatus != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, appErr.HTTPStatus)
			}
			if appErr.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, appErr.Code)
			}
		})
	}
}

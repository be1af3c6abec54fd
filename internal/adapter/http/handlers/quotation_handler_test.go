package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"refrigeracao_os/internal/adapter/http/handlers/mocks"
	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"
	"refrigeracao_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func quotationRouter(h *QuotationHandler) *gin.Engine {
	r := gin.New()
	q := r.Group("/v1/quotations")
	q.POST("", h.Create)
	q.POST("/from-order/:order_id", h.CreateFromOrder)
	q.GET("/:id", h.Get)
	q.DELETE("/:id", h.Discard)
	q.POST("/:id/materials", h.AddMaterial)
	q.PATCH("/:id/materials/:index", h.UpdateMaterialQuantity)
	q.DELETE("/:id/materials/:index", h.RemoveMaterial)
	q.POST("/:id/services", h.AddService)
	q.PUT("/:id/services/:index", h.UpdateService)
	q.DELETE("/:id/services/:index", h.RemoveService)
	q.PUT("/:id/discount", h.SetDiscount)
	q.POST("/:id/reset", h.Reset)
	q.POST("/:id/submit", h.Submit)
	return r
}

func draftWithMaterial() pricing.Draft {
	q := pricing.NewQuotation()
	q.AddMaterialLine(entities.Material{ID: "m1", Name: "Tubo", Unit: "m", Price: decimal.RequireFromString("10")}, 2)
	return pricing.Draft{ID: "d1", State: pricing.DraftStateDraft, Quotation: q}
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuotationHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	r := quotationRouter(NewQuotationHandler(uc))

	uc.EXPECT().Create(gomock.Any()).Return(pricing.Draft{ID: "d1", State: pricing.DraftStateDraft, Quotation: pricing.NewQuotation()}, nil)

	w := doJSON(r, http.MethodPost, "/v1/quotations", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["id"] != "d1" || len(body["services"].([]any)) != 1 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestQuotationHandler_AddMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		uc.EXPECT().AddMaterial(gomock.Any(), "d1", "m1", 2).Return(draftWithMaterial(), nil)

		w := doJSON(r, http.MethodPost, "/v1/quotations/d1/materials", `{"material_id":"m1","quantity":2}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Totals struct {
				Total struct {
					Value string `json:"value"`
				} `json:"total"`
			} `json:"totals"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Totals.Total.Value != "20.00" {
			t.Fatalf("expected total 20.00, got %s", body.Totals.Total.Value)
		}
	})

	t.Run("missing material id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/quotations/d1/materials", `{"quantity":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("expired draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		uc.EXPECT().AddMaterial(gomock.Any(), "d1", "m1", 0).Return(pricing.Draft{}, usecase.ErrDraftNotFound)

		w := doJSON(r, http.MethodPost, "/v1/quotations/d1/materials", `{"material_id":"m1"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_LineIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		w := doJSON(r, http.MethodDelete, "/v1/quotations/d1/materials/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		uc.EXPECT().RemoveService(gomock.Any(), "d1", 5).Return(pricing.Draft{}, pricing.ErrLineIndexOutOfRange)

		w := doJSON(r, http.MethodDelete, "/v1/quotations/d1/services/5", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("quantity update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		uc.EXPECT().UpdateMaterialQuantity(gomock.Any(), "d1", 0, 0).Return(draftWithMaterial(), nil)

		w := doJSON(r, http.MethodPatch, "/v1/quotations/d1/materials/0", `{"quantity":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Services(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add service maps payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		want := entities.ServiceLine{Type: entities.ServiceCleaning, Category: entities.CategorySplit}
		uc.EXPECT().AddService(gomock.Any(), "d1", want).Return(draftWithMaterial(), nil)

		w := doJSON(r, http.MethodPost, "/v1/quotations/d1/services", `{"type":"cleaning","category":"split"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		uc.EXPECT().UpdateService(gomock.Any(), "d1", 0, gomock.Any()).Return(pricing.Draft{}, usecase.ErrInvalidServiceLine)

		w := doJSON(r, http.MethodPut, "/v1/quotations/d1/services/0", `{"type":"installation","category":"curtain","capacity":9000}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_SetDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("comma amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		uc.EXPECT().SetDiscount(gomock.Any(), "d1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, d decimal.Decimal) (pricing.Draft, error) {
				if !d.Equal(decimal.RequireFromString("5.5")) {
					t.Errorf("expected discount 5.5, got %s", d)
				}
				return draftWithMaterial(), nil
			})

		w := doJSON(r, http.MethodPut, "/v1/quotations/d1/discount", `{"discount":"5,5"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not a number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		w := doJSON(r, http.MethodPut, "/v1/quotations/d1/discount", `{"discount":"abc"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		uc.EXPECT().SetDiscount(gomock.Any(), "d1", gomock.Any()).Return(pricing.Draft{}, pricing.ErrNegativeDiscount)

		w := doJSON(r, http.MethodPut, "/v1/quotations/d1/discount", `{"discount":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := quotationRouter(NewQuotationHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), "d1", usecase.SubmitInput{CustomerName: "Ana", Address: "Rua A"}).
			Return(entities.Order{ID: "o1", CustomerName: "Ana", Status: entities.OrderStatusPending}, nil)

		w := doJSON(r, http.MethodPost, "/v1/quotations/d1/submit", `{"customer_name":" Ana ","address":"Rua A"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "o1" || body["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"customer required", pricing.ErrCustomerRequired, http.StatusUnprocessableEntity},
		{"cleaning category", pricing.ErrCleaningCategoryRequired, http.StatusUnprocessableEntity},
		{"already submitted", pricing.ErrQuotationNotDraft, http.StatusConflict},
		{"unknown customer", usecase.ErrCustomerNotFound, http.StatusUnprocessableEntity},
		{"too many material lines", pricing.ErrTooManyMaterialLines, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuotationUseCase(ctrl)
			r := quotationRouter(NewQuotationHandler(uc))

			uc.EXPECT().Submit(gomock.Any(), "d1", gomock.Any()).Return(entities.Order{}, tt.err)

			w := doJSON(r, http.MethodPost, "/v1/quotations/d1/submit", `{}`)
			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
		})
	}
}

func TestQuotationHandler_DiscardAndReset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	r := quotationRouter(NewQuotationHandler(uc))

	uc.EXPECT().Reset(gomock.Any(), "d1").Return(pricing.Draft{ID: "d1", State: pricing.DraftStateDraft, Quotation: pricing.NewQuotation()}, nil)
	uc.EXPECT().Discard(gomock.Any(), "d1").Return(nil)
	uc.EXPECT().CreateFromOrder(gomock.Any(), "missing").Return(pricing.Draft{}, usecase.ErrOrderNotFound)

	if w := doJSON(r, http.MethodPost, "/v1/quotations/d1/reset", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200 on reset, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/quotations/d1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on discard, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/quotations/from-order/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on re-edit of missing order, got %d", w.Code)
	}
}

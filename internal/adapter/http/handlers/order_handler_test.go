package handlers

import (
	"errors"
	"net/http"
	"testing"

	"refrigeracao_os/internal/adapter/http/handlers/mocks"
	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func orderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/orders", h.List)
	r.GET("/v1/orders/export.xlsx", h.Export)
	r.GET("/v1/orders/:id", h.GetByID)
	r.GET("/v1/orders/:id/document.pdf", h.Document)
	r.PATCH("/v1/orders/:id/status", h.UpdateStatus)
	return r
}

func TestOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{}, usecase.ErrOrderNotFound)

		if w := doJSON(r, http.MethodGet, "/v1/orders/o1", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1"}, nil)

		if w := doJSON(r, http.MethodGet, "/v1/orders/o1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := orderRouter(NewOrderHandler(uc))

	uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("scan failed"))

	if w := doJSON(r, http.MethodGet, "/v1/orders", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatusCompleted).
			Return(entities.Order{ID: "o1", Status: entities.OrderStatusCompleted}, nil)

		if w := doJSON(r, http.MethodPatch, "/v1/orders/o1/status", `{"status":"completed"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatus("cancelled")).
			Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		if w := doJSON(r, http.MethodPatch, "/v1/orders/o1/status", `{"status":"cancelled"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		if w := doJSON(r, http.MethodPatch, "/v1/orders/o1/status", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Files(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := orderRouter(NewOrderHandler(uc))

	uc.EXPECT().Document(gomock.Any(), "o1").Return([]byte("%PDF-1.3"), nil)
	uc.EXPECT().ExportSpreadsheet(gomock.Any()).Return([]byte("PK"), nil)

	w := doJSON(r, http.MethodGet, "/v1/orders/o1/document.pdf", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != contentTypePDF {
		t.Fatalf("expected pdf response, got %d %s", w.Code, w.Header().Get("Content-Type"))
	}

	w = doJSON(r, http.MethodGet, "/v1/orders/export.xlsx", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != contentTypeXLSX {
		t.Fatalf("expected xlsx response, got %d %s", w.Code, w.Header().Get("Content-Type"))
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gateway_reservas/internal/adapter/http/handlers/mocks"
	"gateway_reservas/internal/domain/entities"
	"gateway_reservas/internal/usecase"
	"gateway_reservas/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReservationRouter(uc usecase.IReservationUseCase) *gin.Engine {
	h := NewReservationHandler(uc)
	r := gin.New()
	g := r.Group("/reservation-gateway")
	g.GET("/unit", h.GetUnit)
	g.GET("/unit/status", h.GetUnitStatus)
	g.GET("/unit/history", h.GetUnitHistory)
	g.POST("/reserve", h.Reserve)
	g.POST("/release", h.Release)
	g.POST("/sold", h.MarkSold)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
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

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestReservationHandler_GetUnit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().LookupUnit(gomock.Any(), "RV-001").Return(entities.Unit{
			ID: "RV-001", Status: entities.SaleStatusAvailable, UpstreamStatus: "Disponível",
		}, nil)

		w := doRequest(newReservationRouter(uc), http.MethodGet, "/reservation-gateway/unit?unit_id=RV-001", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["unit_id"] != "RV-001" || body["status"] != "Available" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("rowname alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().LookupUnit(gomock.Any(), "RV-002").Return(entities.Unit{ID: "RV-002", Status: entities.SaleStatusSold}, nil)

		w := doRequest(newReservationRouter(uc), http.MethodGet, "/reservation-gateway/unit?rowname=RV-002", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing unit id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().LookupUnit(gomock.Any(), "").Return(entities.Unit{}, entities.NewValidationError(entities.OperationLookup, "", "unit_id is required"))

		w := doRequest(newReservationRouter(uc), http.MethodGet, "/reservation-gateway/unit", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_REQUEST" || body.Message != "unit_id is required" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().LookupUnit(gomock.Any(), "RV-404").Return(entities.Unit{}, &entities.GatewayError{
			Kind: entities.ErrNotFound, Operation: entities.OperationLookup, UnitID: "RV-404", StatusCode: 404,
		})

		w := doRequest(newReservationRouter(uc), http.MethodGet, "/reservation-gateway/unit?unit_id=RV-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "UNIT_NOT_FOUND" || body.Details["unit_id"] != "RV-404" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("transport error is 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().LookupUnit(gomock.Any(), "RV-001").Return(entities.Unit{},
			entities.NewTransportError(entities.OperationLookup, "RV-001", errors.New("dial tcp: connection refused")))

		w := doRequest(newReservationRouter(uc), http.MethodGet, "/reservation-gateway/unit?unit_id=RV-001", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "ERP_UNREACHABLE" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("configuration error is 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().LookupUnit(gomock.Any(), "RV-001").Return(entities.Unit{},
			entities.NewConfigurationError(entities.OperationLookup, "RV-001", "ERP base URL not configured"))

		w := doRequest(newReservationRouter(uc), http.MethodGet, "/reservation-gateway/unit?unit_id=RV-001", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "GATEWAY_NOT_CONFIGURED" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("upstream status passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().LookupUnit(gomock.Any(), "RV-001").Return(entities.Unit{}, &entities.GatewayError{
			Kind: entities.ErrUpstream, Operation: entities.OperationLookup, UnitID: "RV-001", StatusCode: 403, Message: "Not permitted",
		})

		w := doRequest(newReservationRouter(uc), http.MethodGet, "/reservation-gateway/unit?unit_id=RV-001", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "ERP_ERROR" || body.Message != "Not permitted" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestReservationHandler_GetUnitStatusAndHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().GetStatus(gomock.Any(), "RV-001").Return(entities.UnitStatus{UnitID: "RV-001", Status: entities.SaleStatusReserved, UpstreamStatus: "Reservado"}, nil)

		w := doRequest(newReservationRouter(uc), http.MethodGet, "/reservation-gateway/unit/status?unit_id=RV-001", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "Reserved" || body["upstream_status"] != "Reservado" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("history disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().History(gomock.Any(), "RV-001").Return(nil, usecase.ErrAuditDisabled)

		w := doRequest(newReservationRouter(uc), http.MethodGet, "/reservation-gateway/unit/history?unit_id=RV-001", "")
		if w.Code != http.StatusNotImplemented {
			t.Fatalf("expected 501, got %d", w.Code)
		}
	})

	t.Run("history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().History(gomock.Any(), "RV-001").Return([]entities.ReservationAudit{{ID: "a-1", Operation: entities.OperationReserve}}, nil)

		w := doRequest(newReservationRouter(uc), http.MethodGet, "/reservation-gateway/unit/history?unit_id=RV-001", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReservationHandler_Reserve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)

		w := doRequest(newReservationRouter(uc), http.MethodPost, "/reservation-gateway/reserve", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with holder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().Reserve(gomock.Any(), "RV-001", &entities.HolderMetadata{AgentName: "Ana", ClientName: "Bruno"}).
			Return(entities.UnitStatus{UnitID: "RV-001", Status: entities.SaleStatusReserved, ReservedBy: "Ana"}, nil)

		w := doRequest(newReservationRouter(uc), http.MethodPost, "/reservation-gateway/reserve",
			`{"unit_id":"RV-001","holder_metadata":{"agent_name":"Ana","client_name":"Bruno"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().Reserve(gomock.Any(), "RV-001", gomock.Nil()).Return(entities.UnitStatus{}, &entities.GatewayError{
			Kind:           entities.ErrConflict,
			Operation:      entities.OperationReserve,
			UnitID:         "RV-001",
			StatusCode:     200,
			Message:        "Unidade já vendida",
			ActualStatus:   entities.SaleStatusSold,
			UpstreamStatus: "Vendido",
		})

		w := doRequest(newReservationRouter(uc), http.MethodPost, "/reservation-gateway/reserve", `{"unit_id":"RV-001"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "RESERVATION_CONFLICT" || body.Message != "Unidade já vendida" {
			t.Fatalf("unexpected body %+v", body)
		}
		if body.Details["status"] != "Sold" || body.Details["upstream_status"] != "Vendido" || body.Details["operation"] != "reserve" {
			t.Fatalf("unexpected details %+v", body.Details)
		}
	})

	t.Run("upstream error without status code becomes 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().Reserve(gomock.Any(), "RV-001", gomock.Nil()).Return(entities.UnitStatus{}, &entities.GatewayError{
			Kind: entities.ErrUpstream, Operation: entities.OperationReserve, UnitID: "RV-001",
		})

		w := doRequest(newReservationRouter(uc), http.MethodPost, "/reservation-gateway/reserve", `{"rowname":"RV-001"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestReservationHandler_ReleaseAndSold(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("release", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().Release(gomock.Any(), "RV-001").Return(entities.UnitStatus{UnitID: "RV-001", Status: entities.SaleStatusAvailable}, nil)

		w := doRequest(newReservationRouter(uc), http.MethodPost, "/reservation-gateway/release", `{"unit_id":"RV-001"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("release of sold unit reports Sold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().Release(gomock.Any(), "RV-001").Return(entities.UnitStatus{UnitID: "RV-001", Status: entities.SaleStatusSold, UpstreamStatus: "Vendido"}, nil)

		w := doRequest(newReservationRouter(uc), http.MethodPost, "/reservation-gateway/release", `{"unit_id":"RV-001"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["status"] != string(entities.SaleStatusSold) {
			t.Fatalf("expected status Sold in body, got %v", body)
		}
	})

	t.Run("release empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)

		w := doRequest(newReservationRouter(uc), http.MethodPost, "/reservation-gateway/release", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		uc.EXPECT().MarkSold(gomock.Any(), "RV-001").Return(entities.UnitStatus{UnitID: "RV-001", Status: entities.SaleStatusSold}, nil)

		w := doRequest(newReservationRouter(uc), http.MethodPost, "/reservation-gateway/sold", `{"unit_id":"RV-001"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapReservationError_Unknown(t *testing.T) {
	appErr := mapReservationError(errors.New("boom"))
	if appErr.HTTPStatus != http.StatusInternalServerError || appErr.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected mapping %+v", appErr)
	}
}

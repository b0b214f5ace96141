package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "gateway_reservas/internal/adapter/http/dto/request"
	response "gateway_reservas/internal/adapter/http/dto/response"
	"gateway_reservas/internal/domain/entities"
	"gateway_reservas/internal/usecase"
	"gateway_reservas/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mocks/mock_reservation_usecase.go -package=mocks gateway_reservas/internal/usecase IReservationUseCase

// ReservationHandler handles HTTP requests for unit lookups and reservations.
type ReservationHandler struct {
	usecase usecase.IReservationUseCase
}

func NewReservationHandler(uc usecase.IReservationUseCase) *ReservationHandler {
	return &ReservationHandler{usecase: uc}
}

// GetUnit godoc
// @Summary      Look up a unit
// @Description  Returns the full ERP record of a unit with its normalized sale status.
// @Tags         reservation-gateway
// @Produce      json
// @Param        unit_id  query     string  true  "Unit identifier (ERP rowname)"
// @Success      200      {object}  response.UnitResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /reservation-gateway/unit [get]
func (h *ReservationHandler) GetUnit(c *gin.Context) {
	unitID := queryUnitID(c)
	log.Printf("[reservation][handler] get-unit start unit_id=%q", unitID)

	unit, err := h.usecase.LookupUnit(c.Request.Context(), unitID)
	if err != nil {
		writeReservationError(c, err)
		return
	}
	log.Printf("[reservation][handler] get-unit success unit_id=%s status=%s", unit.ID, unit.Status)

	c.JSON(http.StatusOK, response.FromUnit(unit))
}

// GetUnitStatus godoc
// @Summary      Unit sale status
// @Tags         reservation-gateway
// @Produce      json
// @Param        unit_id  query     string  true  "Unit identifier (ERP rowname)"
// @Success      200      {object}  response.UnitStatusResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /reservation-gateway/unit/status [get]
func (h *ReservationHandler) GetUnitStatus(c *gin.Context) {
	unitID := queryUnitID(c)
	log.Printf("[reservation][handler] get-status start unit_id=%q", unitID)

	st, err := h.usecase.GetStatus(c.Request.Context(), unitID)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromUnitStatus(st))
}

// GetUnitHistory godoc
// @Summary      Reservation audit trail of a unit
// @Description  Informational only; the ERP remains the source of truth.
// @Tags         reservation-gateway
// @Produce      json
// @Param        unit_id  query     string  true  "Unit identifier (ERP rowname)"
// @Success      200      {object}  response.UnitHistoryResponse
// @Failure      501      {object}  pkg.HTTPError
// @Router       /reservation-gateway/unit/history [get]
func (h *ReservationHandler) GetUnitHistory(c *gin.Context) {
	unitID := queryUnitID(c)
	log.Printf("[reservation][handler] history start unit_id=%q", unitID)

	entries, err := h.usecase.History(c.Request.Context(), unitID)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromReservationAudits(unitID, entries))
}

// Reserve godoc
// @Summary      Reserve a unit
// @Description  Succeeds only when the ERP reports the unit as Reserved afterwards; otherwise 409.
// @Tags         reservation-gateway
// @Accept       json
// @Produce      json
// @Param        body  body      request.ReserveRequest  true  "Unit and holder metadata"
// @Success      200   {object}  response.UnitStatusResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /reservation-gateway/reserve [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req request.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[reservation][handler] reserve invalid payload err=%v", err)
		writeInvalidRequest(c)
		return
	}
	unitID := req.ResolveUnitID()
	log.Printf("[reservation][handler] reserve start unit_id=%q", unitID)

	st, err := h.usecase.Reserve(c.Request.Context(), unitID, req.ToHolder())
	if err != nil {
		writeReservationError(c, err)
		return
	}
	log.Printf("[reservation][handler] reserve success unit_id=%s status=%s", st.UnitID, st.Status)

	c.JSON(http.StatusOK, response.FromUnitStatus(st))
}

// Release godoc
// @Summary      Release a unit reservation
// @Description  Relays the status the ERP reports after the release. A 200 does not imply Available: a sold unit is returned with status Sold.
// @Tags         reservation-gateway
// @Accept       json
// @Produce      json
// @Param        body  body      request.UnitRequest  true  "Unit"
// @Success      200   {object}  response.UnitStatusResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /reservation-gateway/release [post]
func (h *ReservationHandler) Release(c *gin.Context) {
	var req request.UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[reservation][handler] release invalid payload err=%v", err)
		writeInvalidRequest(c)
		return
	}

	st, err := h.usecase.Release(c.Request.Context(), req.ResolveUnitID())
	if err != nil {
		writeReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromUnitStatus(st))
}

// MarkSold godoc
// @Summary      Mark a unit as sold
// @Tags         reservation-gateway
// @Accept       json
// @Produce      json
// @Param        body  body      request.UnitRequest  true  "Unit"
// @Success      200   {object}  response.UnitStatusResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /reservation-gateway/sold [post]
func (h *ReservationHandler) MarkSold(c *gin.Context) {
	var req request.UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[reservation][handler] sold invalid payload err=%v", err)
		writeInvalidRequest(c)
		return
	}

	st, err := h.usecase.MarkSold(c.Request.Context(), req.ResolveUnitID())
	if err != nil {
		writeReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromUnitStatus(st))
}

func queryUnitID(c *gin.Context) string {
	if v := strings.TrimSpace(c.Query("unit_id")); v != "" {
		return v
	}
	return strings.TrimSpace(c.Query("rowname"))
}

func writeInvalidRequest(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeReservationError(c *gin.Context, err error) {
	appErr := mapReservationError(err)
	log.Printf("[reservation][handler] request failed path=%s http_status=%d code=%s err=%v", c.FullPath(), appErr.HTTPStatus, appErr.Code, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapReservationError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrAuditDisabled) {
		return pkg.NewDomainError("AUDIT_DISABLED", "Reservation history is not enabled", err, http.StatusNotImplemented)
	}

	ge, ok := entities.AsGatewayError(err)
	if !ok {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	var appErr *pkg.AppError
	switch {
	case errors.Is(err, entities.ErrValidation):
		appErr = pkg.NewDomainError("INVALID_REQUEST", ge.Message, err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		appErr = pkg.NewDomainError("UNIT_NOT_FOUND", orText(ge.Message, "Unit not found"), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		appErr = pkg.NewDomainError("RESERVATION_CONFLICT", ge.Message, err, http.StatusConflict)
	case errors.Is(err, entities.ErrConfiguration):
		appErr = pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", ge.Message, err, http.StatusInternalServerError)
	case errors.Is(err, entities.ErrTransport):
		appErr = pkg.NewDomainError("ERP_UNREACHABLE", "ERP unreachable", err, http.StatusInternalServerError)
	case errors.Is(err, entities.ErrUpstream):
		status := ge.StatusCode
		if status < 400 {
			status = http.StatusBadGateway
		}
		appErr = pkg.NewDomainError("ERP_ERROR", orText(ge.Message, http.StatusText(status)), err, status)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	appErr.WithDetail("unit_id", ge.UnitID).
		WithDetail("operation", string(ge.Operation)).
		WithDetail("status", string(ge.ActualStatus)).
		WithDetail("upstream_status", ge.UpstreamStatus)
	return appErr
}

func orText(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

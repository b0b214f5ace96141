package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"gateway_reservas/internal/domain/entities"
	"gateway_reservas/internal/infrastructure/metrics"
	"gateway_reservas/internal/usecase/interfaces"
	"gateway_reservas/pkg"

	"github.com/google/uuid"
)

var ErrAuditDisabled = errors.New("reservation audit trail disabled")

const (
	msgMissingUnitID = "unit_id is required"
	msgERPNotReady   = "ERP base URL not configured"
	msgNoStatus      = "ERP response carries no recognizable sale status"

	auditWriteTimeout = 3 * time.Second
)

// IReservationUseCase fronts the ERP for unit lookups and sale-status transitions.
//
// The ERP is the only source of truth. Every operation performs exactly one
// upstream call and relays what the ERP reports; no unit state is kept here.
type IReservationUseCase interface {
	LookupUnit(ctx context.Context, unitID string) (entities.Unit, error)
	GetStatus(ctx context.Context, unitID string) (entities.UnitStatus, error)
	Reserve(ctx context.Context, unitID string, holder *entities.HolderMetadata) (entities.UnitStatus, error)
	Release(ctx context.Context, unitID string) (entities.UnitStatus, error)
	MarkSold(ctx context.Context, unitID string) (entities.UnitStatus, error)
	History(ctx context.Context, unitID string) ([]entities.ReservationAudit, error)
}

type ReservationUseCase struct {
	erp     interfaces.IERPClient
	audit   interfaces.IReservationAuditRepository
	metrics *metrics.Collector
	now     func() time.Time
}

var _ IReservationUseCase = (*ReservationUseCase)(nil)

// NewReservationUseCase accepts a nil erp client (configuration missing) and a
// nil audit repository (audit trail off).
func NewReservationUseCase(erp interfaces.IERPClient, audit interfaces.IReservationAuditRepository, m *metrics.Collector) *ReservationUseCase {
	return &ReservationUseCase{erp: erp, audit: audit, metrics: m, now: time.Now}
}

func (u *ReservationUseCase) LookupUnit(ctx context.Context, unitID string) (entities.Unit, error) {
	op := entities.OperationLookup
	unitID = strings.TrimSpace(unitID)
	log.Printf("[reservation][usecase] lookup start unit_id=%q", unitID)
	if err := u.precheck(op, unitID); err != nil {
		return entities.Unit{}, err
	}

	resp, err := u.erp.GetUnit(ctx, unitID)
	if err != nil {
		return entities.Unit{}, u.fail(op, unitID, tagTransport(err, op, unitID))
	}

	in, err := classifyRead(op, unitID, resp)
	if err != nil {
		return entities.Unit{}, u.fail(op, unitID, err)
	}

	unit := entities.Unit{
		ID:             unitID,
		Status:         in.status,
		UpstreamStatus: in.upstreamStatus,
		Holder:         holderFromPayload(in.payload),
		Fields:         copyFields(in.payload),
	}
	u.metrics.ObserveOperation(string(op), "success")
	log.Printf("[reservation][usecase] lookup success unit_id=%s status=%s upstream_status=%q", unitID, unit.Status, unit.UpstreamStatus)
	return unit, nil
}

func (u *ReservationUseCase) GetStatus(ctx context.Context, unitID string) (entities.UnitStatus, error) {
	op := entities.OperationStatus
	unitID = strings.TrimSpace(unitID)
	log.Printf("[reservation][usecase] status start unit_id=%q", unitID)
	if err := u.precheck(op, unitID); err != nil {
		return entities.UnitStatus{}, err
	}

	resp, err := u.erp.GetStatus(ctx, unitID)
	if err != nil {
		return entities.UnitStatus{}, u.fail(op, unitID, tagTransport(err, op, unitID))
	}

	in, err := classifyRead(op, unitID, resp)
	if err != nil {
		return entities.UnitStatus{}, u.fail(op, unitID, err)
	}

	st := toUnitStatus(unitID, in)
	u.metrics.ObserveOperation(string(op), "success")
	log.Printf("[reservation][usecase] status success unit_id=%s status=%s", unitID, st.Status)
	return st, nil
}

// Reserve asks the ERP to reserve the unit. Any reported status other than
// Reserved, or a refusal that reports the unit's status, is a Conflict.
func (u *ReservationUseCase) Reserve(ctx context.Context, unitID string, holder *entities.HolderMetadata) (entities.UnitStatus, error) {
	return u.transition(ctx, entities.OperationReserve, entities.ReservationRequest{
		UnitID:         unitID,
		RequestedState: entities.OperationReserve.TargetStatus(),
		Holder:         holder,
	})
}

// Release clears the reservation. Releasing an Available unit is a no-op
// success in the ERP and is relayed as such. The returned status is whatever
// the ERP reports: a Sold unit comes back as Sold with no error, so callers
// must check Status rather than treat success as "now Available".
func (u *ReservationUseCase) Release(ctx context.Context, unitID string) (entities.UnitStatus, error) {
	return u.transition(ctx, entities.OperationRelease, entities.ReservationRequest{
		UnitID:         unitID,
		RequestedState: entities.OperationRelease.TargetStatus(),
	})
}

func (u *ReservationUseCase) MarkSold(ctx context.Context, unitID string) (entities.UnitStatus, error) {
	return u.transition(ctx, entities.OperationMarkSold, entities.ReservationRequest{
		UnitID:         unitID,
		RequestedState: entities.OperationMarkSold.TargetStatus(),
	})
}

func (u *ReservationUseCase) History(ctx context.Context, unitID string) ([]entities.ReservationAudit, error) {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return nil, entities.NewValidationError(entities.OperationStatus, unitID, msgMissingUnitID)
	}
	if u.audit == nil {
		return nil, ErrAuditDisabled
	}
	entries, err := u.audit.ListByUnitID(ctx, unitID)
	if err != nil {
		log.Printf("[reservation][usecase] history failed unit_id=%s err=%v", unitID, err)
		return nil, err
	}
	log.Printf("[reservation][usecase] history success unit_id=%s entries=%d", unitID, len(entries))
	return entries, nil
}

func (u *ReservationUseCase) transition(ctx context.Context, op entities.Operation, req entities.ReservationRequest) (entities.UnitStatus, error) {
	req.UnitID = strings.TrimSpace(req.UnitID)
	if !op.IsWrite() {
		return entities.UnitStatus{}, fmt.Errorf("operation %s is not a transition", op)
	}
	log.Printf("[reservation][usecase] %s start unit_id=%q holder=%t", op, req.UnitID, req.Holder != nil && !req.Holder.IsEmpty())
	if err := u.precheck(op, req.UnitID); err != nil {
		if !errors.Is(err, entities.ErrValidation) {
			u.recordAudit(ctx, op, req, entities.UnitStatus{}, 0, err)
		}
		return entities.UnitStatus{}, err
	}

	var (
		resp entities.UpstreamResponse
		err  error
	)
	switch op {
	case entities.OperationReserve:
		resp, err = u.erp.SetReservation(ctx, req.UnitID, true, req.Holder)
	case entities.OperationRelease:
		resp, err = u.erp.SetReservation(ctx, req.UnitID, false, nil)
	case entities.OperationMarkSold:
		resp, err = u.erp.SetSold(ctx, req.UnitID)
	}
	if err != nil {
		err = u.fail(op, req.UnitID, tagTransport(err, op, req.UnitID))
		u.recordAudit(ctx, op, req, entities.UnitStatus{}, 0, err)
		return entities.UnitStatus{}, err
	}

	st, err := classifyWrite(op, req.UnitID, resp)
	u.recordAudit(ctx, op, req, st, resp.StatusCode, err)
	if err != nil {
		if ge, ok := entities.AsGatewayError(err); ok && errors.Is(err, entities.ErrConflict) {
			u.metrics.ObserveConflict(string(ge.ActualStatus))
		}
		return entities.UnitStatus{}, u.fail(op, req.UnitID, err)
	}

	u.metrics.ObserveOperation(string(op), "success")
	log.Printf("[reservation][usecase] %s success unit_id=%s status=%s upstream_status=%q", op, req.UnitID, st.Status, st.UpstreamStatus)
	return st, nil
}

func (u *ReservationUseCase) precheck(op entities.Operation, unitID string) error {
	if unitID == "" {
		log.Printf("[reservation][usecase] %s invalid unit_id (empty)", op)
		u.metrics.ObserveOperation(string(op), outcomeLabel(entities.ErrValidation))
		return entities.NewValidationError(op, unitID, msgMissingUnitID)
	}
	if u.erp == nil {
		log.Printf("[reservation][usecase] %s rejected unit_id=%s: ERP client not configured", op, unitID)
		u.metrics.ObserveOperation(string(op), outcomeLabel(entities.ErrConfiguration))
		return entities.NewConfigurationError(op, unitID, msgERPNotReady)
	}
	return nil
}

func (u *ReservationUseCase) fail(op entities.Operation, unitID string, err error) error {
	log.Printf("[reservation][usecase] %s failed unit_id=%s err=%v", op, unitID, err)
	u.metrics.ObserveOperation(string(op), outcomeLabel(err))
	return err
}

// recordAudit writes one audit entry. Failures are logged and never change the
// result returned to the caller.
func (u *ReservationUseCase) recordAudit(ctx context.Context, op entities.Operation, req entities.ReservationRequest, st entities.UnitStatus, httpStatus int, opErr error) {
	if u.audit == nil {
		return
	}

	entry := entities.ReservationAudit{
		ID:                 uuid.NewString(),
		UnitID:             req.UnitID,
		Operation:          op,
		RequestedStatus:    req.RequestedState,
		ResultStatus:       st.Status,
		UpstreamStatus:     st.UpstreamStatus,
		Outcome:            auditOutcome(opErr),
		UpstreamHTTPStatus: httpStatus,
		Message:            st.Message,
		RequestID:          pkg.RequestIDFromContext(ctx),
		CreatedAt:          u.now().UTC(),
	}
	if req.Holder != nil {
		entry.Holder = *req.Holder
	}
	if ge, ok := entities.AsGatewayError(opErr); ok {
		entry.ResultStatus = ge.ActualStatus
		entry.UpstreamStatus = ge.UpstreamStatus
		entry.Message = ge.Message
	}

	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()
	if _, err := u.audit.Create(auditCtx, entry); err != nil {
		log.Printf("[reservation][usecase] audit write failed unit_id=%s operation=%s err=%v", req.UnitID, op, err)
	}
}

func classifyRead(op entities.Operation, unitID string, resp entities.UpstreamResponse) (interpretation, error) {
	in := interpret(resp.Body)

	if !resp.IsSuccess() {
		if resp.StatusCode == http.StatusNotFound {
			return in, &entities.GatewayError{Kind: entities.ErrNotFound, Operation: op, UnitID: unitID, StatusCode: resp.StatusCode, Message: in.message}
		}
		return in, upstreamError(op, unitID, resp.StatusCode, in)
	}

	if in.failed && !in.hasStatus {
		// The ERP answers {"ok": false} for an unknown rowname.
		if in.explicitNotOK {
			return in, &entities.GatewayError{Kind: entities.ErrNotFound, Operation: op, UnitID: unitID, StatusCode: resp.StatusCode, Message: in.message}
		}
		return in, upstreamError(op, unitID, http.StatusBadGateway, in)
	}
	if in.failed {
		return in, upstreamError(op, unitID, http.StatusBadGateway, in)
	}
	if !in.hasStatus {
		in.message = orDefault(in.message, msgNoStatus)
		return in, upstreamError(op, unitID, http.StatusBadGateway, in)
	}
	return in, nil
}

func classifyWrite(op entities.Operation, unitID string, resp entities.UpstreamResponse) (entities.UnitStatus, error) {
	in := interpret(resp.Body)
	refused := !resp.IsSuccess() || in.failed

	if op == entities.OperationReserve && in.hasStatus {
		if refused || in.status != entities.SaleStatusReserved {
			return toUnitStatus(unitID, in), &entities.GatewayError{
				Kind:           entities.ErrConflict,
				Operation:      op,
				UnitID:         unitID,
				StatusCode:     resp.StatusCode,
				Message:        orDefault(in.message, "unit is "+string(in.status)),
				ActualStatus:   in.status,
				UpstreamStatus: in.upstreamStatus,
			}
		}
		return toUnitStatus(unitID, in), nil
	}

	if !resp.IsSuccess() {
		return entities.UnitStatus{}, upstreamError(op, unitID, resp.StatusCode, in)
	}
	if in.failed {
		return entities.UnitStatus{}, upstreamError(op, unitID, http.StatusBadGateway, in)
	}
	if !in.hasStatus {
		in.message = orDefault(in.message, msgNoStatus)
		return entities.UnitStatus{}, upstreamError(op, unitID, http.StatusBadGateway, in)
	}
	return toUnitStatus(unitID, in), nil
}

func upstreamError(op entities.Operation, unitID string, statusCode int, in interpretation) *entities.GatewayError {
	return &entities.GatewayError{
		Kind:           entities.ErrUpstream,
		Operation:      op,
		UnitID:         unitID,
		StatusCode:     statusCode,
		Message:        orDefault(in.message, http.StatusText(statusCode)),
		ActualStatus:   statusIf(in),
		UpstreamStatus: in.upstreamStatus,
	}
}

func toUnitStatus(unitID string, in interpretation) entities.UnitStatus {
	reservedBy, _ := stringField(in.payload, "reservado_por")
	msg := ""
	if in.hasStatus {
		msg = in.message
	}
	return entities.UnitStatus{
		UnitID:         unitID,
		Status:         in.status,
		UpstreamStatus: in.upstreamStatus,
		ReservedBy:     reservedBy,
		Message:        msg,
	}
}

// tagTransport stamps the gateway operation on a client error. GetStatus and
// GetUnit share a remote call, so the client cannot tell them apart.
func tagTransport(err error, op entities.Operation, unitID string) error {
	if ge, ok := entities.AsGatewayError(err); ok {
		ge.Operation = op
		return ge
	}
	return entities.NewTransportError(op, unitID, err)
}

func auditOutcome(err error) entities.AuditOutcome {
	switch {
	case err == nil:
		return entities.AuditOutcomeSuccess
	case errors.Is(err, entities.ErrConflict):
		return entities.AuditOutcomeConflict
	case errors.Is(err, entities.ErrTransport):
		return entities.AuditOutcomeTransportError
	case errors.Is(err, entities.ErrConfiguration):
		return entities.AuditOutcomeConfigError
	default:
		return entities.AuditOutcomeUpstreamError
	}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, entities.ErrValidation):
		return "validation_error"
	case errors.Is(err, entities.ErrNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrConflict):
		return "conflict"
	case errors.Is(err, entities.ErrTransport):
		return "transport_error"
	case errors.Is(err, entities.ErrConfiguration):
		return "configuration_error"
	default:
		return "upstream_error"
	}
}

func statusIf(in interpretation) entities.SaleStatus {
	if in.hasStatus {
		return in.status
	}
	return ""
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

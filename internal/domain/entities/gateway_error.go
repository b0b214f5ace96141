package entities

import (
	"errors"
	"fmt"
)

// Operation names a gateway operation. Write operations imply a transition.
type Operation string

const (
	OperationLookup   Operation = "lookup"
	OperationStatus   Operation = "status"
	OperationReserve  Operation = "reserve"
	OperationRelease  Operation = "release"
	OperationMarkSold Operation = "mark_sold"
)

// TargetStatus is the status a write operation is expected to reach.
// Read operations return an empty status.
func (o Operation) TargetStatus() SaleStatus {
	switch o {
	case OperationReserve:
		return SaleStatusReserved
	case OperationRelease:
		return SaleStatusAvailable
	case OperationMarkSold:
		return SaleStatusSold
	default:
		return ""
	}
}

func (o Operation) IsWrite() bool {
	return o.TargetStatus() != ""
}

// Error kinds. Use errors.Is(err, ErrConflict) and friends to classify a GatewayError.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("unit not found")
	ErrTransport     = errors.New("transport error")
	ErrUpstream      = errors.New("upstream error")
	ErrConflict      = errors.New("conflict")
)

// GatewayError is the single typed error returned by gateway operations.
//
// Kind is one of the Err* sentinels above. StatusCode holds the upstream HTTP
// status when one was received. Message carries the ERP's own text whenever the
// ERP supplied one.
type GatewayError struct {
	Kind           error
	UnitID         string
	Operation      Operation
	StatusCode     int
	Message        string
	ActualStatus   SaleStatus
	UpstreamStatus string
	Cause          error
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("%v: operation=%s unit_id=%q", e.Kind, e.Operation, e.UnitID)
	if e.StatusCode > 0 {
		msg += fmt.Sprintf(" upstream_status_code=%d", e.StatusCode)
	}
	if e.ActualStatus != "" {
		msg += fmt.Sprintf(" actual_status=%s", e.ActualStatus)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (%v)", e.Cause)
	}
	return msg
}

func (e *GatewayError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func NewValidationError(op Operation, unitID, message string) *GatewayError {
	return &GatewayError{Kind: ErrValidation, Operation: op, UnitID: unitID, Message: message}
}

func NewConfigurationError(op Operation, unitID, message string) *GatewayError {
	return &GatewayError{Kind: ErrConfiguration, Operation: op, UnitID: unitID, Message: message}
}

func NewTransportError(op Operation, unitID string, cause error) *GatewayError {
	return &GatewayError{Kind: ErrTransport, Operation: op, UnitID: unitID, Message: "ERP unreachable", Cause: cause}
}

// AsGatewayError returns the GatewayError in err's chain, if any.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

package entities

import "time"

// AuditOutcome summarizes how a gateway write attempt ended.
type AuditOutcome string

const (
	AuditOutcomeSuccess        AuditOutcome = "success"
	AuditOutcomeConflict       AuditOutcome = "conflict"
	AuditOutcomeUpstreamError  AuditOutcome = "upstream_error"
	AuditOutcomeTransportError AuditOutcome = "transport_error"
	AuditOutcomeConfigError    AuditOutcome = "configuration_error"
)

// ReservationAudit is one entry of the reservation audit trail.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (unit_id-index): unit_id, sort key created_at
//
// The trail is append-only and informational. It never feeds back into a
// gateway decision: the ERP stays the only source of truth for unit status.
type ReservationAudit struct {
	ID                 string         `json:"id"`
	UnitID             string         `json:"unit_id"`
	Operation          Operation      `json:"operation"`
	RequestedStatus    SaleStatus     `json:"requested_status"`
	ResultStatus       SaleStatus     `json:"result_status,omitempty"`
	UpstreamStatus     string         `json:"upstream_status,omitempty"`
	Outcome            AuditOutcome   `json:"outcome"`
	UpstreamHTTPStatus int            `json:"upstream_http_status,omitempty"`
	Message            string         `json:"message,omitempty"`
	Holder             HolderMetadata `json:"holder"`
	RequestID          string         `json:"request_id,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

package response

import (
	"time"

	"gateway_reservas/internal/domain/entities"
)

type HolderResponse struct {
	AgentName      string `json:"agent_name,omitempty"`
	ClientName     string `json:"client_name,omitempty"`
	ClientContact  string `json:"client_contact,omitempty"`
	ClientDocument string `json:"client_document,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type UnitResponse struct {
	UnitID         string         `json:"unit_id"`
	Status         string         `json:"status"`
	UpstreamStatus string         `json:"upstream_status"`
	Holder         HolderResponse `json:"holder"`
	Fields         map[string]any `json:"fields,omitempty"`
}

type UnitStatusResponse struct {
	UnitID         string `json:"unit_id"`
	Status         string `json:"status"`
	UpstreamStatus string `json:"upstream_status"`
	ReservedBy     string `json:"reserved_by,omitempty"`
	Message        string `json:"message,omitempty"`
}

type AuditEntryResponse struct {
	ID                 string         `json:"id"`
	Operation          string         `json:"operation"`
	RequestedStatus    string         `json:"requested_status"`
	ResultStatus       string         `json:"result_status,omitempty"`
	UpstreamStatus     string         `json:"upstream_status,omitempty"`
	Outcome            string         `json:"outcome"`
	UpstreamHTTPStatus int            `json:"upstream_http_status,omitempty"`
	Message            string         `json:"message,omitempty"`
	Holder             HolderResponse `json:"holder"`
	RequestID          string         `json:"request_id,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

type UnitHistoryResponse struct {
	UnitID  string               `json:"unit_id"`
	Entries []AuditEntryResponse `json:"entries"`
}

func fromHolder(h entities.HolderMetadata) HolderResponse {
	return HolderResponse{
		AgentName:      h.AgentName,
		ClientName:     h.ClientName,
		ClientContact:  h.ClientContact,
		ClientDocument: h.ClientDocument,
		Notes:          h.Notes,
	}
}

func FromUnit(u entities.Unit) UnitResponse {
	return UnitResponse{
		UnitID:         u.ID,
		Status:         string(u.Status),
		UpstreamStatus: u.UpstreamStatus,
		Holder:         fromHolder(u.Holder),
		Fields:         u.Fields,
	}
}

func FromUnitStatus(s entities.UnitStatus) UnitStatusResponse {
	return UnitStatusResponse{
		UnitID:         s.UnitID,
		Status:         string(s.Status),
		UpstreamStatus: s.UpstreamStatus,
		ReservedBy:     s.ReservedBy,
		Message:        s.Message,
	}
}

func FromReservationAudits(unitID string, entries []entities.ReservationAudit) UnitHistoryResponse {
	out := UnitHistoryResponse{UnitID: unitID, Entries: make([]AuditEntryResponse, 0, len(entries))}
	for _, a := range entries {
		out.Entries = append(out.Entries, AuditEntryResponse{
			ID:                 a.ID,
			Operation:          string(a.Operation),
			RequestedStatus:    string(a.RequestedStatus),
			ResultStatus:       string(a.ResultStatus),
			UpstreamStatus:     a.UpstreamStatus,
			Outcome:            string(a.Outcome),
			UpstreamHTTPStatus: a.UpstreamHTTPStatus,
			Message:            a.Message,
			Holder:             fromHolder(a.Holder),
			RequestID:          a.RequestID,
			CreatedAt:          a.CreatedAt,
		})
	}
	return out
}

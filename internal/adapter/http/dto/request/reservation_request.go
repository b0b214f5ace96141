package request

import (
	"strings"

	"gateway_reservas/internal/domain/entities"
)

type HolderMetadataRequest struct {
	AgentName      string `json:"agent_name"`
	ClientName     string `json:"client_name"`
	ClientContact  string `json:"client_contact"`
	ClientDocument string `json:"client_document"`
	Notes          string `json:"notes"`
}

// UnitRequest is the body of release and sold calls. Rowname is the ERP's own
// name for the unit identifier and is accepted for older clients.
type UnitRequest struct {
	UnitID  string `json:"unit_id"`
	Rowname string `json:"rowname"`
}

type ReserveRequest struct {
	UnitRequest
	HolderMetadata *HolderMetadataRequest `json:"holder_metadata"`
}

func (r UnitRequest) ResolveUnitID() string {
	if v := strings.TrimSpace(r.UnitID); v != "" {
		return v
	}
	return strings.TrimSpace(r.Rowname)
}

// ToHolder returns nil when no holder metadata was sent.
func (r ReserveRequest) ToHolder() *entities.HolderMetadata {
	if r.HolderMetadata == nil {
		return nil
	}
	return &entities.HolderMetadata{
		AgentName:      strings.TrimSpace(r.HolderMetadata.AgentName),
		ClientName:     strings.TrimSpace(r.HolderMetadata.ClientName),
		ClientContact:  strings.TrimSpace(r.HolderMetadata.ClientContact),
		ClientDocument: strings.TrimSpace(r.HolderMetadata.ClientDocument),
		Notes:          strings.TrimSpace(r.HolderMetadata.Notes),
	}
}

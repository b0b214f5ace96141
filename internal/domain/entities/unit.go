package entities

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SaleStatus is the sale state of a unit as reported by the ERP.
//
// Domain notes:
//   - The ERP is the source of truth; the gateway relays the status, it never derives it.
//   - Available, Reserved and Sold form the closed set of the gateway output contract.
//     Anything else is reported as Unknown and the raw ERP value travels alongside it.
//   - Transitions: Available -> Reserved, Reserved -> Available, {Available|Reserved} -> Sold.
//     Sold is terminal.
type SaleStatus string

const (
	SaleStatusAvailable SaleStatus = "Available"
	SaleStatusReserved  SaleStatus = "Reserved"
	SaleStatusSold      SaleStatus = "Sold"
	SaleStatusUnknown   SaleStatus = "Unknown"
)

var saleStatusAliases = map[string]SaleStatus{
	"available":  SaleStatusAvailable,
	"disponivel": SaleStatusAvailable,
	"livre":      SaleStatusAvailable,
	"reserved":   SaleStatusReserved,
	"reservado":  SaleStatusReserved,
	"reservada":  SaleStatusReserved,
	"sold":       SaleStatusSold,
	"vendido":    SaleStatusSold,
	"vendida":    SaleStatusSold,
}

// ParseSaleStatus maps an ERP status string onto the closed set.
// Matching ignores case, accents and surrounding spaces.
func ParseSaleStatus(raw string) SaleStatus {
	if s, ok := saleStatusAliases[foldStatus(raw)]; ok {
		return s
	}
	return SaleStatusUnknown
}

func foldStatus(raw string) string {
	decomposed := norm.NFD.String(strings.TrimSpace(raw))
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// IsTerminal reports whether no further gateway-mediated transition is valid.
func (s SaleStatus) IsTerminal() bool {
	return s == SaleStatusSold
}

// HolderMetadata describes who holds a reservation. Every field is optional and
// empty strings are accepted.
type HolderMetadata struct {
	AgentName      string `json:"agent_name"`
	ClientName     string `json:"client_name"`
	ClientContact  string `json:"client_contact"`
	ClientDocument string `json:"client_document"`
	Notes          string `json:"notes"`
}

func (h HolderMetadata) IsEmpty() bool {
	return h == HolderMetadata{}
}

// Unit is the ERP inventory record as seen through the gateway.
//
// Fields mirrors every attribute the ERP returned (technical and pricing data
// included) and is never treated as locally authoritative.
type Unit struct {
	ID             string         `json:"unit_id"`
	Status         SaleStatus     `json:"status"`
	UpstreamStatus string         `json:"upstream_status"`
	Holder         HolderMetadata `json:"holder"`
	Fields         map[string]any `json:"fields,omitempty"`
}

// UnitStatus is the status projection returned by reservation operations.
type UnitStatus struct {
	UnitID         string     `json:"unit_id"`
	Status         SaleStatus `json:"status"`
	UpstreamStatus string     `json:"upstream_status"`
	ReservedBy     string     `json:"reserved_by,omitempty"`
	Message        string     `json:"message,omitempty"`
}

// ReservationRequest is the transient input of a reserve or release call.
type ReservationRequest struct {
	UnitID         string
	RequestedState SaleStatus
	Holder         *HolderMetadata
}

package interfaces

import (
	"context"

	"gateway_reservas/internal/domain/entities"
)

//go:generate mockgen -source=erp_client_interface.go -destination=mocks/mock_erp_client_interface.go -package=mock_interfaces

// IERPClient abstracts the ERP custom methods that own unit sale status.
//
// Implementations return the upstream HTTP status verbatim in UpstreamResponse and
// only fail with a transport GatewayError when no response was received.
type IERPClient interface {
	GetUnit(ctx context.Context, unitID string) (entities.UpstreamResponse, error)
	GetStatus(ctx context.Context, unitID string) (entities.UpstreamResponse, error)
	SetReservation(ctx context.Context, unitID string, reserved bool, holder *entities.HolderMetadata) (entities.UpstreamResponse, error)
	SetSold(ctx context.Context, unitID string) (entities.UpstreamResponse, error)
}

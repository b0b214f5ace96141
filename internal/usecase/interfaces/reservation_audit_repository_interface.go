package interfaces

import (
	"context"

	"gateway_reservas/internal/domain/entities"
)

//go:generate mockgen -source=reservation_audit_repository_interface.go -destination=mocks/mock_reservation_audit_repository_interface.go -package=mock_interfaces

// IReservationAuditRepository abstracts DynamoDB persistence for ReservationAudit.

type IReservationAuditRepository interface {
	Create(ctx context.Context, a entities.ReservationAudit) (entities.ReservationAudit, error)
	ListByUnitID(ctx context.Context, unitID string) ([]entities.ReservationAudit, error)
}

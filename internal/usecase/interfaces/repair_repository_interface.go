package interfaces

import (
	"context"

	"atelier_backoffice/internal/domain/entities"
)

// IRepairRequestRepository abstracts DynamoDB persistence for repair
// requests, their payments and progress log.

type IRepairRequestRepository interface {
	GetByID(ctx context.Context, id string) (entities.RepairRequest, error)
	ListPaymentsByRepairID(ctx context.Context, repairID string) ([]entities.RepairPayment, error)
	ListProgressByRepairID(ctx context.Context, repairID string) ([]entities.RepairProgress, error)
	// ListRatedByTechnicianID returns every completed repair of the
	// technician that carries a rating; used to recompute the running
	// average inside the review transaction.
	ListRatedByTechnicianID(ctx context.Context, technicianID string) ([]entities.RepairRequest, error)
}

package interfaces

import (
	"context"

	"atelier_backoffice/internal/domain/entities"
)

// IInvestorDepositRepository abstracts DynamoDB persistence for investor
// deposits and their audit log.

type IInvestorDepositRepository interface {
	GetByID(ctx context.Context, id string) (entities.InvestorDeposit, error)
	ListLogByDepositID(ctx context.Context, depositID string) ([]entities.DepositLog, error)
}

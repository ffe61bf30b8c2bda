package repository

import (
	"context"
	"sort"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDepositsTableName    = "investor_deposits"
	defaultDepositLogsTableName = "deposit_logs"
	depositIDIndex              = "deposit_id-index"
)

type depositItem struct {
	ID                 string  `dynamodbav:"id"`
	InvestorID         string  `dynamodbav:"investor_id"`
	GrossAmount        float64 `dynamodbav:"gross_amount"`
	Charges            float64 `dynamodbav:"charges"`
	Amount             float64 `dynamodbav:"amount"`
	ConfirmationStatus string  `dynamodbav:"confirmation_status"`
	ReceiptURL         string  `dynamodbav:"receipt_url,omitempty"`
	InvestorReceiptURL string  `dynamodbav:"investor_receipt_url,omitempty"`
	InvestorNotes      string  `dynamodbav:"investor_notes,omitempty"`
	Notes              string  `dynamodbav:"notes,omitempty"`
	VerifiedAt         string  `dynamodbav:"verified_at,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

type depositLogItem struct {
	ID         string `dynamodbav:"id"`
	DepositID  string `dynamodbav:"deposit_id"`
	Action     string `dynamodbav:"action"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	ActorID    string `dynamodbav:"actor_id"`
	ActorRole  string `dynamodbav:"actor_role"`
	Note       string `dynamodbav:"note,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// DepositDynamoRepository persists investor deposits and their audit log.
//
// Table requirements:
//   - investor_deposits: PK id, GSI investor_id-index
//   - deposit_logs: PK id, GSI deposit_id-index (append-only)

type DepositDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	logsTbl   string
}

var _ interfaces.IInvestorDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb *dynamodb.Client) *DepositDynamoRepository {
	return &DepositDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
		logsTbl:   getenvDefault("DEPOSIT_LOGS_TABLE", defaultDepositLogsTableName),
	}
}

func (r *DepositDynamoRepository) GetByID(ctx context.Context, id string) (entities.InvestorDeposit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InvestorDeposit{}, err
	}
	if len(out.Item) == 0 {
		return entities.InvestorDeposit{}, nil
	}

	var it depositItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InvestorDeposit{}, err
	}
	return fromDepositItem(it), nil
}

func (r *DepositDynamoRepository) ListLogByDepositID(ctx context.Context, depositID string) ([]entities.DepositLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.logsTbl),
		IndexName:              aws.String(depositIDIndex),
		KeyConditionExpression: aws.String("deposit_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: depositID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DepositLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositLogItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func toDepositItem(d entities.InvestorDeposit) depositItem {
	return depositItem{
		ID:                 d.ID,
		InvestorID:         d.InvestorID,
		GrossAmount:        d.GrossAmount,
		Charges:            d.Charges,
		Amount:             d.Amount,
		ConfirmationStatus: string(d.ConfirmationStatus),
		ReceiptURL:         d.ReceiptURL,
		InvestorReceiptURL: d.InvestorReceiptURL,
		InvestorNotes:      d.InvestorNotes,
		Notes:              d.Notes,
		VerifiedAt:         formatTimePtr(d.VerifiedAt),
		CreatedAt:          formatTime(d.CreatedAt),
		UpdatedAt:          formatTime(d.UpdatedAt),
	}
}

func fromDepositItem(it depositItem) entities.InvestorDeposit {
	return entities.InvestorDeposit{
		ID:                 it.ID,
		InvestorID:         it.InvestorID,
		GrossAmount:        it.GrossAmount,
		Charges:            it.Charges,
		Amount:             it.Amount,
		ConfirmationStatus: entities.DepositConfirmationStatus(it.ConfirmationStatus),
		ReceiptURL:         it.ReceiptURL,
		InvestorReceiptURL: it.InvestorReceiptURL,
		InvestorNotes:      it.InvestorNotes,
		Notes:              it.Notes,
		VerifiedAt:         parseTimePtr(it.VerifiedAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

func toDepositLogItem(l entities.DepositLog) depositLogItem {
	return depositLogItem{
		ID:         l.ID,
		DepositID:  l.DepositID,
		Action:     l.Action,
		FromStatus: string(l.FromStatus),
		ToStatus:   string(l.ToStatus),
		ActorID:    l.ActorID,
		ActorRole:  string(l.ActorRole),
		Note:       l.Note,
		CreatedAt:  formatTime(l.CreatedAt),
	}
}

func fromDepositLogItem(it depositLogItem) entities.DepositLog {
	return entities.DepositLog{
		ID:         it.ID,
		DepositID:  it.DepositID,
		Action:     it.Action,
		FromStatus: entities.DepositConfirmationStatus(it.FromStatus),
		ToStatus:   entities.DepositConfirmationStatus(it.ToStatus),
		ActorID:    it.ActorID,
		ActorRole:  entities.Role(it.ActorRole),
		Note:       it.Note,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}

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
	defaultQuotesTableName       = "quotes"
	defaultQuoteHistoryTableName = "quote_history"
	quoteIDIndex                 = "quote_id-index"
)

type quoteItem struct {
	ID                string  `dynamodbav:"id"`
	BookingID         string  `dynamodbav:"booking_id"`
	Status            string  `dynamodbav:"status"`
	MaterialCost      float64 `dynamodbav:"material_cost"`
	LaborCost         float64 `dynamodbav:"labor_cost"`
	LaborHours        float64 `dynamodbav:"labor_hours"`
	TotalCost         float64 `dynamodbav:"total_cost"`
	DownPaymentAmount float64 `dynamodbav:"down_payment_amount"`
	ValidityDays      int     `dynamodbav:"validity_days"`
	ValidUntil        string  `dynamodbav:"valid_until,omitempty"`
	SentAt            string  `dynamodbav:"sent_at,omitempty"`
	DecidedAt         string  `dynamodbav:"decided_at,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

type quoteHistoryItem struct {
	ID         string `dynamodbav:"id"`
	QuoteID    string `dynamodbav:"quote_id"`
	Action     string `dynamodbav:"action"`
	FromStatus string `dynamodbav:"from_status,omitempty"`
	ToStatus   string `dynamodbav:"to_status"`
	ActorID    string `dynamodbav:"actor_id"`
	ActorRole  string `dynamodbav:"actor_role"`
	Note       string `dynamodbav:"note,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists booking quotes.
//
// Table requirements:
//   - quotes: PK id (string)
//   - quote_history: PK id, GSI quote_id-index (append-only)
//
// A quote's id equals its booking id, which guarantees 1 quote per booking
// the same way the estimates table keys by service-order id.

type QuoteDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	historyTbl string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		historyTbl: getenvDefault("QUOTE_HISTORY_TABLE", defaultQuoteHistoryTableName),
	}
}

func (r *QuoteDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: bookingID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListHistoryByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteHistory, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.historyTbl),
		IndexName:              aws.String(quoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuoteHistory, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteHistoryItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:                q.ID,
		BookingID:         q.BookingID,
		Status:            string(q.Status),
		MaterialCost:      q.MaterialCost,
		LaborCost:         q.LaborCost,
		LaborHours:        q.LaborHours,
		TotalCost:         q.TotalCost,
		DownPaymentAmount: q.DownPaymentAmount,
		ValidityDays:      q.ValidityDays,
		ValidUntil:        formatTimePtr(q.ValidUntil),
		SentAt:            formatTimePtr(q.SentAt),
		DecidedAt:         formatTimePtr(q.DecidedAt),
		CreatedAt:         formatTime(q.CreatedAt),
		UpdatedAt:         formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:                it.ID,
		BookingID:         it.BookingID,
		Status:            entities.QuoteStatus(it.Status),
		MaterialCost:      it.MaterialCost,
		LaborCost:         it.LaborCost,
		LaborHours:        it.LaborHours,
		TotalCost:         it.TotalCost,
		DownPaymentAmount: it.DownPaymentAmount,
		ValidityDays:      it.ValidityDays,
		ValidUntil:        parseTimePtr(it.ValidUntil),
		SentAt:            parseTimePtr(it.SentAt),
		DecidedAt:         parseTimePtr(it.DecidedAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func toQuoteHistoryItem(h entities.QuoteHistory) quoteHistoryItem {
	return quoteHistoryItem{
		ID:         h.ID,
		QuoteID:    h.QuoteID,
		Action:     h.Action,
		FromStatus: string(h.FromStatus),
		ToStatus:   string(h.ToStatus),
		ActorID:    h.ActorID,
		ActorRole:  string(h.ActorRole),
		Note:       h.Note,
		CreatedAt:  formatTime(h.CreatedAt),
	}
}

func fromQuoteHistoryItem(it quoteHistoryItem) entities.QuoteHistory {
	return entities.QuoteHistory{
		ID:         it.ID,
		QuoteID:    it.QuoteID,
		Action:     it.Action,
		FromStatus: entities.QuoteStatus(it.FromStatus),
		ToStatus:   entities.QuoteStatus(it.ToStatus),
		ActorID:    it.ActorID,
		ActorRole:  entities.Role(it.ActorRole),
		Note:       it.Note,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}

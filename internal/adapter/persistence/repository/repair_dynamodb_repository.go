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
	defaultRepairsTableName        = "repairs"
	defaultRepairProgressTableName = "repair_progress"
	defaultRepairPaymentsTableName = "repair_payments"
	repairIDIndex                  = "repair_id-index"
	technicianIDIndex              = "technician_id-index"
)

type repairItem struct {
	ID           string   `dynamodbav:"id"`
	CustomerID   string   `dynamodbav:"customer_id"`
	TechnicianID string   `dynamodbav:"technician_id,omitempty"`
	Status       string   `dynamodbav:"status"`
	Device       string   `dynamodbav:"device"`
	IssueSummary string   `dynamodbav:"issue_summary"`
	Diagnosis    string   `dynamodbav:"diagnosis,omitempty"`
	IntakePhotos []string `dynamodbav:"intake_photos,omitempty"`

	PartsCost       float64  `dynamodbav:"parts_cost"`
	LaborCost       float64  `dynamodbav:"labor_cost"`
	DiagnosticFee   float64  `dynamodbav:"diagnostic_fee"`
	TotalQuote      float64  `dynamodbav:"total_quote"`
	QuoteValidUntil string   `dynamodbav:"quote_valid_until,omitempty"`
	FinalCost       *float64 `dynamodbav:"final_cost,omitempty"`

	PaymentStatus     string `dynamodbav:"payment_status"`
	WarrantyMonths    int    `dynamodbav:"warranty_months"`
	WarrantyExpiresAt string `dynamodbav:"warranty_expires_at,omitempty"`

	Rating        *int   `dynamodbav:"rating,omitempty"`
	ReviewComment string `dynamodbav:"review_comment,omitempty"`

	ReceivedAt     string `dynamodbav:"received_at,omitempty"`
	DiagnosedAt    string `dynamodbav:"diagnosed_at,omitempty"`
	QuoteSentAt    string `dynamodbav:"quote_sent_at,omitempty"`
	QuoteDecidedAt string `dynamodbav:"quote_decided_at,omitempty"`
	CompletedAt    string `dynamodbav:"completed_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type repairProgressItem struct {
	ID         string `dynamodbav:"id"`
	RepairID   string `dynamodbav:"repair_id"`
	Action     string `dynamodbav:"action"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	ActorID    string `dynamodbav:"actor_id"`
	ActorRole  string `dynamodbav:"actor_role"`
	Note       string `dynamodbav:"note,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type repairPaymentItem struct {
	ID                string  `dynamodbav:"id"`
	RepairID          string  `dynamodbav:"repair_id"`
	Amount            float64 `dynamodbav:"amount"`
	Method            string  `dynamodbav:"method,omitempty"`
	ProviderPaymentID string  `dynamodbav:"provider_payment_id,omitempty"`
	PaidAt            string  `dynamodbav:"paid_at"`
}

type technicianRatingItem struct {
	TechnicianID string  `dynamodbav:"technician_id"`
	Average      float64 `dynamodbav:"average"`
	RatedCount   int     `dynamodbav:"rated_count"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// RepairDynamoRepository persists repair requests and their owned records.
//
// Table requirements:
//   - repairs: PK id, GSI technician_id-index
//   - repair_progress: PK id, GSI repair_id-index (append-only)
//   - repair_payments: PK id, GSI repair_id-index

type RepairDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	progressTbl string
	paymentsTbl string
}

var _ interfaces.IRepairRequestRepository = (*RepairDynamoRepository)(nil)

func NewRepairDynamoRepository(ddb *dynamodb.Client) *RepairDynamoRepository {
	return &RepairDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("REPAIRS_TABLE", defaultRepairsTableName),
		progressTbl: getenvDefault("REPAIR_PROGRESS_TABLE", defaultRepairProgressTableName),
		paymentsTbl: getenvDefault("REPAIR_PAYMENTS_TABLE", defaultRepairPaymentsTableName),
	}
}

func (r *RepairDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairRequest{}, nil
	}

	var it repairItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairRequest{}, err
	}
	return fromRepairItem(it), nil
}

func (r *RepairDynamoRepository) ListPaymentsByRepairID(ctx context.Context, repairID string) ([]entities.RepairPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.paymentsTbl),
		IndexName:              aws.String(repairIDIndex),
		KeyConditionExpression: aws.String("repair_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: repairID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RepairPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it repairPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRepairPaymentItem(it))
	}
	return items, nil
}

func (r *RepairDynamoRepository) ListProgressByRepairID(ctx context.Context, repairID string) ([]entities.RepairProgress, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.progressTbl),
		IndexName:              aws.String(repairIDIndex),
		KeyConditionExpression: aws.String("repair_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: repairID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RepairProgress, 0, len(out.Items))
	for _, raw := range out.Items {
		var it repairProgressItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRepairProgressItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *RepairDynamoRepository) ListRatedByTechnicianID(ctx context.Context, technicianID string) ([]entities.RepairRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(technicianIDIndex),
		KeyConditionExpression: aws.String("technician_id = :tid"),
		FilterExpression:       aws.String("attribute_exists(rating)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: technicianID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RepairRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it repairItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRepairItem(it))
	}
	return items, nil
}

func toRepairItem(r entities.RepairRequest) repairItem {
	return repairItem{
		ID:                r.ID,
		CustomerID:        r.CustomerID,
		TechnicianID:      r.TechnicianID,
		Status:            string(r.Status),
		Device:            r.Device,
		IssueSummary:      r.IssueSummary,
		Diagnosis:         r.Diagnosis,
		IntakePhotos:      r.IntakePhotos,
		PartsCost:         r.PartsCost,
		LaborCost:         r.LaborCost,
		DiagnosticFee:     r.DiagnosticFee,
		TotalQuote:        r.TotalQuote,
		QuoteValidUntil:   formatTimePtr(r.QuoteValidUntil),
		FinalCost:         r.FinalCost,
		PaymentStatus:     string(r.PaymentStatus),
		WarrantyMonths:    r.WarrantyMonths,
		WarrantyExpiresAt: formatTimePtr(r.WarrantyExpiresAt),
		Rating:            r.Rating,
		ReviewComment:     r.ReviewComment,
		ReceivedAt:        formatTimePtr(r.ReceivedAt),
		DiagnosedAt:       formatTimePtr(r.DiagnosedAt),
		QuoteSentAt:       formatTimePtr(r.QuoteSentAt),
		QuoteDecidedAt:    formatTimePtr(r.QuoteDecidedAt),
		CompletedAt:       formatTimePtr(r.CompletedAt),
		CreatedAt:         formatTime(r.CreatedAt),
		UpdatedAt:         formatTime(r.UpdatedAt),
	}
}

func fromRepairItem(it repairItem) entities.RepairRequest {
	return entities.RepairRequest{
		ID:                it.ID,
		CustomerID:        it.CustomerID,
		TechnicianID:      it.TechnicianID,
		Status:            entities.RepairStatus(it.Status),
		Device:            it.Device,
		IssueSummary:      it.IssueSummary,
		Diagnosis:         it.Diagnosis,
		IntakePhotos:      it.IntakePhotos,
		PartsCost:         it.PartsCost,
		LaborCost:         it.LaborCost,
		DiagnosticFee:     it.DiagnosticFee,
		TotalQuote:        it.TotalQuote,
		QuoteValidUntil:   parseTimePtr(it.QuoteValidUntil),
		FinalCost:         it.FinalCost,
		PaymentStatus:     entities.RepairPaymentStatus(it.PaymentStatus),
		WarrantyMonths:    it.WarrantyMonths,
		WarrantyExpiresAt: parseTimePtr(it.WarrantyExpiresAt),
		Rating:            it.Rating,
		ReviewComment:     it.ReviewComment,
		ReceivedAt:        parseTimePtr(it.ReceivedAt),
		DiagnosedAt:       parseTimePtr(it.DiagnosedAt),
		QuoteSentAt:       parseTimePtr(it.QuoteSentAt),
		QuoteDecidedAt:    parseTimePtr(it.QuoteDecidedAt),
		CompletedAt:       parseTimePtr(it.CompletedAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func toRepairProgressItem(p entities.RepairProgress) repairProgressItem {
	return repairProgressItem{
		ID:         p.ID,
		RepairID:   p.RepairID,
		Action:     p.Action,
		FromStatus: string(p.FromStatus),
		ToStatus:   string(p.ToStatus),
		ActorID:    p.ActorID,
		ActorRole:  string(p.ActorRole),
		Note:       p.Note,
		CreatedAt:  formatTime(p.CreatedAt),
	}
}

func fromRepairProgressItem(it repairProgressItem) entities.RepairProgress {
	return entities.RepairProgress{
		ID:         it.ID,
		RepairID:   it.RepairID,
		Action:     it.Action,
		FromStatus: entities.RepairStatus(it.FromStatus),
		ToStatus:   entities.RepairStatus(it.ToStatus),
		ActorID:    it.ActorID,
		ActorRole:  entities.Role(it.ActorRole),
		Note:       it.Note,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}

func toRepairPaymentItem(p entities.RepairPayment) repairPaymentItem {
	return repairPaymentItem{
		ID:                p.ID,
		RepairID:          p.RepairID,
		Amount:            p.Amount,
		Method:            p.Method,
		ProviderPaymentID: p.ProviderPaymentID,
		PaidAt:            formatTime(p.PaidAt),
	}
}

func fromRepairPaymentItem(it repairPaymentItem) entities.RepairPayment {
	return entities.RepairPayment{
		ID:                it.ID,
		RepairID:          it.RepairID,
		Amount:            it.Amount,
		Method:            it.Method,
		ProviderPaymentID: it.ProviderPaymentID,
		PaidAt:            parseTime(it.PaidAt),
	}
}

func toTechnicianRatingItem(t entities.TechnicianRating) technicianRatingItem {
	return technicianRatingItem{
		TechnicianID: t.TechnicianID,
		Average:      t.Average,
		RatedCount:   t.RatedCount,
		UpdatedAt:    formatTime(t.UpdatedAt),
	}
}

package repository

import (
	"context"
	"sort"
	"time"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName        = "bookings"
	defaultMeasurementsTableName    = "measurements"
	defaultBookingPaymentsTableName = "booking_payments"
	defaultBookingProgressTableName = "booking_progress"
	bookingIDIndex                  = "booking_id-index"
)

type bookingItem struct {
	ID            string   `dynamodbav:"id"`
	ServiceID     string   `dynamodbav:"service_id"`
	CustomerID    string   `dynamodbav:"customer_id"`
	Status        string   `dynamodbav:"status"`
	ScheduledDate string   `dynamodbav:"scheduled_date"`
	ScheduledTime string   `dynamodbav:"scheduled_time"`
	Price         float64  `dynamodbav:"price"`
	FinalPrice    *float64 `dynamodbav:"final_price,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

type measurementItem struct {
	BookingID string             `dynamodbav:"booking_id"`
	Values    map[string]float64 `dynamodbav:"values"`
	Note      string             `dynamodbav:"note,omitempty"`
	TakenBy   string             `dynamodbav:"taken_by"`
	CreatedAt string             `dynamodbav:"created_at"`
	UpdatedAt string             `dynamodbav:"updated_at"`
}

type bookingPaymentItem struct {
	ID                string  `dynamodbav:"id"`
	BookingID         string  `dynamodbav:"booking_id"`
	Type              string  `dynamodbav:"type"`
	Amount            float64 `dynamodbav:"amount"`
	ProviderPaymentID string  `dynamodbav:"provider_payment_id"`
	ProviderResponse  string  `dynamodbav:"provider_response,omitempty"`
	PaidAt            string  `dynamodbav:"paid_at"`
}

type progressEntryItem struct {
	ID         string `dynamodbav:"id"`
	BookingID  string `dynamodbav:"booking_id"`
	Action     string `dynamodbav:"action"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	ActorID    string `dynamodbav:"actor_id"`
	ActorRole  string `dynamodbav:"actor_role"`
	Note       string `dynamodbav:"note,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// BookingDynamoRepository persists bookings and their owned records.
//
// Table requirements:
//   - bookings: PK id
//   - measurements: PK booking_id
//   - booking_payments: PK id, GSI booking_id-index
//   - booking_progress: PK id, GSI booking_id-index (append-only)

type BookingDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	measurementTbl string
	paymentsTbl    string
	progressTbl    string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
		measurementTbl: getenvDefault("MEASUREMENTS_TABLE", defaultMeasurementsTableName),
		paymentsTbl:    getenvDefault("BOOKING_PAYMENTS_TABLE", defaultBookingPaymentsTableName),
		progressTbl:    getenvDefault("BOOKING_PROGRESS_TABLE", defaultBookingProgressTableName),
	}
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) GetMeasurement(ctx context.Context, bookingID string) (entities.Measurement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.measurementTbl),
		Key: map[string]types.AttributeValue{
			"booking_id": &types.AttributeValueMemberS{Value: bookingID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Measurement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Measurement{}, nil
	}

	var it measurementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Measurement{}, err
	}
	return fromMeasurementItem(it), nil
}

func (r *BookingDynamoRepository) ListPaymentsByBookingID(ctx context.Context, bookingID string) ([]entities.BookingPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.paymentsTbl),
		IndexName:              aws.String(bookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BookingPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingPaymentItem(it))
	}
	return items, nil
}

func (r *BookingDynamoRepository) ListProgressByBookingID(ctx context.Context, bookingID string) ([]entities.ProgressEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.progressTbl),
		IndexName:              aws.String(bookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProgressEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it progressEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProgressEntryItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		CustomerID:    b.CustomerID,
		Status:        string(b.Status),
		ScheduledDate: b.ScheduledDate,
		ScheduledTime: b.ScheduledTime,
		Price:         b.Price,
		FinalPrice:    b.FinalPrice,
		CreatedAt:     formatTime(b.CreatedAt),
		UpdatedAt:     formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:            it.ID,
		ServiceID:     it.ServiceID,
		CustomerID:    it.CustomerID,
		Status:        entities.BookingStatus(it.Status),
		ScheduledDate: it.ScheduledDate,
		ScheduledTime: it.ScheduledTime,
		Price:         it.Price,
		FinalPrice:    it.FinalPrice,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func toMeasurementItem(m entities.Measurement) measurementItem {
	return measurementItem{
		BookingID: m.BookingID,
		Values:    m.Values,
		Note:      m.Note,
		TakenBy:   m.TakenBy,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func fromMeasurementItem(it measurementItem) entities.Measurement {
	return entities.Measurement{
		BookingID: it.BookingID,
		Values:    it.Values,
		Note:      it.Note,
		TakenBy:   it.TakenBy,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func toBookingPaymentItem(p entities.BookingPayment) bookingPaymentItem {
	return bookingPaymentItem{
		ID:                p.ID,
		BookingID:         p.BookingID,
		Type:              string(p.Type),
		Amount:            p.Amount,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderResponse:  p.ProviderResponse,
		PaidAt:            formatTime(p.PaidAt),
	}
}

func fromBookingPaymentItem(it bookingPaymentItem) entities.BookingPayment {
	return entities.BookingPayment{
		ID:                it.ID,
		BookingID:         it.BookingID,
		Type:              entities.BookingPaymentType(it.Type),
		Amount:            it.Amount,
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderResponse:  it.ProviderResponse,
		PaidAt:            parseTime(it.PaidAt),
	}
}

func toProgressEntryItem(e entities.ProgressEntry) progressEntryItem {
	return progressEntryItem{
		ID:         e.ID,
		BookingID:  e.BookingID,
		Action:     e.Action,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		ActorID:    e.ActorID,
		ActorRole:  string(e.ActorRole),
		Note:       e.Note,
		CreatedAt:  formatTime(e.CreatedAt),
	}
}

func fromProgressEntryItem(it progressEntryItem) entities.ProgressEntry {
	return entities.ProgressEntry{
		ID:         it.ID,
		BookingID:  it.BookingID,
		Action:     it.Action,
		FromStatus: entities.BookingStatus(it.FromStatus),
		ToStatus:   entities.BookingStatus(it.ToStatus),
		ActorID:    it.ActorID,
		ActorRole:  entities.Role(it.ActorRole),
		Note:       it.Note,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

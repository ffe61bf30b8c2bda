package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/domain/workflow"
	"atelier_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTechnicianRatingsTableName = "technician_ratings"

	conditionalCheckFailedReason = "ConditionalCheckFailed"
)

// DynamoUnitOfWork accumulates the writes of one transition and commits them
// in a single TransactWriteItems call. Every staged status-bearing item
// carries a condition expression over the status observed at read time, so a
// concurrent transition on the same entity makes the whole transaction abort.

type DynamoUnitOfWork struct {
	ddb    *dynamodb.Client
	tables uowTables

	items      []types.TransactWriteItem
	marshalErr error
}

type uowTables struct {
	bookings        string
	quotes          string
	quoteHistory    string
	measurements    string
	bookingPayments string
	bookingProgress string
	repairs         string
	repairPayments  string
	repairProgress  string
	deposits        string
	depositLogs     string
	ratings         string
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

type DynamoUnitOfWorkFactory struct {
	ddb    *dynamodb.Client
	tables uowTables
}

var _ interfaces.IUnitOfWorkFactory = (*DynamoUnitOfWorkFactory)(nil)

func NewDynamoUnitOfWorkFactory(ddb *dynamodb.Client) *DynamoUnitOfWorkFactory {
	return &DynamoUnitOfWorkFactory{
		ddb: ddb,
		tables: uowTables{
			bookings:        getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
			quotes:          getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
			quoteHistory:    getenvDefault("QUOTE_HISTORY_TABLE", defaultQuoteHistoryTableName),
			measurements:    getenvDefault("MEASUREMENTS_TABLE", defaultMeasurementsTableName),
			bookingPayments: getenvDefault("BOOKING_PAYMENTS_TABLE", defaultBookingPaymentsTableName),
			bookingProgress: getenvDefault("BOOKING_PROGRESS_TABLE", defaultBookingProgressTableName),
			repairs:         getenvDefault("REPAIRS_TABLE", defaultRepairsTableName),
			repairPayments:  getenvDefault("REPAIR_PAYMENTS_TABLE", defaultRepairPaymentsTableName),
			repairProgress:  getenvDefault("REPAIR_PROGRESS_TABLE", defaultRepairProgressTableName),
			deposits:        getenvDefault("DEPOSITS_TABLE", defaultDepositsTableName),
			depositLogs:     getenvDefault("DEPOSIT_LOGS_TABLE", defaultDepositLogsTableName),
			ratings:         getenvDefault("TECHNICIAN_RATINGS_TABLE", defaultTechnicianRatingsTableName),
		},
	}
}

func (f *DynamoUnitOfWorkFactory) Begin() interfaces.IUnitOfWork {
	return &DynamoUnitOfWork{ddb: f.ddb, tables: f.tables}
}

func (u *DynamoUnitOfWork) StageBooking(b entities.Booking, expected entities.BookingStatus) {
	u.putGuarded(u.tables.bookings, toBookingItem(b), "status", string(expected))
}

func (u *DynamoUnitOfWork) StageNewQuote(q entities.Quote) {
	u.putNew(u.tables.quotes, toQuoteItem(q), "id")
}

func (u *DynamoUnitOfWork) StageQuote(q entities.Quote, expected entities.QuoteStatus) {
	u.putGuarded(u.tables.quotes, toQuoteItem(q), "status", string(expected))
}

func (u *DynamoUnitOfWork) StageRepair(r entities.RepairRequest, expected entities.RepairStatus) {
	u.putGuarded(u.tables.repairs, toRepairItem(r), "status", string(expected))
}

func (u *DynamoUnitOfWork) StageDeposit(d entities.InvestorDeposit, expected entities.DepositConfirmationStatus) {
	u.putGuarded(u.tables.deposits, toDepositItem(d), "confirmation_status", string(expected))
}

func (u *DynamoUnitOfWork) StageMeasurement(m entities.Measurement) {
	u.put(u.tables.measurements, toMeasurementItem(m))
}

func (u *DynamoUnitOfWork) StageBookingPayment(p entities.BookingPayment) {
	u.putNew(u.tables.bookingPayments, toBookingPaymentItem(p), "id")
}

func (u *DynamoUnitOfWork) StageRepairPayment(p entities.RepairPayment) {
	u.putNew(u.tables.repairPayments, toRepairPaymentItem(p), "id")
}

func (u *DynamoUnitOfWork) StageTechnicianRating(r entities.TechnicianRating, expectedCount int) {
	item, err := attributevalue.MarshalMap(toTechnicianRatingItem(r))
	if err != nil {
		u.fail(err)
		return
	}
	u.items = append(u.items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(u.tables.ratings),
			Item:                item,
			ConditionExpression: aws.String("attribute_not_exists(technician_id) OR rated_count = :expected"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedCount)},
			},
		},
	})
}

func (u *DynamoUnitOfWork) AppendBookingProgress(e entities.ProgressEntry) {
	u.putNew(u.tables.bookingProgress, toProgressEntryItem(e), "id")
}

func (u *DynamoUnitOfWork) AppendQuoteHistory(e entities.QuoteHistory) {
	u.putNew(u.tables.quoteHistory, toQuoteHistoryItem(e), "id")
}

func (u *DynamoUnitOfWork) AppendRepairProgress(e entities.RepairProgress) {
	u.putNew(u.tables.repairProgress, toRepairProgressItem(e), "id")
}

func (u *DynamoUnitOfWork) AppendDepositLog(e entities.DepositLog) {
	u.putNew(u.tables.depositLogs, toDepositLogItem(e), "id")
}

func (u *DynamoUnitOfWork) Commit(ctx context.Context) error {
	if u.marshalErr != nil {
		return u.marshalErr
	}
	if len(u.items) == 0 {
		return nil
	}

	_, err := u.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: u.items,
	})
	if err == nil {
		return nil
	}

	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		for _, reason := range canceled.CancellationReasons {
			if reason.Code != nil && *reason.Code == conditionalCheckFailedReason {
				log.Printf("[uow][repository] transaction lost to a concurrent transition reasons=%d", len(canceled.CancellationReasons))
				return workflow.ConflictingState("the record was modified by a concurrent transition")
			}
		}
	}
	return fmt.Errorf("transact write: %w", err)
}

// put stages an unconditional upsert.
func (u *DynamoUnitOfWork) put(table string, v any) {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		u.fail(err)
		return
	}
	u.items = append(u.items, types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(table),
			Item:      item,
		},
	})
}

// putGuarded stages a full-item replace that only succeeds while the stored
// status field still equals the value observed when the entity was read.
func (u *DynamoUnitOfWork) putGuarded(table string, v any, statusField, expected string) {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		u.fail(err)
		return
	}
	u.items = append(u.items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(table),
			Item:                item,
			ConditionExpression: aws.String("attribute_exists(#pk) AND #st = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#pk": "id",
				"#st": statusField,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberS{Value: expected},
			},
		},
	})
}

// putNew stages an insert that fails when the key already exists, keeping
// history tables append-only and payment records idempotent.
func (u *DynamoUnitOfWork) putNew(table string, v any, keyField string) {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		u.fail(err)
		return
	}
	u.items = append(u.items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(table),
			Item:                item,
			ConditionExpression: aws.String("attribute_not_exists(#pk)"),
			ExpressionAttributeNames: map[string]string{
				"#pk": keyField,
			},
		},
	})
}

func (u *DynamoUnitOfWork) fail(err error) {
	if u.marshalErr == nil {
		u.marshalErr = err
	}
}

package interfaces

import (
	"context"

	"atelier_backoffice/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for bookings and their
// owned records. Reads used to validate transitions are strongly consistent.
//
// Lookups return zero-value entities when nothing matches; callers translate
// that into their own not-found errors.

type IBookingRepository interface {
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	GetMeasurement(ctx context.Context, bookingID string) (entities.Measurement, error)
	ListPaymentsByBookingID(ctx context.Context, bookingID string) ([]entities.BookingPayment, error)
	ListProgressByBookingID(ctx context.Context, bookingID string) ([]entities.ProgressEntry, error)
}

// IQuoteRepository abstracts DynamoDB persistence for booking quotes.
//
// A quote's id equals its booking id, guaranteeing 1 quote per booking.
type IQuoteRepository interface {
	GetByBookingID(ctx context.Context, bookingID string) (entities.Quote, error)
	ListHistoryByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteHistory, error)
}

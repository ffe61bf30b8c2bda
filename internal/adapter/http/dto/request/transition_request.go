package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"atelier_backoffice/internal/domain/workflow"
)

var ErrMalformedPayload = errors.New("request body is not valid json")

// DecodeTransitionPayload turns a raw request body into the typed payload for
// one (entityType, action) pair. Actions that take no input tolerate an empty
// or absent body; everything else must decode strictly into its own shape so
// unknown fields are rejected instead of silently dropped.
func DecodeTransitionPayload(entityType workflow.EntityType, action workflow.Action, raw json.RawMessage) (workflow.Payload, error) {
	switch entityType {
	case workflow.EntityBooking:
		return decodeBookingPayload(action, raw)
	case workflow.EntityRepair:
		return decodeRepairPayload(action, raw)
	case workflow.EntityDeposit:
		return decodeDepositPayload(action, raw)
	default:
		return nil, fmt.Errorf("unknown entity type %q", entityType)
	}
}

func decodeBookingPayload(action workflow.Action, raw json.RawMessage) (workflow.Payload, error) {
	switch action {
	case workflow.BookingConfirm, workflow.BookingIssuePaymentRequest, workflow.BookingReadyForCollection:
		return workflow.NoPayload{}, nil
	case workflow.BookingReschedule:
		var p workflow.ReschedulePayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.BookingDraftQuote:
		var p workflow.DraftQuotePayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.BookingSendQuote, workflow.BookingApproveQuote:
		var p workflow.NotePayload
		if err := decodeOptionalInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.BookingRejectQuote:
		var p workflow.RejectQuotePayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.BookingRecordMeasurement:
		var p workflow.MeasurementPayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.BookingConfirmDownPayment, workflow.BookingConfirmPartialPayment, workflow.BookingConfirmFinalPayment:
		var p workflow.ConfirmPaymentPayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.BookingCancel, workflow.BookingNoShow:
		var p workflow.CancelPayload
		if err := decodeOptionalInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown booking action %q", action)
	}
}

func decodeRepairPayload(action workflow.Action, raw json.RawMessage) (workflow.Payload, error) {
	switch action {
	case workflow.RepairStartDiagnosis, workflow.RepairOrderParts, workflow.RepairStart, workflow.RepairStartTesting, workflow.RepairMarkReady, workflow.RepairApproveQuote, workflow.RepairPickup:
		return workflow.NoPayload{}, nil
	case workflow.RepairReceive:
		var p workflow.ReceivePayload
		if err := decodeOptionalInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.RepairDiagnose:
		var p workflow.DiagnosePayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.RepairCreateQuote:
		var p workflow.RepairQuotePayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.RepairRejectQuote:
		var p workflow.RejectQuotePayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.RepairRecordPayment:
		var p workflow.RecordPaymentPayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.RepairReview:
		var p workflow.ReviewPayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.RepairCancel:
		var p workflow.CancelPayload
		if err := decodeOptionalInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown repair action %q", action)
	}
}

func decodeDepositPayload(action workflow.Action, raw json.RawMessage) (workflow.Payload, error) {
	switch action {
	case workflow.DepositRequestReceipt, workflow.DepositInvestorConfirm:
		return workflow.NoPayload{}, nil
	case workflow.DepositUploadReceipt:
		var p workflow.UploadReceiptPayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.DepositAttachReceipt:
		var p workflow.AttachReceiptPayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.DepositAdminConfirm:
		var p workflow.AdminConfirmPayload
		if err := decodeOptionalInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.DepositDispute:
		var p workflow.DisputePayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	case workflow.DepositResolveDispute:
		var p workflow.ResolveDisputePayload
		if err := decodeInto(raw, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown deposit action %q", action)
	}
}

func decodeInto(raw json.RawMessage, v any) error {
	if emptyBody(raw) {
		raw = json.RawMessage("{}")
	}
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

// decodeOptionalInto behaves like decodeInto but an empty body is fine and
// leaves the payload at its zero value.
func decodeOptionalInto(raw json.RawMessage, v any) error {
	if emptyBody(raw) {
		return nil
	}
	return decodeInto(raw, v)
}

func emptyBody(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

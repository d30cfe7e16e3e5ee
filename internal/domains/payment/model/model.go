package model

import (
	"time"

	"gor/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldMethod    = "method"
	FieldStatus    = "status"
	FieldPaidAt    = "paid_at"
)

const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusRefunded = "refunded"

	MethodCash     = "cash"
	MethodTransfer = "transfer"
)

// Payment is a plain payment record for a booking. Amount is in IDR. No
// gateway integration; records are kept for the front desk.
type Payment struct {
	ID        string     `db:"id"`
	BookingID string     `db:"booking_id"`
	Amount    int64      `db:"amount"`
	Method    string     `db:"method"`
	Status    string     `db:"status"`
	PaidAt    *time.Time `db:"paid_at"`
	model.Metadata
}

package dto

import (
	"gor/internal/domains/payment/model"
	"gor/shared"
	"gor/shared/constant"
	gDto "gor/shared/dto"
	gModel "gor/shared/model"
	"gor/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Method    string `json:"method"     validate:"required,oneof=cash transfer"`
}

func (c *CreatePaymentRequest) ToModel(user string, amount int64) model.Payment {
	return model.Payment{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		Amount:    amount,
		Method:    c.Method,
		Status:    model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	Method string `db:"method" json:"method" validate:"omitempty,oneof=cash transfer"`
	Status string `db:"status" json:"status" validate:"omitempty,oneof=pending paid refunded"`
}

type PaymentResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Amount    int64   `json:"amount"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
	PaidAt    *string `json:"paid_at,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status

	if model.PaidAt != nil {
		paidAt := timezone.Format(*model.PaidAt, constant.DateFormat)
		r.PaidAt = &paidAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

package payment

import (
	"github.com/shopspring/decimal"

	loanDomain "loan-engine/internal/domain/loan"
	"loan-engine/pkg/datemath"
)

type PayInput struct {
	LoanID uint64
	Amount decimal.Decimal
}

type PaidInstallmentDTO struct {
	ID                uint64          `json:"id"`
	InstallmentNumber int             `json:"installment_number"`
	Amount            decimal.Decimal `json:"amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	DueDate           datemath.Date   `json:"due_date"`
	PaymentDate       *datemath.Date  `json:"payment_date"`
}

// PaymentResult reports what one payment call did. TotalAmount echoes the
// submitted amount; RemainingAmount is whatever could not be applied to any
// further installment.
type PaymentResult struct {
	TotalAmount             decimal.Decimal      `json:"total_amount"`
	RemainingAmount         decimal.Decimal      `json:"remaining_amount"`
	NumberOfPaidInstallment int                  `json:"number_of_paid_installment"`
	LoanFullyPaid           bool                 `json:"loan_fully_paid"`
	PaidInstallments        []PaidInstallmentDTO `json:"paid_installments"`
}

func toPaidDTO(i *loanDomain.Installment) PaidInstallmentDTO {
	return PaidInstallmentDTO{
		ID:                i.ID,
		InstallmentNumber: i.InstallmentNumber,
		Amount:            i.Amount,
		PaidAmount:        i.PaidAmount.Decimal,
		DueDate:           i.DueDate,
		PaymentDate:       i.PaymentDate,
	}
}

package loan

import (
	"time"

	"github.com/shopspring/decimal"

	loanDomain "loan-engine/internal/domain/loan"
)

type CreateLoanInput struct {
	CustomerID           uint64
	Amount               decimal.Decimal
	InterestRate         decimal.Decimal
	NumberOfInstallments int
}

type LoanDTO struct {
	ID                  uint64          `json:"id"`
	CustomerID          uint64          `json:"customer_id"`
	LoanAmount          decimal.Decimal `json:"loan_amount"`
	InterestRate        decimal.Decimal `json:"interest_rate"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	NumberOfInstallment int             `json:"number_of_installment"`
	IsPaid              bool            `json:"is_paid"`
	CreatedAt           time.Time       `json:"created_at"`
}

func toLoanDTO(l *loanDomain.Loan) *LoanDTO {
	return &LoanDTO{
		ID:                  l.ID,
		CustomerID:          l.CustomerID,
		LoanAmount:          l.LoanAmount,
		InterestRate:        l.InterestRate,
		TotalAmount:         l.TotalAmount,
		NumberOfInstallment: l.NumberOfInstallment,
		IsPaid:              l.IsPaid,
		CreatedAt:           l.CreatedAt,
	}
}

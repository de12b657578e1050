package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"loan-engine/pkg/datemath"
)

type Loan struct {
	ID                  uint64          `gorm:"primaryKey;column:id" json:"id"`
	CustomerID          uint64          `gorm:"not null;index:idx_loans_customer" json:"customer_id"`
	LoanAmount          decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"loan_amount"`
	InterestRate        decimal.Decimal `gorm:"type:decimal(6,4);not null" json:"interest_rate"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_amount"`
	NumberOfInstallment int             `gorm:"not null" json:"number_of_installment"`
	IsPaid              bool            `gorm:"not null;default:false" json:"is_paid"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Installment is one row of a loan's repayment schedule. Each installment is
// written once at origination and mutated at most once, by the payment flow
// (is_paid false→true, paid_amount and payment_date set together).
type Installment struct {
	ID                uint64              `gorm:"primaryKey;column:id" json:"id"`
	LoanID            uint64              `gorm:"not null;index:idx_installments_loan" json:"loan_id"`
	InstallmentNumber int                 `gorm:"not null" json:"installment_number"`
	Amount            decimal.Decimal     `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaidAmount        decimal.NullDecimal `gorm:"type:decimal(18,2)" json:"paid_amount"`
	DueDate           datemath.Date       `gorm:"type:varchar(10);not null" json:"due_date"`
	PaymentDate       *datemath.Date      `gorm:"type:varchar(10)" json:"payment_date"`
	IsPaid            bool                `gorm:"not null;default:false" json:"is_paid"`
	CreatedAt         time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Installment) TableName() string { return "loan_installments" }

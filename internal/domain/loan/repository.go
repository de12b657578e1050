package loan

import (
	"context"

	"loan-engine/pkg/datemath"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	FindByCustomerID(ctx context.Context, customerID uint64) ([]Loan, error)
}

type InstallmentRepository interface {
	CreateBatch(ctx context.Context, installments []*Installment) error
	Save(ctx context.Context, i *Installment) error
	// FindUnpaidDueBefore returns unpaid installments with due date strictly
	// before the given date, ordered by installment number ascending.
	FindUnpaidDueBefore(ctx context.Context, loanID uint64, before datemath.Date) ([]*Installment, error)
	CountUnpaid(ctx context.Context, loanID uint64) (int64, error)
}

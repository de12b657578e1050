package mysql

import (
	"context"

	"gorm.io/gorm"

	"loan-engine/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// WithinTx runs fn with repositories bound to one transaction, so the
// customer debit, loan row and installment batch land all-or-nothing.
func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Customers:    &CustomerRepository{db: tx},
			Loans:        &LoanRepository{db: tx},
			Installments: &InstallmentRepository{db: tx},
		}
		return fn(r)
	})
}

package uow

import (
	"context"

	"loan-engine/internal/domain/customer"
	"loan-engine/internal/domain/loan"
)

type Repos struct {
	Customers    customer.Repository
	Loans        loan.Repository
	Installments loan.InstallmentRepository
}

// UnitOfWork runs fn against repositories bound to a single database
// transaction. Origination uses it so the customer debit, the loan row and
// the installment batch commit or roll back together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}

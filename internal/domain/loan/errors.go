package loan

import "errors"

var (
	ErrNotFound = errors.New("loan not found")

	// ErrOperationBusy means the per-customer or per-loan lock could not be
	// acquired in time. Retryable by the caller.
	ErrOperationBusy = errors.New("operation busy, please try again")

	ErrInsufficientCredit      = errors.New("insufficient credit limit")
	ErrInvalidInterestRate     = errors.New("invalid interest rate (it should be between 0.1 and 0.5)")
	ErrInvalidInstallmentCount = errors.New("invalid installment count (6,9,12,24)")
	ErrNoUnpaidInstallments    = errors.New("no unpaid installments")
)

package loan

import (
	"github.com/shopspring/decimal"

	"loan-engine/internal/domain/customer"
	loanDomain "loan-engine/internal/domain/loan"
)

var (
	minInterestRate = decimal.RequireFromString("0.10")
	maxInterestRate = decimal.RequireFromString("0.50")
)

// ValidateCreditRules checks a loan request against the customer's credit
// line and the term constraints. Rules run in a fixed order and the first
// failure is reported; requesting exactly the available credit is allowed.
func ValidateCreditRules(c *customer.Customer, amount, rate decimal.Decimal, installments int) error {
	if c.AvailableCredit().LessThan(amount) {
		return loanDomain.ErrInsufficientCredit
	}
	if rate.LessThan(minInterestRate) || rate.GreaterThan(maxInterestRate) {
		return loanDomain.ErrInvalidInterestRate
	}
	switch installments {
	case 6, 9, 12, 24:
	default:
		return loanDomain.ErrInvalidInstallmentCount
	}
	return nil
}

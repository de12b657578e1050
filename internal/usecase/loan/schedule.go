package loan

import (
	"time"

	"github.com/shopspring/decimal"

	loanDomain "loan-engine/internal/domain/loan"
	"loan-engine/pkg/datemath"
)

var one = decimal.NewFromInt(1)

// TotalAmount is principal × (1 + rate).
func TotalAmount(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(one.Add(rate))
}

// GenerateSchedule splits total into n equal installments, each rounded
// half-up to 2 decimals. Every installment carries the rounded amount — the
// last one is NOT adjusted to absorb the remainder, so the schedule sum can
// drift from total by up to half a cent per installment.
//
// Installment i (1-based) is due on the first day of the (i)th month after
// the current one.
func GenerateSchedule(total decimal.Decimal, n int, now time.Time) []*loanDomain.Installment {
	per := total.DivRound(decimal.NewFromInt(int64(n)), 2)
	start := datemath.FirstDayOfNextMonth(now)

	out := make([]*loanDomain.Installment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &loanDomain.Installment{
			InstallmentNumber: i + 1,
			Amount:            per,
			DueDate:           datemath.NewDate(datemath.AddMonths(start, i)),
		})
	}
	return out
}

package payment

import (
	"github.com/shopspring/decimal"

	loanDomain "loan-engine/internal/domain/loan"
	"loan-engine/pkg/datemath"
)

// dailyAdjustmentRate is applied per day between payment date and due date:
// a discount for paying early, a penalty for paying on or after the due date.
var dailyAdjustmentRate = decimal.RequireFromString("0.001")

// AdjustedAmount is the effective price of settling inst on payDate.
//
//	adjusted = amount ± amount × 0.001 × |dueDate − payDate in days|
//
// The sign follows the day difference: strictly-future due dates earn the
// discount, everything else (due today or overdue) pays the penalty. The
// result is intentionally not re-rounded.
func AdjustedAmount(inst *loanDomain.Installment, payDate datemath.Date) decimal.Decimal {
	daysDiff := payDate.DaysUntil(inst.DueDate)
	abs := daysDiff
	if abs < 0 {
		abs = -abs
	}
	adjustment := inst.Amount.Mul(dailyAdjustmentRate).Mul(decimal.NewFromInt(int64(abs)))
	if daysDiff > 0 {
		return inst.Amount.Sub(adjustment)
	}
	return inst.Amount.Add(adjustment)
}

// Allocate walks the eligible installments in order and settles each one the
// budget can fully cover, up to maxCount. The walk stops at the first
// installment it cannot afford; later, cheaper installments are never
// considered. Settled installments are mutated in place (paid amount, payment
// date, paid flag) and returned; the leftover budget comes back as remaining.
func Allocate(installments []*loanDomain.Installment, amount decimal.Decimal,
	payDate datemath.Date, maxCount int) (paid []*loanDomain.Installment, remaining decimal.Decimal) {

	remaining = amount
	for _, inst := range installments {
		if len(paid) >= maxCount {
			break
		}
		adjusted := AdjustedAmount(inst, payDate)
		if remaining.LessThan(adjusted) {
			break
		}
		pd := payDate
		inst.PaidAmount = decimal.NewNullDecimal(adjusted)
		inst.PaymentDate = &pd
		inst.IsPaid = true
		remaining = remaining.Sub(adjusted)
		paid = append(paid, inst)
	}
	return paid, remaining
}

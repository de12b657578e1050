package cache

import "strconv"

const (
	splitPrefix         = "::"
	loanPrefix          = "loan"
	customerLoansPrefix = "customer_loans"
	lockPrefix          = "loan_lock"
)

// LoanKey caches a single loan DTO.
func LoanKey(loanID uint64) string {
	return loanPrefix + splitPrefix + strconv.FormatUint(loanID, 10)
}

// CustomerLoansKey caches a customer's loan list.
func CustomerLoansKey(customerID uint64) string {
	return customerLoansPrefix + splitPrefix + strconv.FormatUint(customerID, 10)
}

// CustomerLockKey names the origination lock for a customer.
func CustomerLockKey(customerID uint64) string {
	return lockPrefix + splitPrefix + strconv.FormatUint(customerID, 10)
}

// LoanLockKey names the payment lock for a loan.
func LoanLockKey(loanID uint64) string {
	return lockPrefix + splitPrefix + strconv.FormatUint(loanID, 10)
}

package mysql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	customerDomain "loan-engine/internal/domain/customer"
	loanDomain "loan-engine/internal/domain/loan"
	userDomain "loan-engine/internal/domain/user"
	"loan-engine/pkg/datemath"
)

// openTestDB migrates the domain schema into an in-memory sqlite database.
// The schema is sqlite-safe (no enums, dates stored as varchar), so the
// domain models migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&customerDomain.Customer{},
		&loanDomain.Loan{},
		&loanDomain.Installment{},
		&userDomain.User{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mustDate(t *testing.T, s string) datemath.Date {
	t.Helper()
	d, err := datemath.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func makeCustomer(limit, used string) *customerDomain.Customer {
	return &customerDomain.Customer{
		Name:            "Jane",
		Surname:         "Doe",
		CreditLimit:     dec(limit),
		UsedCreditLimit: dec(used),
	}
}

func seedBatch(t *testing.T, loanID uint64) []*loanDomain.Installment {
	t.Helper()
	return []*loanDomain.Installment{
		{LoanID: loanID, InstallmentNumber: 1, Amount: dec("958.33"), DueDate: mustDate(t, "2026.02.01")},
		{LoanID: loanID, InstallmentNumber: 2, Amount: dec("958.33"), DueDate: mustDate(t, "2026.03.01")},
	}
}

func makeLoan(customerID uint64) *loanDomain.Loan {
	return &loanDomain.Loan{
		CustomerID:          customerID,
		LoanAmount:          dec("10000.00"),
		InterestRate:        dec("0.15"),
		TotalAmount:         dec("11500.00"),
		NumberOfInstallment: 12,
		CreatedAt:           time.Now().UTC(),
	}
}

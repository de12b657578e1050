package customer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("customer not found")

type Customer struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"id"`
	Name            string          `gorm:"size:100;not null" json:"name"`
	Surname         string          `gorm:"size:100;not null" json:"surname"`
	CreditLimit     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"credit_limit"`
	UsedCreditLimit decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"used_credit_limit"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

// AvailableCredit is the headroom left on the credit line.
func (c *Customer) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.UsedCreditLimit)
}

package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	customerDomain "loan-engine/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, customerDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

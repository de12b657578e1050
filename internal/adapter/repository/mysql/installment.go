package mysql

import (
	"context"

	"gorm.io/gorm"

	loanDomain "loan-engine/internal/domain/loan"
	"loan-engine/pkg/datemath"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) CreateBatch(ctx context.Context, installments []*loanDomain.Installment) error {
	if len(installments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(installments).Error
}

func (r *InstallmentRepository) Save(ctx context.Context, i *loanDomain.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}

// FindUnpaidDueBefore relies on the yyyy.MM.dd column format comparing in
// date order as a plain string.
func (r *InstallmentRepository) FindUnpaidDueBefore(ctx context.Context, loanID uint64, before datemath.Date) ([]*loanDomain.Installment, error) {
	var out []*loanDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND is_paid = ? AND due_date < ?", loanID, false, before.String()).
		Order("installment_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) CountUnpaid(ctx context.Context, loanID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Installment{}).
		Where("loan_id = ? AND is_paid = ?", loanID, false).
		Count(&n)
	return n, res.Error
}

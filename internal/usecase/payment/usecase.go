package payment

import (
	"context"
	"errors"
	"log"
	"time"

	loanDomain "loan-engine/internal/domain/loan"
	"loan-engine/internal/domain/uow"
	rcache "loan-engine/internal/infrastructure/cache"
	"loan-engine/pkg/datemath"
)

type Locker interface {
	Acquire(ctx context.Context, key string, wait, lease time.Duration) (*rcache.Lock, error)
	Release(ctx context.Context, l *rcache.Lock) error
}

type CacheStore interface {
	Delete(ctx context.Context, key string) (bool, error)
}

type AccessChecker interface {
	IsAdminOrOwner(ctx context.Context, customerID uint64) error
}

type Options struct {
	LockWait  time.Duration
	LockLease time.Duration
	// MaxInstallmentPayment bounds a single payment twice over: only
	// installments due within this many months are eligible, and at most this
	// many are settled per call.
	MaxInstallmentPayment int
}

func (o *Options) applyDefaults() {
	if o.LockWait == 0 {
		o.LockWait = 10 * time.Second
	}
	if o.LockLease == 0 {
		o.LockLease = 30 * time.Second
	}
	if o.MaxInstallmentPayment == 0 {
		o.MaxInstallmentPayment = 3
	}
}

type Usecase struct {
	tx           uow.UnitOfWork
	loans        loanDomain.Repository
	installments loanDomain.InstallmentRepository
	locks        Locker
	store        CacheStore
	access       AccessChecker
	opts         Options

	// now is swapped in tests to pin payment dates
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, loans loanDomain.Repository, installments loanDomain.InstallmentRepository,
	locks Locker, store CacheStore, access AccessChecker, opts Options) *Usecase {
	opts.applyDefaults()
	return &Usecase{
		tx:           tx,
		loans:        loans,
		installments: installments,
		locks:        locks,
		store:        store,
		access:       access,
		opts:         opts,
		now:          time.Now,
	}
}

// Pay applies a single payment to a loan under the loan's lock. Eligible
// installments are the unpaid ones due strictly before now plus
// MaxInstallmentPayment months, walked in schedule order; the budget settles
// each one it can fully cover at its adjusted price and stops at the first it
// cannot. All row mutations commit in one transaction, and the loan flips to
// paid when no unpaid installment remains.
func (u *Usecase) Pay(ctx context.Context, in PayInput) (*PaymentResult, error) {
	lk, err := u.locks.Acquire(ctx, rcache.LoanLockKey(in.LoanID), u.opts.LockWait, u.opts.LockLease)
	if err != nil {
		if errors.Is(err, rcache.ErrNotAcquired) {
			return nil, loanDomain.ErrOperationBusy
		}
		return nil, err
	}
	relCtx := context.WithoutCancel(ctx)
	defer func() {
		if err := u.locks.Release(relCtx, lk); err != nil {
			log.Printf("release %s: %v", lk.Key(), err)
		}
	}()

	l, err := u.loans.GetByID(ctx, in.LoanID)
	if err != nil {
		return nil, err
	}
	if err := u.access.IsAdminOrOwner(ctx, l.CustomerID); err != nil {
		return nil, err
	}

	now := u.now().UTC()
	windowEnd := datemath.NewDate(datemath.AddMonths(datemath.Canonical(now), u.opts.MaxInstallmentPayment))
	eligible, err := u.installments.FindUnpaidDueBefore(ctx, l.ID, windowEnd)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, loanDomain.ErrNoUnpaidInstallments
	}

	payDate := datemath.NewDate(now)
	paid, remaining := Allocate(eligible, in.Amount, payDate, u.opts.MaxInstallmentPayment)

	fullyPaid := false
	err = u.tx.WithinTx(ctx, func(r uow.Repos) error {
		for _, inst := range paid {
			if err := r.Installments.Save(ctx, inst); err != nil {
				return err
			}
		}
		left, err := r.Installments.CountUnpaid(ctx, l.ID)
		if err != nil {
			return err
		}
		if left == 0 {
			fullyPaid = true
			l.IsPaid = true
			return r.Loans.Save(ctx, l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// evict inside the lock window so readers repopulate from committed state
	if _, err := u.store.Delete(ctx, rcache.LoanKey(l.ID)); err != nil {
		log.Printf("evict loan %d: %v", l.ID, err)
	}
	if _, err := u.store.Delete(ctx, rcache.CustomerLoansKey(l.CustomerID)); err != nil {
		log.Printf("evict customer loans %d: %v", l.CustomerID, err)
	}

	res := &PaymentResult{
		TotalAmount:             in.Amount,
		RemainingAmount:         remaining,
		NumberOfPaidInstallment: len(paid),
		LoanFullyPaid:           fullyPaid,
		PaidInstallments:        make([]PaidInstallmentDTO, 0, len(paid)),
	}
	for _, inst := range paid {
		res.PaidInstallments = append(res.PaidInstallments, toPaidDTO(inst))
	}
	return res, nil
}

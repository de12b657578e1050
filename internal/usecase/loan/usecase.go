package loan

import (
	"context"
	"errors"
	"log"
	"time"

	"loan-engine/internal/domain/customer"
	loanDomain "loan-engine/internal/domain/loan"
	"loan-engine/internal/domain/uow"
	rcache "loan-engine/internal/infrastructure/cache"
)

// Locker serializes mutations per customer / per loan across processes.
type Locker interface {
	Acquire(ctx context.Context, key string, wait, lease time.Duration) (*rcache.Lock, error)
	Release(ctx context.Context, l *rcache.Lock) error
}

type CacheStore interface {
	Put(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, dest any) (bool, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type AccessChecker interface {
	IsAdminOrOwner(ctx context.Context, customerID uint64) error
}

type Options struct {
	LockWait              time.Duration
	LockLease             time.Duration
	LoanCacheTTL          time.Duration
	CustomerLoansCacheTTL time.Duration
}

func (o *Options) applyDefaults() {
	if o.LockWait == 0 {
		o.LockWait = 10 * time.Second
	}
	if o.LockLease == 0 {
		o.LockLease = 30 * time.Second
	}
	if o.LoanCacheTTL == 0 {
		o.LoanCacheTTL = 30 * time.Minute
	}
	if o.CustomerLoansCacheTTL == 0 {
		o.CustomerLoansCacheTTL = 30 * time.Minute
	}
}

type Usecase struct {
	tx        uow.UnitOfWork
	customers customer.Repository
	loans     loanDomain.Repository
	locks     Locker
	store     CacheStore
	access    AccessChecker
	opts      Options
}

func NewUsecase(tx uow.UnitOfWork, customers customer.Repository, loans loanDomain.Repository,
	locks Locker, store CacheStore, access AccessChecker, opts Options) *Usecase {
	opts.applyDefaults()
	return &Usecase{
		tx:        tx,
		customers: customers,
		loans:     loans,
		locks:     locks,
		store:     store,
		access:    access,
		opts:      opts,
	}
}

// Create originates a loan: under the customer's lock, validate the credit
// rules, build the schedule and commit the customer debit + loan +
// installments in one transaction. The customer-scoped lock makes the
// check-then-debit atomic with respect to other originations for the same
// customer.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	lk, err := u.locks.Acquire(ctx, rcache.CustomerLockKey(in.CustomerID), u.opts.LockWait, u.opts.LockLease)
	if err != nil {
		if errors.Is(err, rcache.ErrNotAcquired) {
			return nil, loanDomain.ErrOperationBusy
		}
		return nil, err
	}
	// release on every exit path, including caller cancellation
	relCtx := context.WithoutCancel(ctx)
	defer func() {
		if err := u.locks.Release(relCtx, lk); err != nil {
			log.Printf("release %s: %v", lk.Key(), err)
		}
	}()

	cust, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if err := ValidateCreditRules(cust, in.Amount, in.InterestRate, in.NumberOfInstallments); err != nil {
		return nil, err
	}

	total := TotalAmount(in.Amount, in.InterestRate)
	l := &loanDomain.Loan{
		CustomerID:          cust.ID,
		LoanAmount:          in.Amount,
		InterestRate:        in.InterestRate,
		TotalAmount:         total,
		NumberOfInstallment: in.NumberOfInstallments,
	}
	installments := GenerateSchedule(total, in.NumberOfInstallments, time.Now().UTC())

	err = u.tx.WithinTx(ctx, func(r uow.Repos) error {
		cust.UsedCreditLimit = cust.UsedCreditLimit.Add(in.Amount)
		if err := r.Customers.Save(ctx, cust); err != nil {
			return err
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		for _, inst := range installments {
			inst.LoanID = l.ID
		}
		return r.Installments.CreateBatch(ctx, installments)
	})
	if err != nil {
		return nil, err
	}

	dto := toLoanDTO(l)
	// cache writes stay inside the lock window so a concurrent reader cannot
	// repopulate stale data before the lock releases
	if err := u.store.Put(ctx, rcache.LoanKey(l.ID), dto, u.opts.LoanCacheTTL); err != nil {
		log.Printf("cache loan %d: %v", l.ID, err)
	}
	if _, err := u.store.Delete(ctx, rcache.CustomerLoansKey(cust.ID)); err != nil {
		log.Printf("evict customer loans %d: %v", cust.ID, err)
	}
	return dto, nil
}

// Get returns a single loan, cache first.
func (u *Usecase) Get(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	var cached LoanDTO
	if ok, err := u.store.Get(ctx, rcache.LoanKey(loanID), &cached); err == nil && ok {
		if err := u.access.IsAdminOrOwner(ctx, cached.CustomerID); err != nil {
			return nil, err
		}
		return &cached, nil
	}

	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if err := u.access.IsAdminOrOwner(ctx, l.CustomerID); err != nil {
		return nil, err
	}
	return toLoanDTO(l), nil
}

// GetCustomerLoans lists a customer's loans, cache-aside with fallback to
// persistence on a miss.
func (u *Usecase) GetCustomerLoans(ctx context.Context, customerID uint64) ([]LoanDTO, error) {
	if err := u.access.IsAdminOrOwner(ctx, customerID); err != nil {
		return nil, err
	}

	key := rcache.CustomerLoansKey(customerID)
	var cached []LoanDTO
	ok, err := u.store.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("read %s: %v", key, err)
	} else if ok {
		return cached, nil
	}

	loans, err := u.loans.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	dtos := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		dtos = append(dtos, *toLoanDTO(&loans[i]))
	}
	if err := u.store.Put(ctx, key, dtos, u.opts.CustomerLoansCacheTTL); err != nil {
		log.Printf("cache %s: %v", key, err)
	}
	return dtos, nil
}

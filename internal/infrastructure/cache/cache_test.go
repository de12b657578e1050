package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCache(rdb), s
}

type cachedLoan struct {
	ID     uint64 `json:"id"`
	IsPaid bool   `json:"is_paid"`
}

func TestCache_PutGet(t *testing.T) {
	c, s := newTestCache(t)
	ctx := context.Background()

	in := cachedLoan{ID: 7, IsPaid: false}
	if err := c.Put(ctx, LoanKey(7), in, 30*time.Minute); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out cachedLoan
	ok, err := c.Get(ctx, LoanKey(7), &out)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}

	// TTL applied
	if ttl := s.TTL(LoanKey(7)); ttl <= 0 || ttl > 30*time.Minute {
		t.Fatalf("ttl = %v", ttl)
	}
}

func TestCache_GetMissIsNotAnError(t *testing.T) {
	c, _ := newTestCache(t)

	var out cachedLoan
	ok, err := c.Get(context.Background(), LoanKey(999), &out)
	if err != nil {
		t.Fatalf("Get miss err: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}

func TestCache_GetExpired(t *testing.T) {
	c, s := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, LoanKey(1), cachedLoan{ID: 1}, time.Second); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s.FastForward(2 * time.Second)

	var out cachedLoan
	ok, _ := c.Get(ctx, LoanKey(1), &out)
	if ok {
		t.Fatal("expected expired entry to be a miss")
	}
}

func TestCache_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_ = c.Put(ctx, CustomerLoansKey(3), []cachedLoan{{ID: 1}}, time.Minute)

	existed, err := c.Delete(ctx, CustomerLoansKey(3))
	if err != nil || !existed {
		t.Fatalf("Delete: existed=%v err=%v", existed, err)
	}
	existed, err = c.Delete(ctx, CustomerLoansKey(3))
	if err != nil || existed {
		t.Fatalf("second Delete: existed=%v err=%v", existed, err)
	}
}

func TestCache_CompareAndSet(t *testing.T) {
	c, s := newTestCache(t)
	ctx := context.Background()

	old := cachedLoan{ID: 5, IsPaid: false}
	updated := cachedLoan{ID: 5, IsPaid: true}
	_ = c.Put(ctx, LoanKey(5), old, time.Minute)

	// wrong expected value → no swap
	ok, err := c.CompareAndSet(ctx, LoanKey(5), updated, old)
	if err != nil {
		t.Fatalf("CAS: %v", err)
	}
	if ok {
		t.Fatal("CAS with wrong expected value must fail")
	}

	ok, err = c.CompareAndSet(ctx, LoanKey(5), old, updated)
	if err != nil || !ok {
		t.Fatalf("CAS: ok=%v err=%v", ok, err)
	}
	var got cachedLoan
	if _, err := c.Get(ctx, LoanKey(5), &got); err != nil {
		t.Fatalf("Get after CAS: %v", err)
	}
	if !got.IsPaid {
		t.Fatalf("value not swapped: %+v", got)
	}
	// TTL survives the swap
	if ttl := s.TTL(LoanKey(5)); ttl <= 0 {
		t.Fatalf("ttl lost after CAS: %v", ttl)
	}

	// absent key → false
	ok, err = c.CompareAndSet(ctx, LoanKey(404), old, updated)
	if err != nil || ok {
		t.Fatalf("CAS on absent key: ok=%v err=%v", ok, err)
	}
}

func TestKeys(t *testing.T) {
	if got := LoanKey(12); got != "loan::12" {
		t.Fatalf("LoanKey = %q", got)
	}
	if got := CustomerLoansKey(4); got != "customer_loans::4" {
		t.Fatalf("CustomerLoansKey = %q", got)
	}
	if got := CustomerLockKey(4); got != "loan_lock::4" {
		t.Fatalf("CustomerLockKey = %q", got)
	}
	if got := LoanLockKey(12); got != "loan_lock::12" {
		t.Fatalf("LoanLockKey = %q", got)
	}
}

package auth

import (
	"context"
	"testing"
	"time"

	"loan-engine/internal/domain/user"
)

const testSecret = "test-secret"

func TestToken_RoundTrip(t *testing.T) {
	cid := uint64(42)
	u := &user.User{ID: 7, Username: "alice", Role: user.RoleCustomer, CustomerID: &cid}

	tok, err := GenerateToken(u, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	idn, err := ValidateToken(tok, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if idn.UserID != 7 || idn.Username != "alice" || idn.Role != user.RoleCustomer || idn.CustomerID != 42 {
		t.Fatalf("identity = %+v", idn)
	}
}

func TestToken_AdminHasNoCustomer(t *testing.T) {
	u := &user.User{ID: 1, Username: "root", Role: user.RoleAdmin}

	tok, err := GenerateToken(u, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	idn, err := ValidateToken(tok, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if idn.Role != user.RoleAdmin || idn.CustomerID != 0 {
		t.Fatalf("identity = %+v", idn)
	}
}

func TestToken_WrongSecret(t *testing.T) {
	u := &user.User{ID: 1, Username: "alice", Role: user.RoleAdmin}
	tok, _ := GenerateToken(u, testSecret, time.Hour)

	if _, err := ValidateToken(tok, "other-secret"); err == nil {
		t.Fatal("expected error with wrong secret")
	}
}

func TestToken_Expired(t *testing.T) {
	u := &user.User{ID: 1, Username: "alice", Role: user.RoleAdmin}
	tok, _ := GenerateToken(u, testSecret, -time.Minute)

	if _, err := ValidateToken(tok, testSecret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestIdentityContext(t *testing.T) {
	if _, ok := IdentityFromContext(context.Background()); ok {
		t.Fatal("empty context should have no identity")
	}
	idn := &Identity{UserID: 3, Role: user.RoleAdmin}
	ctx := WithIdentity(context.Background(), idn)
	got, ok := IdentityFromContext(ctx)
	if !ok || got != idn {
		t.Fatalf("got %v ok=%v", got, ok)
	}
}

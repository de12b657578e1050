package access

import (
	"context"
	"errors"
	"testing"

	"loan-engine/internal/auth"
	"loan-engine/internal/domain/user"
)

func ctxWith(role user.Role, customerID uint64) context.Context {
	return auth.WithIdentity(context.Background(), &auth.Identity{
		UserID:     1,
		Role:       role,
		CustomerID: customerID,
	})
}

func TestIsAdminOrOwner(t *testing.T) {
	s := NewService()

	cases := []struct {
		name       string
		ctx        context.Context
		customerID uint64
		wantErr    bool
	}{
		{"admin any customer", ctxWith(user.RoleAdmin, 0), 99, false},
		{"owner own customer", ctxWith(user.RoleCustomer, 5), 5, false},
		{"customer other customer", ctxWith(user.RoleCustomer, 5), 6, true},
		{"no identity", context.Background(), 5, true},
		{"unknown role", ctxWith(user.Role("GUEST"), 5), 5, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := s.IsAdminOrOwner(c.ctx, c.customerID)
			if c.wantErr {
				if !errors.Is(err, ErrAccessDenied) {
					t.Fatalf("err = %v, want ErrAccessDenied", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
		})
	}
}

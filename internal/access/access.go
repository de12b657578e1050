// Package access implements the admin-or-owner capability check used before
// reading or paying a customer's loans.
package access

import (
	"context"
	"errors"

	"loan-engine/internal/auth"
	"loan-engine/internal/domain/user"
)

var ErrAccessDenied = errors.New("access denied")

type Service struct{}

func NewService() *Service { return &Service{} }

// IsAdminOrOwner allows ADMIN callers for any customer and CUSTOMER callers
// only for their own customer id.
func (s *Service) IsAdminOrOwner(ctx context.Context, customerID uint64) error {
	idn, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return ErrAccessDenied
	}
	if idn.Role == user.RoleAdmin {
		return nil
	}
	if idn.Role == user.RoleCustomer && idn.CustomerID == customerID {
		return nil
	}
	return ErrAccessDenied
}

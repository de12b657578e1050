package customer

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	Save(ctx context.Context, c *Customer) error
}

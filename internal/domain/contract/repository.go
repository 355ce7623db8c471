package contract

import "context"

type Repository interface {
	// FindByID returns ErrNotFound when no live contract has the id.
	FindByID(ctx context.Context, id uint64) (*Contract, error)
	Find(ctx context.Context, f Filter) ([]Contract, error)
	// Save inserts when c.ID is zero (assigning it), otherwise overwrites the row.
	Save(ctx context.Context, c *Contract) error
	DeleteByID(ctx context.Context, id uint64) error
}

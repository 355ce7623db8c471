package contractmock

import (
	"context"

	domain "nextgear-contracts/internal/domain/contract"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Reads without a func return context.Canceled; writes without a func are no-ops.
type Repo struct {
	FindByIDFn   func(ctx context.Context, id uint64) (*domain.Contract, error)
	FindFn       func(ctx context.Context, f domain.Filter) ([]domain.Contract, error)
	SaveFn       func(ctx context.Context, c *domain.Contract) error
	DeleteByIDFn func(ctx context.Context, id uint64) error

	SaveCalls int
}

func (m *Repo) FindByID(ctx context.Context, id uint64) (*domain.Contract, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Find(ctx context.Context, f domain.Filter) ([]domain.Contract, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Contract) error {
	m.SaveCalls++
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) DeleteByID(ctx context.Context, id uint64) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return nil
}

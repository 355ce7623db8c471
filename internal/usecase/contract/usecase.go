package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "nextgear-contracts/internal/domain/contract"
)

// Usecase holds the contract rules: validation on create, auto-approval of EXPRESS
// contracts, and the restricted field set that an update may touch.
type Usecase struct {
	repo domain.Repository
	now  func() time.Time
}

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r, now: time.Now} }

func (u *Usecase) Create(ctx context.Context, in CreateContractInput) (*domain.Contract, error) {
	if in.Name == "" {
		return nil, domain.InvalidArgument("Contract name must be specified")
	}
	if in.AmountRequested < 1 {
		return nil, domain.InvalidArgument("Contract amount must be greater than 0")
	}
	if in.Type == "" {
		return nil, domain.InvalidArgument("Contract type must not be null")
	}
	if !in.Type.Valid() {
		return nil, domain.InvalidArgument("Contract type must be one of %s, %s", domain.TypeExpress, domain.TypeSales)
	}
	if in.Type == domain.TypeExpress && in.AmountRequested >= domain.ExpressAmountLimit {
		return nil, domain.InvalidArgument("EXPRESS contract amounts must be less than %d", domain.ExpressAmountLimit)
	}

	c := &domain.Contract{
		Name:            in.Name,
		BusinessNumber:  in.BusinessNumber,
		Type:            in.Type,
		AmountRequested: in.AmountRequested,
	}

	// EXPRESS is approved on the spot; SALES waits for a decision.
	if c.Type == domain.TypeExpress {
		approved := domain.StatusApproved
		activated := u.now().UTC().Truncate(time.Millisecond)
		c.Status = &approved
		c.ActivationDate = &activated
	}

	if err := u.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save contract: %w", err)
	}
	return c, nil
}

// Update copies name and business number from the payload onto the stored contract, and the
// amount only while no decision has been recorded. Type, status and activation date on the
// payload are ignored.
func (u *Usecase) Update(ctx context.Context, payload *domain.Contract) (*domain.Contract, error) {
	existing, err := u.repo.FindByID(ctx, payload.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.InvalidArgument("Contract does not exist with id: %d", payload.ID)
		}
		return nil, fmt.Errorf("find contract %d: %w", payload.ID, err)
	}

	existing.Name = payload.Name
	existing.BusinessNumber = payload.BusinessNumber

	if !existing.HasDecision() {
		if payload.AmountRequested < 1 {
			return nil, domain.InvalidArgument("Contract amount must be greater than 0")
		}
		existing.AmountRequested = payload.AmountRequested
	}

	if err := u.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("save contract %d: %w", existing.ID, err)
	}
	return existing, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.repo.DeleteByID(ctx, id)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.Contract, error) {
	return u.repo.FindByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]domain.Contract, error) {
	return u.repo.Find(ctx, f)
}

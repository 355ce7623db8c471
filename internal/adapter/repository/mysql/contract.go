package mysql

import (
	"context"
	"errors"

	contractDomain "nextgear-contracts/internal/domain/contract"

	"gorm.io/gorm"
)

type ContractRepository struct{ db *gorm.DB }

func NewContractRepository(db *gorm.DB) *ContractRepository { return &ContractRepository{db: db} }

func (r *ContractRepository) FindByID(ctx context.Context, id uint64) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	err := r.db.WithContext(ctx).First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, contractDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ContractRepository) Find(ctx context.Context, f contractDomain.Filter) ([]contractDomain.Contract, error) {
	q := r.db.WithContext(ctx).Model(&contractDomain.Contract{})
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.Type != nil {
		q = q.Where("type = ?", string(*f.Type))
	}
	if f.BusinessNumber != nil {
		q = q.Where("business_number = ?", *f.BusinessNumber)
	}

	out := []contractDomain.Contract{}
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContractRepository) Save(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// DeleteByID soft-deletes; an unknown id is not an error.
func (r *ContractRepository) DeleteByID(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&contractDomain.Contract{}, id).Error
}

package contract

import (
	"time"

	"gorm.io/gorm"
)

// ExpressAmountLimit is the exclusive ceiling on amountRequested for EXPRESS contracts.
const ExpressAmountLimit = 50000

type Type string

const (
	TypeExpress Type = "EXPRESS"
	TypeSales   Type = "SALES"
)

func (t Type) Valid() bool { return t == TypeExpress || t == TypeSales }

type Status string

const (
	StatusApproved Status = "APPROVED"
	// StatusDenied is storable and filterable, but nothing in the service sets it yet.
	StatusDenied Status = "DENIED"
)

func (s Status) Valid() bool { return s == StatusApproved || s == StatusDenied }

// Contract is a financing request. Status and ActivationDate are nil until a decision is recorded.
type Contract struct {
	ID              uint64         `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name            string         `gorm:"size:255;column:name;not null" json:"name"`
	BusinessNumber  int64          `gorm:"column:business_number;index:idx_contracts_business_number" json:"businessNumber"`
	AmountRequested int            `gorm:"column:amount_requested;not null" json:"amountRequested"`
	Type            Type           `gorm:"size:16;column:type;not null" json:"type"`
	Status          *Status        `gorm:"size:16;column:status;index:idx_contracts_status" json:"status"`
	ActivationDate  *time.Time     `gorm:"column:activation_date" json:"activationDate"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Contract) TableName() string { return "contracts" }

// Equal reports whether both contracts carry the same identifier.
func (c *Contract) Equal(other *Contract) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID
}

// HasDecision is true once a status has been recorded; the requested amount is frozen from then on.
func (c *Contract) HasDecision() bool { return c.Status != nil }

// Filter is a sparse exact-match query. Nil fields are not constrained.
type Filter struct {
	Status         *Status
	Type           *Type
	BusinessNumber *int64
}

package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Category represents an expense category. Categories are never physically
// removed; IsActive=false marks them soft-deleted.
type Category struct {
	ID           uuid.UUID           `db:"id"`
	CompanyID    uuid.UUID           `db:"company_id"`
	Name         string              `db:"name"`
	Description  string              `db:"description"`
	BudgetAmount decimal.NullDecimal `db:"budget_amount"`
	IsActive     bool                `db:"is_active"`
	CreatedAt    time.Time           `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	CompanyID    uuid.UUID
	Name         string
	Description  string
	BudgetAmount decimal.NullDecimal
}

// CategoryUpdate holds the permitted partial-update fields for a category.
type CategoryUpdate struct {
	Name         omit.Val[string]
	Description  omit.Val[string]
	BudgetAmount omit.Val[decimal.NullDecimal]
	IsActive     omit.Val[bool]
}

// IsEmpty reports whether no fields are set.
func (u *CategoryUpdate) IsEmpty() bool {
	return !u.Name.IsValue() && !u.Description.IsValue() && !u.BudgetAmount.IsValue() && !u.IsActive.IsValue()
}

// ICategoriesTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoriesTable --output mock_ICategoriesTable.go
type ICategoriesTable interface {
	ListActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) (*Category, error)
}

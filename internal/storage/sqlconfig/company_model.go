package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Company represents a company record.
type Company struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Industry  string    `db:"industry"`
	CreatedAt time.Time `db:"created_at"`
}

// CompanyCreate is the input for creating a new company.
type CompanyCreate struct {
	Name     string
	Industry string
}

// CompanyUpdate holds the permitted partial-update fields for a company.
// Unset fields are left untouched.
type CompanyUpdate struct {
	Name     omit.Val[string]
	Industry omit.Val[string]
}

// IsEmpty reports whether no fields are set.
func (u *CompanyUpdate) IsEmpty() bool {
	return !u.Name.IsValue() && !u.Industry.IsValue()
}

// ICompaniesTable defines the interface for company storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ICompaniesTable --output mock_ICompaniesTable.go
type ICompaniesTable interface {
	List(ctx context.Context) ([]*Company, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByName(ctx context.Context, name string) (*Company, error)
	Insert(ctx context.Context, create *CompanyCreate) (*Company, error)
	Update(ctx context.Context, id uuid.UUID, update *CompanyUpdate) (*Company, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

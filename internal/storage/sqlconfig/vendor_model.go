package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Vendor represents a vendor record, unique per (company_id, name).
type Vendor struct {
	ID        uuid.UUID `db:"id"`
	CompanyID uuid.UUID `db:"company_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// IVendorsTable defines the interface for vendor storage operations.
//
//go:generate mockery --name IVendorsTable --output mock_IVendorsTable.go
type IVendorsTable interface {
	FindByName(ctx context.Context, companyID uuid.UUID, name string) (*Vendor, error)
	Upsert(ctx context.Context, companyID uuid.UUID, name string) (*Vendor, error)
}

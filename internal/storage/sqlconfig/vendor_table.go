package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var vendorColumns = []any{"id", "company_id", "name", "created_at"}

var _ IVendorsTable = (*VendorsTable)(nil)

type VendorsTable struct {
	exec bob.Executor
}

func NewVendorsTable(exec bob.Executor) *VendorsTable {
	return &VendorsTable{exec: exec}
}

// FindByName retrieves a vendor by its natural key. Returns nil when no row exists.
func (t *VendorsTable) FindByName(ctx context.Context, companyID uuid.UUID, name string) (*Vendor, error) {
	query := psql.Select(
		sm.Columns(vendorColumns...),
		sm.From("vendors"),
		sm.Where(psql.Quote("company_id").EQ(psql.Arg(companyID))),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Vendor]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// Upsert resolves a vendor by (company_id, name), inserting it when absent.
// The unique index makes concurrent resolutions converge on one row instead of
// racing check-then-insert.
func (t *VendorsTable) Upsert(ctx context.Context, companyID uuid.UUID, name string) (*Vendor, error) {
	query := psql.Insert(
		im.Into("vendors", "company_id", "name"),
		im.Values(psql.Arg(companyID, name)),
		im.OnConflict("company_id", "name").DoUpdate(im.SetExcluded("name")),
		im.Returning(vendorColumns...),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*Vendor]())
}

package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var billColumns = []any{"id", "company_id", "vendor_id", "bill_number", "bill_date", "total_amount", "balance_due", "status", "memo", "created_at"}

// billJoinColumns qualifies every bill column and appends the joined vendor name.
var billJoinColumns = []any{
	"bills.id", "bills.company_id", "bills.vendor_id", "bills.bill_number",
	"bills.bill_date", "bills.total_amount", "bills.balance_due", "bills.status",
	"bills.memo", "bills.created_at",
	psql.Raw("vendors.name AS vendor_name"),
}

var _ IBillsTable = (*BillsTable)(nil)

type BillsTable struct {
	exec bob.Executor
}

func NewBillsTable(exec bob.Executor) *BillsTable {
	return &BillsTable{exec: exec}
}

// List returns all bills with their vendor names, newest first.
func (t *BillsTable) List(ctx context.Context) ([]*BillWithVendor, error) {
	query := psql.Select(
		sm.Columns(billJoinColumns...),
		sm.From("bills"),
		sm.LeftJoin("vendors").OnEQ(psql.Quote("bills", "vendor_id"), psql.Quote("vendors", "id")),
		sm.OrderBy("bills.created_at").Desc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[*BillWithVendor]())
}

// ListByCompany returns a company's bills with their vendor names, newest first.
func (t *BillsTable) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*BillWithVendor, error) {
	query := psql.Select(
		sm.Columns(billJoinColumns...),
		sm.From("bills"),
		sm.LeftJoin("vendors").OnEQ(psql.Quote("bills", "vendor_id"), psql.Quote("vendors", "id")),
		sm.Where(psql.Quote("bills", "company_id").EQ(psql.Arg(companyID))),
		sm.OrderBy("bills.created_at").Desc(),
	)
	return bob.All(ctx, t.exec, query, scan.StructMapper[*BillWithVendor]())
}

// FindByID retrieves a bill by primary key. Returns nil when no row exists.
func (t *BillsTable) FindByID(ctx context.Context, id uuid.UUID) (*Bill, error) {
	query := psql.Select(
		sm.Columns(billColumns...),
		sm.From("bills"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Bill]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

func (t *BillsTable) Insert(ctx context.Context, create *BillCreate) (*Bill, error) {
	query := psql.Insert(
		im.Into("bills", "company_id", "vendor_id", "bill_number", "bill_date", "total_amount", "balance_due", "status", "memo"),
		im.Values(psql.Arg(
			create.CompanyID, create.VendorID, create.BillNumber, create.BillDate,
			create.TotalAmount, create.BalanceDue, create.Status, create.Memo,
		)),
		im.Returning(billColumns...),
	)
	return bob.One(ctx, t.exec, query, scan.StructMapper[*Bill]())
}

// Update applies the set fields of the update and returns the updated row, or
// nil when the id does not exist. Voiding a bill is an update with Status="void".
func (t *BillsTable) Update(ctx context.Context, id uuid.UUID, update *BillUpdate) (*Bill, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("bills"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(billColumns...),
	}
	if update.VendorID.IsValue() {
		mods = append(mods, um.SetCol("vendor_id").ToArg(update.VendorID.MustGet()))
	}
	if update.TotalAmount.IsValue() {
		mods = append(mods, um.SetCol("total_amount").ToArg(update.TotalAmount.MustGet()))
	}
	if update.BalanceDue.IsValue() {
		mods = append(mods, um.SetCol("balance_due").ToArg(update.BalanceDue.MustGet()))
	}
	if update.BillDate.IsValue() {
		mods = append(mods, um.SetCol("bill_date").ToArg(update.BillDate.MustGet()))
	}
	if update.Status.IsValue() {
		mods = append(mods, um.SetCol("status").ToArg(update.Status.MustGet()))
	}
	if update.Memo.IsValue() {
		mods = append(mods, um.SetCol("memo").ToArg(update.Memo.MustGet()))
	}

	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[*Bill]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

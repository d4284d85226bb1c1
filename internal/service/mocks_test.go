package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// mockCompaniesTable is a mock for sqlconfig.ICompaniesTable.
type mockCompaniesTable struct {
	mock.Mock
}

func (m *mockCompaniesTable) List(ctx context.Context) ([]*sqlconfig.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Company), args.Error(1)
}

func (m *mockCompaniesTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Company), args.Error(1)
}

func (m *mockCompaniesTable) FindByName(ctx context.Context, name string) (*sqlconfig.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Company), args.Error(1)
}

func (m *mockCompaniesTable) Insert(ctx context.Context, create *sqlconfig.CompanyCreate) (*sqlconfig.Company, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Company), args.Error(1)
}

func (m *mockCompaniesTable) Update(ctx context.Context, id uuid.UUID, update *sqlconfig.CompanyUpdate) (*sqlconfig.Company, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Company), args.Error(1)
}

func (m *mockCompaniesTable) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// mockUsersTable is a mock for sqlconfig.IUsersTable.
type mockUsersTable struct {
	mock.Mock
}

func (m *mockUsersTable) List(ctx context.Context) ([]*sqlconfig.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.User), args.Error(1)
}

func (m *mockUsersTable) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*sqlconfig.User, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.User), args.Error(1)
}

func (m *mockUsersTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.User), args.Error(1)
}

func (m *mockUsersTable) FindByEmail(ctx context.Context, email string) (*sqlconfig.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.User), args.Error(1)
}

func (m *mockUsersTable) Insert(ctx context.Context, create *sqlconfig.UserCreate) (*sqlconfig.User, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.User), args.Error(1)
}

func (m *mockUsersTable) Update(ctx context.Context, id uuid.UUID, update *sqlconfig.UserUpdate) (*sqlconfig.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.User), args.Error(1)
}

func (m *mockUsersTable) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// mockCategoriesTable is a mock for sqlconfig.ICategoriesTable.
type mockCategoriesTable struct {
	mock.Mock
}

func (m *mockCategoriesTable) ListActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*sqlconfig.Category, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Category), args.Error(1)
}

func (m *mockCategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Category), args.Error(1)
}

func (m *mockCategoriesTable) Insert(ctx context.Context, create *sqlconfig.CategoryCreate) (*sqlconfig.Category, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Category), args.Error(1)
}

func (m *mockCategoriesTable) Update(ctx context.Context, id uuid.UUID, update *sqlconfig.CategoryUpdate) (*sqlconfig.Category, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Category), args.Error(1)
}

// mockVendorsTable is a mock for sqlconfig.IVendorsTable.
type mockVendorsTable struct {
	mock.Mock
}

func (m *mockVendorsTable) FindByName(ctx context.Context, companyID uuid.UUID, name string) (*sqlconfig.Vendor, error) {
	args := m.Called(ctx, companyID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Vendor), args.Error(1)
}

func (m *mockVendorsTable) Upsert(ctx context.Context, companyID uuid.UUID, name string) (*sqlconfig.Vendor, error) {
	args := m.Called(ctx, companyID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Vendor), args.Error(1)
}

// mockBillsTable is a mock for sqlconfig.IBillsTable.
type mockBillsTable struct {
	mock.Mock
}

func (m *mockBillsTable) List(ctx context.Context) ([]*sqlconfig.BillWithVendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.BillWithVendor), args.Error(1)
}

func (m *mockBillsTable) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*sqlconfig.BillWithVendor, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.BillWithVendor), args.Error(1)
}

func (m *mockBillsTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Bill), args.Error(1)
}

func (m *mockBillsTable) Insert(ctx context.Context, create *sqlconfig.BillCreate) (*sqlconfig.Bill, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Bill), args.Error(1)
}

func (m *mockBillsTable) Update(ctx context.Context, id uuid.UUID, update *sqlconfig.BillUpdate) (*sqlconfig.Bill, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Bill), args.Error(1)
}

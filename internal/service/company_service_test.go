package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

func newCompanyTestService(t *testing.T) (*CompanyService, *mockCompaniesTable, *mockUsersTable) {
	t.Helper()
	companies := new(mockCompaniesTable)
	users := new(mockUsersTable)
	store := &storage.Storage{Companies: companies, Users: users}
	return NewCompanyService(store), companies, users
}

func makeCompanyRow(name string, createdAt time.Time) *sqlconfig.Company {
	return &sqlconfig.Company{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		Industry:  "Retail",
		CreatedAt: createdAt,
	}
}

// -- ListCompanies tests --

func TestListCompanies_DeduplicatesByTrimmedName(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	earliest := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earliest.Add(24 * time.Hour)
	first := makeCompanyRow("Acme", earliest)
	duplicate := makeCompanyRow("  Acme ", later)
	other := makeCompanyRow("Globex", later)

	companies.On("List", mock.Anything).
		Return([]*sqlconfig.Company{first, duplicate, other}, nil)

	result, err := svc.ListCompanies(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, first.ID, result[0].ID, "earliest duplicate wins")
	assert.Equal(t, other.ID, result[1].ID)
}

func TestListCompanies_SkipsBlankNames(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	companies.On("List", mock.Anything).
		Return([]*sqlconfig.Company{makeCompanyRow("   ", time.Now()), makeCompanyRow("Acme", time.Now())}, nil)

	result, err := svc.ListCompanies(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Acme", result[0].Name)
}

func TestListCompanies_StorageError(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	companies.On("List", mock.Anything).Return(nil, errors.New("database unavailable"))

	result, err := svc.ListCompanies(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
}

// -- ListCompaniesWithUsers tests --

func TestListCompaniesWithUsers_GroupsUsersByCompany(t *testing.T) {
	svc, companies, users := newCompanyTestService(t)

	company := makeCompanyRow("Acme", time.Now())
	linked := &sqlconfig.User{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     "a@acme.test",
		CompanyID: uuid.NullUUID{UUID: company.ID, Valid: true},
	}
	unlinked := &sqlconfig.User{
		ID:    uuid.Must(uuid.NewV4()),
		Email: "b@nowhere.test",
	}

	companies.On("List", mock.Anything).Return([]*sqlconfig.Company{company}, nil)
	users.On("List", mock.Anything).Return([]*sqlconfig.User{linked, unlinked}, nil)

	result, err := svc.ListCompaniesWithUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Len(t, result[0].Users, 1)
	assert.Equal(t, "a@acme.test", result[0].Users[0].Email)
}

// -- GetCompany tests --

func TestGetCompany_NotFound(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	id := uuid.Must(uuid.NewV4())
	companies.On("FindByID", mock.Anything, id).Return(nil, nil)

	company, err := svc.GetCompany(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, company)
}

func TestGetCompany_Success(t *testing.T) {
	svc, companies, users := newCompanyTestService(t)

	row := makeCompanyRow("Acme", time.Now())
	companies.On("FindByID", mock.Anything, row.ID).Return(row, nil)
	users.On("ListByCompany", mock.Anything, row.ID).Return([]*sqlconfig.User{}, nil)

	company, err := svc.GetCompany(context.Background(), row.ID)

	assert.NoError(t, err)
	assert.NotNil(t, company)
	assert.Equal(t, row.Name, company.Name)
	assert.Empty(t, company.Users)
}

// -- CreateCompany tests --

func TestCreateCompany_BlankName(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	company, existed, err := svc.CreateCompany(context.Background(), "   ", "Retail")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, company)
	assert.False(t, existed)
	companies.AssertNotCalled(t, "Insert")
}

func TestCreateCompany_ReusesExisting(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	row := makeCompanyRow("Acme", time.Now())
	companies.On("FindByName", mock.Anything, "Acme").Return(row, nil)

	company, existed, err := svc.CreateCompany(context.Background(), " Acme ", "Retail")

	assert.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, row.ID, company.ID)
	companies.AssertNotCalled(t, "Insert")
}

func TestCreateCompany_InsertsNew(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	row := makeCompanyRow("Acme", time.Now())
	companies.On("FindByName", mock.Anything, "Acme").Return(nil, nil)
	companies.On("Insert", mock.Anything, mock.MatchedBy(func(c *sqlconfig.CompanyCreate) bool {
		return c.Name == "Acme" && c.Industry == "Retail"
	})).Return(row, nil)

	company, existed, err := svc.CreateCompany(context.Background(), "Acme", "Retail")

	assert.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, row.ID, company.ID)
}

func TestCreateCompany_LosesInsertRace(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	row := makeCompanyRow("Acme", time.Now())
	// Insert returns nil when the unique index swallowed the write; the
	// concurrent winner's row is re-read.
	companies.On("FindByName", mock.Anything, "Acme").Return(nil, nil).Once()
	companies.On("Insert", mock.Anything, mock.Anything).Return(nil, nil)
	companies.On("FindByName", mock.Anything, "Acme").Return(row, nil).Once()

	company, existed, err := svc.CreateCompany(context.Background(), "Acme", "Retail")

	assert.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, row.ID, company.ID)
}

// -- UpdateCompany tests --

func TestUpdateCompany_NoFields(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	company, err := svc.UpdateCompany(context.Background(), uuid.Must(uuid.NewV4()), CompanyUpdate{})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, company)
	companies.AssertNotCalled(t, "Update")
}

func TestUpdateCompany_NotFound(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	id := uuid.Must(uuid.NewV4())
	name := "Acme"
	companies.On("Update", mock.Anything, id, mock.Anything).Return(nil, nil)

	company, err := svc.UpdateCompany(context.Background(), id, CompanyUpdate{Name: &name})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, company)
}

// -- DeleteCompany tests --

func TestDeleteCompany_Success(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	id := uuid.Must(uuid.NewV4())
	companies.On("Delete", mock.Anything, id).Return(int64(1), nil)

	assert.NoError(t, svc.DeleteCompany(context.Background(), id))
}

func TestDeleteCompany_NotFound(t *testing.T) {
	svc, companies, _ := newCompanyTestService(t)

	id := uuid.Must(uuid.NewV4())
	companies.On("Delete", mock.Anything, id).Return(int64(0), nil)

	assert.ErrorIs(t, svc.DeleteCompany(context.Background(), id), ErrNotFound)
}

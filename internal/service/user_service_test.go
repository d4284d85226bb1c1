package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

func newUserTestService(t *testing.T) (*UserService, *mockUsersTable) {
	t.Helper()
	users := new(mockUsersTable)
	store := &storage.Storage{Users: users}
	return NewUserService(store, NewAccountLinker(users)), users
}

// -- GetUser tests --

func TestGetUser_NotFound(t *testing.T) {
	svc, users := newUserTestService(t)

	id := uuid.Must(uuid.NewV4())
	users.On("FindByID", mock.Anything, id).Return(nil, nil)

	user, err := svc.GetUser(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, user)
}

func TestGetUserByEmail_Success(t *testing.T) {
	svc, users := newUserTestService(t)

	row := &sqlconfig.User{ID: uuid.Must(uuid.NewV4()), Email: "a@acme.test", FullName: "Jane"}
	users.On("FindByEmail", mock.Anything, "a@acme.test").Return(row, nil)

	user, err := svc.GetUserByEmail(context.Background(), "a@acme.test")

	assert.NoError(t, err)
	assert.Equal(t, row.ID, user.ID)
	assert.Equal(t, "Jane", user.FullName)
}

// -- CreateUser tests --

func TestCreateUser_InsertsNew(t *testing.T) {
	svc, users := newUserTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	row := &sqlconfig.User{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     "new@acme.test",
		CompanyID: uuid.NullUUID{UUID: companyID, Valid: true},
	}

	users.On("FindByEmail", mock.Anything, "new@acme.test").Return(nil, nil)
	users.On("Insert", mock.Anything, mock.MatchedBy(func(c *sqlconfig.UserCreate) bool {
		return c.Email == "new@acme.test" && c.CompanyID.UUID == companyID
	})).Return(row, nil)

	user, err := svc.CreateUser(context.Background(), UserCreate{
		Email:     "new@acme.test",
		CompanyID: &companyID,
	})

	assert.NoError(t, err)
	assert.NotNil(t, user.CompanyID)
	assert.Equal(t, companyID, *user.CompanyID)
}

func TestCreateUser_ReusesLinkedUser(t *testing.T) {
	svc, users := newUserTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	existing := &sqlconfig.User{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     "a@acme.test",
		CompanyID: uuid.NullUUID{UUID: companyID, Valid: true},
	}
	users.On("FindByEmail", mock.Anything, "a@acme.test").Return(existing, nil)

	user, err := svc.CreateUser(context.Background(), UserCreate{
		Email:     "a@acme.test",
		CompanyID: &companyID,
	})

	assert.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
	users.AssertNotCalled(t, "Insert")
}

func TestCreateUser_EmailLinkedElsewhereConflicts(t *testing.T) {
	svc, users := newUserTestService(t)

	existing := &sqlconfig.User{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     "a@acme.test",
		CompanyID: uuid.NullUUID{UUID: uuid.Must(uuid.NewV4()), Valid: true},
	}
	users.On("FindByEmail", mock.Anything, "a@acme.test").Return(existing, nil)

	other := uuid.Must(uuid.NewV4())
	user, err := svc.CreateUser(context.Background(), UserCreate{
		Email:     "a@acme.test",
		CompanyID: &other,
	})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Nil(t, user)
	users.AssertNotCalled(t, "Insert")
}

func TestCreateUserForCompany_ForcesCompany(t *testing.T) {
	svc, users := newUserTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	row := &sqlconfig.User{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     "new@acme.test",
		CompanyID: uuid.NullUUID{UUID: companyID, Valid: true},
	}

	users.On("FindByEmail", mock.Anything, "new@acme.test").Return(nil, nil)
	users.On("Insert", mock.Anything, mock.MatchedBy(func(c *sqlconfig.UserCreate) bool {
		return c.CompanyID.Valid && c.CompanyID.UUID == companyID
	})).Return(row, nil)

	user, err := svc.CreateUserForCompany(context.Background(), companyID, UserCreate{
		Email: "new@acme.test",
	})

	assert.NoError(t, err)
	assert.Equal(t, companyID, *user.CompanyID)
}

// -- UpdateUser tests --

func TestUpdateUser_NoFields(t *testing.T) {
	svc, users := newUserTestService(t)

	user, err := svc.UpdateUser(context.Background(), uuid.Must(uuid.NewV4()), UserUpdate{})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, user)
	users.AssertNotCalled(t, "Update")
}

// -- DeleteUser tests --

func TestDeleteUser_NotFound(t *testing.T) {
	svc, users := newUserTestService(t)

	id := uuid.Must(uuid.NewV4())
	users.On("Delete", mock.Anything, id).Return(int64(0), nil)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), id), ErrNotFound)
}

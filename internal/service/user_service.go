package service

import (
	"context"
	"fmt"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// UserService handles user business logic. All company association decisions
// are delegated to the AccountLinker.
type UserService struct {
	storage *storage.Storage
	linker  *AccountLinker
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, linker *AccountLinker) *UserService {
	return &UserService{storage: store, linker: linker}
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.storage.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]User, len(rows))
	for i, row := range rows {
		users[i] = userFromStorage(row)
	}
	return users, nil
}

// GetUser retrieves a user by id.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	user := userFromStorage(row)
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	user := userFromStorage(row)
	return &user, nil
}

// CreateUser creates a user. When the email already belongs to an unlinked
// user and the create carries a company_id, the existing user is linked
// instead of inserting a duplicate.
func (s *UserService) CreateUser(ctx context.Context, create UserCreate) (*User, error) {
	linked, err := s.linker.EnsureEmailLink(ctx, create.Email, create.CompanyID)
	if err != nil {
		return nil, err
	}
	if linked != nil {
		user := userFromStorage(linked)
		return &user, nil
	}

	if create.CompanyID != nil && create.ID != nil {
		if err := s.linker.EnsureIDLinkAllowed(ctx, *create.ID, *create.CompanyID); err != nil {
			return nil, err
		}
	}

	return s.insertUser(ctx, create)
}

// CreateUserForCompany creates a user pre-linked to the given company.
func (s *UserService) CreateUserForCompany(ctx context.Context, companyID uuid.UUID, create UserCreate) (*User, error) {
	create.CompanyID = &companyID

	linked, err := s.linker.EnsureEmailLink(ctx, create.Email, create.CompanyID)
	if err != nil {
		return nil, err
	}
	if linked != nil {
		user := userFromStorage(linked)
		return &user, nil
	}

	return s.insertUser(ctx, create)
}

func (s *UserService) insertUser(ctx context.Context, create UserCreate) (*User, error) {
	storageCreate := &sqlconfig.UserCreate{
		Email:    create.Email,
		FullName: create.FullName,
		Role:     create.Role,
		UserType: create.UserType,
	}
	if create.ID != nil {
		storageCreate.ID = *create.ID
	}
	if create.CompanyID != nil {
		storageCreate.CompanyID = uuid.NullUUID{UUID: *create.CompanyID, Valid: true}
	}

	row, err := s.storage.Users.Insert(ctx, storageCreate)
	if err != nil {
		return nil, err
	}
	user := userFromStorage(row)
	return &user, nil
}

// UpdateUser applies a partial update through the AccountLinker, which also
// handles implicit creation for unknown ids carrying a company_id.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, update UserUpdate) (*User, error) {
	storageUpdate := &sqlconfig.UserUpdate{}
	if update.Email != nil {
		storageUpdate.Email = omit.From(*update.Email)
	}
	if update.FullName != nil {
		storageUpdate.FullName = omit.From(*update.FullName)
	}
	if update.CompanyID != nil {
		storageUpdate.CompanyID = omit.From(uuid.NullUUID{UUID: *update.CompanyID, Valid: true})
	}
	if update.Role != nil {
		storageUpdate.Role = omit.From(*update.Role)
	}
	if update.UserType != nil {
		storageUpdate.UserType = omit.From(*update.UserType)
	}
	if storageUpdate.IsEmpty() {
		return nil, fmt.Errorf("%w: no update fields provided", ErrValidation)
	}

	row, err := s.linker.ApplyUserUpdate(ctx, id, storageUpdate)
	if err != nil {
		return nil, err
	}
	user := userFromStorage(row)
	return &user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.storage.Users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCompanyCategories returns a company's active categories; soft-deleted
// categories are filtered out.
func (s *CategoryService) ListCompanyCategories(ctx context.Context, companyID uuid.UUID) ([]Category, error) {
	rows, err := s.storage.Categories.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

// CreateCategory creates a new active category.
func (s *CategoryService) CreateCategory(ctx context.Context, create CategoryCreate) (*Category, error) {
	if create.CompanyID.IsNil() || create.Name == "" {
		return nil, fmt.Errorf("%w: missing required fields: company_id, name", ErrValidation)
	}

	storageCreate := &sqlconfig.CategoryCreate{
		CompanyID:   create.CompanyID,
		Name:        create.Name,
		Description: create.Description,
	}
	if create.BudgetAmount != nil {
		storageCreate.BudgetAmount = decimal.NullDecimal{Decimal: *create.BudgetAmount, Valid: true}
	}

	row, err := s.storage.Categories.Insert(ctx, storageCreate)
	if err != nil {
		return nil, err
	}
	category := categoryFromStorage(row)
	return &category, nil
}

// UpdateCategory applies a partial update.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, update CategoryUpdate) (*Category, error) {
	storageUpdate := &sqlconfig.CategoryUpdate{}
	if update.Name != nil {
		storageUpdate.Name = omit.From(*update.Name)
	}
	if update.Description != nil {
		storageUpdate.Description = omit.From(*update.Description)
	}
	if update.BudgetAmount != nil {
		storageUpdate.BudgetAmount = omit.From(decimal.NullDecimal{Decimal: *update.BudgetAmount, Valid: true})
	}
	if update.IsActive != nil {
		storageUpdate.IsActive = omit.From(*update.IsActive)
	}
	if storageUpdate.IsEmpty() {
		return nil, fmt.Errorf("%w: no update fields provided", ErrValidation)
	}

	row, err := s.storage.Categories.Update(ctx, id, storageUpdate)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: category not found", ErrNotFound)
	}
	category := categoryFromStorage(row)
	return &category, nil
}

// DeleteCategory soft-deletes a category by marking it inactive. The row is
// never physically removed.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	row, err := s.storage.Categories.Update(ctx, id, &sqlconfig.CategoryUpdate{
		IsActive: omit.From(false),
	})
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("%w: category not found", ErrNotFound)
	}
	return nil
}

// ListCategoryExpenses is a placeholder: bills do not reference categories
// yet, so the listing is always empty.
// TODO: populate once bills carry a category_id column.
func (s *CategoryService) ListCategoryExpenses(ctx context.Context, categoryID uuid.UUID) ([]Expense, error) {
	return []Expense{}, nil
}

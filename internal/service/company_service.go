package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// CompanyService handles company business logic.
type CompanyService struct {
	storage *storage.Storage
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(store *storage.Storage) *CompanyService {
	return &CompanyService{storage: store}
}

// ListCompanies returns all companies, deduplicated by trimmed name. When
// duplicates pre-exist the earliest created row wins; rows read oldest first
// so the first occurrence is the keeper.
func (s *CompanyService) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := s.storage.Companies.List(ctx)
	if err != nil {
		return nil, err
	}

	seenNames := make(map[string]bool, len(rows))
	companies := make([]Company, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" || seenNames[name] {
			continue
		}
		seenNames[name] = true
		companies = append(companies, companyFromStorage(row))
	}
	return companies, nil
}

// ListCompaniesWithUsers returns all companies with their users attached.
func (s *CompanyService) ListCompaniesWithUsers(ctx context.Context) ([]Company, error) {
	rows, err := s.storage.Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	userRows, err := s.storage.Users.List(ctx)
	if err != nil {
		return nil, err
	}

	usersByCompany := make(map[uuid.UUID][]User)
	for _, row := range userRows {
		if !row.CompanyID.Valid {
			continue
		}
		usersByCompany[row.CompanyID.UUID] = append(usersByCompany[row.CompanyID.UUID], userFromStorage(row))
	}

	companies := make([]Company, len(rows))
	for i, row := range rows {
		companies[i] = companyFromStorage(row)
		companies[i].Users = usersByCompany[row.ID]
	}
	return companies, nil
}

// GetCompany retrieves one company with its users.
func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*Company, error) {
	row, err := s.storage.Companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: company not found", ErrNotFound)
	}

	userRows, err := s.storage.Users.ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	company := companyFromStorage(row)
	company.Users = make([]User, len(userRows))
	for i, userRow := range userRows {
		company.Users[i] = userFromStorage(userRow)
	}
	return &company, nil
}

// CreateCompany creates a company, or returns the existing one when a company
// with the same trimmed name already exists. The second return value reports
// whether an existing company was reused.
func (s *CompanyService) CreateCompany(ctx context.Context, name, industry string) (*Company, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, fmt.Errorf("%w: company name is required", ErrValidation)
	}

	existing, err := s.storage.Companies.FindByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		company := companyFromStorage(existing)
		return &company, true, nil
	}

	row, err := s.storage.Companies.Insert(ctx, &sqlconfig.CompanyCreate{Name: name, Industry: industry})
	if err != nil {
		return nil, false, err
	}
	if row == nil {
		// A concurrent create won the unique-index race; use its row.
		row, err = s.storage.Companies.FindByName(ctx, name)
		if err != nil {
			return nil, false, err
		}
		company := companyFromStorage(row)
		return &company, true, nil
	}

	company := companyFromStorage(row)
	return &company, false, nil
}

// UpdateCompany applies a partial update.
func (s *CompanyService) UpdateCompany(ctx context.Context, id uuid.UUID, update CompanyUpdate) (*Company, error) {
	storageUpdate := &sqlconfig.CompanyUpdate{}
	if update.Name != nil {
		storageUpdate.Name = omit.From(strings.TrimSpace(*update.Name))
	}
	if update.Industry != nil {
		storageUpdate.Industry = omit.From(*update.Industry)
	}
	if storageUpdate.IsEmpty() {
		return nil, fmt.Errorf("%w: no update fields provided", ErrValidation)
	}

	row, err := s.storage.Companies.Update(ctx, id, storageUpdate)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: company not found", ErrNotFound)
	}
	company := companyFromStorage(row)
	return &company, nil
}

// DeleteCompany removes a company.
func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.storage.Companies.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: company not found", ErrNotFound)
	}
	return nil
}

// ListCompanyUsers returns a company's users with the company's name and
// industry attached to each.
func (s *CompanyService) ListCompanyUsers(ctx context.Context, companyID uuid.UUID) ([]User, error) {
	userRows, err := s.storage.Users.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	companyRow, err := s.storage.Companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	users := make([]User, len(userRows))
	for i, row := range userRows {
		users[i] = userFromStorage(row)
		if companyRow != nil {
			users[i].Company = &CompanyRef{Name: companyRow.Name, Industry: companyRow.Industry}
		}
	}
	return users, nil
}

package service

import (
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Company  *CompanyService
	User     *UserService
	Category *CategoryService
	Expense  *ExpenseService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	linker := NewAccountLinker(store.Users)
	return &Service{
		Company:  NewCompanyService(store),
		User:     NewUserService(store, linker),
		Category: NewCategoryService(store),
		Expense:  NewExpenseService(store),
	}
}

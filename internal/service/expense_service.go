package service

import (
	"context"
	"fmt"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// ExpenseService handles expense (bill) reads and mutations. Recording a new
// expense is a multi-step workflow and runs through the operator instead.
type ExpenseService struct {
	storage *storage.Storage
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage) *ExpenseService {
	return &ExpenseService{storage: store}
}

// ListExpenses returns all expenses with vendor names.
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := s.storage.Bills.List(ctx)
	if err != nil {
		return nil, err
	}
	return expensesFromJoinedRows(rows), nil
}

// ListCompanyExpenses returns a company's expenses with vendor names.
func (s *ExpenseService) ListCompanyExpenses(ctx context.Context, companyID uuid.UUID) ([]Expense, error) {
	rows, err := s.storage.Bills.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return expensesFromJoinedRows(rows), nil
}

// UpdateExpense applies a partial update. A vendor_name change resolves the
// vendor under the bill's company, creating it when absent.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, update ExpenseUpdate) (*Expense, error) {
	storageUpdate := &sqlconfig.BillUpdate{}
	if update.Amount != nil {
		storageUpdate.TotalAmount = omit.From(*update.Amount)
		storageUpdate.BalanceDue = omit.From(*update.Amount)
	}
	if update.Memo != nil {
		storageUpdate.Memo = omit.From(*update.Memo)
	}
	if update.Date != nil {
		storageUpdate.BillDate = omit.From(*update.Date)
	}
	if update.Status != nil {
		storageUpdate.Status = omit.From(*update.Status)
	}

	vendorName := ""
	if update.VendorName != nil && *update.VendorName != "" {
		bill, err := s.storage.Bills.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if bill == nil {
			return nil, fmt.Errorf("%w: expense not found", ErrNotFound)
		}

		vendor, err := s.storage.Vendors.Upsert(ctx, bill.CompanyID, *update.VendorName)
		if err != nil {
			return nil, err
		}
		storageUpdate.VendorID = omit.From(vendor.ID)
		vendorName = vendor.Name
	}

	if storageUpdate.IsEmpty() {
		return nil, fmt.Errorf("%w: no update fields provided", ErrValidation)
	}

	row, err := s.storage.Bills.Update(ctx, id, storageUpdate)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: expense not found", ErrNotFound)
	}

	expense := expenseFromStorage(row, vendorName)
	return &expense, nil
}

// VoidExpense soft-deletes an expense by setting its status to void.
func (s *ExpenseService) VoidExpense(ctx context.Context, id uuid.UUID) error {
	row, err := s.storage.Bills.Update(ctx, id, &sqlconfig.BillUpdate{
		Status: omit.From(sqlconfig.BillStatusVoid),
	})
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("%w: expense not found", ErrNotFound)
	}
	return nil
}

func expensesFromJoinedRows(rows []*sqlconfig.BillWithVendor) []Expense {
	expenses := make([]Expense, len(rows))
	for i, row := range rows {
		expenses[i] = expenseFromStorage(&row.Bill, row.VendorName)
	}
	return expenses
}

package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/operator"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/operator/actions"
	"github.com/ashishhkumarr/Accounting-AI-Companion-App/internal/storage/sqlconfig"
)

// CreateExpenseBody is the request body for recording a manual expense.
type CreateExpenseBody struct {
	CompanyID     string  `json:"company_id,omitempty" doc:"Owning company UUID"`
	VendorName    string  `json:"vendor_name,omitempty" doc:"Vendor name, created on first use"`
	Amount        float64 `json:"amount,omitempty" doc:"Expense amount"`
	Category      string `json:"category,omitempty" doc:"Category label, defaults to Uncategorized"`
	PaymentMethod string `json:"payment_method,omitempty" doc:"Payment method, defaults to cash"`
	Memo          string `json:"memo,omitempty" doc:"Free-form memo"`
	Date          string `json:"date,omitempty" doc:"Expense date (YYYY-MM-DD), defaults to today"`
	UserID        string `json:"user_id,omitempty" doc:"Recording user UUID, best effort"`
}

// CreateExpenseInput is the Huma input for recording a manual expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

// JournalLine is the API representation of one journal line.
type JournalLine struct {
	ID          string `json:"id" doc:"Line UUID"`
	Description string `json:"description" doc:"Line description"`
	Debit       string `json:"debit" doc:"Decimal debit amount"`
	Credit      string `json:"credit" doc:"Decimal credit amount"`
}

// JournalEntry is the API representation of the journal entry created for an
// expense.
type JournalEntry struct {
	ID        string        `json:"id" doc:"Entry UUID"`
	CompanyID string        `json:"company_id" doc:"Owning company UUID"`
	EntryDate string        `json:"entry_date" doc:"Entry date (YYYY-MM-DD)"`
	Memo      string        `json:"memo" doc:"Entry memo"`
	Status    string        `json:"status" doc:"Entry status"`
	CreatedBy string        `json:"created_by,omitempty" doc:"Recording user UUID, empty when unknown"`
	Lines     []JournalLine `json:"lines" doc:"Balanced debit and credit lines"`
}

// CreateExpenseData is the data payload returned after recording an expense.
type CreateExpenseData struct {
	Bill         Expense      `json:"bill" doc:"The created bill"`
	JournalEntry JournalEntry `json:"journal_entry" doc:"The created journal entry"`
}

// CreateExpenseResponseBody is the response envelope for expense recording.
type CreateExpenseResponseBody struct {
	Status  string            `json:"status" doc:"Always 'success'"`
	Message string            `json:"message" doc:"Confirmation message"`
	Data    CreateExpenseData `json:"data" doc:"Created bill and journal entry"`
}

// CreateExpenseOutput is the Huma output for recording a manual expense.
type CreateExpenseOutput struct {
	Body CreateExpenseResponseBody
}

// CreateExpenseHandler handles POST /expenses/manual_entry. The workflow runs
// through the operator so the vendor, bill, journal entry, and lines commit
// as one transaction.
type CreateExpenseHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(op *operator.OperatorDelegator) *CreateExpenseHandler {
	return &CreateExpenseHandler{Operator: op}
}

// Register registers the manual expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-expense",
		Method:      http.MethodPost,
		Path:        "/expenses/manual_entry",
		Summary:     "Record manual expense",
		Description: "Records an expense: resolves the vendor, creates a bill, and posts a balanced journal entry, all in one transaction.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Body.CompanyID == "" || input.Body.VendorName == "" || input.Body.Amount == 0 {
		return nil, huma.NewError(http.StatusBadRequest, "missing required fields: company_id, vendor_name, amount")
	}
	companyID, err := uuid.FromString(input.Body.CompanyID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid company_id", err)
	}
	amount := decimal.NewFromFloat(input.Body.Amount)

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(billDateFormat, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	var userID uuid.NullUUID
	if input.Body.UserID != "" {
		// Best effort: a malformed or unknown user id never blocks the expense.
		if parsed, parseErr := uuid.FromString(input.Body.UserID); parseErr == nil {
			userID = uuid.NullUUID{UUID: parsed, Valid: true}
		}
	}

	action := &actions.RecordExpense{
		CompanyID:     companyID,
		VendorName:    input.Body.VendorName,
		Amount:        amount,
		Category:      input.Body.Category,
		PaymentMethod: input.Body.PaymentMethod,
		Memo:          input.Body.Memo,
		Date:          date,
		UserID:        userID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to record expense", err)
	}

	return &CreateExpenseOutput{Body: CreateExpenseResponseBody{
		Status:  "success",
		Message: "Expense recorded successfully.",
		Data: CreateExpenseData{
			Bill:         billFromStorage(action.Bill, input.Body.VendorName),
			JournalEntry: entryFromStorage(action.JournalEntry, action.Lines),
		},
	}}, nil
}

func billFromStorage(bill *sqlconfig.Bill, vendorName string) Expense {
	return Expense{
		ID:          bill.ID.String(),
		CompanyID:   bill.CompanyID.String(),
		VendorID:    bill.VendorID.String(),
		VendorName:  vendorName,
		BillNumber:  bill.BillNumber,
		BillDate:    bill.BillDate.Format(billDateFormat),
		TotalAmount: bill.TotalAmount.StringFixed(2),
		BalanceDue:  bill.BalanceDue.StringFixed(2),
		Status:      bill.Status,
		Memo:        bill.Memo,
		CreatedAt:   bill.CreatedAt.Format(time.RFC3339),
	}
}

func entryFromStorage(entry *sqlconfig.JournalEntry, lines []*sqlconfig.JournalLine) JournalEntry {
	out := JournalEntry{
		ID:        entry.ID.String(),
		CompanyID: entry.CompanyID.String(),
		EntryDate: entry.EntryDate.Format(billDateFormat),
		Memo:      entry.Memo,
		Status:    entry.Status,
		Lines:     make([]JournalLine, len(lines)),
	}
	if entry.CreatedBy.Valid {
		out.CreatedBy = entry.CreatedBy.UUID.String()
	}
	for i, line := range lines {
		out.Lines[i] = JournalLine{
			ID:          line.ID.String(),
			Description: line.Description,
			Debit:       line.Debit.StringFixed(2),
			Credit:      line.Credit.StringFixed(2),
		}
	}
	return out
}

// Package expense contains expense-related use cases.
package expense

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/application/usecase/insights"
	"github.com/smart-expense/backend/internal/domain/entity"
	domainerror "github.com/smart-expense/backend/internal/domain/error"
)

// Date layouts per locale. Only the date column is localized; amounts and
// category tokens stay machine-readable.
var csvDateLayouts = map[entity.Locale]string{
	entity.LocaleEnglish: "01/02/2006",
	entity.LocaleSpanish: "02/01/2006",
}

// ExportCSVInput represents the input for CSV export.
type ExportCSVInput struct {
	UserID uuid.UUID
	Month  string // Optional "YYYY-MM" filter; empty exports everything
	Locale entity.Locale
}

// ExportCSVOutput represents the output of CSV export.
type ExportCSVOutput struct {
	Content  []byte
	Filename string
}

// ExportCSVUseCase handles expense CSV export logic.
type ExportCSVUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(expenseRepo adapter.ExpenseRepository) *ExportCSVUseCase {
	return &ExportCSVUseCase{expenseRepo: expenseRepo}
}

// Execute renders the user's expenses as RFC 4180 CSV. The header row lists
// the fields in declaration order; quoting is handled by encoding/csv.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) (*ExportCSVOutput, error) {
	var (
		expenses []*entity.Expense
		err      error
	)

	filename := "expenses.csv"
	if input.Month != "" {
		period, perr := insights.MonthPeriod(input.Month)
		if perr != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseDate,
				"month must be of the form YYYY-MM",
				domainerror.ErrInvalidExpenseDate,
			)
		}
		expenses, err = uc.expenseRepo.FindByUserAndDateRange(ctx, input.UserID, period.From, period.To)
		filename = fmt.Sprintf("expenses-%s.csv", input.Month)
	} else {
		expenses, err = uc.expenseRepo.FindAllByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for export: %w", err)
	}

	if len(expenses) == 0 {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNoExpensesToExport,
			"no expenses to export",
			domainerror.ErrNoExpensesToExport,
		)
	}

	layout, ok := csvDateLayouts[input.Locale]
	if !ok {
		layout = csvDateLayouts[entity.DefaultLocale]
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"date", "category", "amount", "note"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range expenses {
		record := []string{
			e.Date.Format(layout),
			string(e.Category),
			e.Amount.String(),
			e.Note,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &ExportCSVOutput{
		Content:  buf.Bytes(),
		Filename: filename,
	}, nil
}

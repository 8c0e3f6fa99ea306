package expense

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/domain/entity"
	domainerror "github.com/smart-expense/backend/internal/domain/error"
)

// fakeExpenseRepository serves a fixed expense list; only the read paths used
// by the export are implemented.
type fakeExpenseRepository struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return errors.New("not implemented")
}

func (r *fakeExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (r *fakeExpenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.ExpensePagination) (*adapter.ExpenseListResult, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeExpenseRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Expense, error) {
	matching := make([]*entity.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		if !e.Date.Before(start) && !e.Date.After(end) {
			matching = append(matching, e)
		}
	}
	return matching, nil
}

func (r *fakeExpenseRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	return r.expenses, nil
}

func (r *fakeExpenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return errors.New("not implemented")
}

func (r *fakeExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func exportExpense(amount int64, category entity.Category, note string, date string) *entity.Expense {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &entity.Expense{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Note:     note,
		Date:     parsed,
	}
}

func TestExportCSVHeaderAndRows(t *testing.T) {
	repo := &fakeExpenseRepository{expenses: []*entity.Expense{
		exportExpense(20, entity.CategoryFood, "Groceries", "2024-06-10"),
		exportExpense(35, entity.CategoryTransport, "", "2024-06-15"),
	}}
	uc := NewExportCSVUseCase(repo)

	output, err := uc.Execute(context.Background(), ExportCSVInput{
		UserID: uuid.New(),
		Month:  "2024-06",
		Locale: entity.LocaleEnglish,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.Filename != "expenses-2024-06.csv" {
		t.Errorf("Filename = %s, want expenses-2024-06.csv", output.Filename)
	}

	lines := strings.Split(strings.TrimRight(string(output.Content), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "date,category,amount,note" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "06/10/2024,Food,20,Groceries" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[2] != "06/15/2024,Transport,35," {
		t.Errorf("second row = %q", lines[2])
	}
}

func TestExportCSVLocaleDateFormat(t *testing.T) {
	tests := []struct {
		name     string
		locale   entity.Locale
		wantDate string
	}{
		{"english month first", entity.LocaleEnglish, "06/10/2024"},
		{"spanish day first", entity.LocaleSpanish, "10/06/2024"},
		{"unknown locale falls back to english", entity.Locale("fr"), "06/10/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeExpenseRepository{expenses: []*entity.Expense{
				exportExpense(20, entity.CategoryFood, "", "2024-06-10"),
			}}
			uc := NewExportCSVUseCase(repo)

			output, err := uc.Execute(context.Background(), ExportCSVInput{
				UserID: uuid.New(),
				Month:  "2024-06",
				Locale: tt.locale,
			})
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			if !strings.Contains(string(output.Content), tt.wantDate) {
				t.Errorf("expected date %s in output:\n%s", tt.wantDate, output.Content)
			}
		})
	}
}

func TestExportCSVQuotesNotesWithCommas(t *testing.T) {
	repo := &fakeExpenseRepository{expenses: []*entity.Expense{
		exportExpense(20, entity.CategoryFood, "bread, milk and eggs", "2024-06-10"),
	}}
	uc := NewExportCSVUseCase(repo)

	output, err := uc.Execute(context.Background(), ExportCSVInput{
		UserID: uuid.New(),
		Month:  "2024-06",
		Locale: entity.LocaleEnglish,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(string(output.Content), `"bread, milk and eggs"`) {
		t.Errorf("expected quoted note in output:\n%s", output.Content)
	}
}

func TestExportCSVNoExpenses(t *testing.T) {
	uc := NewExportCSVUseCase(&fakeExpenseRepository{})

	_, err := uc.Execute(context.Background(), ExportCSVInput{
		UserID: uuid.New(),
		Month:  "2024-06",
	})

	var expErr *domainerror.ExpenseError
	if !errors.As(err, &expErr) {
		t.Fatalf("expected an ExpenseError, got %v", err)
	}
	if expErr.Code != domainerror.ErrCodeNoExpensesToExport {
		t.Errorf("Code = %s, want %s", expErr.Code, domainerror.ErrCodeNoExpensesToExport)
	}
}

func TestExportCSVInvalidMonth(t *testing.T) {
	uc := NewExportCSVUseCase(&fakeExpenseRepository{})

	_, err := uc.Execute(context.Background(), ExportCSVInput{
		UserID: uuid.New(),
		Month:  "June 2024",
	})

	var expErr *domainerror.ExpenseError
	if !errors.As(err, &expErr) {
		t.Fatalf("expected an ExpenseError, got %v", err)
	}
	if expErr.Code != domainerror.ErrCodeInvalidExpenseDate {
		t.Errorf("Code = %s, want %s", expErr.Code, domainerror.ErrCodeInvalidExpenseDate)
	}
}

func TestExportCSVWithoutMonthExportsEverything(t *testing.T) {
	repo := &fakeExpenseRepository{expenses: []*entity.Expense{
		exportExpense(20, entity.CategoryFood, "", "2024-05-10"),
		exportExpense(35, entity.CategoryHome, "", "2024-06-15"),
	}}
	uc := NewExportCSVUseCase(repo)

	output, err := uc.Execute(context.Background(), ExportCSVInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Filename != "expenses.csv" {
		t.Errorf("Filename = %s, want expenses.csv", output.Filename)
	}

	lines := strings.Split(strings.TrimRight(string(output.Content), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header plus 2 rows, got %d lines", len(lines))
	}
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"spendwise/internal/testutil"
)

// mockGenerator records prompts and returns a canned response or error.
type mockGenerator struct {
	calls  int
	prompt string
	text   string
	err    error
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

var insightNow = func() time.Time {
	return time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
}

func TestGenerateInsights(t *testing.T) {
	t.Run("no_expenses_skips_generator", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gen := &mockGenerator{text: "should not be used"}
		svc := &insightService{db: db, generator: gen, timeout: time.Second, now: insightNow}

		report, err := svc.GenerateInsights(context.Background())
		testutil.AssertNoError(t, err)

		if gen.calls != 0 {
			t.Errorf("expected generator not to be called, got %d calls", gen.calls)
		}
		if report.Insights != noDataInsights {
			t.Errorf("expected canned no-data message, got %q", report.Insights)
		}
		if report.Summary != (InsightSummary{}) {
			t.Errorf("expected empty summary, got %+v", report.Summary)
		}
	})

	t.Run("builds_prompt_and_summary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestExpense(t, db, cat.ID, 45.50, "2025-01-15")
		testutil.CreateTestExpense(t, db, cat.ID, 100, "2024-12-01")
		testutil.CreateTestBudget(t, db, cat.ID, 500)

		gen := &mockGenerator{text: "Spend less on snacks."}
		svc := &insightService{db: db, generator: gen, timeout: time.Second, now: insightNow}

		report, err := svc.GenerateInsights(context.Background())
		testutil.AssertNoError(t, err)

		if report.Insights != "Spend less on snacks." {
			t.Errorf("expected generator text passed through, got %q", report.Insights)
		}

		testutil.AssertAmount(t, "total_expenses", report.Summary.TotalExpenses, 145.50)
		testutil.AssertAmount(t, "current_month_expenses", report.Summary.CurrentMonthExpenses, 45.50)
		testutil.AssertAmount(t, "current_month_budget", report.Summary.CurrentMonthBudget, 500)
		if report.Summary.NumTransactions != 2 {
			t.Errorf("expected 2 transactions, got %d", report.Summary.NumTransactions)
		}
		if report.Summary.Categories != 1 || report.Summary.BudgetsSet != 1 {
			t.Errorf("unexpected summary counts: %+v", report.Summary)
		}

		for _, fragment := range []string{
			"Current Month (2025-01):",
			"- Expenses: ₹45.50",
			"- Budget: ₹500.00",
			"Total Expenses (All Time): ₹145.50",
			cat.Name,
		} {
			if !strings.Contains(gen.prompt, fragment) {
				t.Errorf("expected prompt to contain %q\nprompt:\n%s", fragment, gen.prompt)
			}
		}
	})

	t.Run("no_budgets_line", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestExpense(t, db, cat.ID, 10, "2025-01-15")

		gen := &mockGenerator{text: "ok"}
		svc := &insightService{db: db, generator: gen, timeout: time.Second, now: insightNow}

		_, err := svc.GenerateInsights(context.Background())
		testutil.AssertNoError(t, err)

		if !strings.Contains(gen.prompt, "No budgets set") {
			t.Errorf("expected prompt to state no budgets, got:\n%s", gen.prompt)
		}
	})

	t.Run("generator_failure_surfaces_generically", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestExpense(t, db, cat.ID, 10, "2025-01-15")

		gen := &mockGenerator{err: errors.New("upstream exploded")}
		svc := &insightService{db: db, generator: gen, timeout: time.Second, now: insightNow}

		_, err := svc.GenerateInsights(context.Background())
		testutil.AssertAppError(t, err, "INSIGHTS_UNAVAILABLE")
	})
}

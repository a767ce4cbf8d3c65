package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/insights"
	"spendwise/internal/models"
	"spendwise/internal/reports"
)

// noDataInsights is returned without calling the generator when there are no
// expenses at all.
const noDataInsights = "No expenses found. Start adding expenses to get AI-powered insights!"

// insightService builds a narrative prompt from a spending snapshot and
// delegates text generation to an external collaborator.
type insightService struct {
	db        *gorm.DB
	generator insights.TextGenerator
	timeout   time.Duration
	now       func() time.Time
}

// NewInsightService creates a new InsightServicer. The generator call is
// bounded by timeout.
func NewInsightService(db *gorm.DB, generator insights.TextGenerator, timeout time.Duration) InsightServicer {
	return &insightService{db: db, generator: generator, timeout: timeout, now: time.Now}
}

// GenerateInsights produces the narrative insight report. With zero expenses
// the external call is skipped entirely. A single request is made with no
// retry; any generator failure surfaces as one generic insight error.
func (s *insightService) GenerateInsights(ctx context.Context) (*InsightReport, error) {
	snap, err := loadSnapshot(ctx, s.db)
	if err != nil {
		return nil, err
	}

	if len(snap.Expenses) == 0 {
		return &InsightReport{Insights: noDataInsights}, nil
	}

	prompt, summary := buildInsightPrompt(snap, s.now())

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Generate(callCtx, prompt)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInsightsUnavailable, err)
	}

	return &InsightReport{Insights: text, Summary: summary}, nil
}

// categoryAmount is one "name: total" line of the prompt.
type categoryAmount struct {
	name   string
	amount float64
}

// budgetActual is one "budget vs current-month spend" line of the prompt.
type budgetActual struct {
	name   string
	budget float64
	actual float64
}

// buildInsightPrompt serializes the snapshot into the text prompt sent to the
// generator, along with the numeric summary mirroring the embedded figures.
// Amounts are rendered with the ₹ glyph; that is a display choice of this
// formatter, not a property of any record.
func buildInsightPrompt(snap reports.Snapshot, now time.Time) (string, InsightSummary) {
	names := make(map[string]string, len(snap.Categories))
	for _, cat := range snap.Categories {
		names[cat.ID] = cat.Name
	}
	nameOf := func(categoryID string) string {
		if name, ok := names[categoryID]; ok {
			return name
		}
		return models.UnknownCategoryName
	}

	currentMonth := reports.MonthKey(now)

	var totalExpenses, monthTotal float64
	var monthCount int
	spending := make(map[string]float64)
	var spendingOrder []string
	for _, exp := range snap.Expenses {
		totalExpenses += exp.Amount
		if exp.Month() == currentMonth {
			monthTotal += exp.Amount
			monthCount++
		}

		name := nameOf(exp.CategoryID)
		if _, seen := spending[name]; !seen {
			spendingOrder = append(spendingOrder, name)
		}
		spending[name] += exp.Amount
	}

	var totalBudget float64
	var budgetLines []budgetActual
	for _, b := range snap.Budgets {
		if !b.Recurring {
			continue
		}
		totalBudget += b.Amount

		var actual float64
		for _, exp := range snap.Expenses {
			if exp.CategoryID == b.CategoryID && exp.Month() == currentMonth {
				actual += exp.Amount
			}
		}
		budgetLines = append(budgetLines, budgetActual{
			name:   nameOf(b.CategoryID),
			budget: b.Amount,
			actual: actual,
		})
	}

	var spendingLines []categoryAmount
	for _, name := range spendingOrder {
		spendingLines = append(spendingLines, categoryAmount{name: name, amount: spending[name]})
	}

	prompt := formatInsightPrompt(currentMonth, monthTotal, totalBudget, monthCount,
		totalExpenses, len(snap.Expenses), spendingLines, budgetLines)

	summary := InsightSummary{
		TotalExpenses:        totalExpenses,
		CurrentMonthExpenses: monthTotal,
		CurrentMonthBudget:   totalBudget,
		NumTransactions:      len(snap.Expenses),
		Categories:           len(spendingLines),
		BudgetsSet:           len(budgetLines),
	}
	return prompt, summary
}

func formatInsightPrompt(
	currentMonth string,
	monthTotal, totalBudget float64,
	monthCount int,
	totalExpenses float64,
	totalCount int,
	spending []categoryAmount,
	budgets []budgetActual,
) string {
	var b strings.Builder

	b.WriteString("Analyze this expense data (amounts in Indian Rupees ₹) and provide clear, actionable insights:\n\n")

	fmt.Fprintf(&b, "Current Month (%s):\n", currentMonth)
	fmt.Fprintf(&b, "- Expenses: ₹%.2f\n", monthTotal)
	fmt.Fprintf(&b, "- Budget: ₹%.2f\n", totalBudget)
	fmt.Fprintf(&b, "- Transactions: %d\n\n", monthCount)

	fmt.Fprintf(&b, "Total Expenses (All Time): ₹%.2f\n", totalExpenses)
	fmt.Fprintf(&b, "Total Transactions: %d\n\n", totalCount)

	b.WriteString("Spending by Category:\n")
	for _, s := range spending {
		fmt.Fprintf(&b, "- %s: ₹%.2f\n", s.name, s.amount)
	}
	b.WriteString("\n")

	b.WriteString("Recurring Monthly Budgets:\n")
	if len(budgets) == 0 {
		b.WriteString("No budgets set\n")
	} else {
		for _, line := range budgets {
			fmt.Fprintf(&b, "- %s: Budget ₹%.2f, Current Month Spent ₹%.2f\n", line.name, line.budget, line.actual)
		}
	}
	b.WriteString("\n")

	b.WriteString("Provide:\n")
	b.WriteString("1. Key spending patterns and insights\n")
	b.WriteString("2. Budget adherence analysis for current month\n")
	b.WriteString("3. Specific recommendations for reducing expenses\n")
	b.WriteString("4. Areas where spending can be optimized\n")
	b.WriteString("5. Financial health assessment\n\n")
	b.WriteString("Keep the response concise, actionable, and focused on the current month.")

	return b.String()
}

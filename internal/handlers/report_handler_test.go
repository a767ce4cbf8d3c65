package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/reports"
	"spendwise/internal/services"
)

type mockReportService struct {
	dashboardFn func(ctx context.Context) (*reports.DashboardSummary, error)
	analyticsFn func(ctx context.Context) (*reports.AnalyticsSummary, error)
}

func (m *mockReportService) Dashboard(ctx context.Context) (*reports.DashboardSummary, error) {
	return m.dashboardFn(ctx)
}

func (m *mockReportService) Analytics(ctx context.Context) (*reports.AnalyticsSummary, error) {
	return m.analyticsFn(ctx)
}

var _ services.ReportServicer = (*mockReportService)(nil)

type mockInsightService struct {
	generateFn func(ctx context.Context) (*services.InsightReport, error)
}

func (m *mockInsightService) GenerateInsights(ctx context.Context) (*services.InsightReport, error) {
	return m.generateFn(ctx)
}

var _ services.InsightServicer = (*mockInsightService)(nil)

func TestReportHandlerDashboard(t *testing.T) {
	mock := &mockReportService{
		dashboardFn: func(ctx context.Context) (*reports.DashboardSummary, error) {
			return &reports.DashboardSummary{
				CurrentMonthExpenses: 45.50,
				CurrentMonthBudget:   500,
				RemainingBudget:      454.50,
				BudgetUtilization:    9.1,
				RecentTransactions:   []reports.RecentTransaction{},
				BudgetStatus:         []reports.BudgetStatus{},
			}, nil
		},
	}
	r := gin.New()
	r.GET("/dashboard", NewReportHandler(mock).GetDashboard)

	w := performRequest(r, http.MethodGet, "/dashboard", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, key := range []string{
		"current_month_expenses",
		"current_month_budget",
		"remaining_budget",
		"budget_utilization",
		"recent_transactions",
		"budget_status",
	} {
		if _, ok := body[key]; !ok {
			t.Errorf("expected response key %q, body: %s", key, w.Body.String())
		}
	}
}

func TestReportHandlerAnalytics(t *testing.T) {
	t.Run("empty_state_shape", func(t *testing.T) {
		mock := &mockReportService{
			analyticsFn: func(ctx context.Context) (*reports.AnalyticsSummary, error) {
				return &reports.AnalyticsSummary{
					CategorySpending: []reports.CategorySpending{},
					MonthlyTrends:    []reports.MonthlyTrend{},
					BudgetComparison: []reports.BudgetComparison{},
				}, nil
			},
		}
		r := gin.New()
		r.GET("/analytics/summary", NewReportHandler(mock).GetAnalyticsSummary)

		w := performRequest(r, http.MethodGet, "/analytics/summary", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if string(body["highest_spending_category"]) != "null" {
			t.Errorf("expected highest_spending_category to be null, got %s", body["highest_spending_category"])
		}
		if string(body["category_spending"]) != "[]" {
			t.Errorf("expected empty category_spending array, got %s", body["category_spending"])
		}
	})

	t.Run("service_error", func(t *testing.T) {
		mock := &mockReportService{
			analyticsFn: func(ctx context.Context) (*reports.AnalyticsSummary, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		r := gin.New()
		r.GET("/analytics/summary", NewReportHandler(mock).GetAnalyticsSummary)

		w := performRequest(r, http.MethodGet, "/analytics/summary", "")

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestInsightHandler(t *testing.T) {
	t.Run("passes_report_through", func(t *testing.T) {
		mock := &mockInsightService{
			generateFn: func(ctx context.Context) (*services.InsightReport, error) {
				return &services.InsightReport{
					Insights: "Spending is concentrated in one category.",
					Summary:  services.InsightSummary{TotalExpenses: 145.50, NumTransactions: 2},
				}, nil
			},
		}
		r := gin.New()
		r.GET("/insights", NewInsightHandler(mock).GetInsights)

		w := performRequest(r, http.MethodGet, "/insights", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got services.InsightReport
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got.Insights != "Spending is concentrated in one category." {
			t.Errorf("unexpected insights text: %q", got.Insights)
		}
		if got.Summary.NumTransactions != 2 {
			t.Errorf("expected 2 transactions in summary, got %d", got.Summary.NumTransactions)
		}
	})

	t.Run("generation_failure", func(t *testing.T) {
		mock := &mockInsightService{
			generateFn: func(ctx context.Context) (*services.InsightReport, error) {
				return nil, apperrors.ErrInsightsUnavailable
			},
		}
		r := gin.New()
		r.GET("/insights", NewInsightHandler(mock).GetInsights)

		w := performRequest(r, http.MethodGet, "/insights", "")

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}

		var body ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode error body: %v", err)
		}
		if body.Error.Code != "INSIGHTS_UNAVAILABLE" {
			t.Errorf("expected code INSIGHTS_UNAVAILABLE, got %s", body.Error.Code)
		}
	})
}

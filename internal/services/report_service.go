package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/reports"
)

// reportService produces the dashboard and analytics views by loading a full
// snapshot of all collections and handing it to the pure aggregation functions
// in the reports package.
//
// Every request recomputes from a full scan. Fine at this scale; precomputed
// rollups would be the next step if the dataset grows.
type reportService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db, now: time.Now}
}

// loadSnapshot reads all three collections concurrently.
func loadSnapshot(ctx context.Context, db *gorm.DB) (reports.Snapshot, error) {
	var snap reports.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).Find(&snap.Categories).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Find(&snap.Expenses).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Find(&snap.Budgets).Error
	})

	if err := g.Wait(); err != nil {
		return reports.Snapshot{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snap, nil
}

// Dashboard computes the dashboard view for the current month.
func (s *reportService) Dashboard(ctx context.Context) (*reports.DashboardSummary, error) {
	snap, err := loadSnapshot(ctx, s.db)
	if err != nil {
		return nil, err
	}
	summary := reports.Dashboard(snap, s.now())
	return &summary, nil
}

// Analytics computes the analytics view.
func (s *reportService) Analytics(ctx context.Context) (*reports.AnalyticsSummary, error) {
	snap, err := loadSnapshot(ctx, s.db)
	if err != nil {
		return nil, err
	}
	summary := reports.Analytics(snap, s.now())
	return &summary, nil
}

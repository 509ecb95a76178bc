package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DashboardKey is the persisted key holding the dashboard snapshot.
const DashboardKey = "dashboard_data"

// Headline figures shown on the dashboard. The portal is a prototype; the
// numbers are illustrative and refreshed verbatim on every visit.
const (
	mockTurnover int64 = 8_420_000
	mockTaxesDue int64 = 356_000
	mockCashFlow int64 = 1_240_000
)

// DashboardService maintains the persisted dashboard snapshot and serves the
// static notification feeds.
type DashboardService struct {
	store  EnvelopeStore
	now    func() time.Time
	logger *slog.Logger
}

// NewDashboardService wires dependencies for dashboard operations.
func NewDashboardService(store EnvelopeStore, now func() time.Time, logger *slog.Logger) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{store: store, now: now, logger: defaultLogger(logger)}
}

// Refresh writes the current headline figures and returns the stored snapshot.
func (s *DashboardService) Refresh(ctx context.Context) (DashboardSnapshot, error) {
	if s == nil || s.store == nil {
		return DashboardSnapshot{}, fmt.Errorf("DashboardService is not configured")
	}

	snapshot := DashboardSnapshot{
		Turnover:    mockTurnover,
		Taxes:       mockTaxesDue,
		Flow:        mockCashFlow,
		LastUpdated: ReferenceTime(s.now()),
	}

	if _, err := s.store.Put(ctx, DashboardKey, snapshot); err != nil {
		serviceLogger(ctx, s.logger, "dashboard", "refresh").Error("failed to persist snapshot", "error", err, "kind", ErrorKind(err))
		return DashboardSnapshot{}, err
	}
	return snapshot, nil
}

// Snapshot loads the persisted snapshot. The bool reports whether a trusted
// snapshot was found.
func (s *DashboardService) Snapshot(ctx context.Context) (DashboardSnapshot, bool, error) {
	if s == nil || s.store == nil {
		return DashboardSnapshot{}, false, fmt.Errorf("DashboardService is not configured")
	}

	var snapshot DashboardSnapshot
	ok, err := s.store.Get(ctx, DashboardKey, &snapshot)
	if err != nil {
		return DashboardSnapshot{}, false, err
	}
	return snapshot, ok, nil
}

// Notifications returns the dashboard notification feed.
func (s *DashboardService) Notifications() []Notification {
	return []Notification{
		{Text: "Tax payment is due in 3 days. Enable auto-debit?", Type: "tax"},
		{Text: "A new small-business benefit is available in your region.", Type: "benefit"},
		{Text: "Confirm operations above 1,000,000 for the past week.", Type: "security"},
	}
}

// GovernmentStatuses returns the state of filed government documents.
func (s *DashboardService) GovernmentStatuses() []GovStatus {
	return []GovStatus{
		{Title: "Simplified tax declaration", Status: "Accepted"},
		{Title: "Pension fund contribution", Status: "Pending"},
		{Title: "No-arrears certificate", Status: "Ready"},
	}
}

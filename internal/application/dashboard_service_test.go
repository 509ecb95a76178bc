package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/example/business-portal/internal/persistence"
)

func TestDashboardServiceRefreshAndSnapshot(t *testing.T) {
	t.Parallel()

	store := newStoreStub()
	service := NewDashboardService(store, fixedClock("2025-01-15 10:30"), nil)

	written, err := service.Refresh(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if written.Turnover != 8_420_000 || written.Taxes != 356_000 || written.Flow != 1_240_000 {
		t.Fatalf("unexpected headline figures: %+v", written)
	}
	if written.LastUpdated != "15.01.2025 10:30:00" {
		t.Fatalf("unexpected timestamp: %s", written.LastUpdated)
	}

	loaded, ok, err := service.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ok {
		t.Fatalf("expected a snapshot to be present")
	}
	if loaded != written {
		t.Fatalf("expected the persisted snapshot back, got %+v", loaded)
	}
}

func TestDashboardServiceSnapshotAbsent(t *testing.T) {
	t.Parallel()

	service := NewDashboardService(newStoreStub(), nil, nil)

	_, ok, err := service.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Fatalf("expected no snapshot before the first refresh")
	}
}

func TestDashboardServiceRefreshReportsStorageFailure(t *testing.T) {
	t.Parallel()

	store := newStoreStub()
	store.putErr = fmt.Errorf("write: %w", persistence.ErrStorage)
	service := NewDashboardService(store, nil, nil)

	if _, err := service.Refresh(context.Background()); !errors.Is(err, persistence.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestDashboardServiceStaticFeeds(t *testing.T) {
	t.Parallel()

	service := NewDashboardService(newStoreStub(), nil, nil)

	if got := service.Notifications(); len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	statuses := service.GovernmentStatuses()
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if statuses[0].Status != "Accepted" {
		t.Fatalf("unexpected first status: %+v", statuses[0])
	}
}

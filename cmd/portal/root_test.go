package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

// runPortal executes the CLI against the test-scoped database configured via
// the environment.
func runPortal(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func useTempDatabase(t *testing.T) {
	t.Helper()
	t.Setenv("PORTAL_SQLITE_DSN", filepath.Join(t.TempDir(), "portal.db"))
}

func TestMeetingsAddListRemove(t *testing.T) {
	useTempDatabase(t)

	out, err := runPortal(t, "meetings", "add", "--title", "Quarterly review", "--date", "2025-03-03", "--time", "14:00")
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if !strings.HasPrefix(out, "created ") {
		t.Fatalf("unexpected add output: %q", out)
	}
	id := strings.TrimSpace(strings.TrimPrefix(out, "created "))

	out, err = runPortal(t, "meetings", "list")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if !strings.Contains(out, "Quarterly review") || !strings.Contains(out, "2025-03-03") {
		t.Fatalf("expected the meeting in the listing, got %q", out)
	}

	if _, err := runPortal(t, "meetings", "rm", id); err != nil {
		t.Fatalf("rm returned error: %v", err)
	}

	out, err = runPortal(t, "meetings", "list")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if !strings.Contains(out, "no meetings") {
		t.Fatalf("expected an empty listing, got %q", out)
	}
}

func TestMeetingsAddValidationFails(t *testing.T) {
	useTempDatabase(t)

	if _, err := runPortal(t, "meetings", "add", "--title", "No date"); err == nil {
		t.Fatalf("expected a validation error")
	}
}

func TestCalcCredit(t *testing.T) {
	useTempDatabase(t)

	out, err := runPortal(t, "calc", "credit", "--turnover", "500000", "--margin", "20")
	if err != nil {
		t.Fatalf("calc credit returned error: %v", err)
	}
	if !strings.Contains(out, "300000") {
		t.Fatalf("expected limit 300000 in output, got %q", out)
	}
}

func TestCalcTax(t *testing.T) {
	useTempDatabase(t)

	out, err := runPortal(t, "calc", "tax", "--income", "1000000")
	if err != nil {
		t.Fatalf("calc tax returned error: %v", err)
	}
	if !strings.Contains(out, "self_employed saves") {
		t.Fatalf("expected a self-employment verdict, got %q", out)
	}
}

func TestVaultSetCodeAndUnlock(t *testing.T) {
	useTempDatabase(t)

	if _, err := runPortal(t, "vault", "set-code", "1234"); err != nil {
		t.Fatalf("set-code returned error: %v", err)
	}

	out, err := runPortal(t, "vault", "unlock", "1234")
	if err != nil {
		t.Fatalf("unlock returned error: %v", err)
	}
	if !strings.Contains(out, "Company charter.pdf") {
		t.Fatalf("expected the document listing, got %q", out)
	}

	if _, err := runPortal(t, "vault", "unlock", "0000"); err == nil {
		t.Fatalf("expected a wrong code to be rejected")
	}
}

func TestOfficesListAndShow(t *testing.T) {
	useTempDatabase(t)

	out, err := runPortal(t, "offices", "list", "--service", "loans")
	if err != nil {
		t.Fatalf("offices list returned error: %v", err)
	}
	if !strings.Contains(out, "Head Office") || !strings.Contains(out, "Red Square Branch") {
		t.Fatalf("expected the two loan branches, got %q", out)
	}
	if strings.Contains(out, "Arbat Branch") {
		t.Fatalf("expected Arbat Branch to be filtered out, got %q", out)
	}

	out, err = runPortal(t, "offices", "show", "O2")
	if err != nil {
		t.Fatalf("offices show returned error: %v", err)
	}
	if !strings.Contains(out, "Mikhail Sidorov") {
		t.Fatalf("expected the branch lead, got %q", out)
	}
}

func TestOfficesVisitPlan(t *testing.T) {
	useTempDatabase(t)

	out, err := runPortal(t, "offices", "visit", "--goal", "credit", "--date", "2025-04-01")
	if err != nil {
		t.Fatalf("offices visit returned error: %v", err)
	}
	if !strings.Contains(out, "Business plan") {
		t.Fatalf("expected the credit document preset, got %q", out)
	}
}

func TestPartnersFind(t *testing.T) {
	useTempDatabase(t)

	out, err := runPortal(t, "partners", "find", "logistics")
	if err != nil {
		t.Fatalf("partners find returned error: %v", err)
	}
	if !strings.Contains(out, "Sever Logistics Center") {
		t.Fatalf("expected the logistics partner, got %q", out)
	}
}

func TestCalendarRendersMonth(t *testing.T) {
	useTempDatabase(t)

	if _, err := runPortal(t, "meetings", "add", "--title", "Board meeting", "--date", "2025-01-10", "--time", "09:00"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	out, err := runPortal(t, "calendar", "--month", "2025-01")
	if err != nil {
		t.Fatalf("calendar returned error: %v", err)
	}
	if !strings.Contains(out, "January 2025") {
		t.Fatalf("expected the month header, got %q", out)
	}
	if !strings.Contains(out, "2025-01-10  Board meeting") {
		t.Fatalf("expected the meeting label, got %q", out)
	}
}

func TestDashboard(t *testing.T) {
	useTempDatabase(t)

	out, err := runPortal(t, "dashboard")
	if err != nil {
		t.Fatalf("dashboard returned error: %v", err)
	}
	if !strings.Contains(out, "8420000") {
		t.Fatalf("expected the turnover figure, got %q", out)
	}
	if !strings.Contains(out, "notifications:") {
		t.Fatalf("expected the notification feed, got %q", out)
	}
}

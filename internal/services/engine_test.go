package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/doeshing/factlog/internal/domain"
)

func TestRunCheckReportsCompositeRecord(t *testing.T) {
	records, engine, _ := newFixture()

	r, err := records.Create("sample-1", "12")
	if err != nil {
		t.Fatal(err)
	}

	run, err := engine.Run(domain.CommandCheck, r.ID)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if run.RecordID != r.ID {
		t.Errorf("recordID = %q, want %q", run.RecordID, r.ID)
	}
	if !strings.Contains(run.Output, "YES") || !strings.Contains(run.Output, "12 = 2 × 6") {
		t.Errorf("output = %q, want YES with the smallest factor pair", run.Output)
	}
}

func TestRunCheckReportsPrimeRecord(t *testing.T) {
	records, engine, _ := newFixture()

	r, _ := records.Create("", "13")
	run, err := engine.Run(domain.CommandCheck, r.ID)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(run.Output, "NO") || !strings.Contains(run.Output, "13 is prime") {
		t.Errorf("output = %q, want NO with primality statement", run.Output)
	}
}

func TestRunCheckBelowEligibilityThreshold(t *testing.T) {
	records, engine, _ := newFixture()

	r, _ := records.Create("", "2")
	run, err := engine.Run(domain.CommandCheck, r.ID)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(run.Output, "NO") {
		t.Errorf("output = %q, want NO", run.Output)
	}
	if !strings.Contains(run.Output, "greater than 3") {
		t.Errorf("output = %q, want the eligibility rule cited", run.Output)
	}
	if strings.Contains(run.Output, "prime") {
		t.Errorf("output = %q, must not cite primality for an ineligible value", run.Output)
	}
}

func TestRunCheckMissingRecordIsSoftFailure(t *testing.T) {
	_, engine, _ := newFixture()

	run, err := engine.Run(domain.CommandCheck, "ghost")
	if err != nil {
		t.Fatalf("Run() error = %v, missing record must not be a hard error", err)
	}
	if !strings.Contains(run.Output, "not found") || !strings.Contains(run.Output, "ghost") {
		t.Errorf("output = %q, want a not-found message naming the id", run.Output)
	}
	if run.RecordID != "" {
		t.Errorf("recordID = %q, an unresolved target must not be recorded", run.RecordID)
	}

	run, err = engine.Run(domain.CommandCheck, "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(run.Output, "not found") {
		t.Errorf("output = %q, want a not-found message for a blank id", run.Output)
	}
}

func TestRunCheckAllWalksRecordsNewestFirst(t *testing.T) {
	records, engine, _ := newFixture()

	// Created oldest-to-newest: 7 then 4, so list order is 4 first.
	prime, _ := records.Create("", "7")
	composite, _ := records.Create("", "4")

	run, err := engine.Run(domain.CommandCheckAll, "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if run.RecordID != "" {
		t.Errorf("check:all must record no target, got %q", run.RecordID)
	}

	blocks := strings.Split(run.Output, "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("output has %d blank-line separated lines, want 2:\n%s", len(blocks), run.Output)
	}
	if !strings.Contains(blocks[0], composite.ID) || !strings.Contains(blocks[0], "(4)") || !strings.Contains(blocks[0], "YES") {
		t.Errorf("first line = %q, want YES for the newest record (4)", blocks[0])
	}
	if !strings.Contains(blocks[1], prime.ID) || !strings.Contains(blocks[1], "(7)") || !strings.Contains(blocks[1], "NO") {
		t.Errorf("second line = %q, want NO for 7", blocks[1])
	}
}

func TestRunCheckAllIgnoresSuppliedRecordID(t *testing.T) {
	records, engine, _ := newFixture()

	records.Create("", "6")
	run, err := engine.Run(domain.CommandCheckAll, "ghost")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if run.RecordID != "" {
		t.Errorf("recordID = %q, want absent", run.RecordID)
	}
	if strings.Contains(run.Output, "not found") {
		t.Errorf("output = %q, the supplied id must be ignored", run.Output)
	}
}

func TestRunCheckAllWithNoRecordsYieldsEmptyOutput(t *testing.T) {
	_, engine, _ := newFixture()

	run, err := engine.Run(domain.CommandCheckAll, "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if run.Output != "" {
		t.Errorf("output = %q, want empty", run.Output)
	}
}

func TestRunUnknownCommandIsSoftFailure(t *testing.T) {
	_, engine, _ := newFixture()

	run, err := engine.Run("foo", "")
	if err != nil {
		t.Fatalf("Run() error = %v, unknown command must not be a hard error", err)
	}
	if run.Output != "Unknown command: foo" {
		t.Errorf("output = %q, want %q", run.Output, "Unknown command: foo")
	}
	if len(engine.History()) != 1 {
		t.Errorf("history length = %d, want the run to be logged", len(engine.History()))
	}
}

func TestHistoryBoundedToLimitNewestRetained(t *testing.T) {
	_, engine, _ := newFixture()

	total := domain.HistoryLimit + 5
	for i := 0; i < total; i++ {
		if _, err := engine.Run(fmt.Sprintf("noop-%d", i), ""); err != nil {
			t.Fatal(err)
		}
	}

	history := engine.History()
	if len(history) != domain.HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(history), domain.HistoryLimit)
	}
	// Newest first, and exactly the most recent runs survive.
	if history[0].Command != fmt.Sprintf("noop-%d", total-1) {
		t.Errorf("newest entry = %q", history[0].Command)
	}
	if history[len(history)-1].Command != fmt.Sprintf("noop-%d", total-domain.HistoryLimit) {
		t.Errorf("oldest retained entry = %q", history[len(history)-1].Command)
	}
	for i := 1; i < len(history); i++ {
		if history[i].StartedAt.After(history[i-1].StartedAt) {
			t.Fatalf("history not ordered newest-first at %d", i)
		}
	}
}

func TestHistoryHonorsConfiguredLimit(t *testing.T) {
	_, engine, _ := newFixture()
	engine.HistoryLimit = 3

	for i := 0; i < 10; i++ {
		engine.Run("noop", "")
	}
	if got := len(engine.History()); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
}

func TestLatestOutput(t *testing.T) {
	records, engine, _ := newFixture()

	if _, ok := engine.LatestOutput(); ok {
		t.Error("LatestOutput() on empty history must report absent")
	}

	r, _ := records.Create("", "9")
	engine.Run(domain.CommandCheck, r.ID)
	engine.Run("foo", "")

	got, ok := engine.LatestOutput()
	if !ok {
		t.Fatal("LatestOutput() = absent, want present")
	}
	if got != "Unknown command: foo" {
		t.Errorf("LatestOutput() = %q, want the most recent run's output", got)
	}
}

func TestRunSurfacesPersistenceFailure(t *testing.T) {
	_, engine, store := newFixture()
	store.saveRunsErr = errors.New("disk full")

	if _, err := engine.Run("foo", ""); err == nil {
		t.Error("Run() should surface the store error")
	}
}

func TestRunsAreImmutableSnapshots(t *testing.T) {
	records, engine, _ := newFixture()

	r, _ := records.Create("", "12")
	before, _ := engine.Run(domain.CommandCheck, r.ID)

	// Later mutations must not rewrite past outputs.
	records.Create("", "99")
	after := engine.History()[len(engine.History())-1]
	if after.Output != before.Output || after.ID != before.ID {
		t.Errorf("past run changed: %+v vs %+v", after, before)
	}
}

package filtering

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/vagas/internal/store"
	"github.com/spigell/vagas/internal/vagas"
)

type staticHistory struct {
	apps *store.Applications
	err  error
}

func (h staticHistory) Load() (*store.Applications, error) {
	return h.apps, h.err
}

func testJobs() *vagas.Jobs {
	return &vagas.Jobs{Items: []*vagas.Job{
		{ID: "1", Company: "Acme"},
		{ID: "2", Company: "Globex"},
		{ID: "3", Company: "Initech"},
		{ID: "4", Company: "ACME"},
	}}
}

func TestRunAppliesStepsInOrder(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	history := staticHistory{apps: &store.Applications{Items: []*store.Application{{JobID: "3"}}}}
	steps := []Filter{
		NewExcludedCompanies([]string{"acme"}, logger),
		NewAppliedHistory(nil, &AppliedHistoryDeps{History: history, Logger: logger}),
	}

	jobs, err := Run(context.Background(), logger, steps, testJobs())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := jobs.IDs(); !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("unexpected jobs left: %v", got)
	}

	var entries []map[string]interface{}
	for _, entry := range logs.FilterMessage("filter step").All() {
		entries = append(entries, entry.ContextMap())
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 step logs, got %d", len(entries))
	}
	if entries[0]["name"] != "excluded_companies" || entries[0]["dropped"] != int64(2) || entries[0]["left"] != int64(2) {
		t.Fatalf("unexpected first step log: %v", entries[0])
	}
	if entries[1]["name"] != "applied_history" || entries[1]["dropped"] != int64(1) || entries[1]["left"] != int64(1) {
		t.Fatalf("unexpected second step log: %v", entries[1])
	}
}

func TestRunSkipsDisabledFilters(t *testing.T) {
	logger := zap.NewNop()
	steps := []Filter{NewExcludedCompanies([]string{"Globex"}, logger)}
	DisableByName(steps, "excluded_companies", "testing")

	jobs, err := Run(context.Background(), logger, steps, testJobs())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if jobs.Len() != 4 {
		t.Fatalf("expected all jobs to stay, got %d", jobs.Len())
	}

	status := Describe(steps)
	if len(status) != 1 || status[0].Enabled || status[0].Reason != "testing" {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestRunValidatesBeforeApplying(t *testing.T) {
	steps := []Filter{
		NewExcludedCompanies([]string{"Acme"}, zap.NewNop()),
		NewAppliedHistory(nil, &AppliedHistoryDeps{Logger: zap.NewNop()}),
	}

	jobs := testJobs()
	_, err := Run(context.Background(), nil, steps, jobs)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if jobs.Len() != 4 {
		t.Fatalf("no step may run when validation fails, got %d jobs", jobs.Len())
	}
}

func TestAppliedHistoryIgnore(t *testing.T) {
	history := staticHistory{err: errors.New("must not be read")}
	f := NewAppliedHistory(&AppliedHistoryConfig{Ignore: true}, &AppliedHistoryDeps{History: history, Logger: zap.NewNop()})

	jobs, step, err := f.Apply(context.Background(), testJobs())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if jobs.Len() != 4 || step.Dropped != 0 {
		t.Fatalf("expected nothing dropped, got %+v", step)
	}

	st := Describe([]Filter{f})[0]
	if st.Details["exclude_applied"] != "false" {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestAppliedHistoryError(t *testing.T) {
	history := staticHistory{err: errors.New("broken file")}
	f := NewAppliedHistory(nil, &AppliedHistoryDeps{History: history, Logger: zap.NewNop()})

	if _, _, err := f.Apply(context.Background(), testJobs()); err == nil {
		t.Fatalf("expected history error")
	}
}

func TestAppliedHistoryFromFile(t *testing.T) {
	h, err := store.NewHistory(filepath.Join(t.TempDir(), "history.json"))
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if err := h.Append(&store.Application{JobID: "2", ResumeID: "9", AppliedAt: time.Now()}); err != nil {
		t.Fatalf("append: %v", err)
	}

	f := NewAppliedHistory(nil, &AppliedHistoryDeps{History: h, Logger: zap.NewNop()})
	jobs, step, err := f.Apply(context.Background(), testJobs())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if step != (Step{Initial: 4, Dropped: 1, Left: 3}) {
		t.Fatalf("unexpected step %+v", step)
	}
	if jobs.FindByID("2") != nil {
		t.Fatalf("job 2 must be excluded")
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, nil, []Filter{NewExcludedCompanies(nil, zap.NewNop())}, testJobs())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancelled, got %v", err)
	}
}

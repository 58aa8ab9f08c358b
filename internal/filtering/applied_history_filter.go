package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/vagas/internal/store"
	"github.com/spigell/vagas/internal/vagas"
)

const ignoreFlagSetMsg = "exclude-applied is off"

type appliedHistoryFilter struct {
	deps   *AppliedHistoryDeps
	ignore bool
}

// HistoryLoader reads the local application history.
type HistoryLoader interface {
	Load() (*store.Applications, error)
}

type AppliedHistoryDeps struct {
	History HistoryLoader
	Logger  *zap.Logger
}

type AppliedHistoryConfig struct {
	Ignore bool
}

// NewAppliedHistory creates a filter that removes jobs found in the local
// application history.
func NewAppliedHistory(cfg *AppliedHistoryConfig, deps *AppliedHistoryDeps) Filter {
	ignore := false
	if cfg != nil {
		ignore = cfg.Ignore
	}

	return &appliedHistoryFilter{
		deps:   deps,
		ignore: ignore,
	}
}

func (f *appliedHistoryFilter) Name() string { return "applied_history" }

func (f *appliedHistoryFilter) Disable(string) { f.ignore = true }

func (f *appliedHistoryFilter) IsEnabled() bool { return true }

func (f *appliedHistoryFilter) Validate() error {
	if f.deps == nil || f.deps.History == nil {
		return fmt.Errorf("application history is required")
	}

	if f.deps.Logger == nil {
		return fmt.Errorf("logger is required")
	}

	return nil
}

func (f *appliedHistoryFilter) Apply(_ context.Context, jobs *vagas.Jobs) (*vagas.Jobs, Step, error) {
	initial := jobs.Len()
	if f.ignore {
		f.deps.Logger.Info("keeping already applied jobs", zap.String("reason", ignoreFlagSetMsg))
		return jobs, Step{Initial: initial, Dropped: 0, Left: jobs.Len()}, nil
	}

	apps, err := f.deps.History.Load()
	if err != nil {
		return jobs, Step{}, fmt.Errorf("get application history: %w", err)
	}

	excluded := jobs.Exclude(vagas.JobIDField, apps.JobIDs())
	if len(excluded) > 0 {
		f.deps.Logger.Info("excluding jobs based on application history",
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", jobs.Len()),
		)
	}

	return jobs, Step{Initial: initial, Dropped: len(excluded), Left: jobs.Len()}, nil
}

func (f *appliedHistoryFilter) Status() Status {
	details := map[string]string{
		"exclude_applied": strconv.FormatBool(!f.ignore),
	}
	reason := ""
	if f.ignore {
		reason = "skip requested via flag"
	}
	return Status{Name: f.Name(), Enabled: true, Reason: reason, Details: details}
}

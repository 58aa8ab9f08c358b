package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/vagas/internal/filtering"
	"github.com/spigell/vagas/internal/vagas"
	"github.com/spigell/vagas/internal/workflow"
)

var jobsCmd = &cobra.Command{
	Use:     "jobs",
	Aliases: []string{"vagas"},
	Short:   "Browse job postings and apply to them",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs matching the given filters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			return listJobs(ctx, cmd, a)
		})
	},
}

var jobsSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search jobs by keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			jobs, err := a.client.SearchJobs(ctx, args[0])
			if err != nil {
				return err
			}
			return showJobs(ctx, cmd, a, jobs)
		})
	},
}

var jobsRegionCmd = &cobra.Command{
	Use:   "region",
	Short: "List jobs in a city or state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		city, _ := cmd.Flags().GetString("city")
		state, _ := cmd.Flags().GetString("state")
		if city == "" && state == "" {
			return errors.New("at least one of --city or --state is required")
		}

		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			jobs, err := a.client.JobsByRegion(ctx, city, state)
			if err != nil {
				return err
			}
			return showJobs(ctx, cmd, a, jobs)
		})
	},
}

var jobsFeaturedCmd = &cobra.Command{
	Use:   "featured",
	Short: "List featured jobs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			jobs, err := a.client.FeaturedJobs(ctx)
			if err != nil {
				return err
			}
			return showJobs(ctx, cmd, a, jobs)
		})
	},
}

var jobsRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recently published jobs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return errors.New("--limit must not be negative")
		}

		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			jobs, err := a.client.RecentJobs(ctx, limit)
			if err != nil {
				return err
			}
			return showJobs(ctx, cmd, a, jobs)
		})
	},
}

var jobsShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			job, err := a.client.GetJob(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), job, func(w io.Writer) { printJob(w, job) })
		})
	},
}

var jobsApplyCmd = &cobra.Command{
	Use:   "apply ID",
	Short: "Apply to a job with one of your résumés",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			return applyToJob(ctx, cmd, a, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd, jobsSearchCmd, jobsRegionCmd, jobsFeaturedCmd, jobsRecentCmd, jobsShowCmd, jobsApplyCmd)

	for _, c := range []*cobra.Command{jobsListCmd, jobsSearchCmd, jobsRegionCmd, jobsFeaturedCmd, jobsRecentCmd} {
		c.Flags().StringSlice("exclude-company", nil, "drop jobs posted by these companies (added to exclude.companies)")
		c.Flags().Bool("exclude-applied", true, "drop jobs found in the application history")
		c.Flags().Bool("report", false, "print the jobs grouped by company")
		c.Flags().Bool("dump", false, "dump the jobs to a temporary JSON file")
	}

	jobsListCmd.Flags().String("keyword", "", "keyword to search for")
	jobsListCmd.Flags().String("city", "", "city name")
	jobsListCmd.Flags().String("state", "", "two letter state code")
	jobsListCmd.Flags().String("contract", "", "contract type (clt, pj, estagio, temporario, freelancer)")
	jobsListCmd.Flags().String("mode", "", "work mode (presencial, remoto, hibrido)")
	jobsListCmd.Flags().String("level", "", "experience level")

	jobsRegionCmd.Flags().String("city", "", "city name")
	jobsRegionCmd.Flags().String("state", "", "two letter state code")

	jobsRecentCmd.Flags().Int("limit", 10, "number of jobs to fetch")

	jobsApplyCmd.Flags().StringP("resume", "r", "", "résumé id (default is a choice among cached résumés)")
	jobsApplyCmd.Flags().Bool("force", false, "apply even if the history already has this application")
}

func listJobs(ctx context.Context, cmd *cobra.Command, a *application) error {
	filter := &vagas.JobFilter{}
	filter.Keyword, _ = cmd.Flags().GetString("keyword")
	filter.City, _ = cmd.Flags().GetString("city")
	filter.State, _ = cmd.Flags().GetString("state")
	filter.ContractType, _ = cmd.Flags().GetString("contract")
	filter.Mode, _ = cmd.Flags().GetString("mode")
	filter.Level, _ = cmd.Flags().GetString("level")

	jobs, err := a.client.ListJobs(ctx, filter)
	if err != nil {
		return err
	}

	return showJobs(ctx, cmd, a, jobs)
}

// showJobs runs the local filters over the fetched jobs and prints what is
// left.
func showJobs(ctx context.Context, cmd *cobra.Command, a *application, jobs *vagas.Jobs) error {
	extra, _ := cmd.Flags().GetStringSlice("exclude-company")
	excludeApplied, _ := cmd.Flags().GetBool("exclude-applied")
	report, _ := cmd.Flags().GetBool("report")
	dump, _ := cmd.Flags().GetBool("dump")

	companies := append(append([]string{}, a.config.ExcludedCompanies()...), extra...)
	steps := []filtering.Filter{
		filtering.NewExcludedCompanies(companies, a.logger),
		filtering.NewAppliedHistory(&filtering.AppliedHistoryConfig{Ignore: !excludeApplied}, &filtering.AppliedHistoryDeps{
			History: a.history,
			Logger:  a.logger,
		}),
	}

	for _, status := range filtering.Describe(steps) {
		a.logger.Debug("filter", zap.String("name", status.Name), zap.Bool("enabled", status.Enabled), zap.Any("details", status.Details))
	}

	jobs, err := filtering.Run(ctx, a.logger, steps, jobs)
	if err != nil {
		return err
	}

	if dump {
		path, err := jobs.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dumping jobs: %w", err)
		}
		a.logger.Info("jobs dumped", zap.String("path", path), zap.Int("count", jobs.Len()))
	}

	if report {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(jobs.ReportByCompany())
	}

	return a.render(cmd.OutOrStdout(), jobs, func(w io.Writer) { printJobs(w, jobs) })
}

func applyToJob(ctx context.Context, cmd *cobra.Command, a *application, jobID string) error {
	resumeID, _ := cmd.Flags().GetString("resume")
	force, _ := cmd.Flags().GetBool("force")

	job, err := a.client.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if job.ID == "" {
		job.ID = jobID
	}

	if resumeID == "" {
		resumeID, err = pickResume(ctx, a)
		if err != nil {
			return err
		}
	}

	app, err := a.service.Apply(ctx, job, resumeID, force)
	if errors.Is(err, workflow.ErrAlreadyApplied) {
		return fmt.Errorf("%w: job %s with résumé %s (use --force to apply again)", err, jobID, resumeID)
	}
	if err != nil {
		return err
	}

	return a.render(cmd.OutOrStdout(), app, func(w io.Writer) {
		fmt.Fprintf(w, "applied to %q (%s) with résumé %s\n", job.Title(), jobID, resumeID)
		if app.Status != "" {
			fmt.Fprintf(w, "status: %s\n", app.Status)
		}
	})
}

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/vagas/internal/resume"
)

var resumeCmd = &cobra.Command{
	Use:     "resume",
	Aliases: []string{"curriculo"},
	Short:   "Create, inspect and manage résumés",
}

var resumeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Validate a résumé draft and create it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			return createResume(ctx, cmd, a)
		})
	},
}

var resumeShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a résumé",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			return showResume(ctx, cmd, a, args[0])
		})
	},
}

var resumeUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Validate a résumé draft and replace a stored résumé",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			return updateResume(ctx, cmd, a, args[0])
		})
	},
}

var resumeDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a résumé",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			return deleteResume(ctx, cmd, a, args[0])
		})
	},
}

var resumeJobsCmd = &cobra.Command{
	Use:   "jobs ID",
	Short: "List the jobs recommended for a résumé",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			jobs, err := a.client.RecommendedJobs(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), jobs, func(w io.Writer) { printJobs(w, jobs) })
		})
	},
}

var resumeCachedCmd = &cobra.Command{
	Use:   "cached",
	Short: "List the résumés created or opened from this machine",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			resumes, err := a.service.CachedResumes(ctx)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), resumes, func(w io.Writer) {
				if len(resumes) == 0 {
					fmt.Fprintln(w, "no cached résumés")
					return
				}
				for _, r := range resumes {
					fmt.Fprintln(w, r.Label())
				}
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(resumeCmd)
	resumeCmd.AddCommand(resumeCreateCmd, resumeShowCmd, resumeUpdateCmd, resumeDeleteCmd, resumeJobsCmd, resumeCachedCmd)

	resumeCreateCmd.Flags().StringP("file", "f", "", "résumé draft file (yaml or json)")
	resumeCreateCmd.Flags().BoolP("interactive", "i", false, "fix validation errors interactively")
	resumeCreateCmd.Flags().Bool("no-recommendations", false, "do not load recommended jobs after creation")
	resumeCreateCmd.MarkFlagRequired("file")

	resumeUpdateCmd.Flags().StringP("file", "f", "", "résumé draft file (default is the stored résumé)")
	resumeUpdateCmd.Flags().BoolP("interactive", "i", false, "fix validation errors interactively")

	resumeShowCmd.Flags().Bool("with-jobs", false, "also list the recommended jobs")

	resumeDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

func createResume(ctx context.Context, cmd *cobra.Command, a *application) error {
	path, _ := cmd.Flags().GetString("file")
	interactive, _ := cmd.Flags().GetBool("interactive")
	noRecommendations, _ := cmd.Flags().GetBool("no-recommendations")

	d, err := loadDraft(path)
	if err != nil {
		return err
	}

	form := a.service.Validator().NewForm(*d)
	if _, err := completeDraft(form, interactive); err != nil {
		return err
	}

	draft := form.Draft()
	created, errs, err := a.service.CreateResume(ctx, &draft, !noRecommendations)
	if err != nil {
		return err
	}
	if !errs.Valid() {
		printValidationErrors(cmd.ErrOrStderr(), errs)
		return errInvalidDraft
	}
	if created.RecommendationsErr != nil {
		a.logger.Warn("loading recommended jobs failed", zap.Error(created.RecommendationsErr))
	}

	return a.render(cmd.OutOrStdout(), created, func(w io.Writer) {
		fmt.Fprintf(w, "résumé %s created\n\n", created.Resume.ID)
		printResume(w, created.Resume)
		if noRecommendations {
			return
		}
		fmt.Fprintln(w, "\nRecommended jobs:")
		printJobs(w, created.Jobs)
	})
}

func showResume(ctx context.Context, cmd *cobra.Command, a *application, id string) error {
	withJobs, _ := cmd.Flags().GetBool("with-jobs")

	if !withJobs {
		r, err := a.client.GetResume(ctx, id)
		if err != nil {
			return err
		}
		return a.render(cmd.OutOrStdout(), r, func(w io.Writer) { printResume(w, r) })
	}

	overview, err := a.service.ResumeOverview(ctx, id)
	if err != nil {
		return err
	}

	return a.render(cmd.OutOrStdout(), overview, func(w io.Writer) {
		printResume(w, overview.Resume)
		fmt.Fprintln(w, "\nRecommended jobs:")
		printJobs(w, overview.Jobs)
	})
}

func updateResume(ctx context.Context, cmd *cobra.Command, a *application, id string) error {
	path, _ := cmd.Flags().GetString("file")
	interactive, _ := cmd.Flags().GetBool("interactive")

	var d resume.Draft
	if path != "" {
		loaded, err := loadDraft(path)
		if err != nil {
			return err
		}
		d = *loaded
	} else {
		current, err := a.client.GetResume(ctx, id)
		if err != nil {
			return err
		}
		d = resume.FromResume(current)
	}

	form := a.service.Validator().NewForm(d)
	if _, err := completeDraft(form, interactive); err != nil {
		return err
	}

	draft := form.Draft()
	updated, errs, err := a.service.UpdateResume(ctx, id, &draft)
	if err != nil {
		return err
	}
	if !errs.Valid() {
		printValidationErrors(cmd.ErrOrStderr(), errs)
		return errInvalidDraft
	}

	return a.render(cmd.OutOrStdout(), updated, func(w io.Writer) {
		fmt.Fprintf(w, "résumé %s updated\n\n", id)
		printResume(w, updated)
	})
}

func deleteResume(ctx context.Context, cmd *cobra.Command, a *application, id string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		ok, err := confirm(fmt.Sprintf("Delete résumé %s", id))
		if err != nil {
			return fmt.Errorf("%w (use --yes to skip the confirmation)", err)
		}
		if !ok {
			a.logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return nil
		}
	}

	if err := a.service.DeleteResume(ctx, id); err != nil {
		return err
	}

	if a.json {
		return a.render(cmd.OutOrStdout(), map[string]string{"deleted": id}, nil)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "résumé %s deleted\n", id)
	return nil
}

// pickResume lets the user choose one of the cached résumés.
func pickResume(ctx context.Context, a *application) (string, error) {
	resumes, err := a.service.CachedResumes(ctx)
	if err != nil {
		return "", err
	}

	if len(resumes) == 0 {
		return "", fmt.Errorf("no cached résumés, pass --resume")
	}

	if len(resumes) == 1 {
		a.logger.Info("using the only cached résumé", zap.String("resume", resumes[0].Label()))
		return resumes[0].ID, nil
	}

	labels := make([]string, 0, len(resumes))
	for _, r := range resumes {
		labels = append(labels, r.Label())
	}

	idx, _, err := choose("Choose a résumé and press ENTER", labels)
	if err != nil {
		return "", err
	}

	return resumes[idx].ID, nil
}

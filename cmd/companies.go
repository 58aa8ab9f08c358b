package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

var companiesCmd = &cobra.Command{
	Use:     "companies",
	Aliases: []string{"empresas"},
	Short:   "Browse companies",
}

var companiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List companies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			companies, err := a.client.ListCompanies(ctx)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), companies, func(w io.Writer) { printCompanies(w, companies) })
		})
	},
}

var companiesShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(ctx context.Context, a *application) error {
			company, err := a.client.GetCompany(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), company, func(w io.Writer) { printCompany(w, company) })
		})
	},
}

func init() {
	rootCmd.AddCommand(companiesCmd)
	companiesCmd.AddCommand(companiesListCmd, companiesShowCmd)
}

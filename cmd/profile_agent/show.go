package main

import (
	"fmt"

	"github.com/jonathan/jobseeker-profile/internal/observability"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current profile",
	Long:  "Loads the signed-in account and job-seeker profile from the API and prints them.",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	page, _, err := loadPage(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	account := page.Account()
	_, _ = fmt.Fprintf(out, "Signed in as %s <%s>\n", account.Name, account.Email)

	printer := observability.NewPrinter(out)
	profile := page.Profile()
	printer.PrintProfile(&profile)
	printer.PrintResumeStatus(page.Resume().Status())
	return nil
}

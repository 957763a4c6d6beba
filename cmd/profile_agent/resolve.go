package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/jobseeker-profile/internal/dispatch"
	"github.com/jonathan/jobseeker-profile/internal/observability"
	"github.com/jonathan/jobseeker-profile/internal/types"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show which API request an edit kind maps to",
	Long:  "Resolves an edit kind (and item index) to its HTTP method and endpoint without contacting the API.",
	RunE:  runResolve,
}

var (
	resolveKind  string
	resolveIndex int
	resolveData  string
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveKind, "kind", "k", "", "Edit kind, e.g. experience or add_education (required)")
	resolveCmd.Flags().IntVarP(&resolveIndex, "index", "i", -1, "Item index for experience, education and certification edits")
	resolveCmd.Flags().StringVar(&resolveData, "data", "", "Optional JSON request body to echo")

	if err := resolveCmd.MarkFlagRequired("kind"); err != nil {
		panic(fmt.Sprintf("failed to mark kind flag as required: %v", err))
	}

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, _ []string) error {
	kind, err := types.ParseEditKind(resolveKind)
	if err != nil {
		return err
	}

	payload := types.Payload{Type: kind}
	if resolveIndex >= 0 {
		i := resolveIndex
		payload.Index = &i
	}
	if resolveData != "" {
		if !json.Valid([]byte(resolveData)) {
			return fmt.Errorf("--data is not valid JSON")
		}
		payload.Data = json.RawMessage(resolveData)
	}

	req, err := dispatch.Resolve(payload)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintUpdateRequest(types.EditTarget{Kind: kind, Index: payload.Index}, req)
	return nil
}

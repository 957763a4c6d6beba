package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/jobseeker-profile/internal/dispatch"
	"github.com/jonathan/jobseeker-profile/internal/forms"
	"github.com/jonathan/jobseeker-profile/internal/observability"
	"github.com/jonathan/jobseeker-profile/internal/schemas"
	"github.com/jonathan/jobseeker-profile/internal/session"
	"github.com/jonathan/jobseeker-profile/internal/types"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Apply one profile edit from a JSON file",
	Long: `Applies an edit file of the form {"kind": ..., "index": ..., "fields": {...}}.
The fields are filled into the section form for that kind, validated, and submitted.
With --dry-run the resolved request is printed instead of sent.`,
	RunE: runEdit,
}

var (
	editInputFile string
	editDryRun    bool
)

type editFile struct {
	Kind   string          `json:"kind"`
	Index  *int            `json:"index"`
	Title  string          `json:"title"`
	Fields json.RawMessage `json:"fields"`
}

func init() {
	editCmd.Flags().StringVarP(&editInputFile, "in", "i", "", "Path to edit request JSON file (required)")
	editCmd.Flags().BoolVar(&editDryRun, "dry-run", false, "Print the request without sending it")

	if err := editCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(editCmd)
}

func readEditFile(path string) (*editFile, types.EditTarget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.EditTarget{}, fmt.Errorf("failed to read edit file: %w", err)
	}
	if err := schemas.ValidateEditRequest(data); err != nil {
		return nil, types.EditTarget{}, fmt.Errorf("invalid edit file: %w", err)
	}

	var ef editFile
	if err := json.Unmarshal(data, &ef); err != nil {
		return nil, types.EditTarget{}, fmt.Errorf("failed to parse edit file: %w", err)
	}
	kind, err := types.ParseEditKind(ef.Kind)
	if err != nil {
		return nil, types.EditTarget{}, err
	}

	target := types.EditTarget{Kind: kind}
	if kind.Indexed() {
		target.Index = ef.Index
	}
	return &ef, target, nil
}

func runEdit(cmd *cobra.Command, _ []string) error {
	ef, target, err := readEditFile(editInputFile)
	if err != nil {
		return err
	}

	page, cfg, err := loadPage(cmd.Context())
	if err != nil {
		return err
	}

	title := ef.Title
	if title == "" {
		title = session.Title(target)
	}
	if err := page.OpenTitled(target, title); err != nil {
		return err
	}

	m := page.Modal()
	form := m.Form()
	if len(ef.Fields) > 0 {
		if err := form.Fill(ef.Fields); err != nil {
			m.Close()
			return fmt.Errorf("failed to fill %s form: %w", target.Kind, err)
		}
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if editDryRun {
		defer m.Close()
		payload, err := form.Submit()
		if err != nil {
			return err
		}
		req, err := dispatch.Resolve(payload)
		if err != nil {
			return err
		}
		printer.PrintUpdateRequest(target, req)
		return nil
	}

	if err := m.Submit(cmd.Context()); err != nil {
		var ve *forms.ValidationError
		if !errors.As(err, &ve) {
			printer.PrintModalState(m.State())
		}
		m.Close()
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", target)
	if cfg.Verbose {
		profile := page.Profile()
		printer.PrintProfile(&profile)
	}
	return nil
}

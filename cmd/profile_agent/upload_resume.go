package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/jobseeker-profile/internal/observability"
	"github.com/jonathan/jobseeker-profile/internal/upload"
	"github.com/spf13/cobra"
)

var uploadResumeCmd = &cobra.Command{
	Use:   "upload-resume",
	Short: "Upload a resume or remove the current one",
	Long:  "Uploads a PDF, DOC or DOCX resume (under 5 MB) and saves its URL on the profile. With --remove the stored resume is cleared instead.",
	RunE:  runUploadResume,
}

var (
	uploadFile   string
	uploadRemove bool
)

func init() {
	uploadResumeCmd.Flags().StringVarP(&uploadFile, "file", "f", "", "Path to the resume file")
	uploadResumeCmd.Flags().BoolVar(&uploadRemove, "remove", false, "Remove the stored resume")
	uploadResumeCmd.MarkFlagsMutuallyExclusive("file", "remove")
	uploadResumeCmd.MarkFlagsOneRequired("file", "remove")

	rootCmd.AddCommand(uploadResumeCmd)
}

func runUploadResume(cmd *cobra.Command, _ []string) error {
	var f upload.File
	if !uploadRemove {
		data, err := os.ReadFile(uploadFile)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		f = upload.File{Name: filepath.Base(uploadFile), Size: int64(len(data)), Data: data}
		if err := upload.Validate(f); err != nil {
			return err
		}
	}

	page, _, err := loadPage(cmd.Context())
	if err != nil {
		return err
	}

	if uploadRemove {
		err = page.RemoveResume(cmd.Context())
	} else {
		err = page.UploadResume(cmd.Context(), f)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintResumeStatus(page.Resume().Status())
	if err != nil {
		printer.PrintModalState(page.Modal().State())
		return err
	}
	return nil
}

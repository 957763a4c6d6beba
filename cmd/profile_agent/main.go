// Package main provides the profile_agent CLI for editing a job-seeker profile.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	apiURL     string
	apiToken   string
	timeout    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "profile_agent",
	Short: "Job-seeker profile editor",
	Long:  "profile_agent reads and edits a job-seeker profile through the job-portal API: section and item edits, new items, and resume uploads.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Job-portal API base URL")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "Bearer token for API requests")
	rootCmd.PersistentFlags().StringVar(&timeout, "timeout", "", "HTTP timeout (e.g. 30s)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log HTTP requests and print detailed output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

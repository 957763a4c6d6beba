package main

import (
	"os"
	"testing"
)

// TestMain clears API settings so a developer's environment cannot leak into tests.
func TestMain(m *testing.M) {
	for _, key := range []string{"JOBSEEKER_API_URL", "JOBSEEKER_API_TOKEN", "JOBSEEKER_SESSION_COOKIE", "JOBSEEKER_TIMEOUT", "JOBSEEKER_VERBOSE"} {
		_ = os.Unsetenv(key)
	}
	os.Exit(m.Run())
}

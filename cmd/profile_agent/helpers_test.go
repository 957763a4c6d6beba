package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// runCLI executes the root command in-process and returns its stdout.
// Flags keep their values between runs, so callers pass every flag they rely on.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// fakeAPI serves the profile endpoints and records mutating requests.
type fakeAPI struct {
	mu       sync.Mutex
	mutating []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, string) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/user/me":
			_, _ = io.WriteString(w, `{"id":"u-1","name":"Ada Lovelace","email":"ada@example.com"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/job-seeker/profile":
			_, _ = io.WriteString(w, `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","work_experience":[{"company":"Acme","role":"Engineer","start_date":"2020-01-01T00:00:00.000Z"}]}`)
		default:
			api.mu.Lock()
			api.mutating = append(api.mutating, r.Method+" "+r.URL.Path)
			api.mu.Unlock()
			body, _ := io.ReadAll(r.Body)
			_, _ = w.Write(body)
		}
	}))
	t.Cleanup(srv.Close)
	return api, srv.URL
}

func (a *fakeAPI) requests() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.mutating...)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobseeker-profile/internal/dispatch"
)

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		index string
		want  string
	}{
		{"indexed edit", "experience", "2", "PATCH /job-seeker/experience/2"},
		{"add item", "add_education", "-1", "POST /job-seeker/education"},
		{"section edit", "salary", "-1", "PATCH /job-seeker/update"},
		{"job type", "jobType", "-1", "PATCH /job-seeker/update"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "resolve", "--kind", tt.kind, "--index", tt.index, "--data", "")
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestResolveCommand_UnknownKind(t *testing.T) {
	_, err := runCLI(t, "resolve", "--kind", "hobbies", "--index", "-1", "--data", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hobbies")
}

func TestResolveCommand_IndexedWithoutIndex(t *testing.T) {
	_, err := runCLI(t, "resolve", "--kind", "certification", "--index", "-1", "--data", "")
	var contractErr *dispatch.ContractError
	require.ErrorAs(t, err, &contractErr)
}

func TestResolveCommand_InvalidData(t *testing.T) {
	_, err := runCLI(t, "resolve", "--kind", "skills", "--index", "-1", "--data", "{nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

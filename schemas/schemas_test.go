package schemas

import (
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	files, err := fs.Glob(FS, "*.schema.json")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Contains(t, files, EditRequest)

	for _, schemaFile := range files {
		t.Run(schemaFile, func(t *testing.T) {
			content, err := FS.ReadFile(schemaFile)
			require.NoError(t, err)

			var schema map[string]any
			require.NoError(t, json.Unmarshal(content, &schema), "schema must be valid JSON")
			assert.Contains(t, schema, "$schema")
			assert.Contains(t, schema, "title")
		})
	}
}

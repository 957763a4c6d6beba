// Package schemas embeds the JSON Schemas for documents the CLI accepts.
package schemas

import "embed"

// EditRequest is the schema file for edit documents passed to `profile_agent edit`.
const EditRequest = "edit_request.schema.json"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

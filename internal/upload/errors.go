// Package upload validates resume files and tracks the upload state machine.
package upload

import (
	"errors"
	"fmt"
)

var (
	// ErrFileTooLarge is returned for files above MaxResumeSize.
	ErrFileTooLarge = errors.New("file is too large")
	// ErrUnsupportedType is returned for files outside the PDF/DOC/DOCX allow-list.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrBusy is returned when selecting a file while an upload is running.
	ErrBusy = errors.New("an upload is already in progress")
	// ErrNoFile is returned for an empty selection.
	ErrNoFile = errors.New("no file selected")
)

// UploadError carries the user-visible message for a rejected or failed upload.
type UploadError struct {
	Message string
	Cause   error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upload error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("upload error: %s", e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}

package upload

import (
	"context"
	"errors"
	"log"
	"sync"
)

// State is a step of the resume upload flow.
type State int

const (
	StateEmpty State = iota
	StateDragging
	StateUploading
	StateUploaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateDragging:
		return "dragging"
	case StateUploading:
		return "uploading"
	case StateUploaded:
		return "uploaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Uploader stores a validated file and returns a URL for preview and download.
type Uploader interface {
	Upload(ctx context.Context, f File) (string, error)
}

// UploaderFunc adapts a function to Uploader.
type UploaderFunc func(ctx context.Context, f File) (string, error)

func (fn UploaderFunc) Upload(ctx context.Context, f File) (string, error) {
	return fn(ctx, f)
}

// Status is a snapshot of a Resume.
type Status struct {
	State    State
	FileName string
	URL      string
	Error    string
}

// Resume drives Empty -> Dragging -> Uploading -> Uploaded, and Error -> Empty.
// onChange receives the stored reference after an upload and nil after Remove.
type Resume struct {
	mu       sync.Mutex
	uploader Uploader
	onChange func(url *string)
	logger   *log.Logger

	state    State
	fileName string
	url      string
	errMsg   string
}

// NewResume creates the uploader state. A non-nil current URL starts in Uploaded.
func NewResume(uploader Uploader, current *string, onChange func(url *string), logger *log.Logger) *Resume {
	if logger == nil {
		logger = log.Default()
	}
	r := &Resume{uploader: uploader, onChange: onChange, logger: logger}
	if current != nil && *current != "" {
		r.state = StateUploaded
		r.url = *current
	}
	return r
}

// Status returns the current state.
func (r *Resume) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{State: r.state, FileName: r.fileName, URL: r.url, Error: r.errMsg}
}

// DragEnter marks a file hovering over the drop zone.
func (r *Resume) DragEnter() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateEmpty || r.state == StateError {
		r.state = StateDragging
		r.errMsg = ""
	}
}

// DragLeave cancels a hover.
func (r *Resume) DragLeave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateDragging {
		r.state = StateEmpty
	}
}

// Select validates and uploads f. Invalid files move to Error without any
// upload being attempted.
func (r *Resume) Select(ctx context.Context, f File) error {
	r.mu.Lock()
	if r.state == StateUploading {
		r.mu.Unlock()
		return ErrBusy
	}
	if err := Validate(f); err != nil {
		r.failLocked(err)
		r.mu.Unlock()
		return err
	}
	r.state = StateUploading
	r.fileName = f.Name
	r.errMsg = ""
	r.mu.Unlock()

	url, err := r.uploader.Upload(ctx, f)

	r.mu.Lock()
	if err != nil {
		uerr := &UploadError{Message: "Failed to upload resume. Please try again.", Cause: err}
		r.failLocked(uerr)
		r.mu.Unlock()
		r.logger.Printf("resume upload of %s failed: %v", f.Name, err)
		return uerr
	}
	r.state = StateUploaded
	r.url = url
	r.mu.Unlock()

	if r.onChange != nil {
		r.onChange(&url)
	}
	return nil
}

func (r *Resume) failLocked(err error) {
	r.state = StateError
	r.fileName = ""
	r.url = ""
	var uerr *UploadError
	if errors.As(err, &uerr) {
		r.errMsg = uerr.Message
	} else {
		r.errMsg = err.Error()
	}
}

// Dismiss clears an error and returns to Empty.
func (r *Resume) Dismiss() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateError {
		r.state = StateEmpty
		r.errMsg = ""
	}
}

// Remove discards the uploaded resume and clears the parent's reference.
func (r *Resume) Remove() {
	r.mu.Lock()
	if r.state != StateUploaded {
		r.mu.Unlock()
		return
	}
	r.state = StateEmpty
	r.url = ""
	r.fileName = ""
	r.mu.Unlock()

	if r.onChange != nil {
		r.onChange(nil)
	}
}

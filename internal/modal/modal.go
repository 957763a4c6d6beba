// Package modal implements the edit-modal lifecycle: open/close, the active form,
// and a single in-flight submission with loading and error state.
package modal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/jonathan/jobseeker-profile/internal/apiclient"
	"github.com/jonathan/jobseeker-profile/internal/dispatch"
	"github.com/jonathan/jobseeker-profile/internal/forms"
	"github.com/jonathan/jobseeker-profile/internal/types"
)

// DefaultErrorMessage is shown when a failed response carries no message.
const DefaultErrorMessage = "Something went wrong. Please try again."

var (
	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("modal: submission already in progress")
	// ErrClosed is returned when submitting while the modal is not open.
	ErrClosed = errors.New("modal: not open")
	// ErrStale is returned when a response arrives after the modal was closed or
	// reopened. The response is discarded.
	ErrStale = errors.New("modal: response arrived after close, discarded")
)

// Updater performs a resolved update request. *apiclient.Client implements it.
type Updater interface {
	Update(ctx context.Context, req types.UpdateRequest) (json.RawMessage, error)
}

// Options configures the callbacks a Modal reports to.
type Options struct {
	// OnUpdate receives every confirmed update before the modal closes. An error
	// keeps the modal open with the error shown.
	OnUpdate func(types.UpdateSuccess) error
	// OnClose runs after every close.
	OnClose func()
	Logger  *log.Logger
}

// State is a snapshot of the modal for rendering.
type State struct {
	Open    bool
	Title   string
	Target  types.EditTarget
	Loading bool
	Error   string
}

// Modal owns network, loading and error concerns for whichever form is active.
type Modal struct {
	mu       sync.Mutex
	updater  Updater
	onUpdate func(types.UpdateSuccess) error
	onClose  func()
	logger   *log.Logger

	open    bool
	title   string
	target  types.EditTarget
	form    forms.Form
	loading bool
	errMsg  string

	// generation changes on every open and close; results from an older
	// generation are stale.
	generation uint64
}

// New creates a closed modal.
func New(updater Updater, opts Options) *Modal {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Modal{
		updater:  updater,
		onUpdate: opts.OnUpdate,
		onClose:  opts.OnClose,
		logger:   logger,
	}
}

// Open shows the form for target, initialized from initial. Opening replaces any
// modal already open; a request still in flight for it becomes stale.
func (m *Modal) Open(target types.EditTarget, title string, initial any) error {
	form, err := forms.New(target, initial)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	m.open = true
	m.title = title
	m.target = target
	m.form = form
	m.loading = false
	m.errMsg = ""
	return nil
}

// Form returns the active form, or nil when closed.
func (m *Modal) Form() forms.Form {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

// State returns a snapshot of the modal.
func (m *Modal) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{Open: m.open, Title: m.title, Target: m.target, Loading: m.loading, Error: m.errMsg}
}

// Close hides the modal and resets the edit target. It does not cancel an
// in-flight request; its response will be discarded.
func (m *Modal) Close() {
	m.mu.Lock()
	wasOpen := m.closeLocked()
	m.mu.Unlock()

	if wasOpen && m.onClose != nil {
		m.onClose()
	}
}

func (m *Modal) closeLocked() bool {
	wasOpen := m.open
	m.generation++
	m.open = false
	m.title = ""
	m.target = types.EditTarget{}
	m.form = nil
	m.loading = false
	m.errMsg = ""
	return wasOpen
}

// DismissError clears the error banner.
func (m *Modal) DismissError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errMsg = ""
}

// Submit validates the active form and submits its payload. Validation errors are
// returned without any request being made. The modal is marked loading before the
// form is read, so a concurrent Submit gets ErrBusy and leaves the form alone.
func (m *Modal) Submit(ctx context.Context) error {
	gen, form, err := m.begin()
	if err != nil {
		return err
	}

	payload, err := form.Submit()
	if err != nil {
		m.abort(gen)
		return err
	}
	return m.send(ctx, gen, payload)
}

// SubmitPayload resolves and sends p. On success the update is handed to OnUpdate
// and the modal closes; on failure the error message is kept and the modal stays
// open for a retry.
func (m *Modal) SubmitPayload(ctx context.Context, p types.Payload) error {
	gen, _, err := m.begin()
	if err != nil {
		return err
	}
	return m.send(ctx, gen, p)
}

// begin claims the single submission slot.
func (m *Modal) begin() (uint64, forms.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open || m.form == nil {
		return 0, nil, ErrClosed
	}
	if m.loading {
		return 0, nil, ErrBusy
	}
	m.loading = true
	return m.generation, m.form, nil
}

// abort releases the submission slot without touching the error banner.
func (m *Modal) abort(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen == m.generation {
		m.loading = false
	}
}

func (m *Modal) send(ctx context.Context, gen uint64, p types.Payload) error {
	req, err := dispatch.Resolve(p)
	if err != nil {
		m.abort(gen)
		return err
	}

	m.mu.Lock()
	if gen == m.generation {
		m.errMsg = ""
	}
	m.mu.Unlock()

	raw, err := m.updater.Update(ctx, req)

	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		m.logger.Printf("discarding %s response for %s: modal closed", req.Method, req.Endpoint)
		return ErrStale
	}
	if err != nil {
		m.loading = false
		m.errMsg = userMessage(err)
		m.mu.Unlock()
		return err
	}
	m.mu.Unlock()

	ev := types.UpdateSuccess{Kind: p.Type, Data: raw}
	if p.Type.Indexed() {
		ev.Index = p.Index
	}
	if isEmptyJSON(raw) {
		// Nothing echoed back: the submitted body is what the server accepted.
		ev.Data, err = json.Marshal(req.Body)
		if err != nil {
			return m.fail(gen, fmt.Errorf("failed to encode update: %w", err))
		}
	}

	if m.onUpdate != nil {
		if err := m.onUpdate(ev); err != nil {
			return m.fail(gen, err)
		}
	}

	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		return ErrStale
	}
	m.closeLocked()
	m.mu.Unlock()

	if m.onClose != nil {
		m.onClose()
	}
	return nil
}

// fail records err as the banner if gen is still current.
func (m *Modal) fail(gen uint64, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen == m.generation {
		m.loading = false
		m.errMsg = userMessage(err)
	}
	return err
}

func userMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return DefaultErrorMessage
}

func isEmptyJSON(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

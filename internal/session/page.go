// Package session is the profile page: it loads the profile once, chooses which
// form the edit modal shows, and merges confirmed updates into the store.
package session

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobseeker-profile/internal/forms"
	"github.com/jonathan/jobseeker-profile/internal/modal"
	"github.com/jonathan/jobseeker-profile/internal/store"
	"github.com/jonathan/jobseeker-profile/internal/types"
	"github.com/jonathan/jobseeker-profile/internal/upload"
)

// API is the subset of the HTTP client the page needs.
type API interface {
	modal.Updater
	GetAccount(ctx context.Context) (*types.Account, error)
	GetProfile(ctx context.Context) (*types.Profile, error)
	UploadResume(ctx context.Context, name, contentType string, content io.Reader) (string, error)
}

// Page owns the canonical profile for one session.
type Page struct {
	account types.Account
	store   *store.Store
	modal   *modal.Modal
	resume  *upload.Resume
	logger  *log.Logger

	mu           sync.Mutex
	resumeChange *string
}

// Load fetches the account and profile concurrently and builds the page.
func Load(ctx context.Context, api API, logger *log.Logger) (*Page, error) {
	var account *types.Account
	var profile *types.Profile

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := api.GetAccount(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load account: %w", err)
		}
		account = a
		return nil
	})
	g.Go(func() error {
		p, err := api.GetProfile(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		profile = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewPage(api, *account, *profile, logger), nil
}

// NewPage builds a page around an already loaded profile.
func NewPage(api API, account types.Account, profile types.Profile, logger *log.Logger) *Page {
	if logger == nil {
		logger = log.Default()
	}
	if profile.Email == "" {
		profile.Email = account.Email
	}

	p := &Page{
		account: account,
		store:   store.New(profile),
		logger:  logger,
	}
	p.modal = modal.New(api, modal.Options{
		OnUpdate: p.applyUpdate,
		Logger:   logger,
	})
	p.resume = upload.NewResume(resumeUploader(api), profile.ResumeURL, p.recordResumeChange, logger)
	return p
}

func resumeUploader(api API) upload.Uploader {
	return upload.UploaderFunc(func(ctx context.Context, f upload.File) (string, error) {
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		return api.UploadResume(ctx, f.Name, contentType, bytes.NewReader(f.Data))
	})
}

func (p *Page) applyUpdate(ev types.UpdateSuccess) error {
	if err := p.store.Apply(ev); err != nil {
		p.logger.Printf("failed to merge %s update: %v", ev.Kind, err)
		return err
	}
	return nil
}

func (p *Page) recordResumeChange(url *string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resumeChange = url
}

// Account returns the signed-in user.
func (p *Page) Account() types.Account { return p.account }

// Profile returns a copy of the current profile.
func (p *Page) Profile() types.Profile { return p.store.Profile() }

// Modal returns the page's single edit modal.
func (p *Page) Modal() *modal.Modal { return p.modal }

// Resume returns the resume upload state.
func (p *Page) Resume() *upload.Resume { return p.resume }

// Open shows the edit modal for target with initial data taken from the profile.
func (p *Page) Open(target types.EditTarget) error {
	return p.OpenTitled(target, Title(target))
}

// OpenTitled is Open with a caller-chosen heading.
func (p *Page) OpenTitled(target types.EditTarget, title string) error {
	initial, err := p.store.Initial(target)
	if err != nil {
		return err
	}
	return p.modal.Open(target, title, initial)
}

// Edit opens the modal on an existing item (indexed kinds) or section.
func (p *Page) Edit(kind types.EditKind, index int) error {
	if kind.Creates() {
		return fmt.Errorf("%s adds a new item; use Add", kind)
	}
	return p.Open(types.Target(kind, index))
}

// Add opens an empty form that creates a new collection item.
func (p *Page) Add(kind types.EditKind) error {
	if !kind.Creates() {
		return fmt.Errorf("%s does not add an item", kind)
	}
	return p.Open(types.EditTarget{Kind: kind})
}

// UploadResume validates and uploads f, then records the new URL on the profile.
func (p *Page) UploadResume(ctx context.Context, f upload.File) error {
	if err := p.resume.Select(ctx, f); err != nil {
		return err
	}

	p.mu.Lock()
	url := p.resumeChange
	p.mu.Unlock()
	return p.commitResume(ctx, url)
}

// RemoveResume clears the stored resume reference. It follows the profile rather
// than the upload state, so a rejected replacement file does not block removal.
func (p *Page) RemoveResume(ctx context.Context) error {
	if p.store.Profile().ResumeURL == nil {
		return nil
	}
	p.resume.Remove()
	p.resume.Dismiss()
	return p.commitResume(ctx, nil)
}

func (p *Page) commitResume(ctx context.Context, url *string) error {
	if err := p.Open(types.EditTarget{Kind: types.KindResume}); err != nil {
		return err
	}
	form, ok := p.modal.Form().(*forms.ResumeForm)
	if !ok {
		return fmt.Errorf("resume modal opened with %T", p.modal.Form())
	}
	form.ResumeURL = ""
	if url != nil {
		form.ResumeURL = *url
	}
	return p.modal.Submit(ctx)
}

// Title is the modal heading for target.
func Title(target types.EditTarget) string {
	switch target.Kind {
	case types.KindAddExperience:
		return "Add Experience"
	case types.KindAddEducation:
		return "Add Education"
	case types.KindAddCertification:
		return "Add Certification"
	case types.KindExperience, types.KindEducation, types.KindCertification:
		return "Edit " + capitalize(string(target.Kind))
	case types.KindJobType:
		return "Edit Job Type"
	case types.KindSalary:
		return "Edit Expected Salary"
	case types.KindLocations:
		return "Edit Preferred Locations"
	case types.KindProfile:
		return "Edit Profile"
	case types.KindContact:
		return "Edit Contact Information"
	case types.KindResume:
		return "Resume"
	case types.KindSkills:
		return "Edit Skills"
	default:
		return "Edit"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package forms

import (
	"encoding/json"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

// ProfileForm edits the personal details header of the profile.
type ProfileForm struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Gender      string `json:"gender" validate:"max=50"`
	DateOfBirth string `json:"date_of_birth"`
	Headline    string `json:"headline" validate:"max=120"`
	Summary     string `json:"summary" validate:"max=2000"`
}

func NewProfileForm(initial *types.Profile) *ProfileForm {
	f := &ProfileForm{}
	if initial != nil {
		f.FirstName = initial.FirstName
		f.LastName = initial.LastName
		f.Gender = initial.Gender
		f.DateOfBirth = dateField(initial.DateOfBirth)
		f.Headline = initial.Headline
		f.Summary = initial.Summary
	}
	return f
}

func (f *ProfileForm) Kind() types.EditKind { return types.KindProfile }

func (f *ProfileForm) Fill(raw json.RawMessage) error { return fillJSON(raw, f) }

func (f *ProfileForm) Submit() (types.Payload, error) {
	trimAll(&f.FirstName, &f.LastName, &f.Gender, &f.DateOfBirth, &f.Headline, &f.Summary)

	ve := fromValidator(validate.Struct(f))
	dob, err := NormalizeDate(f.DateOfBirth)
	if err != nil {
		ve.add("date_of_birth", "must be a valid date")
	}
	if err := ve.errOrNil(); err != nil {
		return types.Payload{}, err
	}

	return types.Payload{
		Type: types.KindProfile,
		Data: map[string]any{
			"first_name":    f.FirstName,
			"last_name":     f.LastName,
			"gender":        f.Gender,
			"date_of_birth": dob,
			"headline":      f.Headline,
			"summary":       f.Summary,
		},
	}, nil
}

// ContactForm edits contact details and postal address.
type ContactForm struct {
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address string `json:"address" validate:"max=300"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=100"`
	Country string `json:"country" validate:"max=100"`
}

func NewContactForm(initial *types.Profile) *ContactForm {
	f := &ContactForm{}
	if initial != nil {
		f.Email = initial.Email
		f.Phone = initial.Phone
		f.Address = initial.Address
		f.City = initial.City
		f.State = initial.State
		f.Country = initial.Country
	}
	return f
}

func (f *ContactForm) Kind() types.EditKind { return types.KindContact }

func (f *ContactForm) Fill(raw json.RawMessage) error { return fillJSON(raw, f) }

func (f *ContactForm) Submit() (types.Payload, error) {
	trimAll(&f.Email, &f.Phone, &f.Address, &f.City, &f.State, &f.Country)

	if err := fromValidator(validate.Struct(f)).errOrNil(); err != nil {
		return types.Payload{}, err
	}

	return types.Payload{
		Type: types.KindContact,
		Data: map[string]any{
			"email":   f.Email,
			"phone":   f.Phone,
			"address": f.Address,
			"city":    f.City,
			"state":   f.State,
			"country": f.Country,
		},
	}, nil
}

// ResumeForm records the stored resume reference. An empty URL clears it.
type ResumeForm struct {
	ResumeURL string `json:"resume_url" validate:"omitempty,url"`
}

func NewResumeForm(initial *types.Profile) *ResumeForm {
	f := &ResumeForm{}
	if initial != nil && initial.ResumeURL != nil {
		f.ResumeURL = *initial.ResumeURL
	}
	return f
}

func (f *ResumeForm) Kind() types.EditKind { return types.KindResume }

func (f *ResumeForm) Fill(raw json.RawMessage) error { return fillJSON(raw, f) }

func (f *ResumeForm) Submit() (types.Payload, error) {
	trimAll(&f.ResumeURL)
	if err := fromValidator(validate.Struct(f)).errOrNil(); err != nil {
		return types.Payload{}, err
	}

	var url *string
	if f.ResumeURL != "" {
		u := f.ResumeURL
		url = &u
	}
	return types.Payload{
		Type: types.KindResume,
		Data: map[string]any{"resume_url": url},
	}, nil
}

package forms

import (
	"encoding/json"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

// ExperienceForm edits or adds one work experience entry.
type ExperienceForm struct {
	index *int

	Company     string `json:"company" validate:"required,max=200"`
	Role        string `json:"role" validate:"required,max=200"`
	Location    string `json:"location" validate:"max=200"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description" validate:"max=2000"`
}

// NewExperienceForm initializes the form from an existing entry, or empty when
// initial is nil. A nil index means the form adds a new entry.
func NewExperienceForm(initial *types.WorkExperience, index *int) *ExperienceForm {
	f := &ExperienceForm{index: index}
	if initial != nil {
		f.Company = initial.Company
		f.Role = initial.Role
		f.Location = initial.Location
		f.StartDate = dateField(initial.StartDate)
		f.EndDate = dateField(initial.EndDate)
		f.Current = initial.Current
		f.Description = initial.Description
	}
	if f.Current {
		f.EndDate = ""
	}
	return f
}

func (f *ExperienceForm) Kind() types.EditKind {
	return itemKind(types.KindExperience, types.KindAddExperience, f.index)
}

// SetCurrent toggles "I currently work here". Turning it on clears the end date.
func (f *ExperienceForm) SetCurrent(current bool) {
	f.Current = current
	if current {
		f.EndDate = ""
	}
}

func (f *ExperienceForm) Fill(raw json.RawMessage) error {
	if err := fillJSON(raw, f); err != nil {
		return err
	}
	f.SetCurrent(f.Current)
	return nil
}

func (f *ExperienceForm) Submit() (types.Payload, error) {
	trimAll(&f.Company, &f.Role, &f.Location, &f.StartDate, &f.EndDate, &f.Description)
	if f.Current {
		f.EndDate = ""
	}

	ve := fromValidator(validate.Struct(f))
	start, end := normalizeRange(ve, "start_date", f.StartDate, "end_date", f.EndDate)
	if err := ve.errOrNil(); err != nil {
		return types.Payload{}, err
	}

	return types.Payload{
		Type:  f.Kind(),
		Index: f.index,
		Data: types.WorkExperience{
			Company:     f.Company,
			Role:        f.Role,
			Location:    f.Location,
			StartDate:   start,
			EndDate:     end,
			Current:     f.Current,
			Description: f.Description,
		},
	}, nil
}

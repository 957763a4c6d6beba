package forms

import (
	"encoding/json"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

// EducationForm edits or adds one education entry.
type EducationForm struct {
	index *int

	Institution  string `json:"institution" validate:"required,max=200"`
	Degree       string `json:"degree" validate:"required,max=200"`
	FieldOfStudy string `json:"field_of_study" validate:"max=200"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Current      bool   `json:"current"`
	Grade        string `json:"grade" validate:"max=50"`
}

func NewEducationForm(initial *types.Education, index *int) *EducationForm {
	f := &EducationForm{index: index}
	if initial != nil {
		f.Institution = initial.Institution
		f.Degree = initial.Degree
		f.FieldOfStudy = initial.FieldOfStudy
		f.StartDate = dateField(initial.StartDate)
		f.EndDate = dateField(initial.EndDate)
		f.Current = initial.Current
		f.Grade = initial.Grade
	}
	if f.Current {
		f.EndDate = ""
	}
	return f
}

func (f *EducationForm) Kind() types.EditKind {
	return itemKind(types.KindEducation, types.KindAddEducation, f.index)
}

// SetCurrent toggles "currently studying here". Turning it on clears the end date.
func (f *EducationForm) SetCurrent(current bool) {
	f.Current = current
	if current {
		f.EndDate = ""
	}
}

func (f *EducationForm) Fill(raw json.RawMessage) error {
	if err := fillJSON(raw, f); err != nil {
		return err
	}
	f.SetCurrent(f.Current)
	return nil
}

func (f *EducationForm) Submit() (types.Payload, error) {
	trimAll(&f.Institution, &f.Degree, &f.FieldOfStudy, &f.StartDate, &f.EndDate, &f.Grade)
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
		Data: types.Education{
			Institution:  f.Institution,
			Degree:       f.Degree,
			FieldOfStudy: f.FieldOfStudy,
			StartDate:    start,
			EndDate:      end,
			Current:      f.Current,
			Grade:        f.Grade,
		},
	}, nil
}

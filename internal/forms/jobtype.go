package forms

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

// JobTypeOptions are the employment types a job seeker can prefer, in display order.
var JobTypeOptions = []string{"Full-time", "Part-time", "Contract", "Internship", "Temporary"}

// JobTypeForm toggles preferred employment types.
type JobTypeForm struct {
	selected map[string]bool
}

func NewJobTypeForm(initial *types.Profile) *JobTypeForm {
	f := &JobTypeForm{selected: make(map[string]bool)}
	if initial != nil {
		for _, jt := range initial.JobType {
			if opt, ok := canonicalJobType(jt); ok {
				f.selected[opt] = true
			}
		}
	}
	return f
}

func canonicalJobType(s string) (string, bool) {
	for _, opt := range JobTypeOptions {
		if strings.EqualFold(opt, strings.TrimSpace(s)) {
			return opt, true
		}
	}
	return "", false
}

func (f *JobTypeForm) Kind() types.EditKind { return types.KindJobType }

// Toggle flips the selection of a job type.
func (f *JobTypeForm) Toggle(jobType string) error {
	opt, ok := canonicalJobType(jobType)
	if !ok {
		return fieldError("job_type", fmt.Sprintf("unknown job type %q", jobType))
	}
	f.selected[opt] = !f.selected[opt]
	return nil
}

// Selected returns the chosen job types in display order.
func (f *JobTypeForm) Selected() []string {
	out := []string{}
	for _, opt := range JobTypeOptions {
		if f.selected[opt] {
			out = append(out, opt)
		}
	}
	return out
}

// Fill replaces the selection with {"job_type": [...]}.
func (f *JobTypeForm) Fill(raw json.RawMessage) error {
	var fields struct {
		JobType []string `json:"job_type"`
	}
	if err := fillJSON(raw, &fields); err != nil {
		return err
	}
	f.selected = make(map[string]bool)
	for _, jt := range fields.JobType {
		opt, ok := canonicalJobType(jt)
		if !ok {
			return fieldError("job_type", fmt.Sprintf("unknown job type %q", jt))
		}
		f.selected[opt] = true
	}
	return nil
}

func (f *JobTypeForm) Submit() (types.Payload, error) {
	selected := f.Selected()
	if len(selected) == 0 {
		return types.Payload{}, fieldError("job_type", "select at least one job type")
	}
	return types.Payload{
		Type: types.KindJobType,
		Data: map[string]any{"job_type": selected},
	}, nil
}

package forms

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobseeker-profile/internal/dispatch"
	"github.com/jonathan/jobseeker-profile/internal/types"
)

// Form is implemented by every section form. Forms never touch the network:
// Submit only validates and normalizes.
type Form interface {
	Kind() types.EditKind
	// Fill applies raw JSON field values on top of the current state.
	Fill(raw json.RawMessage) error
	Submit() (types.Payload, error)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// New selects and initializes the form for target. For indexed kinds initial is the
// collection item being edited; for scalar kinds it is the whole profile; add kinds
// take no initial data.
// Item edits without a usable index are rejected with *dispatch.ContractError.
func New(target types.EditTarget, initial any) (Form, error) {
	if target.Kind.Indexed() && (target.Index == nil || *target.Index < 0) {
		return nil, &dispatch.ContractError{Kind: target.Kind, Message: "item edit requires a non-negative index"}
	}

	switch target.Kind {
	case types.KindExperience, types.KindAddExperience:
		item, err := initialAs[types.WorkExperience](target, initial)
		if err != nil {
			return nil, err
		}
		return NewExperienceForm(item, indexFor(target)), nil
	case types.KindEducation, types.KindAddEducation:
		item, err := initialAs[types.Education](target, initial)
		if err != nil {
			return nil, err
		}
		return NewEducationForm(item, indexFor(target)), nil
	case types.KindCertification, types.KindAddCertification:
		item, err := initialAs[types.Certification](target, initial)
		if err != nil {
			return nil, err
		}
		return NewCertificationForm(item, indexFor(target)), nil
	}

	profile, err := initialAs[types.Profile](target, initial)
	if err != nil {
		return nil, err
	}

	switch target.Kind {
	case types.KindProfile:
		return NewProfileForm(profile), nil
	case types.KindContact:
		return NewContactForm(profile), nil
	case types.KindResume:
		return NewResumeForm(profile), nil
	case types.KindSkills:
		return NewSkillsForm(profile), nil
	case types.KindJobType:
		return NewJobTypeForm(profile), nil
	case types.KindSalary:
		return NewSalaryForm(profile), nil
	case types.KindLocations:
		return NewLocationsForm(profile), nil
	default:
		return nil, fmt.Errorf("no form for edit kind %q", target.Kind)
	}
}

// indexFor returns the target index for indexed kinds, nil otherwise.
func indexFor(target types.EditTarget) *int {
	if !target.Kind.Indexed() || target.Index == nil {
		return nil
	}
	i := *target.Index
	return &i
}

func initialAs[T any](target types.EditTarget, initial any) (*T, error) {
	switch v := initial.(type) {
	case nil:
		return nil, nil
	case *T:
		return v, nil
	case T:
		return &v, nil
	default:
		var zero T
		return nil, fmt.Errorf("form %s: initial data is %T, want %T", target.Kind, initial, zero)
	}
}

// fillJSON decodes raw into dst, treating an empty document as no-op.
func fillJSON(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode form fields: %w", err)
	}
	return nil
}

// itemKind picks the update or add kind depending on whether an index is set.
func itemKind(update, add types.EditKind, index *int) types.EditKind {
	if index == nil {
		return add
	}
	return update
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

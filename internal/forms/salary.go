package forms

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

const defaultCurrency = "USD"

// SalaryForm edits the expected salary range.
type SalaryForm struct {
	Min      int64  `json:"min" validate:"gte=0"`
	Max      int64  `json:"max" validate:"gte=0"`
	Currency string `json:"currency" validate:"required,len=3,alpha"`
}

func NewSalaryForm(initial *types.Profile) *SalaryForm {
	f := &SalaryForm{Currency: defaultCurrency}
	if initial != nil && initial.ExpectedSalary != nil {
		f.Min = initial.ExpectedSalary.Min
		f.Max = initial.ExpectedSalary.Max
		if initial.ExpectedSalary.Currency != "" {
			f.Currency = initial.ExpectedSalary.Currency
		}
	}
	return f
}

func (f *SalaryForm) Kind() types.EditKind { return types.KindSalary }

func (f *SalaryForm) Fill(raw json.RawMessage) error {
	return fillJSON(raw, f)
}

// Submit rejects a range whose minimum exceeds its maximum.
func (f *SalaryForm) Submit() (types.Payload, error) {
	f.Currency = strings.ToUpper(strings.TrimSpace(f.Currency))

	ve := fromValidator(validate.Struct(f))
	if f.Min > f.Max {
		ve.add("min", "minimum salary cannot be greater than maximum salary")
	}
	if err := ve.errOrNil(); err != nil {
		return types.Payload{}, err
	}

	return types.Payload{
		Type: types.KindSalary,
		Data: map[string]any{
			"expected_salary": types.Salary{Min: f.Min, Max: f.Max, Currency: f.Currency},
		},
	}, nil
}

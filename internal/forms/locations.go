package forms

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

// LocationsForm keeps a draft list of preferred locations. Nothing is sent until
// Submit, which replaces the whole collection.
type LocationsForm struct {
	// Inputs for the location being added.
	City    string
	State   string
	Country string

	draft []types.Location
}

func NewLocationsForm(initial *types.Profile) *LocationsForm {
	f := &LocationsForm{draft: []types.Location{}}
	if initial != nil {
		f.draft = append(f.draft, initial.PreferredLocations...)
	}
	return f
}

func (f *LocationsForm) Kind() types.EditKind { return types.KindLocations }

// Draft returns a copy of the pending location list.
func (f *LocationsForm) Draft() []types.Location {
	out := make([]types.Location, len(f.draft))
	copy(out, f.draft)
	return out
}

// AddLocation moves the current inputs into the draft list. City, state and country
// must all be non-empty; a rejected location leaves the list untouched.
func (f *LocationsForm) AddLocation() error {
	loc := types.Location{
		City:    strings.TrimSpace(f.City),
		State:   strings.TrimSpace(f.State),
		Country: strings.TrimSpace(f.Country),
	}

	ve := &ValidationError{}
	if loc.City == "" {
		ve.add("city", "is required")
	}
	if loc.State == "" {
		ve.add("state", "is required")
	}
	if loc.Country == "" {
		ve.add("country", "is required")
	}
	if err := ve.errOrNil(); err != nil {
		return err
	}

	for _, existing := range f.draft {
		if strings.EqualFold(existing.City, loc.City) &&
			strings.EqualFold(existing.State, loc.State) &&
			strings.EqualFold(existing.Country, loc.Country) {
			return fieldError("city", "location already added")
		}
	}

	f.draft = append(f.draft, loc)
	f.City, f.State, f.Country = "", "", ""
	return nil
}

// RemoveLocation drops the i-th draft entry.
func (f *LocationsForm) RemoveLocation(i int) error {
	if i < 0 || i >= len(f.draft) {
		return fmt.Errorf("location index %d out of range [0,%d)", i, len(f.draft))
	}
	f.draft = append(f.draft[:i], f.draft[i+1:]...)
	return nil
}

// Fill replaces the draft with {"preferred_locations": [...]}, applying the same
// rules as AddLocation to every entry.
func (f *LocationsForm) Fill(raw json.RawMessage) error {
	var fields struct {
		PreferredLocations []types.Location `json:"preferred_locations"`
	}
	if err := fillJSON(raw, &fields); err != nil {
		return err
	}

	f.draft = []types.Location{}
	for _, loc := range fields.PreferredLocations {
		f.City, f.State, f.Country = loc.City, loc.State, loc.Country
		if err := f.AddLocation(); err != nil {
			return err
		}
	}
	return nil
}

func (f *LocationsForm) Submit() (types.Payload, error) {
	return types.Payload{
		Type: types.KindLocations,
		Data: map[string]any{"preferred_locations": f.Draft()},
	}, nil
}

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

// Reduce returns the profile that results from applying a confirmed update to state.
// state is never modified.
//
//   - add_* kinds append the returned item to their collection.
//   - experience, education and certification replace the item at Index.
//   - every other kind merges the returned partial profile: keys present in the
//     response overwrite, collections are replaced wholesale.
func Reduce(state types.Profile, ev types.UpdateSuccess) (types.Profile, error) {
	data := bytes.TrimSpace(ev.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return state, &ReduceError{Kind: ev.Kind, Message: "empty update data"}
	}

	out := state.Clone()
	var err error

	switch ev.Kind {
	case types.KindAddExperience:
		out.WorkExperience, err = appendItem(ev.Kind, out.WorkExperience, data)
	case types.KindAddEducation:
		out.Education, err = appendItem(ev.Kind, out.Education, data)
	case types.KindAddCertification:
		out.Certifications, err = appendItem(ev.Kind, out.Certifications, data)
	case types.KindExperience:
		err = replaceItem(ev, out.WorkExperience, data)
	case types.KindEducation:
		err = replaceItem(ev, out.Education, data)
	case types.KindCertification:
		err = replaceItem(ev, out.Certifications, data)
	default:
		if !ev.Kind.Valid() {
			return state, &ReduceError{Kind: ev.Kind, Message: "unknown edit kind"}
		}
		if uerr := json.Unmarshal(data, &out); uerr != nil {
			err = &ReduceError{Kind: ev.Kind, Message: "failed to decode profile fields", Cause: uerr}
		}
	}

	if err != nil {
		return state, err
	}
	return out, nil
}

func appendItem[T any](kind types.EditKind, items []T, data []byte) ([]T, error) {
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return items, &ReduceError{Kind: kind, Message: "failed to decode item", Cause: err}
	}
	return append(items, item), nil
}

func replaceItem[T any](ev types.UpdateSuccess, items []T, data []byte) error {
	if ev.Index == nil {
		return &ReduceError{Kind: ev.Kind, Message: "index is required"}
	}
	i := *ev.Index
	if i < 0 || i >= len(items) {
		return &ReduceError{Kind: ev.Kind, Message: fmt.Sprintf("index %d out of range [0,%d)", i, len(items))}
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return &ReduceError{Kind: ev.Kind, Message: "failed to decode item", Cause: err}
	}
	items[i] = item
	return nil
}

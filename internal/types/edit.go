package types

import (
	"encoding/json"
	"fmt"
)

// EditKind names the profile section or item an edit targets.
type EditKind string

const (
	KindProfile          EditKind = "profile"
	KindContact          EditKind = "contact"
	KindResume           EditKind = "resume"
	KindExperience       EditKind = "experience"
	KindAddExperience    EditKind = "add_experience"
	KindEducation        EditKind = "education"
	KindAddEducation     EditKind = "add_education"
	KindSkills           EditKind = "skills"
	KindCertification    EditKind = "certification"
	KindAddCertification EditKind = "add_certification"
	KindJobType          EditKind = "jobType"
	KindSalary           EditKind = "salary"
	KindLocations        EditKind = "locations"
)

// AllKinds lists every edit kind in display order.
var AllKinds = []EditKind{
	KindProfile,
	KindContact,
	KindResume,
	KindExperience,
	KindAddExperience,
	KindEducation,
	KindAddEducation,
	KindSkills,
	KindCertification,
	KindAddCertification,
	KindJobType,
	KindSalary,
	KindLocations,
}

// Valid reports whether k is one of the known edit kinds.
func (k EditKind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Indexed reports whether k updates an existing collection item in place.
func (k EditKind) Indexed() bool {
	switch k {
	case KindExperience, KindEducation, KindCertification:
		return true
	default:
		return false
	}
}

// Creates reports whether k appends a new item to a collection.
func (k EditKind) Creates() bool {
	switch k {
	case KindAddExperience, KindAddEducation, KindAddCertification:
		return true
	default:
		return false
	}
}

// ParseEditKind converts a raw string into an EditKind.
func ParseEditKind(s string) (EditKind, error) {
	k := EditKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown edit kind %q", s)
	}
	return k, nil
}

// EditTarget describes what is being edited. Index is set only for indexed kinds.
type EditTarget struct {
	Kind  EditKind `json:"kind"`
	Index *int     `json:"index"`
}

// Target builds an EditTarget, dropping the index for kinds that do not use one.
func Target(kind EditKind, index int) EditTarget {
	if !kind.Indexed() {
		return EditTarget{Kind: kind}
	}
	return EditTarget{Kind: kind, Index: &index}
}

func (t EditTarget) String() string {
	if t.Index == nil {
		return string(t.Kind)
	}
	return fmt.Sprintf("%s[%d]", t.Kind, *t.Index)
}

// Payload is what a section form hands to the dispatcher on submit.
type Payload struct {
	Type  EditKind `json:"type"`
	Index *int     `json:"index"`
	Data  any      `json:"data"`
}

// UpdateRequest is the network operation a payload resolves to.
type UpdateRequest struct {
	Method   string `json:"method"`
	Endpoint string `json:"endpoint"`
	Body     any    `json:"body"`
}

// UpdateSuccess carries a confirmed server response back into the profile store.
type UpdateSuccess struct {
	Kind  EditKind        `json:"kind"`
	Index *int            `json:"index"`
	Data  json.RawMessage `json:"data"`
}

package forms

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

const maxSkillLength = 50

// SkillsForm edits the skill set as a draft, submitted whole.
type SkillsForm struct {
	skills []string
}

// NewSkillsForm seeds the draft with the stored skills. Stored names are kept
// as they are apart from blanks and case-insensitive duplicates; the length rule
// only applies to skills added through the form.
func NewSkillsForm(initial *types.Profile) *SkillsForm {
	f := &SkillsForm{skills: []string{}}
	if initial != nil {
		for _, s := range initial.Skills {
			if strings.TrimSpace(s) == "" || f.indexOf(strings.TrimSpace(s)) >= 0 {
				continue
			}
			f.skills = append(f.skills, s)
		}
	}
	return f
}

func (f *SkillsForm) Kind() types.EditKind { return types.KindSkills }

// Skills returns a copy of the draft skill list.
func (f *SkillsForm) Skills() []string {
	out := make([]string, len(f.skills))
	copy(out, f.skills)
	return out
}

// AddSkill appends a skill. Names are trimmed and compared case-insensitively.
func (f *SkillsForm) AddSkill(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fieldError("skills", "skill name is required")
	}
	if len(name) > maxSkillLength {
		return fieldError("skills", "skill name is too long")
	}
	if f.indexOf(name) >= 0 {
		return fieldError("skills", "skill already added")
	}
	f.skills = append(f.skills, name)
	return nil
}

// RemoveSkill drops a skill by name; it reports whether anything was removed.
func (f *SkillsForm) RemoveSkill(name string) bool {
	i := f.indexOf(strings.TrimSpace(name))
	if i < 0 {
		return false
	}
	f.skills = append(f.skills[:i], f.skills[i+1:]...)
	return true
}

func (f *SkillsForm) indexOf(name string) int {
	for i, s := range f.skills {
		if strings.EqualFold(s, name) {
			return i
		}
	}
	return -1
}

func (f *SkillsForm) Fill(raw json.RawMessage) error {
	var fields struct {
		Skills []string `json:"skills"`
	}
	if err := fillJSON(raw, &fields); err != nil {
		return err
	}
	f.skills = []string{}
	for _, s := range fields.Skills {
		if err := f.AddSkill(s); err != nil {
			return err
		}
	}
	return nil
}

func (f *SkillsForm) Submit() (types.Payload, error) {
	return types.Payload{
		Type: types.KindSkills,
		Data: map[string]any{"skills": f.Skills()},
	}, nil
}

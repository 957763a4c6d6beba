// Package types provides type definitions for the job-seeker profile and the edit workflow.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile is the aggregate job-seeker record the profile page edits.
type Profile struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone,omitempty"`
	Gender      string  `json:"gender,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Headline    string  `json:"headline,omitempty"`
	Summary     string  `json:"summary,omitempty"`

	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`

	ResumeURL      *string  `json:"resume_url,omitempty"`
	ExpectedSalary *Salary  `json:"expected_salary,omitempty"`
	JobType        []string `json:"job_type,omitempty"`

	WorkExperience     []WorkExperience `json:"work_experience"`
	Education          []Education      `json:"education"`
	Certifications     []Certification  `json:"certifications"`
	Skills             []string         `json:"skills"`
	PreferredLocations []Location       `json:"preferred_locations"`
}

// WorkExperience is one entry of the work history. Dates are ISO-8601 timestamps or nil.
type WorkExperience struct {
	Company     string  `json:"company"`
	Role        string  `json:"role"`
	Location    string  `json:"location,omitempty"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"current"`
	Description string  `json:"description,omitempty"`
}

// Education is one entry of the education history.
type Education struct {
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"field_of_study,omitempty"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Current      bool    `json:"current"`
	Grade        string  `json:"grade,omitempty"`
}

// Certification is a professional certificate. ExpiryDate is nil when NeverExpires is set.
type Certification struct {
	Name                string  `json:"name"`
	IssuingOrganization string  `json:"issuing_organization"`
	IssueDate           *string `json:"issue_date"`
	ExpiryDate          *string `json:"expiry_date"`
	NeverExpires        bool    `json:"never_expires"`
	CredentialID        string  `json:"credential_id,omitempty"`
	CredentialURL       string  `json:"credential_url,omitempty"`
}

// Location is a preferred work location.
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Salary is the expected salary range.
type Salary struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// Account is the authenticated user behind the profile, served under /user.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() Profile {
	out := *p
	out.DateOfBirth = cloneString(p.DateOfBirth)
	out.ResumeURL = cloneString(p.ResumeURL)
	if p.ExpectedSalary != nil {
		s := *p.ExpectedSalary
		out.ExpectedSalary = &s
	}
	out.JobType = cloneSlice(p.JobType)
	out.Skills = cloneSlice(p.Skills)
	out.PreferredLocations = cloneSlice(p.PreferredLocations)

	if p.WorkExperience != nil {
		out.WorkExperience = make([]WorkExperience, len(p.WorkExperience))
		for i, w := range p.WorkExperience {
			w.StartDate = cloneString(w.StartDate)
			w.EndDate = cloneString(w.EndDate)
			out.WorkExperience[i] = w
		}
	}
	if p.Education != nil {
		out.Education = make([]Education, len(p.Education))
		for i, e := range p.Education {
			e.StartDate = cloneString(e.StartDate)
			e.EndDate = cloneString(e.EndDate)
			out.Education[i] = e
		}
	}
	if p.Certifications != nil {
		out.Certifications = make([]Certification, len(p.Certifications))
		for i, c := range p.Certifications {
			c.IssueDate = cloneString(c.IssueDate)
			c.ExpiryDate = cloneString(c.ExpiryDate)
			out.Certifications[i] = c
		}
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

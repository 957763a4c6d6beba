package forms

import (
	"encoding/json"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

// CertificationForm edits or adds one certification.
type CertificationForm struct {
	index *int

	Name                string `json:"name" validate:"required,max=200"`
	IssuingOrganization string `json:"issuing_organization" validate:"required,max=200"`
	IssueDate           string `json:"issue_date"`
	ExpiryDate          string `json:"expiry_date"`
	NeverExpires        bool   `json:"never_expires"`
	CredentialID        string `json:"credential_id" validate:"max=100"`
	CredentialURL       string `json:"credential_url" validate:"omitempty,url"`
}

func NewCertificationForm(initial *types.Certification, index *int) *CertificationForm {
	f := &CertificationForm{index: index}
	if initial != nil {
		f.Name = initial.Name
		f.IssuingOrganization = initial.IssuingOrganization
		f.IssueDate = dateField(initial.IssueDate)
		f.ExpiryDate = dateField(initial.ExpiryDate)
		f.NeverExpires = initial.NeverExpires
		f.CredentialID = initial.CredentialID
		f.CredentialURL = initial.CredentialURL
	}
	if f.NeverExpires {
		f.ExpiryDate = ""
	}
	return f
}

func (f *CertificationForm) Kind() types.EditKind {
	return itemKind(types.KindCertification, types.KindAddCertification, f.index)
}

// SetNeverExpires toggles "this credential does not expire" and clears the expiry date.
func (f *CertificationForm) SetNeverExpires(never bool) {
	f.NeverExpires = never
	if never {
		f.ExpiryDate = ""
	}
}

func (f *CertificationForm) Fill(raw json.RawMessage) error {
	if err := fillJSON(raw, f); err != nil {
		return err
	}
	f.SetNeverExpires(f.NeverExpires)
	return nil
}

func (f *CertificationForm) Submit() (types.Payload, error) {
	trimAll(&f.Name, &f.IssuingOrganization, &f.IssueDate, &f.ExpiryDate, &f.CredentialID, &f.CredentialURL)
	if f.NeverExpires {
		f.ExpiryDate = ""
	}

	ve := fromValidator(validate.Struct(f))
	issue, expiry := normalizeRange(ve, "issue_date", f.IssueDate, "expiry_date", f.ExpiryDate)
	if err := ve.errOrNil(); err != nil {
		return types.Payload{}, err
	}

	return types.Payload{
		Type:  f.Kind(),
		Index: f.index,
		Data: types.Certification{
			Name:                f.Name,
			IssuingOrganization: f.IssuingOrganization,
			IssueDate:           issue,
			ExpiryDate:          expiry,
			NeverExpires:        f.NeverExpires,
			CredentialID:        f.CredentialID,
			CredentialURL:       f.CredentialURL,
		},
	}, nil
}

package session

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobseeker-profile/internal/apiclient"
	"github.com/jonathan/jobseeker-profile/internal/forms"
	"github.com/jonathan/jobseeker-profile/internal/types"
	"github.com/jonathan/jobseeker-profile/internal/upload"
)

const seedProfile = `{
	"first_name": "Ada",
	"last_name": "Lovelace",
	"email": "ada@example.com",
	"work_experience": [
		{"company": "Acme", "role": "Engineer", "start_date": "2020-01-01T00:00:00.000Z", "end_date": "2022-01-01T00:00:00.000Z"}
	],
	"skills": ["Go"]
}`

type backend struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string]json.RawMessage
}

func newBackend(t *testing.T) (*backend, *httptest.Server) {
	t.Helper()
	b := &backend{bodies: map[string]json.RawMessage{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/me", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"u-1","name":"Ada Lovelace","email":"ada@example.com","role":"job_seeker"}`)
	})
	mux.HandleFunc("GET /job-seeker/profile", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":`+seedProfile+`}`)
	})
	echo := func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.record(r.Method+" "+r.URL.Path, body)
		_, _ = w.Write(body)
	}
	mux.HandleFunc("PATCH /job-seeker/update", echo)
	mux.HandleFunc("PATCH /job-seeker/experience/{index}", echo)
	mux.HandleFunc("POST /job-seeker/experience", echo)
	mux.HandleFunc("POST /job-seeker/resume", func(w http.ResponseWriter, r *http.Request) {
		b.record(r.Method+" "+r.URL.Path, nil)
		_, _ = io.WriteString(w, `{"resume_url":"https://cdn.example.com/cv.pdf"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *backend) record(key string, body []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, key)
	b.bodies[key] = body
}

func (b *backend) calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

func (b *backend) body(key string) json.RawMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func loadPage(t *testing.T) (*Page, *backend) {
	t.Helper()
	b, srv := newBackend(t)
	client, err := apiclient.New(apiclient.Options{BaseURL: srv.URL, Logger: quietLogger()})
	require.NoError(t, err)

	page, err := Load(context.Background(), client, quietLogger())
	require.NoError(t, err)
	return page, b
}

func TestLoad(t *testing.T) {
	page, _ := loadPage(t)

	assert.Equal(t, "u-1", page.Account().ID)
	p := page.Profile()
	assert.Equal(t, "Ada", p.FirstName)
	require.Len(t, p.WorkExperience, 1)
	assert.Equal(t, upload.StateEmpty, page.Resume().Status().State)
}

func TestLoad_ProfileFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/user/me" {
			_, _ = io.WriteString(w, `{"id":"u-1"}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"db down"}`)
	}))
	defer srv.Close()

	client, err := apiclient.New(apiclient.Options{BaseURL: srv.URL, Logger: quietLogger()})
	require.NoError(t, err)

	_, err = Load(context.Background(), client, quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load profile")
	assert.True(t, apiclient.IsStatus(err, http.StatusInternalServerError))
}

func TestPage_EditExperienceCurrent(t *testing.T) {
	page, b := loadPage(t)

	require.NoError(t, page.Edit(types.KindExperience, 0))
	state := page.Modal().State()
	assert.True(t, state.Open)
	assert.Equal(t, "Edit Experience", state.Title)

	form, ok := page.Modal().Form().(*forms.ExperienceForm)
	require.True(t, ok)
	assert.Equal(t, "Acme", form.Company)
	form.SetCurrent(true)

	require.NoError(t, page.Modal().Submit(context.Background()))
	assert.False(t, page.Modal().State().Open)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(b.body("PATCH /job-seeker/experience/0"), &sent))
	assert.Nil(t, sent["end_date"])
	assert.Equal(t, true, sent["current"])

	p := page.Profile()
	require.Len(t, p.WorkExperience, 1)
	assert.True(t, p.WorkExperience[0].Current)
	assert.Nil(t, p.WorkExperience[0].EndDate)
}

func TestPage_AddExperience(t *testing.T) {
	page, _ := loadPage(t)

	require.NoError(t, page.Add(types.KindAddExperience))
	assert.Equal(t, "Add Experience", page.Modal().State().Title)

	form := page.Modal().Form()
	require.NoError(t, form.Fill(json.RawMessage(`{"company":"Globex","role":"Lead","start_date":"2023-02-01"}`)))
	require.NoError(t, page.Modal().Submit(context.Background()))

	p := page.Profile()
	require.Len(t, p.WorkExperience, 2)
	assert.Equal(t, "Globex", p.WorkExperience[1].Company)
}

func TestPage_EditRejectsWrongKinds(t *testing.T) {
	page, _ := loadPage(t)

	assert.Error(t, page.Edit(types.KindAddEducation, 0))
	assert.Error(t, page.Add(types.KindEducation))
	assert.Error(t, page.Edit(types.KindExperience, 5))
	assert.False(t, page.Modal().State().Open)
}

func TestPage_UploadAndRemoveResume(t *testing.T) {
	page, b := loadPage(t)
	pdf := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<<>>\n%%EOF\n")

	err := page.UploadResume(context.Background(), upload.File{Name: "cv.pdf", ContentType: upload.MIMEPDF, Data: pdf})
	require.NoError(t, err)

	p := page.Profile()
	require.NotNil(t, p.ResumeURL)
	assert.Equal(t, "https://cdn.example.com/cv.pdf", *p.ResumeURL)
	assert.Equal(t, upload.StateUploaded, page.Resume().Status().State)
	assert.False(t, page.Modal().State().Open)

	require.NoError(t, page.RemoveResume(context.Background()))
	assert.Nil(t, page.Profile().ResumeURL)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(b.body("PATCH /job-seeker/update"), &sent))
	v, ok := sent["resume_url"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestPage_RemoveResumeAfterRejectedReplacement(t *testing.T) {
	b, srv := newBackend(t)
	client, err := apiclient.New(apiclient.Options{BaseURL: srv.URL, Logger: quietLogger()})
	require.NoError(t, err)

	old := "https://cdn.example.com/old.pdf"
	page := NewPage(client, types.Account{ID: "u-1"}, types.Profile{FirstName: "Ada", Email: "ada@example.com", ResumeURL: &old}, quietLogger())
	require.Equal(t, upload.StateUploaded, page.Resume().Status().State)

	err = page.UploadResume(context.Background(), upload.File{Name: "virus.exe", ContentType: "application/x-msdownload", Data: []byte("MZ\x90\x00")})
	require.ErrorIs(t, err, upload.ErrUnsupportedType)
	require.NotNil(t, page.Profile().ResumeURL)

	require.NoError(t, page.RemoveResume(context.Background()))
	assert.Nil(t, page.Profile().ResumeURL)
	assert.Equal(t, []string{"PATCH /job-seeker/update"}, b.calls())
	assert.Equal(t, upload.StateEmpty, page.Resume().Status().State)
}

func TestPage_RemoveResumeWithoutStoredResume(t *testing.T) {
	page, b := loadPage(t)
	require.NoError(t, page.RemoveResume(context.Background()))
	assert.Empty(t, b.calls())
}

func TestPage_UploadRejectsInvalidFile(t *testing.T) {
	page, b := loadPage(t)

	err := page.UploadResume(context.Background(), upload.File{Name: "virus.exe", ContentType: "application/x-msdownload", Data: []byte("MZ\x90\x00")})
	require.ErrorIs(t, err, upload.ErrUnsupportedType)
	assert.Equal(t, upload.StateError, page.Resume().Status().State)

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Empty(t, b.requests)
}

func TestTitle(t *testing.T) {
	tests := []struct {
		target types.EditTarget
		want   string
	}{
		{types.Target(types.KindEducation, 1), "Edit Education"},
		{types.Target(types.KindAddCertification, 0), "Add Certification"},
		{types.Target(types.KindSalary, 0), "Edit Expected Salary"},
		{types.Target(types.KindJobType, 0), "Edit Job Type"},
		{types.Target(types.KindContact, 0), "Edit Contact Information"},
	}
	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.target))
		})
	}
}

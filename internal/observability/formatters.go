// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobseeker-profile/internal/modal"
	"github.com/jonathan/jobseeker-profile/internal/types"
	"github.com/jonathan/jobseeker-profile/internal/upload"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the job-seeker profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s %s\n", profile.FirstName, profile.LastName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Email))
	if profile.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", profile.Headline))
	}
	if profile.ExpectedSalary != nil {
		s := profile.ExpectedSalary
		sb.WriteString(fmt.Sprintf("Salary:   %d - %d %s\n", s.Min, s.Max, s.Currency))
	}
	if len(profile.JobType) > 0 {
		sb.WriteString(fmt.Sprintf("Job type: %s\n", strings.Join(profile.JobType, ", ")))
	}
	if profile.ResumeURL != nil {
		sb.WriteString(fmt.Sprintf("Resume:   %s\n", *profile.ResumeURL))
	}
	sb.WriteString("\n")

	writeList(&sb, "Experience", len(profile.WorkExperience), func(i int) string {
		w := profile.WorkExperience[i]
		line := fmt.Sprintf("[%d] %s @ %s", i, w.Role, w.Company)
		if w.Current {
			line += " (current)"
		}
		return line
	})
	writeList(&sb, "Education", len(profile.Education), func(i int) string {
		e := profile.Education[i]
		return fmt.Sprintf("[%d] %s, %s", i, e.Degree, e.Institution)
	})
	writeList(&sb, "Certifications", len(profile.Certifications), func(i int) string {
		c := profile.Certifications[i]
		return fmt.Sprintf("[%d] %s (%s)", i, c.Name, c.IssuingOrganization)
	})
	writeList(&sb, "Preferred locations", len(profile.PreferredLocations), func(i int) string {
		l := profile.PreferredLocations[i]
		return fmt.Sprintf("%s, %s, %s", l.City, l.State, l.Country)
	})

	if len(profile.Skills) > 0 {
		skills := strings.Join(profile.Skills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
	}

	p.printBox("JOB SEEKER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, title string, n int, line func(i int) string) {
	if n == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("%s:\n", title))
	count := min(n, maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", line(i)))
	}
	if n > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", n-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintUpdateRequest outputs the resolved request for an edit.
func (p *Printer) PrintUpdateRequest(target types.EditTarget, req types.UpdateRequest) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target:   %s\n", target))
	sb.WriteString(fmt.Sprintf("Request:  %s %s\n", req.Method, req.Endpoint))

	if req.Body != nil {
		body, err := json.MarshalIndent(req.Body, "", "  ")
		if err != nil {
			body = []byte(fmt.Sprintf("<unencodable body: %v>", err))
		}
		sb.WriteString("\nBody:\n")
		sb.Write(body)
	}

	p.printBox("UPDATE REQUEST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintModalState outputs the edit modal's lifecycle state.
func (p *Printer) PrintModalState(state modal.State) {
	var sb strings.Builder
	if !state.Open {
		sb.WriteString("Closed")
	} else {
		sb.WriteString(fmt.Sprintf("Title:   %s\n", state.Title))
		sb.WriteString(fmt.Sprintf("Target:  %s\n", state.Target))
		sb.WriteString(fmt.Sprintf("Loading: %t", state.Loading))
		if state.Error != "" {
			sb.WriteString(fmt.Sprintf("\nError:   %s", state.Error))
		}
	}
	p.printBox("EDIT MODAL", sb.String())
}

// PrintResumeStatus outputs the resume upload state.
func (p *Printer) PrintResumeStatus(status upload.Status) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("State: %s", status.State))
	if status.FileName != "" {
		sb.WriteString(fmt.Sprintf("\nFile:  %s", status.FileName))
	}
	if status.URL != "" {
		sb.WriteString(fmt.Sprintf("\nURL:   %s", status.URL))
	}
	if status.Error != "" {
		sb.WriteString(fmt.Sprintf("\nError: %s", status.Error))
	}
	p.printBox("RESUME UPLOAD", sb.String())
}

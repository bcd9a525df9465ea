package adzuna

import (
	"encoding/json"
	"testing"

	upstream "github.com/careertrail/jobs-internships-mcp/pkg/adzuna"
)

func decodePosting(t *testing.T, raw string) upstream.Posting {
	t.Helper()
	var p upstream.Posting
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("decode posting: %v", err)
	}
	return p
}

func TestMapPostingFullRecord(t *testing.T) {
	p := decodePosting(t, `{
		"id": "5017551243",
		"title": "Backend Engineer",
		"company": {"display_name": "Acme Corp"},
		"location": {"display_name": "India", "area": ["India", "Karnataka", "Bangalore"]},
		"description": "Build services in Go",
		"created": "2026-08-01T10:00:00Z",
		"redirect_url": "https://adzuna.example/redirect/5017551243",
		"contract_type": "permanent",
		"contract_time": "full_time",
		"category": {"label": "IT Jobs", "tag": "it-jobs"},
		"salary_min": 50000,
		"salary_max": 80000
	}`)

	job := mapPosting(p)

	if job.Title != "Backend Engineer" {
		t.Errorf("title = %q", job.Title)
	}
	if job.Company != "Acme Corp" {
		t.Errorf("company = %q", job.Company)
	}
	if job.Location != "Bangalore, Karnataka" {
		t.Errorf("location = %q, want area-derived join", job.Location)
	}
	if job.PostedDate != "2026-08-01T10:00:00Z" {
		t.Errorf("posted_date = %q", job.PostedDate)
	}
	if job.JobID != "5017551243" {
		t.Errorf("job_id = %q", job.JobID)
	}
	if job.ApplyURL != "https://adzuna.example/redirect/5017551243" {
		t.Errorf("apply_url = %q", job.ApplyURL)
	}
	if job.Salary != "₹50,000 - ₹80,000" {
		t.Errorf("salary = %q", job.Salary)
	}
	if job.ContractType != "permanent" || job.ContractTime != "full_time" {
		t.Errorf("contract = %q/%q", job.ContractType, job.ContractTime)
	}
	if job.Category != "IT Jobs" {
		t.Errorf("category = %q", job.Category)
	}
	if job.Remote {
		t.Error("remote should be false for Bangalore")
	}
	if job.IsInternship {
		t.Error("is_internship should be false for Backend Engineer")
	}
	if job.Source != "Adzuna" {
		t.Errorf("source = %q", job.Source)
	}
}

func TestMapPostingDefaults(t *testing.T) {
	job := mapPosting(decodePosting(t, `{}`))

	if job.Company != "Unknown Company" {
		t.Errorf("company = %q, want default", job.Company)
	}
	if job.Location != "" || job.Title != "" || job.Description != "" {
		t.Errorf("expected empty strings, got %+v", job)
	}
	if job.Salary != "Not specified" {
		t.Errorf("salary = %q, want Not specified", job.Salary)
	}
	if job.Category != "" {
		t.Errorf("category = %q, want empty", job.Category)
	}
	if job.JobID == "" {
		t.Error("job_id should fall back to a generated identifier")
	}
}

func TestMapPostingScalarShapes(t *testing.T) {
	job := mapPosting(decodePosting(t, `{
		"company": "Globex",
		"location": "Remote",
		"category": "should-be-ignored"
	}`))

	if job.Company != "Globex" {
		t.Errorf("company = %q, want scalar passthrough", job.Company)
	}
	if job.Location != "Remote" {
		t.Errorf("location = %q", job.Location)
	}
	if !job.Remote {
		t.Error("remote should be true for scalar location Remote")
	}
	if job.Category != "" {
		t.Errorf("category = %q, scalar category must resolve to empty", job.Category)
	}
}

func TestIsInternship(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Software Intern", true},
		{"Marketing Internship", true},
		{"Management Trainee", true},
		{"Apprentice Electrician", true},
		{"Internal Auditor", true}, // naive substring, intentional
		{"Senior Backend Engineer", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := isInternship(tc.title); got != tc.want {
			t.Errorf("isInternship(%q) = %v, want %v", tc.title, got, tc.want)
		}
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"Remote", true},
		{"Bangalore (Remote)", true},
		{"REMOTELY based", true}, // naive substring, intentional
		{"Bangalore, Karnataka", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := isRemote(tc.location); got != tc.want {
			t.Errorf("isRemote(%q) = %v, want %v", tc.location, got, tc.want)
		}
	}
}

func TestFormatSalary(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		min  *float64
		max  *float64
		want string
	}{
		{"both bounds", f(50000), f(80000), "₹50,000 - ₹80,000"},
		{"min only", f(50000), nil, "₹50,000+"},
		{"max only", nil, f(80000), "Up to ₹80,000"},
		{"neither", nil, nil, "Not specified"},
		{"zero counts as absent", f(0), f(0), "Not specified"},
		{"zero min with max", f(0), f(80000), "Up to ₹80,000"},
		{"fractional bound", f(52342.13), nil, "₹52,342.13+"},
		{"large bound", f(1250000), f(2500000), "₹1,250,000 - ₹2,500,000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatSalary(tc.min, tc.max); got != tc.want {
				t.Fatalf("formatSalary = %q, want %q", got, tc.want)
			}
		})
	}
}

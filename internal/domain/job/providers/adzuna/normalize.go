package adzuna

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/careertrail/jobs-internships-mcp/internal/domain"
	"github.com/careertrail/jobs-internships-mcp/pkg/adzuna"
)

const (
	sourceName     = "Adzuna"
	unknownCompany = "Unknown Company"
	currencySymbol = "₹"
)

// Substring match on the lower-cased title. Deliberately naive: "internal"
// contains "intern" and still counts.
var internshipKeywords = []string{"intern", "trainee", "apprentice"}

var amountPrinter = message.NewPrinter(language.English)

// mapPosting converts one raw posting into the canonical record. Pure
// function: the posting is never mutated, the record is built from scratch,
// and the remote/is_internship flags are always recomputed here rather than
// trusted from upstream.
func mapPosting(p adzuna.Posting) domain.Job {
	location := resolveLocation(p.Location)

	return domain.Job{
		Title:        p.Title,
		Company:      resolveCompany(p.Company),
		Location:     location,
		Description:  p.Description,
		PostedDate:   p.Created,
		JobID:        resolveID(p.ID),
		ApplyURL:     p.RedirectURL,
		Salary:       formatSalary(p.SalaryMin, p.SalaryMax),
		ContractType: p.ContractType,
		ContractTime: p.ContractTime,
		Remote:       isRemote(location),
		Category:     resolveCategory(p.Category),
		IsInternship: isInternship(p.Title),
		Source:       sourceName,
	}
}

func resolveCompany(f adzuna.LabelField) string {
	if f.Value == "" {
		return unknownCompany
	}
	return f.Value
}

func resolveLocation(l adzuna.Location) string {
	return l.Display()
}

// resolveCategory only trusts the nested label shape; a scalar category is
// treated as absent.
func resolveCategory(f adzuna.LabelField) string {
	if f.Kind != adzuna.FieldObject {
		return ""
	}
	return f.Value
}

func resolveID(id adzuna.FlexibleID) string {
	if id == "" {
		return uuid.NewString()
	}
	return string(id)
}

func isInternship(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range internshipKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isRemote(location string) bool {
	return strings.Contains(strings.ToLower(location), "remote")
}

// formatSalary renders the salary bounds. A bound equal to zero counts as
// absent, matching upstream feeds that send 0 instead of omitting the field.
func formatSalary(min, max *float64) string {
	switch {
	case present(min) && present(max):
		return currencySymbol + formatAmount(*min) + " - " + currencySymbol + formatAmount(*max)
	case present(min):
		return currencySymbol + formatAmount(*min) + "+"
	case present(max):
		return "Up to " + currencySymbol + formatAmount(*max)
	default:
		return "Not specified"
	}
}

func present(v *float64) bool {
	return v != nil && *v != 0
}

func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return amountPrinter.Sprintf("%d", int64(v))
	}
	return amountPrinter.Sprintf("%.2f", v)
}

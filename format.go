package jobhunter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HomeCurrency is omitted from compact salary output.
const HomeCurrency = "AUD"

const notAvailable = "N/A"

var printer = message.NewPrinter(language.English)

// FormatSalary returns a compact salary label such as "120,000-150,000",
// truncated to fit a table column.
func FormatSalary(c *Compensation) string {
	if c == nil {
		return notAvailable
	}

	var s string
	switch {
	case c.MinSalary != nil || c.MaxSalary != nil:
		s = salaryRange(c, "-")
		if c.Currency != nil && *c.Currency != "" && *c.Currency != HomeCurrency {
			s += " " + *c.Currency
		}
	case c.Notes != nil && *c.Notes != "":
		s = *c.Notes
	default:
		return notAvailable
	}
	return truncate(s, 15)
}

// FormatSalaryDetailed returns the full salary description including
// currency, period and notes.
func FormatSalaryDetailed(c *Compensation) string {
	if c == nil {
		return notAvailable
	}

	var parts []string
	if c.MinSalary != nil || c.MaxSalary != nil {
		parts = append(parts, salaryRange(c, " - "))
		if c.Currency != nil && *c.Currency != "" {
			parts = append(parts, *c.Currency)
		}
		if c.Period != "" {
			parts = append(parts, "per "+string(c.Period))
		}
	}
	if c.Notes != nil && *c.Notes != "" {
		parts = append(parts, *c.Notes)
	}

	if len(parts) == 0 {
		return notAvailable
	}
	return strings.Join(parts, " ")
}

func salaryRange(c *Compensation, sep string) string {
	switch {
	case c.MinSalary != nil && c.MaxSalary != nil:
		return formatAmount(*c.MinSalary) + sep + formatAmount(*c.MaxSalary)
	case c.MinSalary != nil:
		return formatAmount(*c.MinSalary) + "+"
	default:
		return "Up to " + formatAmount(*c.MaxSalary)
	}
}

func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// FormatJob renders a saved job as the plain-text export format.
func FormatJob(job *Job) string {
	a := job.AIData
	var b strings.Builder

	location := a.Location.RawText
	if location == "" {
		location = deref(a.Location.City)
	}

	fmt.Fprintf(&b, "Job Title: %s\n", orNA(a.JobTitle))
	fmt.Fprintf(&b, "Company: %s\n", orNA(a.CompanyName))
	fmt.Fprintf(&b, "Location: %s\n", orNA(location))
	fmt.Fprintf(&b, "Work Model: %s\n", orNA(string(a.WorkModel)))
	fmt.Fprintf(&b, "Job Type: %s\n", orNA(string(a.JobType)))
	fmt.Fprintf(&b, "Compensation: %s\n", orNA(exportCompensation(a.Compensation)))
	fmt.Fprintf(&b, "Status: %s\n", orNA(string(job.Status)))
	fmt.Fprintf(&b, "Saved Date: %s\n", formatDate(job.SavedDate))
	fmt.Fprintf(&b, "Source URL: %s\n", orNA(job.SourceURL))

	section(&b, "Core Objective", a.CoreObjective)
	section(&b, "Experience Requirements", a.ExperienceRequirements.RawText)
	section(&b, "Hard Skills", strings.Join(a.KeySkillsAndTools.HardSkills, ", "))
	section(&b, "Soft Skills", strings.Join(a.KeySkillsAndTools.SoftSkills, ", "))
	section(&b, "Tools & Software", strings.Join(a.KeySkillsAndTools.ToolsAndSoftware, ", "))

	quals := make([]string, 0, len(a.Qualifications))
	for _, q := range a.Qualifications {
		quals = append(quals, fmt.Sprintf("- %s (%s)", q.Detail, q.Type))
	}
	section(&b, "Qualifications", strings.Join(quals, "\n"))

	b.WriteString("\nCompany Culture:\n")
	fmt.Fprintf(&b, "Tone: %s\n", orNA(deref(a.CompanyCulture.Tone)))
	fmt.Fprintf(&b, "Key Adjectives: %s\n", orNA(strings.Join(a.CompanyCulture.KeyAdjectives, ", ")))

	section(&b, "Application Instructions", deref(a.ApplicationLogistics.Instructions))
	fmt.Fprintf(&b, "Closing Date: %s\n", orNA(deref(a.ApplicationLogistics.ClosingDate)))

	return b.String()
}

func section(b *strings.Builder, heading, body string) {
	fmt.Fprintf(b, "\n%s:\n%s\n", heading, orNA(body))
}

func exportCompensation(c *Compensation) string {
	if c == nil {
		return ""
	}
	var amount string
	if c.MinSalary != nil {
		amount = strconv.FormatFloat(*c.MinSalary, 'f', -1, 64)
	}
	if c.MaxSalary != nil {
		amount += "-" + strconv.FormatFloat(*c.MaxSalary, 'f', -1, 64)
	}

	var parts []string
	for _, p := range []string{amount, deref(c.Currency), string(c.Period), deref(c.Notes)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.Format("2 Jan 2006")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

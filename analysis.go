package jobhunter

import "context"

// WorkModel classifies where the work happens.
type WorkModel string

// WorkModel values. OnSite is assumed when the posting does not say.
const (
	WorkModelOnSite WorkModel = "On-site"
	WorkModelHybrid WorkModel = "Hybrid"
	WorkModelRemote WorkModel = "Remote"
)

// JobType classifies the employment arrangement.
type JobType string

// JobType values.
const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeTemporary  JobType = "Temporary"
)

// PayPeriod is the period a salary figure refers to.
type PayPeriod string

// PayPeriod values.
const (
	PayPeriodYearly  PayPeriod = "yearly"
	PayPeriodHourly  PayPeriod = "hourly"
	PayPeriodMonthly PayPeriod = "monthly"
)

// QualificationType separates essential from nice-to-have qualifications.
type QualificationType string

// QualificationType values.
const (
	QualificationMustHave  QualificationType = "Must-have"
	QualificationPreferred QualificationType = "Preferred"
)

// JobAnalysis is the structured analysis of a job posting produced by the
// job extraction agent. Optional data is represented by nil pointers or
// omitted JSON fields, never by placeholder text.
type JobAnalysis struct {
	JobTitle               string                 `json:"jobTitle"`
	CompanyName            string                 `json:"companyName"`
	Location               Location               `json:"location"`
	WorkModel              WorkModel              `json:"workModel"`
	JobType                JobType                `json:"jobType"`
	Compensation           *Compensation          `json:"compensation,omitempty"`
	CoreObjective          string                 `json:"coreObjective"`
	KeySkillsAndTools      KeySkillsAndTools      `json:"keySkillsAndTools"`
	ExperienceRequirements ExperienceRequirements `json:"experienceRequirements"`
	Qualifications         []Qualification        `json:"qualifications"`
	CompanyCulture         CompanyCulture         `json:"companyCulture"`
	ApplicationLogistics   ApplicationLogistics   `json:"applicationLogistics"`
}

// Location is where the job is based.
type Location struct {
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Country *string `json:"country,omitempty"`
	RawText string  `json:"rawText"`
}

// Compensation holds salary details. Notes keeps the original wording and
// anything that does not fit the numeric fields.
type Compensation struct {
	MinSalary *float64  `json:"minSalary,omitempty"`
	MaxSalary *float64  `json:"maxSalary,omitempty"`
	Currency  *string   `json:"currency,omitempty"`
	Period    PayPeriod `json:"period,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
}

// KeySkillsAndTools categorizes the skills a posting mentions.
type KeySkillsAndTools struct {
	HardSkills       []string `json:"hardSkills"`
	SoftSkills       []string `json:"softSkills"`
	ToolsAndSoftware []string `json:"toolsAndSoftware"`
}

// ExperienceRequirements holds the required experience.
type ExperienceRequirements struct {
	MinYears *float64 `json:"minYears,omitempty"`
	MaxYears *float64 `json:"maxYears,omitempty"`
	RawText  string   `json:"rawText"`
}

// Qualification is a single classified requirement.
type Qualification struct {
	Detail string            `json:"detail"`
	Type   QualificationType `json:"type"`
}

// CompanyCulture describes the tone of the posting.
type CompanyCulture struct {
	Tone          *string  `json:"tone,omitempty"`
	KeyAdjectives []string `json:"keyAdjectives,omitempty"`
}

// ApplicationLogistics holds how and until when to apply.
type ApplicationLogistics struct {
	Instructions *string `json:"instructions,omitempty"`
	ClosingDate  *string `json:"closingDate,omitempty"`
}

// JobExtractionInput is the input of the job extraction agent.
type JobExtractionInput struct {
	Content string `json:"content"`
	URL     string `json:"url"`
}

// ContentSummaryInput is the input of the content summary agent.
type ContentSummaryInput struct {
	Content   string `json:"content"`
	MaxLength int    `json:"maxLength,omitempty"`
	Focus     string `json:"focus,omitempty"`
}

// ContentSummary is the output of the content summary agent.
type ContentSummary struct {
	Summary        string   `json:"summary"`
	KeyPoints      []string `json:"keyPoints"`
	WordCount      int      `json:"wordCount"`
	OriginalLength int      `json:"originalLength"`
}

// JobAnalyzer analyzes a job posting's text with a language model.
type JobAnalyzer interface {
	// AnalyzeJob runs the job extraction agent with the API key and model
	// from settings.
	AnalyzeJob(ctx context.Context, settings *Settings, input JobExtractionInput) (*JobAnalysis, error)
}

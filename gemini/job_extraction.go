package gemini

import (
	"strings"

	"github.com/fwojciec/jobhunter"
	"google.golang.org/genai"
)

// JobExtractionInstruction is the system instruction of the job extraction
// agent.
const JobExtractionInstruction = `## ROLE AND GOAL ##
You are an expert recruitment data analyst. Distill the meaningful information of a job posting into a structured JSON object that matches the provided schema. Read, understand and synthesize the content to populate every required field.

## RULES ##
1. Read the whole posting before filling any field.
2. For coreObjective, connect the duties of the role to the mission of the company in one new sentence. Summarize list items concisely.
3. Create one qualifications item per distinct requirement and classify its type as "Must-have" or "Preferred". Do not split paragraphs mechanically.
4. For compensation and experienceRequirements, put numbers in the atomic fields (minSalary, minYears and so on). Keep the original wording in notes and rawText.
5. workModel and jobType must use the schema enum values. If the work model is not mentioned, use "On-site".
6. If information for an optional field such as compensation is absent, omit the field entirely. Never fill it with phrases like "competitive salary".

## POSTING CONTENT ##`

var jobAnalysisValidator = mustCompileSchema(JobAnalysisSchema)

// Ensure JobExtractionAgent implements Agent at compile time.
var _ Agent[jobhunter.JobExtractionInput, *jobhunter.JobAnalysis] = JobExtractionAgent{}

// JobExtractionAgent turns posting text into a jobhunter.JobAnalysis.
type JobExtractionAgent struct{}

// Name returns jobhunter.AgentJobExtraction.
func (JobExtractionAgent) Name() jobhunter.AgentName { return jobhunter.AgentJobExtraction }

// Description returns a one-line summary of the agent.
func (JobExtractionAgent) Description() string {
	return "Extracts structured job data from posting content"
}

// ValidateInput requires non-blank content and a URL.
func (JobExtractionAgent) ValidateInput(input jobhunter.JobExtractionInput) bool {
	return strings.TrimSpace(input.Content) != "" && input.URL != ""
}

// CreateRequest sends the content as the user turn.
func (a JobExtractionAgent) CreateRequest(input jobhunter.JobExtractionInput) (*Request, error) {
	if !a.ValidateInput(input) {
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "Invalid input: content and URL are required")
	}

	return &Request{
		Contents: userContents(input.Content),
		Config: &genai.GenerateContentConfig{
			SystemInstruction: systemInstruction(JobExtractionInstruction),
			Temperature:       genai.Ptr[float32](0.8),
			MaxOutputTokens:   4000,
			ResponseMIMEType:  "application/json",
			ResponseSchema:    JobAnalysisSchema,
			ThinkingConfig:    &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](-1)},
		},
	}, nil
}

// ProcessResponse decodes a schema-valid job analysis.
func (JobExtractionAgent) ProcessResponse(resp *genai.GenerateContentResponse) (*jobhunter.JobAnalysis, error) {
	return processResponse[*jobhunter.JobAnalysis](jobAnalysisValidator, resp)
}

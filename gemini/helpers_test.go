package gemini_test

import (
	"context"

	"github.com/fwojciec/jobhunter/gemini"
	"google.golang.org/genai"
)

// validJobJSON is a complete job extraction payload without compensation.
const validJobJSON = `{
  "jobTitle": "Senior Go Engineer",
  "companyName": "Acme",
  "location": {"city": "Sydney", "country": "Australia", "rawText": "Sydney NSW"},
  "workModel": "Hybrid",
  "jobType": "Full-time",
  "coreObjective": "Keep Acme's delivery platform reliable as it grows.",
  "keySkillsAndTools": {"hardSkills": ["Go"], "softSkills": ["Communication"], "toolsAndSoftware": ["Kubernetes"]},
  "experienceRequirements": {"minYears": 5, "rawText": "5+ years building services"},
  "qualifications": [{"detail": "Go in production", "type": "Must-have"}, {"detail": "Kafka", "type": "Preferred"}],
  "companyCulture": {"tone": "Startup & Casual", "keyAdjectives": ["fast-moving"]},
  "applicationLogistics": {"closingDate": "2025-07-01"}
}`

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

type generatorFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

func (f generatorFunc) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return f(ctx, model, contents, config)
}

// newExecutor returns an Executor backed by gen with no retry delays.
func newExecutor(gen generatorFunc) *gemini.Executor {
	return &gemini.Executor{
		NewGenerator: func(context.Context, string) (gemini.Generator, error) {
			return gen, nil
		},
		Timeout: gemini.DefaultTimeout,
	}
}

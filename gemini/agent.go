// Package gemini runs schema-constrained agents against Google Gemini.
//
// An Agent turns typed input into a model request and a raw model response
// into typed output. Execute wraps one agent run with input validation,
// timeout, rate limiting, retry and timing, and reports the outcome as a
// jobhunter.AgentResult.
package gemini

import (
	"github.com/fwojciec/jobhunter"
	"google.golang.org/genai"
)

// Request is a model request built by an agent.
type Request struct {
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
}

// Agent is a named, schema-bound unit of model work.
type Agent[I, O any] interface {
	// Name returns the registry tag of the agent.
	Name() jobhunter.AgentName

	// Description returns a one-line summary for listings.
	Description() string

	// ValidateInput reports whether input is worth sending to the model.
	ValidateInput(input I) bool

	// CreateRequest builds the model request for input.
	// Returns EINVALID if ValidateInput would return false.
	CreateRequest(input I) (*Request, error)

	// ProcessResponse parses and validates a model response.
	// Returns ERESPONSE for a missing envelope, EPARSE for non-JSON text
	// and ESCHEMA when the JSON does not match the agent schema.
	ProcessResponse(resp *genai.GenerateContentResponse) (O, error)
}

func systemInstruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

func userContents(text string) []*genai.Content {
	return []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
}

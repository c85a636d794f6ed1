package gemini

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/jobhunter"
	"google.golang.org/genai"
)

// AgentInfo describes a registered agent.
type AgentInfo struct {
	Name        jobhunter.AgentName `json:"name"`
	Description string              `json:"description"`
	Model       string              `json:"model"`
}

// Agents lists the built-in agents in jobhunter.AgentNames order.
func Agents() []AgentInfo {
	return []AgentInfo{
		info(JobExtractionAgent{}),
		info(ContentSummaryAgent{}),
	}
}

type describer interface {
	Name() jobhunter.AgentName
	Description() string
}

func info(a describer) AgentInfo {
	return AgentInfo{Name: a.Name(), Description: a.Description(), Model: jobhunter.DefaultModelName}
}

// RunAgent decodes input for the named agent and executes it. Unknown names
// yield a failed result with an ENOTFOUND error listing the available
// agents.
func RunAgent(ctx context.Context, e *Executor, name jobhunter.AgentName, input json.RawMessage, apiKey, model string) *jobhunter.AgentResult[any] {
	switch name {
	case jobhunter.AgentJobExtraction:
		var in jobhunter.JobExtractionInput
		if err := decodeInput(input, &in); err != nil {
			return failed(name, err)
		}
		return erase(Execute(ctx, e, JobExtractionAgent{}, in, apiKey, model))
	case jobhunter.AgentContentSummary:
		var in jobhunter.ContentSummaryInput
		if err := decodeInput(input, &in); err != nil {
			return failed(name, err)
		}
		return erase(Summarize(ctx, e, in, apiKey, model))
	}

	_, err := jobhunter.ParseAgentName(string(name))
	return failed(name, err)
}

// Summarize runs the content summary agent and records the word count of
// the summarized content.
func Summarize(ctx context.Context, e *Executor, input jobhunter.ContentSummaryInput, apiKey, model string) *jobhunter.AgentResult[*jobhunter.ContentSummary] {
	result := Execute(ctx, e, ContentSummaryAgent{}, input, apiKey, model)
	if result.Success {
		result.Data.OriginalLength = jobhunter.WordCount(input.Content)
	}
	return result
}

func decodeInput(input json.RawMessage, v any) error {
	if len(input) == 0 {
		return jobhunter.Errorf(jobhunter.EINVALID, "agent input required")
	}
	if err := json.Unmarshal(input, v); err != nil {
		return jobhunter.Errorf(jobhunter.EINVALID, "invalid agent input: %v", err)
	}
	return nil
}

func failed(name jobhunter.AgentName, err error) *jobhunter.AgentResult[any] {
	return &jobhunter.AgentResult[any]{
		AgentName: name,
		Error:     jobhunter.ErrorMessage(err),
		Err:       err,
	}
}

func erase[O any](r *jobhunter.AgentResult[O]) *jobhunter.AgentResult[any] {
	out := &jobhunter.AgentResult[any]{
		Success:       r.Success,
		Error:         r.Error,
		AgentName:     r.AgentName,
		ExecutionTime: r.ExecutionTime,
		Err:           r.Err,
	}
	if r.Success {
		out.Data = r.Data
	}
	return out
}

const connectionTestAgent jobhunter.AgentName = "connection-test"

// pingAgent asks for a trivial JSON reply.
type pingAgent struct{}

func (pingAgent) Name() jobhunter.AgentName { return connectionTestAgent }

func (pingAgent) Description() string { return "Checks that the model API accepts the key" }

func (pingAgent) ValidateInput(struct{}) bool { return true }

func (pingAgent) CreateRequest(struct{}) (*Request, error) {
	return &Request{
		Contents: userContents(`Hello, please respond with "API connection successful"`),
		Config: &genai.GenerateContentConfig{
			SystemInstruction: systemInstruction("You are a helpful assistant. Respond with a simple JSON object containing a message field."),
			Temperature:       genai.Ptr[float32](0.1),
			MaxOutputTokens:   50,
			ResponseMIMEType:  "application/json",
			ResponseSchema:    pingSchema,
			ThinkingConfig:    &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
		},
	}, nil
}

// ProcessResponse only checks that a candidate came back.
func (pingAgent) ProcessResponse(resp *genai.GenerateContentResponse) (struct{}, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return struct{}{}, jobhunter.Errorf(jobhunter.ERESPONSE, "Invalid response structure from model API")
	}
	return struct{}{}, nil
}

// TestConnection reports whether the model API answers a trivial request
// with apiKey and model.
func (e *Executor) TestConnection(ctx context.Context, apiKey, model string) bool {
	return Execute(ctx, e, pingAgent{}, struct{}{}, apiKey, model).Success
}

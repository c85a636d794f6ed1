package gemini

import (
	"fmt"
	"strings"

	"github.com/fwojciec/jobhunter"
	"google.golang.org/genai"
)

// ContentSummaryInstruction is the system instruction of the content
// summary agent.
const ContentSummaryInstruction = `You are an expert content summarizer. Write concise, accurate summaries of the provided content.

## Instructions:
1. Write a clear summary paragraph that captures the main points.
2. Extract the 3 to 5 most important key points.
3. Do not add information that is not in the original.
4. Use professional, plain language.
5. Respect any requested focus area or length limit.

## Output:
- summary: the summary paragraph
- keyPoints: the key points
- wordCount: the number of words in the summary`

var contentSummaryValidator = mustCompileSchema(ContentSummarySchema)

// Ensure ContentSummaryAgent implements Agent at compile time.
var _ Agent[jobhunter.ContentSummaryInput, *jobhunter.ContentSummary] = ContentSummaryAgent{}

// ContentSummaryAgent condenses long content into a summary and key points.
type ContentSummaryAgent struct{}

// Name returns jobhunter.AgentContentSummary.
func (ContentSummaryAgent) Name() jobhunter.AgentName { return jobhunter.AgentContentSummary }

// Description returns a one-line summary of the agent.
func (ContentSummaryAgent) Description() string {
	return "Summarizes long content into a concise summary with key points"
}

// ValidateInput requires non-blank content.
func (ContentSummaryAgent) ValidateInput(input jobhunter.ContentSummaryInput) bool {
	return strings.TrimSpace(input.Content) != ""
}

// CreateRequest folds the optional focus and length limit into the user turn.
func (a ContentSummaryAgent) CreateRequest(input jobhunter.ContentSummaryInput) (*Request, error) {
	if !a.ValidateInput(input) {
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "Invalid input: content is required")
	}

	var sb strings.Builder
	sb.WriteString("Please summarize the following content:")
	if input.Focus != "" {
		fmt.Fprintf(&sb, "\n\nFocus on: %s", input.Focus)
	}
	if input.MaxLength > 0 {
		fmt.Fprintf(&sb, "\n\nKeep summary under %d words.", input.MaxLength)
	}
	sb.WriteString("\n\n")
	sb.WriteString(input.Content)

	return &Request{
		Contents: userContents(sb.String()),
		Config: &genai.GenerateContentConfig{
			SystemInstruction: systemInstruction(ContentSummaryInstruction),
			Temperature:       genai.Ptr[float32](0.3),
			MaxOutputTokens:   1000,
			ResponseMIMEType:  "application/json",
			ResponseSchema:    ContentSummarySchema,
		},
	}, nil
}

// ProcessResponse decodes a schema-valid summary. OriginalLength is left
// zero; Summarize fills it from the input.
func (ContentSummaryAgent) ProcessResponse(resp *genai.GenerateContentResponse) (*jobhunter.ContentSummary, error) {
	return processResponse[*jobhunter.ContentSummary](contentSummaryValidator, resp)
}

package gemini

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/jobhunter"
	"google.golang.org/genai"
)

// responseText returns the answer text of the first candidate, skipping
// thought parts. Returns ERESPONSE when the envelope is incomplete.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", jobhunter.Errorf(jobhunter.ERESPONSE, "Invalid response structure from model API")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", jobhunter.Errorf(jobhunter.ERESPONSE, "Invalid response structure from model API")
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", jobhunter.Errorf(jobhunter.ERESPONSE, "Invalid response structure from model API")
	}
	return sb.String(), nil
}

// parseJSON decodes model text, tolerating a surrounding markdown fence.
// Returns EPARSE if the text is not JSON.
func parseJSON(text string) (any, error) {
	text = stripFence(strings.TrimSpace(text))

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, jobhunter.Errorf(jobhunter.EPARSE, "Failed to parse AI response as JSON")
	}
	return doc, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

// processResponse runs envelope, parse and schema checks and decodes into O.
func processResponse[O any](v *validator, resp *genai.GenerateContentResponse) (O, error) {
	var zero O
	text, err := responseText(resp)
	if err != nil {
		return zero, err
	}
	doc, err := parseJSON(text)
	if err != nil {
		return zero, err
	}
	return decode[O](v, doc)
}

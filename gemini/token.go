package gemini

import (
	"context"

	"github.com/fwojciec/jobhunter"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ jobhunter.TokenCounter = (*TokenCounter)(nil)

// TokenizerModel is a model the local tokenizer ships a vocabulary for.
// Posting text is sized against it before being sent to the model.
const TokenizerModel = "gemini-2.0-flash"

// TokenCounter counts prompt tokens locally, without an API call.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, jobhunter.Errorf(jobhunter.EINVALID, "no local tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the tokens text occupies as a user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, jobhunter.Errorf(jobhunter.EINTERNAL, "failed to count tokens: %v", err)
	}

	return int(result.TotalTokens), nil
}

package main_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/jobhunter"
	main "github.com/fwojciec/jobhunter/cmd/jobhunter"
	"github.com/fwojciec/jobhunter/gemini"
	"github.com/fwojciec/jobhunter/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type generatorFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

func (f generatorFunc) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return f(ctx, model, contents, config)
}

// replyExecutor returns an Executor whose model always answers text.
func replyExecutor(text string) *gemini.Executor {
	gen := generatorFunc(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}}},
		}, nil
	})
	return &gemini.Executor{
		NewGenerator: func(context.Context, string) (gemini.Generator, error) {
			return gen, nil
		},
		Timeout: gemini.DefaultTimeout,
	}
}

func keySettings(key string) *mock.SettingsService {
	return &mock.SettingsService{
		FindSettingsFn: func(context.Context) (*jobhunter.Settings, error) {
			return &jobhunter.Settings{APIKey: key, ModelName: jobhunter.DefaultModelName, MaxJobs: jobhunter.DefaultMaxJobs}, nil
		},
	}
}

func TestAgentsCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newDeps()

	err := (&main.AgentsCmd{}).Run(deps)

	require.NoError(t, err)
	for _, name := range jobhunter.AgentNames() {
		assert.Contains(t, stdout.String(), string(name))
	}
}

func TestAgentCmd_Run(t *testing.T) {
	t.Parallel()

	writeInput := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "input.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	t.Run("prints agent output", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Settings = keySettings("key")
		deps.Executor = replyExecutor(`{"summary": "A Go role at Acme.", "keyPoints": ["Go", "Remote"], "wordCount": 5}`)
		input := writeInput(t, `{"content": "Acme is hiring a Go engineer to work remotely on its delivery platform."}`)

		err := (&main.AgentCmd{Name: string(jobhunter.AgentContentSummary), Input: input}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "A Go role at Acme.")
	})

	t.Run("rejects unknown agent", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		input := writeInput(t, `{}`)

		err := (&main.AgentCmd{Name: "poet", Input: input}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, jobhunter.ENOTFOUND, jobhunter.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Available agents")
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps()
		deps.Settings = keySettings("")
		input := writeInput(t, `{"content": "x"}`)

		err := (&main.AgentCmd{Name: string(jobhunter.AgentContentSummary), Input: input}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "API Key not set. Please configure it in the settings.", jobhunter.ErrorMessage(err))
	})
}

func TestTestAPICmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports success", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Settings = keySettings("key")
		deps.Executor = replyExecutor(`{"message": "API connection successful"}`)

		err := (&main.TestAPICmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Connected to "+jobhunter.DefaultModelName)
	})

	t.Run("reports rejected key", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Settings = keySettings("bad")
		deps.Executor = &gemini.Executor{
			NewGenerator: func(context.Context, string) (gemini.Generator, error) {
				return generatorFunc(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return nil, genai.APIError{Code: 400, Message: "API key not valid"}
				}), nil
			},
		}

		err := (&main.TestAPICmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "rejected the request")
	})
}


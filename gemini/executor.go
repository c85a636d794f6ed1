package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/jobhunter"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultTimeout bounds a single model call.
const DefaultTimeout = 60 * time.Second

// DefaultRetryDelays returns the backoff delays for transport retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Generator sends a request to a model. *genai.Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// Executor runs agents against the model API.
type Executor struct {
	// NewGenerator returns a Generator authenticated with apiKey.
	NewGenerator func(ctx context.Context, apiKey string) (Generator, error)

	// Timeout bounds each attempt. Zero disables the bound.
	Timeout time.Duration

	// Limiter, when set, paces model calls across all agents.
	Limiter *rate.Limiter

	// RetryDelays are the waits between attempts after a transport error.
	RetryDelays []time.Duration

	// Logf, when set, is called for each retry and receives the detail of
	// failures that user-facing messages leave out.
	Logf LogFunc
}

// NewExecutor creates an Executor that calls the Gemini API with the
// default timeout and retry delays.
func NewExecutor() *Executor {
	return &Executor{
		NewGenerator: NewClientGenerator,
		Timeout:      DefaultTimeout,
		RetryDelays:  DefaultRetryDelays(),
	}
}

// NewClientGenerator creates a Gemini API client for apiKey.
func NewClientGenerator(ctx context.Context, apiKey string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create model client: %w", err)
	}
	return client.Models, nil
}

// Execute runs agent on input and reports the outcome. It never returns
// nil; failures are described by Error and classified by Err. An empty
// model selects jobhunter.DefaultModelName.
func Execute[I, O any](ctx context.Context, e *Executor, agent Agent[I, O], input I, apiKey, model string) *jobhunter.AgentResult[O] {
	begin := time.Now()
	data, err := run(ctx, e, agent, input, apiKey, model)

	result := &jobhunter.AgentResult[O]{
		AgentName:     agent.Name(),
		ExecutionTime: time.Since(begin),
	}
	if err != nil {
		result.Error = jobhunter.ErrorMessage(err)
		result.Err = err
		return result
	}
	result.Success = true
	result.Data = data
	return result
}

func run[I, O any](ctx context.Context, e *Executor, agent Agent[I, O], input I, apiKey, model string) (O, error) {
	var zero O
	if apiKey == "" {
		return zero, jobhunter.Errorf(jobhunter.EINVALID, "API key required")
	}
	if !agent.ValidateInput(input) {
		return zero, jobhunter.Errorf(jobhunter.EINVALID, "Invalid input for agent '%s'", agent.Name())
	}
	req, err := agent.CreateRequest(input)
	if err != nil {
		return zero, err
	}
	if model == "" {
		model = jobhunter.DefaultModelName
	}

	resp, err := e.generate(ctx, apiKey, model, req)
	if err != nil {
		return zero, err
	}
	return agent.ProcessResponse(resp)
}

// generate sends req, retrying transport failures with the configured
// delays.
func (e *Executor) generate(ctx context.Context, apiKey, model string, req *Request) (*genai.GenerateContentResponse, error) {
	gen, err := e.NewGenerator(ctx, apiKey)
	if err != nil {
		e.logf("  model client: %v", err)
		return nil, jobhunter.Errorf(jobhunter.ETRANSPORT, "Failed to create model client")
	}

	maxAttempts := len(e.RetryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := e.generateOnce(ctx, gen, model, req)
		if err == nil {
			return resp, nil
		}
		lastErr = e.classify(ctx, err)

		if !shouldRetry(err, lastErr) || attempt >= maxAttempts-1 {
			break
		}

		e.logf("  retry model call (attempt %d): %v", attempt+2, jobhunter.ErrorMessage(lastErr))

		select {
		case <-ctx.Done():
			return nil, e.classify(ctx, ctx.Err())
		case <-time.After(e.RetryDelays[attempt]):
		}
	}

	return nil, lastErr
}

// generateOnce makes one bounded attempt and returns the raw error.
func (e *Executor) generateOnce(ctx context.Context, gen Generator, model string, req *Request) (*genai.GenerateContentResponse, error) {
	if e.Limiter != nil {
		if err := e.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	return gen.GenerateContent(ctx, model, req.Contents, req.Config)
}

// classify converts a model call failure into an application error.
// Timeouts and API errors are transport failures; cancellation by the
// caller is not. Other failures are logged and reported without detail,
// since their text can carry addresses and URLs.
func (e *Executor) classify(ctx context.Context, err error) error {
	var appErr *jobhunter.Error
	if errors.As(err, &appErr) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return jobhunter.Errorf(jobhunter.ETRANSPORT, "model API error: %d %s: %s", apiErr.Code, apiErr.Status, apiErr.Message)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return jobhunter.Errorf(jobhunter.ETRANSPORT, "model request timed out")
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return jobhunter.Errorf(jobhunter.EINTERNAL, "model request canceled")
	}
	e.logf("  model request: %v", err)
	return jobhunter.Errorf(jobhunter.ETRANSPORT, "Model request failed")
}

func (e *Executor) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

// shouldRetry reports whether a failed attempt may succeed if repeated.
// API client errors other than rate limiting are not retried.
func shouldRetry(raw, classified error) bool {
	if jobhunter.ErrorCode(classified) != jobhunter.ETRANSPORT {
		return false
	}
	var apiErr genai.APIError
	if errors.As(raw, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	return true
}

package jobhunter

import (
	"strings"
	"time"
)

// AgentName identifies one of the built-in agents.
type AgentName string

// Agent names.
const (
	AgentJobExtraction  AgentName = "job-extraction"
	AgentContentSummary AgentName = "content-summary"
)

// AgentNames returns every built-in agent name.
func AgentNames() []AgentName {
	return []AgentName{AgentJobExtraction, AgentContentSummary}
}

// ParseAgentName returns ENOTFOUND for names outside AgentNames.
func ParseAgentName(s string) (AgentName, error) {
	for _, name := range AgentNames() {
		if string(name) == s {
			return name, nil
		}
	}
	names := make([]string, 0, len(AgentNames()))
	for _, name := range AgentNames() {
		names = append(names, string(name))
	}
	return "", Errorf(ENOTFOUND, "agent %q not found. Available agents: %s", s, strings.Join(names, ", "))
}

// AgentResult is the uniform outcome of running an agent.
type AgentResult[T any] struct {
	Success       bool          `json:"success"`
	Data          T             `json:"data,omitempty"`
	Error         string        `json:"error,omitempty"`
	AgentName     AgentName     `json:"agentName"`
	ExecutionTime time.Duration `json:"executionTime"`

	// Err is the classified failure behind Error.
	Err error `json:"-"`
}

package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/ideaforge/internal/ports"
	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	gemini "google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const streamAttempts = 2

// Generator runs each prompt stage as a dedicated llm agent against the
// Gemini API. Every call builds its own agent and in-memory session, so
// stages cannot leak conversation state into each other.
type Generator struct {
	apiKey   string
	model    string
	attempts int
}

func NewGenerator(apiKey, model string) *Generator {
	return &Generator{
		apiKey:   apiKey,
		model:    model,
		attempts: streamAttempts,
	}
}

var _ ports.Generator = (*Generator)(nil)

func (g *Generator) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	model, err := gemini.NewModel(ctx, g.model, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("create model: %w", err)
	}

	llm, err := llmagent.New(llmagent.Config{
		Name:        req.Agent,
		Model:       model,
		Description: req.Role,
		Instruction: req.Instruction,
	})
	if err != nil {
		return "", fmt.Errorf("create agent %s: %w", req.Agent, err)
	}

	svc := session.InMemoryService()
	agentSession, err := svc.Create(ctx, &session.CreateRequest{
		AppName:   req.Agent,
		UserID:    uuid.NewString(),
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("create agent session: %w", err)
	}

	r, err := runner.New(runner.Config{
		AppName:        req.Agent,
		Agent:          llm,
		SessionService: svc,
	})
	if err != nil {
		return "", fmt.Errorf("create runner: %w", err)
	}

	output, err := retry(g.attempts, func() (string, error) {
		return runStream(ctx, r, agentSession.Session.UserID(), agentSession.Session.ID(), req.Input)
	})
	if err != nil {
		return "", fmt.Errorf("run agent %s: %w", req.Agent, err)
	}

	return output, nil
}

func runStream(ctx context.Context, r *runner.Runner, userID, sessionID, input string) (string, error) {
	stream := r.Run(ctx, userID, sessionID, &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: input},
		},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", err
		}
		if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}

	if output == "" {
		return "", errors.New("empty agent response")
	}

	return output, nil
}

// retry retries a function up to attempts times with linear backoff.
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		time.Sleep(time.Duration(500*(i+1)) * time.Millisecond)
	}

	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

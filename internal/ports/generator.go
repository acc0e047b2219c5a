package ports

import "context"

// GenerateRequest is one prompt-stage invocation of the text-generation
// collaborator. The response is free text; callers own any parsing.
type GenerateRequest struct {
	Agent       string
	Role        string
	Instruction string
	Input       string
}

type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

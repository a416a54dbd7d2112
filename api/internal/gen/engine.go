package gen

import "context"

// Engine is the text-generation capability behind the relay. Implementations
// make exactly one blocking call per Generate; cancellation and deadlines
// come from the caller's context, retry policy is the caller's problem.
type Engine interface {
	Name() string
	GetModel() string
	Generate(ctx context.Context, req Request) (string, error)
}

// Request carries one prompt to the generator.
type Request struct {
	System          string // system instruction, may be empty
	Prompt          string // user prompt, data only
	MaxOutputTokens int32  // 0 means engine default
	Model           string // optional override of the engine default model
}

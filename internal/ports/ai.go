package ports

import "context"

// SummaryGenerator is the capability every LLM backend must provide:
// turn one prompt into plain text.
type SummaryGenerator interface {
	GenerateSummary(ctx context.Context, prompt string) (string, error)

	// Name identifies the backend ("openai", "anthropic") for status output.
	Name() string
}

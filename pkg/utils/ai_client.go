package utils

import "context"

// GenerationClientInterface is the single seam to the hosted
// text-generation model. Implementations must return the raw JSON body
// of the reply; prompt construction and shape validation belong to the
// caller.
type GenerationClientInterface interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

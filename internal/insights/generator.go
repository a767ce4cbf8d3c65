// Package insights integrates with an external text-generation service to
// turn spending data into a natural-language narrative.
package insights

import "context"

// TextGenerator produces narrative text from a prompt. Implementations make a
// single request with no retry; any failure is returned as-is to the caller.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

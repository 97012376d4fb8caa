package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with a purpose label ("question-gen",
// "report") recorded alongside each LLM request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

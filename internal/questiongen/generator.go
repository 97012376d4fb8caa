package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/sidverma/skillgap/internal/catalog"
	"github.com/sidverma/skillgap/internal/llm"
)

// Generator produces a category's question set.
type Generator interface {
	// Generate returns exactly QuestionsPerCategory validated, shuffled
	// questions. The only possible error is an unknown category, which
	// indicates a bug in the caller; service failures resolve to the
	// fallback set instead. Each call reshuffles, so callers cache the
	// result per category.
	Generate(ctx context.Context, cat catalog.Category) ([]Question, error)
}

// Config controls the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for one batch.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.3,
	}
}

// LLMGenerator implements Generator on an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
	rng      *rand.Rand
}

// New creates an LLMGenerator with its own shuffle source.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return NewWithRand(provider, cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand creates an LLMGenerator with an explicit shuffle source,
// for deterministic tests.
func NewWithRand(provider llm.Provider, cfg Config, rng *rand.Rand) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg, rng: rng}
}

// Generate requests a batch from the provider, validates it, and falls
// back to the deterministic placeholder set on any failure. All accepted
// questions are shuffled before being returned.
func (g *LLMGenerator) Generate(ctx context.Context, cat catalog.Category) ([]Question, error) {
	d, err := catalog.Get(cat)
	if err != nil {
		return nil, err
	}

	batch, genErr := g.requestBatch(ctx, cat, d)
	if genErr != nil {
		// Any generation failure resolves locally; the assessment
		// proceeds on placeholders rather than blocking the student.
		fmt.Fprintf(os.Stderr, "warning: question generation for %q fell back to defaults: %v\n", cat, genErr)
		batch = fallbackSet(cat, d)
	}

	out := make([]Question, len(batch))
	for i, q := range batch {
		out[i] = Shuffle(q, g.rng)
	}
	return out, nil
}

// requestBatch performs one provider call and converts the reply into a
// complete question batch. Any error abandons the whole batch; there is
// no partial acceptance.
func (g *LLMGenerator) requestBatch(ctx context.Context, cat catalog.Category, d catalog.Details) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(cat, d)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("provider: %w", err)
	}

	raws, err := parseBatch(resp.Content)
	if err != nil {
		return nil, err
	}

	if len(raws) != QuestionsPerCategory {
		return nil, fmt.Errorf("expected %d questions, got %d", QuestionsPerCategory, len(raws))
	}

	out := make([]Question, len(raws))
	for i, raw := range raws {
		if verr := Validate(raw, i); verr != nil {
			return nil, verr
		}
		out[i] = Question{
			Prompt:      raw.Question,
			FocusArea:   raw.FocusArea,
			Options:     raw.Options,
			Correct:     raw.Correct,
			Explanation: raw.Explanation,
		}
	}
	return out, nil
}

// parseBatch decodes the service reply. Providers without structured
// output wrap JSON in markdown fences or prose, so the payload is
// extracted before decoding. Both the schema shape {"questions": [...]}
// and a bare array are accepted.
func parseBatch(content json.RawMessage) ([]RawQuestion, error) {
	payload := extractJSON(string(content))

	var wrapped struct {
		Questions []RawQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(payload), &wrapped); err == nil && wrapped.Questions != nil {
		return wrapped.Questions, nil
	}

	var arr []RawQuestion
	if err := json.Unmarshal([]byte(payload), &arr); err != nil {
		return nil, fmt.Errorf("malformed question JSON: %w", err)
	}
	return arr, nil
}

// extractJSON strips markdown code fences and surrounding prose,
// returning the innermost JSON value text.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return s
	}
	end := strings.LastIndexAny(s, "]}")
	if end < start {
		return s
	}
	return s[start : end+1]
}

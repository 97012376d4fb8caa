// Package report produces the narrative skill gap report and its
// exportable artifacts.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sidverma/skillgap/internal/assessment"
	"github.com/sidverma/skillgap/internal/catalog"
	"github.com/sidverma/skillgap/internal/llm"
)

// Config holds generation parameters for the report request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default report generation settings. The
// report is long-form prose, so the token budget is generous and the
// temperature higher than question generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4000,
		Temperature: 0.7,
	}
}

// Service generates narrative reports through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a report service backed by the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Narrative produces the markdown analysis for the scored assessment.
// A provider failure is absorbed into the returned text so the report
// screen always has something to show.
func (s *Service) Narrative(ctx context.Context, student assessment.StudentInfo, scores map[catalog.Category]float64, overall float64) string {
	text, err := s.generate(ctx, student, scores, overall)
	if err != nil {
		return fmt.Sprintf("Error generating report: %v", err)
	}
	return text
}

func (s *Service) generate(ctx context.Context, student assessment.StudentInfo, scores map[catalog.Category]float64, overall float64) (string, error) {
	ctx = llm.WithPurpose(ctx, "report")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: reportSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReportMessage(student, scores, overall)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", &llm.ErrInvalidResponse{Err: errors.New("empty report body")}
	}
	return text, nil
}

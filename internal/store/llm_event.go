package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// eventRepo implements EventRepo on the llm_events table.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens,
		data.LatencyMs, data.Success, data.ErrorMessage,
		data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert LLM event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, timestamp, provider, model, purpose, input_tokens,
		       output_tokens, latency_ms, success, error_message,
		       request_body, response_body
		FROM llm_events`
	args := []any{}
	if opts.Purpose != "" {
		query += " WHERE purpose = ?"
		args = append(args, opts.Purpose)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		var e LLMEvent
		if err := rows.Scan(
			&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
			&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
		); err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, timestamp, provider, model, purpose, input_tokens,
		       output_tokens, latency_ms, success, error_message,
		       request_body, response_body
		FROM llm_events WHERE id = ?`, id)

	var e LLMEvent
	err := row.Scan(
		&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens),
		       CAST(AVG(latency_ms) AS INTEGER)
		FROM llm_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan purpose usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM llm_events
		GROUP BY model
		ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Package responder talks to an OpenAI-compatible chat completions
// gateway to turn a system prompt plus conversation history into the
// adviser's next reply.
package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/bunnyflex/factfind-chatbot/internal/logger"
	"github.com/bunnyflex/factfind-chatbot/internal/types"
)

const (
	requestTimeout = 12 * time.Second
	maxElapsed     = 20 * time.Second
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Responder struct {
	apiURL  string
	apiKey  string
	model   string
	mock    bool
	client  *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewFromEnv configures the responder from LLM_GATEWAY_URL, LLM_API_KEY
// and LLM_MODEL. USE_MOCK_LLM=true enables the deterministic offline
// mode for demos and tests.
func NewFromEnv(log *logger.Logger) *Responder {
	return &Responder{
		apiURL: os.Getenv("LLM_GATEWAY_URL"),
		apiKey: os.Getenv("LLM_API_KEY"),
		model:  os.Getenv("LLM_MODEL"),
		mock:   os.Getenv("USE_MOCK_LLM") == "true",
		client: &http.Client{Timeout: requestTimeout},
		// Gateway quota is shared across sessions, throttle client side.
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		log:     log,
	}
}

// New builds a responder against an explicit gateway. Used by tests.
func New(apiURL, apiKey, model string, log *logger.Logger) *Responder {
	return &Responder{
		apiURL:  apiURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		log:     log,
	}
}

// Reply generates the adviser's next message. On gateway failure it
// falls back to the first clarification question so the conversation
// never stalls.
func (r *Responder) Reply(ctx context.Context, systemPrompt string, history []types.Message, extraction types.SmartExtractionResult) (string, error) {
	if r.mock {
		return r.mockReply(extraction), nil
	}
	if r.apiURL == "" || r.apiKey == "" {
		return "", fmt.Errorf("llm gateway not configured")
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	msgs := []Message{{Role: "system", Content: systemPrompt}}
	for _, m := range history {
		msgs = append(msgs, Message{Role: m.Role, Content: m.Content})
	}

	reqBody := map[string]any{
		"model":             r.model,
		"messages":          msgs,
		"temperature":       0.7,
		"max_tokens":        800,
		"presence_penalty":  0.1,
		"frequency_penalty": 0.1,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var content string
	operation := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, r.apiURL, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+r.apiKey)

		resp, err := r.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)

		// Client errors will not heal on retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("llm gateway rejected request: %d %s", resp.StatusCode, string(body)))
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("llm server error: %d %s", resp.StatusCode, string(body))
		}

		var parsed struct {
			Choices []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			} `json:"choices"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Choices) == 0 {
			return fmt.Errorf("unexpected llm response: %s", string(body))
		}
		content = strings.TrimSpace(parsed.Choices[0].Message.Content)
		if content == "" {
			return fmt.Errorf("empty llm response")
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxElapsed
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		r.log.WithError(err).Error("llm reply failed")
		return "", fmt.Errorf("llm reply failed: %w", err)
	}
	return content, nil
}

// mockReply gives a deterministic adviser turn keyed off extraction
// state, enough to drive the full conversation offline.
func (r *Responder) mockReply(extraction types.SmartExtractionResult) string {
	if len(extraction.ClarificationQuestions) > 0 {
		return "Thanks for that! " + extraction.ClarificationQuestions[0]
	}
	if len(extraction.Extracted) > 0 {
		return "Brilliant, I've noted that down. Is there anything else you'd like to add?"
	}
	return "Lovely to chat! Shall we carry on with your fact-find?"
}

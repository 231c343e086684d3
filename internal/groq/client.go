// Package groq is a minimal client for the Groq OpenAI-compatible
// chat-completions API, used to generate values for missing business-plan
// fields. Failures are Generation-category errors: callers skip the field
// and continue, they never abort a completion run.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kdambrauskas/plancheck/internal/errors"
	"github.com/kdambrauskas/plancheck/internal/schema"
)

// DefaultBaseURL is the Groq OpenAI-compatible API root.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// DefaultModel matches the model the upstream pipeline was tuned on.
const DefaultModel = "meta-llama/llama-4-scout-17b-16e-instruct"

// contextLimit bounds how much of the record is sent as prompt context.
const contextLimit = 3000

// Client calls the chat-completions endpoint. Zero value is not usable;
// construct with NewClient.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithModel overrides the model name.
func WithModel(m string) Option {
	return func(c *Client) { c.model = m }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      DefaultModel,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat sends a system+user message pair and returns the first choice's
// content, trimmed. Transport errors, non-2xx statuses, and empty
// completions are Generation-category errors.
func (c *Client) Chat(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", errors.NewGenerationError("encoding chat request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.NewGenerationError("building chat request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewGenerationError("calling chat completions API", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", errors.NewGenerationError("reading chat completions response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed chatResponse
		if json.Unmarshal(data, &parsed) == nil && parsed.Error != nil {
			return "", errors.NewGenerationError(
				fmt.Sprintf("chat completions API returned %d: %s", resp.StatusCode, parsed.Error.Message), nil)
		}
		return "", errors.NewGenerationError(
			fmt.Sprintf("chat completions API returned %d", resp.StatusCode), nil)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", errors.NewGenerationError("decoding chat completions response", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.NewGenerationError("chat completions API returned no choices", nil)
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", errors.NewGenerationError("chat completions API returned empty content", nil)
	}
	return content, nil
}

// GenerateFieldValue asks the model for a realistic value for one missing
// field, given the existing record as context.
func (c *Client) GenerateFieldValue(ctx context.Context, field schema.Field, recordContext string) (string, error) {
	if len(recordContext) > contextLimit {
		recordContext = recordContext[:contextLimit] + "..."
	}

	system := "You are a professional project data analyst. Generate realistic, " +
		"detailed, and contextually appropriate field values based on project data."

	user := fmt.Sprintf(`Based on the following project data, generate a realistic and appropriate value for the field %q.

CONTEXT DATA:
%s

FIELD TO COMPLETE: %s

INSTRUCTIONS:
1. Analyze the existing data to understand the project context
2. Generate a realistic value that fits the project type and domain
3. Ensure the value is specific, detailed, and professional
4. For numerical fields, provide realistic numbers based on project scale
5. For text fields, provide meaningful descriptions (2-3 sentences minimum)
6. Maintain consistency with the existing project information

FIELD DESCRIPTION: %s

Generate ONLY the value for this field, without explanations or formatting:`,
		field.Name, recordContext, field.Name, schema.Describe(field))

	value, err := c.Chat(ctx, system, user)
	if err != nil {
		return "", err
	}
	// Field values live on single `NAME: value` lines in the data file.
	return strings.Join(strings.Fields(value), " "), nil
}

// Package llm calls an OpenAI-compatible chat completions endpoint to
// translate and condense article summaries.
package llm

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.2
	DefaultLanguage    = "zh-Hans"

	defaultEndpoint = "https://api.openai.com/v1/chat/completions"

	systemPromptTemplate = "You are an assistant that summarises English AI news " +
		"into concise, professionally written %s."

	userPromptTemplate = "Read the following AI news entry. Using the title, the " +
		"original summary and the linked article, write a summary in %s of at most " +
		"120 characters. Include the key facts and keep a neutral, objective tone.\n\n" +
		"Title: %s\n" +
		"Original summary: %s\n" +
		"Link: %s"

	// Stands in for the original summary when the entry has none.
	emptySummaryPlaceholder = "(none)"
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set; set it or pass --api-key")

type Options struct {
	APIKey      string // falls back to OPENAI_API_KEY
	Model       string
	Temperature float64
	Language    string // BCP 47 tag of the summary language
	Endpoint    string
	Timeout     time.Duration
}

type Client struct {
	apiKey      string
	model       string
	temperature float64
	langName    string
	endpoint    string
	httpClient  *http.Client
}

// New validates the configuration and constructs a client. Missing
// credentials or an unparseable language tag fail here, before any entry is
// processed.
func New(opts Options) (*Client, error) {
	apiKey := cmp.Or(opts.APIKey, os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	tag, err := language.Parse(cmp.Or(opts.Language, DefaultLanguage))
	if err != nil {
		return nil, fmt.Errorf("invalid summary language %q: %w", opts.Language, err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	temperature := opts.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	return &Client{
		apiKey:      apiKey,
		model:       cmp.Or(opts.Model, DefaultModel),
		temperature: temperature,
		langName:    display.English.Languages().Name(tag),
		endpoint:    cmp.Or(opts.Endpoint, defaultEndpoint),
		httpClient:  &http.Client{Timeout: timeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// TranslateAndSummarise returns a condensed summary of the entry in the
// configured language, trimmed of surrounding whitespace.
func (c *Client) TranslateAndSummarise(ctx context.Context, title, summary, link string) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(systemPromptTemplate, c.langName)},
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate,
				c.langName, title, cmp.Or(summary, emptySummaryPlaceholder), link)},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	slog.Debug("Calling chat completions API", "model", c.model, "link", link)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call chat completions API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("API request failed with status %s: %s", resp.Status, parsed.Error.Message)
		}
		return "", fmt.Errorf("API request failed with status: %s", resp.Status)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("API response contained no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

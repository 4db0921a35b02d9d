package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/randomtoy/fortune-go/internal/domain"
)

// DefaultEndpoint is the generateContent URL for the model this service uses.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

const headerAPIKey = "x-goog-api-key"

// Client implements ports.Generator via the Gemini REST API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
	logger     *slog.Logger
}

// NewClient builds a client. An empty endpoint selects DefaultEndpoint.
func NewClient(httpClient *http.Client, apiKey, endpoint string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		endpoint:   endpoint,
		logger:     logger,
	}
}

// generateRequest / generateResponse mirror the generateContent wire shapes.
type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

// Response fields are pointers so that absent keys and nulls can be told
// apart from empty arrays: the former are payload errors, the latter an
// empty result.
type responsePart struct {
	Text *string `json:"text"`
}

type responseContent struct {
	Parts *[]responsePart `json:"parts"`
}

type responseCandidate struct {
	Content *responseContent `json:"content"`
}

type generateResponse struct {
	Candidates *[]responseCandidate `json:"candidates"`
}

// decodeResponse parses raw and checks that every candidate carries
// content.parts and every part carries text.
func decodeResponse(raw []byte) ([]responseCandidate, error) {
	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out.Candidates == nil {
		return nil, errors.New("missing field candidates")
	}
	for i, cand := range *out.Candidates {
		if cand.Content == nil {
			return nil, fmt.Errorf("candidate %d: missing field content", i)
		}
		if cand.Content.Parts == nil {
			return nil, fmt.Errorf("candidate %d: missing field parts", i)
		}
		for j, p := range *cand.Content.Parts {
			if p.Text == nil {
				return nil, fmt.Errorf("candidate %d part %d: missing field text", i, j)
			}
		}
	}
	return *out.Candidates, nil
}

func newGenerateRequest(prompt string) generateRequest {
	return generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
}

// Generate performs exactly one POST and classifies the result.
func (c *Client) Generate(ctx context.Context, prompt string) domain.Outcome {
	body, err := json.Marshal(newGenerateRequest(prompt))
	if err != nil {
		c.logger.ErrorContext(ctx, "marshal gemini request", "error", err)
		return domain.TransportFailure(fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.ErrorContext(ctx, "build gemini request", "error", err)
		return domain.TransportFailure(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "error calling gemini api", "error", err)
		return domain.TransportFailure(fmt.Errorf("http call: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "error reading gemini response", "error", err)
		return domain.PayloadFailure(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(respBody))
		c.logger.ErrorContext(ctx, "error parsing gemini response", "status", resp.StatusCode, "error", err)
		return domain.PayloadFailure(err)
	}

	candidates, err := decodeResponse(respBody)
	if err != nil {
		c.logger.ErrorContext(ctx, "error parsing gemini response", "error", err)
		return domain.PayloadFailure(fmt.Errorf("decode response: %w", err))
	}

	if len(candidates) == 0 || len(*candidates[0].Content.Parts) == 0 {
		c.logger.WarnContext(ctx, "gemini returned no candidate text", "candidates", len(candidates))
		return domain.EmptyResult()
	}

	out := domain.Success(*(*candidates[0].Content.Parts)[0].Text)
	if !out.OK() {
		c.logger.WarnContext(ctx, "gemini returned empty candidate text")
	}
	return out
}

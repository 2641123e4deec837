// Package gemini provides a client for the Google Gemini generateContent API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/termai-cli/termai/pkg/modeladapter"
)

// DefaultBaseURL is the production Gemini API endpoint (no trailing slash).
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// Client talks to the Gemini generateContent endpoint for a single model.
type Client struct {
	modeladapter.Adapter

	Model string
}

// New creates a Client configured for the Gemini API. The API key is sent as
// the "key" query parameter.
func New(baseURL, apiKey, model string) *Client {
	c := &Client{Model: model}
	c.BaseURL = baseURL
	c.Auth = modeladapter.Auth{
		Key:   apiKey,
		Param: "key",
	}

	return c
}

// Generate sends one query to the API and classifies the reply. genConfig is
// forwarded verbatim as the generationConfig object; nil becomes an empty
// mapping.
func (c *Client) Generate(ctx context.Context, query, systemInstruction string, genConfig map[string]any) (Outcome, error) {
	req := buildRequest(query, systemInstruction, genConfig)
	path := fmt.Sprintf("/v1beta/models/%s:generateContent", c.Model)

	raw, status, err := c.PostJSON(ctx, path, req)
	if err != nil {
		return Outcome{}, fmt.Errorf("gemini: %w", err)
	}

	out := Classify(raw)
	out.Status = status

	return out, nil
}

// --- request types ---

type apiRequest struct {
	Contents          []apiContent   `json:"contents"`
	SystemInstruction apiContent     `json:"systemInstruction"`
	GenerationConfig  map[string]any `json:"generationConfig"`
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

func buildRequest(query, systemInstruction string, genConfig map[string]any) apiRequest {
	if genConfig == nil {
		genConfig = map[string]any{}
	}

	return apiRequest{
		Contents:          []apiContent{{Parts: []apiPart{{Text: query}}}},
		SystemInstruction: apiContent{Parts: []apiPart{{Text: systemInstruction}}},
		GenerationConfig:  genConfig,
	}
}

// --- response types ---

type apiResponse struct {
	Candidates     []apiCandidate     `json:"candidates"`
	PromptFeedback *apiPromptFeedback `json:"promptFeedback"`
}

type apiCandidate struct {
	Content      *apiContent `json:"content"`
	FinishReason string      `json:"finishReason"`
}

type apiPromptFeedback struct {
	BlockReason string `json:"blockReason"`
}

// OutcomeKind tags the disjoint response shapes the API can return.
type OutcomeKind int

const (
	// KindText is a successful reply carrying candidate text.
	KindText OutcomeKind = iota
	// KindBlocked means generation was withheld for a stated policy reason.
	KindBlocked
	// KindEmpty is a candidates list whose first entry carries no content.
	KindEmpty
	// KindMalformed is a body with no recognizable candidates list.
	KindMalformed
)

// Outcome is the classified result of one generateContent exchange. Raw holds
// the response body for diagnostic dumps; Status is the HTTP status code of
// the exchange (set by Generate, zero for bodies classified directly).
type Outcome struct {
	Kind        OutcomeKind
	Status      int
	Text        string
	BlockReason string
	Raw         []byte
}

// Classify decodes a 2xx response body into exactly one Outcome variant.
// A block reason wins over any candidates. Only the first candidate is
// considered; additional candidates are ignored.
func Classify(raw []byte) Outcome {
	var resp apiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Outcome{Kind: KindMalformed, Raw: raw}
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return Outcome{Kind: KindBlocked, BlockReason: resp.PromptFeedback.BlockReason, Raw: raw}
	}

	if resp.Candidates == nil {
		return Outcome{Kind: KindMalformed, Raw: raw}
	}

	if len(resp.Candidates) == 0 {
		return Outcome{Kind: KindEmpty, Raw: raw}
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return Outcome{Kind: KindEmpty, Raw: raw}
	}

	return Outcome{
		Kind: KindText,
		Text: strings.TrimSpace(content.Parts[0].Text),
		Raw:  raw,
	}
}

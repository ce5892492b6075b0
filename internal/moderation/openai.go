package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	openaiModerationsURL   = "https://api.openai.com/v1/moderations"
	defaultModerationModel = "omni-moderation-latest"
)

// shared HTTP client for moderation calls.
// Bounded timeout so a stuck classifier cannot hang a request forever.
var moderationHTTPClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type moderationRequest struct {
	Input string `json:"input"`
	Model string `json:"model"`
}

type moderationResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Results []struct {
		Flagged    bool            `json:"flagged"`
		Categories map[string]bool `json:"categories"`
	} `json:"results"`
}

type OpenAIConfig struct {
	APIKey string
	Model  string // e.g. "omni-moderation-latest"
}

// calls the OpenAI moderations endpoint and maps category flags
// to a single Decision
type OpenAIClassifier struct {
	config     OpenAIConfig
	httpClient *http.Client
	url        string
}

func NewOpenAIClassifier(config OpenAIConfig) *OpenAIClassifier {
	if config.Model == "" {
		config.Model = defaultModerationModel
	}

	return &OpenAIClassifier{
		config:     config,
		httpClient: moderationHTTPClient,
		url:        openaiModerationsURL,
	}
}

// classifies text into exactly one Decision. Priority when multiple
// categories are flagged: sexual/minors over sexual over anything else
// flagged. Errors are returned to the caller; the gate decides the
// fail-closed fallback so the policy lives in one place.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (Decision, error) {
	reqBody := moderationRequest{
		Input: text,
		Model: c.config.Model,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return DecisionBlockPolicy, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return DecisionBlockPolicy, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return DecisionBlockPolicy, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return DecisionBlockPolicy, fmt.Errorf("moderation request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var modResp moderationResponse
	if err := json.NewDecoder(resp.Body).Decode(&modResp); err != nil {
		return DecisionBlockPolicy, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(modResp.Results) == 0 {
		return DecisionBlockPolicy, fmt.Errorf("moderation response contained no results")
	}

	return mapCategories(modResp.Results[0].Flagged, modResp.Results[0].Categories), nil
}

// maps raw category flags to a Decision by severity
func mapCategories(flagged bool, categories map[string]bool) Decision {
	if categories["sexual/minors"] {
		return DecisionBlockMinor
	}

	if categories["sexual"] {
		return DecisionBlockNSFW
	}

	if flagged {
		return DecisionBlockPolicy
	}

	for _, hit := range categories {
		if hit {
			return DecisionBlockPolicy
		}
	}

	return DecisionSafe
}

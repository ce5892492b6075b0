package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	openaiImagesURL = "https://api.openai.com/v1/images/generations"

	// generation is slow; abandon the request after this deadline
	generationTimeout = 28 * time.Second
)

// shared HTTP client for image API calls
var imagesHTTPClient = &http.Client{
	Timeout: generationTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for image API calls (5 requests/second with burst capacity of 5)
var imagesRateLimiter = rate.NewLimiter(5, 5)

type generationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type generationResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

type OpenAIConfig struct {
	APIKey string
	Model  string // default model when the request does not name one
}

// OpenAIClient implements Client against the OpenAI images endpoint
type OpenAIClient struct {
	config     OpenAIConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	url        string
}

func NewOpenAIClient(config OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		config:     config,
		httpClient: imagesHTTPClient,
		limiter:    imagesRateLimiter,
		url:        openaiImagesURL,
	}
}

// generates one image and returns its base64 payload.
// An empty result from the backend is an error, never a silent success.
func (c *OpenAIClient) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	model := req.Model
	if model == "" {
		model = c.config.Model
	}

	count := req.Count
	if count == 0 {
		count = 1
	}

	reqBody := generationRequest{
		Model:          model,
		Prompt:         req.Prompt,
		N:              count,
		Size:           req.Size,
		ResponseFormat: "b64_json",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	var genResp generationResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Data) == 0 || genResp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("image API returned no image data")
	}

	return &Response{
		Base64: genResp.Data[0].B64JSON,
		Model:  model,
	}, nil
}

package imagegen

import (
	"context"
	"fmt"
)

// Request describes one generation call to the remote image backend
type Request struct {
	Model  string
	Prompt string
	Size   string // canonical size token, e.g. "1024x1024"
	Count  int    // number of images; the gate always requests 1
}

// Response carries the generated payload
type Response struct {
	// base64-encoded image bytes
	Base64 string

	// model that actually served the request
	Model string
}

// Client generates images from composed prompts
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// APIError carries the upstream numeric status so handlers can surface
// it without parsing error strings
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("image API request failed with status %d: %s", e.StatusCode, e.Message)
}

package generate

// Request represents the request body for image generation
type Request struct {
	Prompt string `json:"prompt" binding:"required"`
	Ratio  string `json:"ratio"`
	Style  string `json:"style"`
	Model  string `json:"model"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Response represents a successful generation
type Response struct {
	Blocked          bool   `json:"blocked"`
	Base64           string `json:"base64"`
	Ratio            string `json:"ratio,omitempty"`
	Size             string `json:"size"`
	Style            string `json:"style,omitempty"`
	Model            string `json:"model"`
	CreditsRemaining *int   `json:"creditsRemaining"`
}

package upscale

// Request represents the request body for an upscale
type Request struct {
	OriginalPrompt string `json:"originalPrompt" binding:"required"`
	Ratio          string `json:"ratio"`
	Style          string `json:"style"`
	Model          string `json:"model"`
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
}

// Response represents a successful upscale
type Response struct {
	Blocked          bool   `json:"blocked"`
	Base64           string `json:"base64"`
	Ratio            string `json:"ratio,omitempty"`
	Size             string `json:"size"`
	Style            string `json:"style,omitempty"`
	Model            string `json:"model"`
	OriginalPrompt   string `json:"originalPrompt"`
	CreditsRemaining *int   `json:"creditsRemaining"`
}

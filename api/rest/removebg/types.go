package removebg

// Request represents the request body for background removal
type Request struct {
	OriginalPrompt string `json:"originalPrompt" binding:"required"`
	Style          string `json:"style"`
	Model          string `json:"model"`
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
}

// Response represents a successful background removal
type Response struct {
	Blocked          bool   `json:"blocked"`
	Base64           string `json:"base64"`
	Size             string `json:"size"`
	Style            string `json:"style,omitempty"`
	Model            string `json:"model"`
	OriginalPrompt   string `json:"originalPrompt"`
	CreditsRemaining *int   `json:"creditsRemaining"`
}

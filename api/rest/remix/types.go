package remix

// Request represents the request body for a remix
type Request struct {
	RemixPrompt    string `json:"remixPrompt" binding:"required"`
	OriginalPrompt string `json:"originalPrompt"`
	Ratio          string `json:"ratio"`
	Style          string `json:"style"`
	Model          string `json:"model"`
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
}

// Response represents a successful remix
type Response struct {
	Blocked          bool   `json:"blocked"`
	Base64           string `json:"base64"`
	Ratio            string `json:"ratio,omitempty"`
	Size             string `json:"size"`
	Style            string `json:"style,omitempty"`
	Model            string `json:"model"`
	IsRemix          bool   `json:"isRemix"`
	CreditsRemaining *int   `json:"creditsRemaining"`
}

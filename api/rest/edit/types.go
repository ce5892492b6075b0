package edit

// Request represents the request body for an image edit.
// At least one of OriginalPrompt or DescribeChange must be present.
type Request struct {
	OriginalPrompt string `json:"originalPrompt"`
	DescribeChange string `json:"describeChange"`
	Ratio          string `json:"ratio"`
	Style          string `json:"style"`
	Model          string `json:"model"`
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
}

// Response represents a successful edit
type Response struct {
	Blocked          bool   `json:"blocked"`
	Base64           string `json:"base64"`
	Ratio            string `json:"ratio,omitempty"`
	Size             string `json:"size"`
	Style            string `json:"style,omitempty"`
	Model            string `json:"model"`
	OriginalPrompt   string `json:"originalPrompt,omitempty"`
	DescribeChange   string `json:"describeChange,omitempty"`
	CreditsRemaining *int   `json:"creditsRemaining"`
}

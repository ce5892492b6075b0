package orders

// one attached file, base64-encoded
type AttachmentRequest struct {
	Filename string `json:"filename" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// Request represents an order submission
type Request struct {
	Name        string              `json:"name"`
	Email       string              `json:"email" binding:"required,email"`
	Subject     string              `json:"subject"`
	Message     string              `json:"message"`
	Attachments []AttachmentRequest `json:"attachments"`
}

// Response confirms a submitted order
type Response struct {
	OrderRef string `json:"orderRef"`
	Sent     bool   `json:"sent"`
}

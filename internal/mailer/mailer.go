package mailer

import "context"

// Attachment is one file attached to an outbound message.
// Content is base64-encoded, as received from the client.
type Attachment struct {
	Filename string
	Content  string
}

// Message is one outbound transactional email
type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Mailer delivers transactional email
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

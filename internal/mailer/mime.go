package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"path/filepath"
)

// assembles a multipart/mixed MIME message with an HTML body and
// base64-encoded attachments, as required by SES raw mode
func buildMIME(from string, msg Message) ([]byte, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", writer.Boundary())

	// HTML body part
	bodyHeader := textproto.MIMEHeader{}
	bodyHeader.Set("Content-Type", "text/html; charset=utf-8")
	bodyHeader.Set("Content-Transfer-Encoding", "quoted-printable")

	bodyPart, err := writer.CreatePart(bodyHeader)
	if err != nil {
		return nil, err
	}

	qp := quotedprintable.NewWriter(bodyPart)
	if _, err := qp.Write([]byte(msg.HTMLBody)); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}

	for _, attachment := range msg.Attachments {
		raw, err := base64.StdEncoding.DecodeString(attachment.Content)
		if err != nil {
			return nil, fmt.Errorf("attachment %q is not valid base64: %w", attachment.Filename, err)
		}

		header := textproto.MIMEHeader{}
		header.Set("Content-Type", contentTypeFor(attachment.Filename))
		header.Set("Content-Transfer-Encoding", "base64")
		header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.Filename))

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, err
		}

		if err := writeBase64Wrapped(part, raw); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// guesses the content type from the filename extension
func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}

	return "application/octet-stream"
}

// RFC 2045 requires encoded lines no longer than 76 characters
func writeBase64Wrapped(w io.Writer, raw []byte) error {
	encoded := base64.StdEncoding.EncodeToString(raw)

	const lineLen = 76
	for len(encoded) > 0 {
		n := lineLen
		if len(encoded) < n {
			n = len(encoded)
		}

		if _, err := w.Write([]byte(encoded[:n] + "\r\n")); err != nil {
			return err
		}

		encoded = encoded[n:]
	}

	return nil
}

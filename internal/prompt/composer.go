package prompt

import "strings"

// fixed product framing appended to every composed prompt.
// Clause order matters downstream: the generator weighs earlier phrases
// more heavily, so style and framing come before the user's text.
const productFraming = "high quality product artwork suitable for print"

// input for prompt composition
type ComposeInput struct {
	// short style key or full style description; empty skips the clause
	Style string

	// ratio token used as a composition hint (e.g. "16:9"); empty skips
	Ratio string

	// the user's literal prompt text
	Text string
}

// input for edit-family composition (edit, upscale, remix, background removal)
type ComposeEditInput struct {
	Style string
	Ratio string

	// description of the original image being modified
	OriginalPrompt string

	// the requested change
	DescribeChange string
}

// assembles the final instruction for a fresh generation.
// Non-empty clauses are joined with single spaces in fixed order:
// style, product framing, ratio hint, user text.
func Compose(in ComposeInput) string {
	parts := make([]string, 0, 4)

	if in.Style != "" {
		parts = append(parts, StyleDescription(in.Style)+".")
	}

	parts = append(parts, productFraming+".")

	if in.Ratio != "" {
		parts = append(parts, "Composition for a "+in.Ratio+" aspect ratio.")
	}

	if in.Text != "" {
		parts = append(parts, in.Text)
	}

	return strings.Join(parts, " ")
}

// assembles the final instruction for the edit family. The original
// description and change instruction replace the raw user text.
func ComposeEdit(in ComposeEditInput) string {
	parts := make([]string, 0, 5)

	if in.Style != "" {
		parts = append(parts, StyleDescription(in.Style)+".")
	}

	parts = append(parts, productFraming+".")

	if in.Ratio != "" {
		parts = append(parts, "Composition for a "+in.Ratio+" aspect ratio.")
	}

	if in.OriginalPrompt != "" {
		parts = append(parts, "Original image: "+in.OriginalPrompt+".")
	}

	if in.DescribeChange != "" {
		parts = append(parts, "Requested change: "+in.DescribeChange)
	}

	return strings.Join(parts, " ")
}

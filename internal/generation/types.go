package generation

// Kind selects the prompt-composition variant for an operation.
// The policy stages are identical across kinds; only composition differs.
type Kind string

const (
	KindGenerate         Kind = "generate"
	KindEdit             Kind = "edit"
	KindUpscale          Kind = "upscale"
	KindRemix            Kind = "remix"
	KindRemoveBackground Kind = "remove_background"
)

// Input describes one generation operation after the gate has passed
type Input struct {
	Kind Kind

	// fresh-generation text (KindGenerate only)
	Prompt string

	// edit-family context
	OriginalPrompt string
	DescribeChange string

	Ratio string
	Style string
	Model string
}

// Output is the shaped result of one generation
type Output struct {
	Base64 string
	Ratio  string
	Size   string
	Style  string
	Model  string
}

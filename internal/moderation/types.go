package moderation

import "context"

// Decision is the sole output of content classification
type Decision string

const (
	DecisionSafe        Decision = "safe"
	DecisionBlockMinor  Decision = "block_minor"
	DecisionBlockNSFW   Decision = "block_nsfw"
	DecisionBlockPolicy Decision = "block_policy"
)

// classifies free text into exactly one Decision
type Classifier interface {
	Classify(ctx context.Context, text string) (Decision, error)
}

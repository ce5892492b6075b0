package generation

import (
	"context"
	"fmt"

	"github.com/pixelsmith/server/internal/imagegen"
	"github.com/pixelsmith/server/internal/prompt"
)

// built-in change instructions for the fixed-purpose kinds
const (
	upscaleInstruction          = "recreate the image at maximum detail and sharpness, preserving the original composition exactly"
	removeBackgroundInstruction = "isolate the main subject on a plain transparent-style white background, removing all background elements"
)

// Service composes prompts and invokes the image backend.
// It runs strictly after the policy gate has allowed a request.
type Service struct {
	images       imagegen.Client
	defaultModel string
}

// creates a generation service
func New(images imagegen.Client, defaultModel string) *Service {
	return &Service{
		images:       images,
		defaultModel: defaultModel,
	}
}

// composes the final instruction for the input's kind
func (s *Service) composePrompt(in Input) string {
	switch in.Kind {
	case KindGenerate:
		return prompt.Compose(prompt.ComposeInput{
			Style: in.Style,
			Ratio: in.Ratio,
			Text:  in.Prompt,
		})

	case KindUpscale:
		return prompt.ComposeEdit(prompt.ComposeEditInput{
			Style:          in.Style,
			Ratio:          in.Ratio,
			OriginalPrompt: in.OriginalPrompt,
			DescribeChange: upscaleInstruction,
		})

	case KindRemoveBackground:
		return prompt.ComposeEdit(prompt.ComposeEditInput{
			Style:          in.Style,
			OriginalPrompt: in.OriginalPrompt,
			DescribeChange: removeBackgroundInstruction,
		})

	default: // KindEdit, KindRemix
		return prompt.ComposeEdit(prompt.ComposeEditInput{
			Style:          in.Style,
			Ratio:          in.Ratio,
			OriginalPrompt: in.OriginalPrompt,
			DescribeChange: in.DescribeChange,
		})
	}
}

// runs one generation: normalize ratio, compose the instruction, call
// the backend. Upstream failures propagate to the handler, which maps
// them onto the fallback-image error shape.
func (s *Service) Create(ctx context.Context, in Input) (*Output, error) {
	size := prompt.NormalizeRatio(in.Ratio)
	composed := s.composePrompt(in)

	model := in.Model
	if model == "" {
		model = s.defaultModel
	}

	resp, err := s.images.Generate(ctx, imagegen.Request{
		Model:  model,
		Prompt: composed,
		Size:   size,
		Count:  1,
	})

	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	return &Output{
		Base64: resp.Base64,
		Ratio:  in.Ratio,
		Size:   size,
		Style:  in.Style,
		Model:  resp.Model,
	}, nil
}

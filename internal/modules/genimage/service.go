package genimage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travelbook/internal/modules/upload"

	"google.golang.org/genai"
)

var (
	ErrDisabled  = errors.New("image generation is not configured")
	ErrNoImage   = errors.New("model returned no image")
	ErrBadPrompt = errors.New("prompt is empty")
)

// Service generates package cover images with the Gemini API and stores the
// result through the upload service so the admin form can use the returned
// URL like any other gallery entry.
type Service struct {
	apiKey  string
	model   string
	uploads *upload.Service
}

func NewService(apiKey, model string, uploads *upload.Service) *Service {
	return &Service{apiKey: apiKey, model: model, uploads: uploads}
}

func (s *Service) Enabled() bool { return s.apiKey != "" }

func (s *Service) Generate(ctx context.Context, userID int64, prompt string) (*upload.Upload, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrBadPrompt
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: "Generate a single photorealistic travel marketing image. " + prompt},
		},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		s.model,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature:        genai.Ptr(float32(0.4)),
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, ErrNoImage
	}

	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = "image/png"
			}
			return s.uploads.SaveGenerated(ctx, userID, part.InlineData.Data, mimeType)
		}
	}

	return nil, ErrNoImage
}

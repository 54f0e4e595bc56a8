package classify

import (
	"context"
	"fmt"
	"strings"

	"fixitplus-be/internal/category"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// GeminiClassifier categorizes issue photos with the Gemini API.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

func NewGeminiClassifier(ctx context.Context, apiKey string) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClassifier{client: client, model: defaultModel}, nil
}

func classifyPrompt() string {
	return fmt.Sprintf(
		"Analyze this image of a local issue. Categorize it into one of the following: %s. "+
			"Return only the category name as a single string. For example: \"Electrical\".",
		strings.Join(category.Names(), ", "),
	)
}

func (c *GeminiClassifier) Classify(ctx context.Context, image []byte) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(image, "image/jpeg"),
		genai.NewPartFromText(classifyPrompt()),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini classify failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty answer")
	}

	return text, nil
}

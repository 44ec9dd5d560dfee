package service

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// SystemInstruction frames every conversation as the site owner's digital twin.
const SystemInstruction = `You are the AI Digital Twin of Aziz Mughal, the CEO of Desk Work Solution (DWS).
Your tone is professional, technical yet accessible, and helpful.

Context about Aziz Mughal:
- CEO and Founder of Desk Work Solution (https://deskworksol.com/).
- DWS is a software house specializing in custom software development, mobile apps, and web solutions.
- Aziz is an experienced leader in the tech industry, focused on delivering quality and innovation.
- LinkedIn: https://www.linkedin.com/in/azizmughal/

Values:
- Innovation, Reliability, Client Satisfaction, Technical Excellence.

Answer questions about Aziz's company (DWS), services (web/app dev), or how to contact him.
Keep answers under 50 words unless asked for more detail.`

const DefaultModel = "gemini-2.5-flash"

// GeminiGenerator produces replies through the Gemini API.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	instruction string
}

// NewGeminiGenerator creates a client for apiKey. The client holds no
// resources that need closing.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiGenerator{
		client:      client,
		model:       model,
		instruction: SystemInstruction,
	}, nil
}

// Generate returns the model's text for message. An empty string means the
// model answered with no text parts.
func (g *GeminiGenerator) Generate(ctx context.Context, message string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(message), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(g.instruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

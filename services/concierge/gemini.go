package concierge

import (
	"context"
	"fmt"
	"strings"

	"shalfa/i18n"
	"shalfa/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Completer produces the assistant's next reply. history is the transcript
// before the message being answered.
type Completer interface {
	Complete(ctx context.Context, history []models.ChatMessage, message string, lang i18n.Language) (string, error)
}

// GeminiCompleter backs the concierge with the Gemini API.
type GeminiCompleter struct {
	client    *genai.Client
	modelName string
}

func NewGeminiCompleter(ctx context.Context, apiKey, modelName string) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiCompleter{client: client, modelName: modelName}, nil
}

func (g *GeminiCompleter) Complete(ctx context.Context, history []models.ChatMessage, message string, lang i18n.Language) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction(lang))},
	}
	model.SetTemperature(0.3)
	model.SetTopK(40)

	chat := model.StartChat()
	chat.History = toGenaiHistory(history)

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini send error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func toGenaiHistory(history []models.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == models.RoleAssistant {
			role = "model"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}
	return out
}

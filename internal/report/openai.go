package report

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/Amankrah/green-means-go-sub001/internal/results"
)

// Compile-time interface check
var _ Generator = (*OpenAI)(nil)

// systemPrompt frames the model as an LCA reporting specialist.
const systemPrompt = "You are an agricultural life-cycle assessment specialist writing " +
	"clear, professional sustainability reports for farms in West Africa. " +
	"Be concrete, avoid jargon, and never invent numbers that are not in the data."

// ChatService defines the interface for making chat completion API calls.
// This abstraction enables testing without calling the real OpenAI API.
type ChatService interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAI implements report generation using OpenAI's chat API.
type OpenAI struct {
	chat  ChatService
	model openai.ChatModel
}

// NewOpenAI creates a new OpenAI report generator.
func NewOpenAI(apiKey, model string) *OpenAI {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{
		chat:  client.Chat.Completions,
		model: openai.ChatModel(model),
	}
}

// Generate writes a narrative report for the normalized assessment.
func (o *OpenAI) Generate(ctx context.Context, n *results.Normalized) (string, error) {
	resp, err := o.chat.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.F(o.model),
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(n)),
		}),
	})
	if err != nil {
		return "", fmt.Errorf("report generation failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("report generation failed: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

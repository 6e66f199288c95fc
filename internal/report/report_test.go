package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/Amankrah/green-means-go-sub001/internal/results"
)

func sampleNormalized() *results.Normalized {
	return &results.Normalized{
		ID:             "assess-1",
		CompanyName:    "Ashanti Agro Ltd",
		Country:        "Ghana",
		AssessmentDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		SingleScore:    0.45,
		Interpretation: results.ClassifyScore(0.45),
		Midpoints: map[string]results.Metric{
			"climate_change": {Value: 96000, Unit: "kg CO2-eq", Display: "96,000.00"},
			"land_use":       {Value: 0, Display: "N/A"},
		},
		Crops: []results.CropBreakdown{
			{
				Name:          "Cassava",
				QuantityKg:    48000,
				QuantityKnown: true,
				PerKg: map[string]results.Metric{
					"climate_change": {Value: 2, Unit: "kg CO2-eq", Display: "2.00"},
				},
			},
			{
				Name: "Backyard greens",
				PerKg: map[string]results.Metric{
					"climate_change": {Value: 120, Unit: "kg CO2-eq", Display: "120.00"},
				},
			},
		},
		Warnings: []string{"regional proxy factors in use"},
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(sampleNormalized())

	for _, want := range []string{
		"Ashanti Agro Ltd",
		"Ghana",
		"14 March 2025",
		"0.450",
		"climate_change: 96,000.00 kg CO2-eq",
		"land_use: N/A",
		"Cassava (48000 kg produced)",
		"Backyard greens (production quantity unknown)",
		"regional proxy factors in use",
		"must not be described as zero impact",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\n\nprompt:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_NoCropsNoWarnings(t *testing.T) {
	n := sampleNormalized()
	n.Crops = nil
	n.Warnings = nil

	prompt := buildPrompt(n)
	if strings.Contains(prompt, "Per-crop impact intensity") {
		t.Error("prompt has crop section without crops")
	}
	if strings.Contains(prompt, "Data quality caveats") {
		t.Error("prompt has caveat section without warnings")
	}
}

type mockChatService struct {
	resp      *openai.ChatCompletion
	err       error
	gotParams openai.ChatCompletionNewParams
}

func (m *mockChatService) New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error) {
	m.gotParams = params
	return m.resp, m.err
}

func TestOpenAI_Generate(t *testing.T) {
	chat := &mockChatService{
		resp: &openai.ChatCompletion{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "Executive summary: moderate impact."}},
			},
		},
	}
	gen := &OpenAI{chat: chat, model: "gpt-4o-mini"}

	text, err := gen.Generate(context.Background(), sampleNormalized())
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	if text != "Executive summary: moderate impact." {
		t.Errorf("text = %q", text)
	}
	if chat.gotParams.Model.Value != "gpt-4o-mini" {
		t.Errorf("model = %v, want gpt-4o-mini", chat.gotParams.Model.Value)
	}
	if len(chat.gotParams.Messages.Value) != 2 {
		t.Errorf("messages = %d, want system + user", len(chat.gotParams.Messages.Value))
	}
}

func TestOpenAI_GenerateError(t *testing.T) {
	chat := &mockChatService{err: errors.New("rate limited")}
	gen := &OpenAI{chat: chat, model: "gpt-4o-mini"}

	_, err := gen.Generate(context.Background(), sampleNormalized())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "report generation failed") {
		t.Errorf("error = %v", err)
	}
}

func TestOpenAI_EmptyCompletion(t *testing.T) {
	chat := &mockChatService{resp: &openai.ChatCompletion{}}
	gen := &OpenAI{chat: chat, model: "gpt-4o-mini"}

	_, err := gen.Generate(context.Background(), sampleNormalized())
	if err == nil {
		t.Fatal("expected error for empty completion")
	}
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Generate(context.Background(), sampleNormalized())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

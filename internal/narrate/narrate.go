// Package narrate turns a simulation result into a short plain-language
// summary via Gemini. It is entirely optional: with no API key configured,
// Narrate is a no-op that returns an empty string rather than an error, so
// the rest of the engine never has a hard dependency on an LLM being
// reachable.
package narrate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mdruszcz/econ/internal/engine"
)

const defaultModel = "gemini-2.0-flash-exp"

// Narrator wraps a Gemini client; a nil Narrator (or one built with an empty
// API key) makes Narrate a no-op.
type Narrator struct {
	apiKey string
	model  string
}

// New builds a Narrator. If apiKey is empty, every Narrate call returns ""
// without making a network call.
func New(apiKey string) *Narrator {
	return &Narrator{apiKey: apiKey, model: defaultModel}
}

// Narrate produces a two-to-three sentence summary of a simulation's
// headline impacts.
func (n *Narrator) Narrate(ctx context.Context, out engine.SimulationOutput) (string, error) {
	if n == nil || n.apiKey == "" {
		return "", nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  n.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("narrate: create client: %w", err)
	}

	prompt := buildPrompt(out)
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.3)),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: "You are an economist summarizing a macroeconomic policy simulation in plain language, in 2-3 sentences."},
			},
		},
	}

	result, err := client.Models.GenerateContent(ctx, n.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("narrate: generate: %w", err)
	}
	return result.Text(), nil
}

func buildPrompt(out engine.SimulationOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario %q over %d years.\n", out.Name, len(out.Years))
	fmt.Fprintf(&b, "Instruments: %v\n", out.Instruments)
	if n := len(out.Years); n > 0 {
		fmt.Fprintf(&b, "Final-year GDP growth: baseline %.2f%%, scenario %.2f%%.\n",
			out.BaselineIndicators.GDPGrowth[n-1],
			out.ScenarioIndicators.GDPGrowth[n-1])
		fmt.Fprintf(&b, "Final-year unemployment: baseline %.2f%%, scenario %.2f%%.\n",
			out.BaselineIndicators.Unemployment[n-1],
			out.ScenarioIndicators.Unemployment[n-1])
	}
	return b.String()
}

// Package llm generates adaptive concept explanations via an OpenAI-compatible
// chat completion endpoint (Groq / HeckAI / any compatible provider).
//
// This boundary never fails upward: any upstream error is logged and mapped to
// a fixed fallback explanation so a learning request always succeeds.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// maxExplanationTokens bounds the generated explanation length.
const maxExplanationTokens = 400

// Hints injected into the prompt based on the learner's cognitive state.
const (
	hintOptimal    = "The learner is in a focused, relaxed state, use rich detail."
	hintDistracted = "The learner appears distracted, keep the explanation very short and concrete."
)

// Config holds client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client calls the chat completion endpoint to produce explanations.
type Client struct {
	api   *openai.Client
	model string
	log   zerolog.Logger
}

// New creates a new explanation client.
func New(cfg Config, log zerolog.Logger) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: cfg.Model,
		log:   log.With().Str("client", "llm").Logger(),
	}
}

// FallbackExplanation is the fixed substitute used when generation fails.
func FallbackExplanation(concept string) string {
	return fmt.Sprintf("Explanation for %q could not be generated right now. Please check your API key and try again.", concept)
}

// Explain asks the model for a beginner-friendly explanation of the concept,
// adapted to the learner's mastery level and (optionally) cognitive state.
// optimalState is nil when no EEG data accompanied the request.
//
// Never returns an error: timeouts, auth failures and malformed responses all
// degrade to the fixed fallback string.
func (c *Client) Explain(ctx context.Context, concept string, mastery float64, optimalState *bool) string {
	prompt := buildPrompt(concept, mastery, optimalState)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: maxExplanationTokens,
	})
	if err != nil {
		c.log.Warn().Err(err).Str("concept", concept).Msg("LLM call failed")
		return FallbackExplanation(concept)
	}

	if len(resp.Choices) == 0 {
		c.log.Warn().Str("concept", concept).Msg("LLM returned no choices")
		return FallbackExplanation(concept)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// buildPrompt assembles the explanation prompt. The cognitive hint line is
// empty when no EEG state was computed.
func buildPrompt(concept string, mastery float64, optimalState *bool) string {
	hint := ""
	if optimalState != nil {
		if *optimalState {
			hint = hintOptimal
		} else {
			hint = hintDistracted
		}
	}

	return fmt.Sprintf(
		"Explain %q to a complete beginner.\n"+
			"Current mastery level: %.1f%%\n"+
			"%s\n"+
			"Use a real-world analogy, one short example, and finish with a single "+
			"actionable next step the learner can take today.",
		concept, mastery, hint,
	)
}

// Package llmadapter backs the ports.LLM capability with OpenAI's chat
// completion API. When no API key is configured it degrades to canned
// responses so offline runs and tests keep working.
package llmadapter

import (
	"context"
	"fmt"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/axobase/egde/ports"
)

const defaultModel = openai.GPT4oMini

// OpenAILLM implements ports.LLM over an OpenAI client.
type OpenAILLM struct {
	client *openai.Client
	model  string
}

// NewFromEnv builds an adapter from OPENAI_API_KEY. With the key unset the
// adapter stays usable but answers every Think call with a mock response.
func NewFromEnv() *OpenAILLM {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, using mock responses")
		return &OpenAILLM{model: defaultModel}
	}
	return &OpenAILLM{client: openai.NewClient(apiKey), model: defaultModel}
}

// New builds an adapter around an explicit client, for tests.
func New(client *openai.Client, model string) *OpenAILLM {
	if model == "" {
		model = defaultModel
	}
	return &OpenAILLM{client: client, model: model}
}

// Think sends one prompt and returns the model's reply, honoring the
// option bounds the decision engine passes (temperature, max tokens, and
// the deliberation timeout).
func (l *OpenAILLM) Think(ctx context.Context, prompt string, opts ports.LLMOptions) (string, error) {
	if l.client == nil {
		return mockResponse(), nil
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       l.model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are the decision faculty of an autonomous economic agent. Answer strictly in the requested format."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := l.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", ports.NewPortFailure("llm", err)
	}
	if len(resp.Choices) == 0 {
		return "", ports.NewPortFailure("llm", fmt.Errorf("empty completion"))
	}
	return resp.Choices[0].Message.Content, nil
}

// mockResponse is a canonical decision block the parser accepts, so a
// keyless process still drives its survival loops.
func mockResponse() string {
	return "STRATEGY_ID: enter-dormancy\n" +
		"ACTION: enter-dormancy\n" +
		"CONFIDENCE: 0.5\n" +
		"REASONING: offline mode, conserving until a language model is configured\n" +
		"RISK_ASSESSMENT: low"
}

var _ ports.LLM = (*OpenAILLM)(nil)

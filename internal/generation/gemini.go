package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiGenerator produces messages with the Gemini API.
type GeminiGenerator struct {
	client    *genai.Client
	modelName string
}

// NewGeminiGenerator creates a generator backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultGeminiModel
	}

	return &GeminiGenerator{client: client, modelName: model}, nil
}

// GenerateReply asks Gemini for a single reply in the requested style and
// approach.
func (g *GeminiGenerator) GenerateReply(ctx context.Context, req ReplyRequest) (string, error) {
	prompt := buildReplyPrompt(req)
	return g.generate(ctx, prompt)
}

// GenerateOpeners asks Gemini for conversation starters, one per line.
func (g *GeminiGenerator) GenerateOpeners(ctx context.Context, req OpenerRequest) ([]string, error) {
	if req.Count <= 0 {
		req.Count = 3
	}

	prompt := buildOpenerPrompt(req)
	output, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var openers []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
		if line == "" {
			continue
		}
		openers = append(openers, line)
		if len(openers) == req.Count {
			break
		}
	}
	if len(openers) == 0 {
		return nil, errors.New("gemini api returned no usable openers")
	}
	return openers, nil
}

func (g *GeminiGenerator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}

func buildReplyPrompt(req ReplyRequest) string {
	var b strings.Builder
	b.WriteString("You are replying in a dating app chat. Write one short, natural message.\n")
	fmt.Fprintf(&b, "Tone: %s intensity, humor %.1f, directness %.1f, emoji usage %s.\n",
		req.Style.Intensity, req.Style.HumorLevel, req.Style.Directness, req.Style.EmojiUsage)
	fmt.Fprintf(&b, "Approach: %s.\n", req.Approach)
	if len(req.SharedInterests) > 0 {
		fmt.Fprintf(&b, "Shared interests: %s.\n", strings.Join(req.SharedInterests, ", "))
	}
	if req.ContextSummary != "" {
		fmt.Fprintf(&b, "Conversation so far: %s\n", req.ContextSummary)
	}
	if req.IncomingMessage != "" {
		fmt.Fprintf(&b, "They just said: %q\n", req.IncomingMessage)
	}
	b.WriteString("Reply with the message only, no quotes or preamble.")
	return b.String()
}

func buildOpenerPrompt(req OpenerRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d conversation starters for a dating app match", req.Count)
	if req.MatchName != "" {
		fmt.Fprintf(&b, " named %s", req.MatchName)
	}
	b.WriteString(".\n")
	fmt.Fprintf(&b, "Tone: %s intensity, humor %.1f, emoji usage %s.\n",
		req.Style.Intensity, req.Style.HumorLevel, req.Style.EmojiUsage)
	if len(req.SharedInterests) > 0 {
		fmt.Fprintf(&b, "You both like: %s.\n", strings.Join(req.SharedInterests, ", "))
	}
	if req.MatchBio != "" {
		fmt.Fprintf(&b, "Their bio: %q\n", req.MatchBio)
	}
	b.WriteString("One starter per line, no numbering.")
	return b.String()
}

package generation

import (
	"context"

	"github.com/tundeajayi/sparkmatch-backend/internal/conversation"
)

// StyleParameters tune how forward a generated message reads.
type StyleParameters struct {
	Intensity  string  `json:"intensity"`   // subtle, moderate, bold
	HumorLevel float64 `json:"humor_level"` // 0..1
	Directness float64 `json:"directness"`  // 0..1
	EmojiUsage string  `json:"emoji_usage"` // none, light, frequent
}

// Named flirting styles and their parameters.
var stylePresets = map[string]StyleParameters{
	"playful":      {Intensity: "moderate", HumorLevel: 0.9, Directness: 0.5, EmojiUsage: "frequent"},
	"romantic":     {Intensity: "bold", HumorLevel: 0.3, Directness: 0.7, EmojiUsage: "light"},
	"direct":       {Intensity: "bold", HumorLevel: 0.4, Directness: 0.9, EmojiUsage: "none"},
	"intellectual": {Intensity: "subtle", HumorLevel: 0.5, Directness: 0.4, EmojiUsage: "none"},
	"casual":       {Intensity: "subtle", HumorLevel: 0.6, Directness: 0.3, EmojiUsage: "light"},
}

const defaultStyle = "casual"

// StyleFor resolves a named flirting style to its parameters, falling
// back to the casual preset for unknown names.
func StyleFor(name string) StyleParameters {
	if params, ok := stylePresets[name]; ok {
		return params
	}
	return stylePresets[defaultStyle]
}

// ReplyRequest describes the message to generate.
type ReplyRequest struct {
	Style           StyleParameters
	Approach        conversation.Approach
	IncomingMessage string
	ContextSummary  string
	SharedInterests []string
}

// OpenerRequest describes conversation starters to generate.
type OpenerRequest struct {
	Style           StyleParameters
	MatchName       string
	SharedInterests []string
	MatchBio        string
	Count           int
}

// Generator produces flirty replies and conversation openers.
type Generator interface {
	GenerateReply(ctx context.Context, req ReplyRequest) (string, error)
	GenerateOpeners(ctx context.Context, req OpenerRequest) ([]string, error)
}

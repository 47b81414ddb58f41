package generation

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/tundeajayi/sparkmatch-backend/internal/conversation"
)

// fallbackReplies are canned replies keyed by style intensity, used when
// no AI backend is available or the backend call fails.
var fallbackReplies = map[string][]string{
	"subtle": {
		"That's interesting! Tell me more about that.",
		"I like how you put that. What got you into it?",
		"Sounds like there's a story there.",
	},
	"moderate": {
		"I love that perspective! What made you think of that?",
		"Okay, you have my attention. Go on.",
		"Ha, I was hoping you'd say something like that.",
	},
	"bold": {
		"You've definitely caught my attention! What else should I know about you?",
		"Careful, keep talking like that and I might actually like you.",
		"You're trouble, I can tell. Tell me more.",
	},
}

var fallbackOpenerTemplates = []string{
	"I noticed we both love %s. What got you into it?",
	"Okay, important question: what's your favorite thing about %s?",
	"A fellow %s fan! I knew you had good taste.",
}

var genericOpeners = []string{
	"Your profile made me smile. What's the best part of your week so far?",
	"If you could be anywhere right now, where would it be?",
	"Two truths and a lie, go!",
}

// FallbackGenerator produces canned messages without any external
// service. A seeded source makes its output reproducible in tests.
type FallbackGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallbackGenerator creates a fallback generator drawing from the
// given random source.
func NewFallbackGenerator(rng *rand.Rand) *FallbackGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &FallbackGenerator{rng: rng}
}

// GenerateReply picks a canned reply matching the style intensity.
// Unknown intensities fall back to the subtle set.
func (f *FallbackGenerator) GenerateReply(ctx context.Context, req ReplyRequest) (string, error) {
	replies, ok := fallbackReplies[req.Style.Intensity]
	if !ok {
		replies = fallbackReplies["subtle"]
	}

	if req.Approach == conversation.ApproachQuestionBased {
		// Question-based openings always lead with curiosity.
		return replies[0], nil
	}

	f.mu.Lock()
	reply := replies[f.rng.Intn(len(replies))]
	f.mu.Unlock()
	return reply, nil
}

// GenerateOpeners builds starters from shared interests, padding with
// generic openers when interests run out.
func (f *FallbackGenerator) GenerateOpeners(ctx context.Context, req OpenerRequest) ([]string, error) {
	count := req.Count
	if count <= 0 {
		count = 3
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var openers []string
	for i, interest := range req.SharedInterests {
		if len(openers) == count {
			break
		}
		template := fallbackOpenerTemplates[i%len(fallbackOpenerTemplates)]
		openers = append(openers, fmt.Sprintf(template, strings.ToLower(interest)))
	}
	for len(openers) < count {
		openers = append(openers, genericOpeners[f.rng.Intn(len(genericOpeners))])
	}
	return openers, nil
}

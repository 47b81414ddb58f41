package conversation

import (
	"sort"
	"strings"
)

// Engagement thresholds. Counts and word averages are strict
// greater-than comparisons.
const (
	highEngagementMessages   = 10
	highEngagementAvgWords   = 15
	mediumEngagementMessages = 5
	mediumEngagementAvgWords = 8

	deepConversationAvgWords = 20

	fastResponseMinutes     = 30
	moderateResponseMinutes = 120
)

// topicKeywords maps a topic label to the keywords that signal it in
// message text.
var topicKeywords = map[string][]string{
	"music":      {"music", "song", "concert", "band", "album", "playlist"},
	"travel":     {"travel", "trip", "vacation", "country", "city", "flight"},
	"food":       {"food", "restaurant", "cooking", "recipe", "dinner", "cuisine"},
	"work":       {"work", "job", "career", "office", "business", "startup"},
	"hobbies":    {"hobby", "hiking", "reading", "gaming", "painting", "photography"},
	"movies":     {"movie", "film", "series", "show", "cinema", "netflix"},
	"sports":     {"sport", "gym", "football", "basketball", "running", "yoga"},
	"books":      {"book", "novel", "author", "reading", "story"},
	"defi":       {"defi", "yield", "staking", "liquidity", "protocol"},
	"nft":        {"nft", "mint", "collection", "opensea", "pfp"},
	"coding":     {"coding", "programming", "developer", "software", "code"},
	"crypto":     {"crypto", "bitcoin", "ethereum", "token", "wallet"},
	"blockchain": {"blockchain", "web3", "dao", "smart contract", "onchain"},
}

// Analyzer derives engagement metrics from conversation state.
type Analyzer struct{}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes the engagement snapshot for a conversation. An empty
// conversation yields low engagement with no topics.
func (a *Analyzer) Analyze(state *State) *EngagementSnapshot {
	snapshot := &EngagementSnapshot{
		Engagement:   EngagementLow,
		ResponseTime: ResponseSlow,
		Depth:        DepthShallow,
		Topics:       []string{},
	}
	if state == nil || len(state.Messages) == 0 {
		snapshot.Suggestions = suggestionsFor(snapshot)
		return snapshot
	}

	snapshot.TotalMessages = len(state.Messages)
	snapshot.AvgMessageWords = averageWords(state.Messages)
	snapshot.AvgResponseMinutes = averageResponseMinutes(state.Messages)
	snapshot.Topics = detectTopics(state.Messages)

	snapshot.Engagement = engagementLevel(snapshot.TotalMessages, snapshot.AvgMessageWords)
	snapshot.ResponseTime = responseBucket(snapshot.AvgResponseMinutes)
	if snapshot.AvgMessageWords > deepConversationAvgWords {
		snapshot.Depth = DepthDeep
	}
	snapshot.Suggestions = suggestionsFor(snapshot)

	return snapshot
}

// Summarize builds the listing view of a conversation.
func (a *Analyzer) Summarize(state *State) *Summary {
	snapshot := a.Analyze(state)
	summary := &Summary{
		ConversationID: state.ID,
		Participants:   append([]string(nil), state.Participants...),
		LastActivity:   state.LastActivity,
		TotalMessages:  len(state.Messages),
		Tone:           state.Tone,
		Engagement:     snapshot.Engagement,
		Topics:         snapshot.Topics,
	}
	if len(state.Messages) > 0 {
		started := state.Messages[0].Timestamp
		summary.StartedAt = &started
	}
	return summary
}

func engagementLevel(count int, avgWords float64) string {
	switch {
	case count > highEngagementMessages && avgWords > highEngagementAvgWords:
		return EngagementHigh
	case count > mediumEngagementMessages && avgWords > mediumEngagementAvgWords:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

func responseBucket(avgMinutes float64) string {
	switch {
	case avgMinutes < fastResponseMinutes:
		return ResponseFast
	case avgMinutes < moderateResponseMinutes:
		return ResponseModerate
	default:
		return ResponseSlow
	}
}

func averageWords(messages []Message) float64 {
	total := 0
	for _, msg := range messages {
		total += len(strings.Fields(msg.Content))
	}
	return float64(total) / float64(len(messages))
}

// averageResponseMinutes averages the gap between consecutive messages.
// With a single message the average is zero, which buckets as fast.
func averageResponseMinutes(messages []Message) float64 {
	var total float64
	count := 0
	for i := 1; i < len(messages); i++ {
		gap := messages[i].Timestamp.Sub(messages[i-1].Timestamp)
		if gap < 0 {
			continue
		}
		total += gap.Minutes()
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func detectTopics(messages []Message) []string {
	var combined strings.Builder
	for _, msg := range messages {
		combined.WriteString(strings.ToLower(msg.Content))
		combined.WriteString(" ")
	}
	text := combined.String()

	var topics []string
	for topic, keywords := range topicKeywords {
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				topics = append(topics, topic)
				break
			}
		}
	}
	sort.Strings(topics)
	if topics == nil {
		topics = []string{}
	}
	return topics
}

func suggestionsFor(snapshot *EngagementSnapshot) []string {
	var suggestions []string
	if snapshot.Engagement == EngagementLow {
		suggestions = append(suggestions, "Ask an open-ended question to spark more conversation")
	}
	if snapshot.Depth == DepthShallow && snapshot.TotalMessages > mediumEngagementMessages {
		suggestions = append(suggestions, "Share something personal to deepen the connection")
	}
	if snapshot.ResponseTime == ResponseSlow && snapshot.TotalMessages > 0 {
		suggestions = append(suggestions, "Keep messages light while responses are slow")
	}
	if len(snapshot.Topics) == 0 {
		suggestions = append(suggestions, "Bring up a shared interest to find common ground")
	}
	if snapshot.Engagement == EngagementHigh {
		suggestions = append(suggestions, "Great momentum - consider suggesting a call or meetup")
	}
	return suggestions
}

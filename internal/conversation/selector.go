package conversation

import (
	"strings"
)

// earlyConversationMessages is the message count below which the
// conversation is treated as just starting.
const earlyConversationMessages = 3

// enthusiasmMarkers flag an incoming message as emotionally warm.
var enthusiasmMarkers = []string{"love", "enjoy", "passion"}

// SelectorInput carries everything the approach decision needs.
type SelectorInput struct {
	Snapshot        *EngagementSnapshot
	IncomingMessage string
	SharedInterests []string
	Intensity       string
}

// SelectApproach picks a conversational approach from the current
// engagement state. The decision is deterministic: the same input always
// yields the same approach.
func SelectApproach(in SelectorInput) Approach {
	snapshot := in.Snapshot
	if snapshot == nil {
		snapshot = &EngagementSnapshot{Engagement: EngagementLow}
	}

	if snapshot.TotalMessages < earlyConversationMessages {
		if len(in.SharedInterests) > 0 {
			return ApproachSharedInterest
		}
		return ApproachQuestionBased
	}

	switch snapshot.Engagement {
	case EngagementMedium:
		if containsEnthusiasm(in.IncomingMessage) {
			return ApproachComplimentBase
		}
		return ApproachPlayfulTeasing
	case EngagementHigh:
		if in.Intensity == "bold" {
			return ApproachComplimentBase
		}
		return ApproachSharedInterest
	default:
		return ApproachGeneral
	}
}

func containsEnthusiasm(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range enthusiasmMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

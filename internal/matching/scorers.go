package matching

// Dimension scorers. Each is a pure function from two unordered label sets to
// a score in [0,1]. Missing data on either side yields the neutral 0.5 so a
// sparse profile is neither penalized nor rewarded.

const neutralScore = 0.5

// complementaryPersonalities lists personality pairs that work well together
// even without direct overlap.
var complementaryPersonalities = [][2]string{
	{"extrovert", "introvert"},
	{"analytical", "creative"},
	{"adventurous", "conservative"},
}

// compatibleBehaviors lists communication styles that reinforce each other.
var compatibleBehaviors = [][2]string{
	{"humorous", "playful"},
	{"intellectual", "analytical"},
	{"direct", "responsive"},
	{"emotional", "subtle"},
}

// jaccardScore computes |A∩B| / |A∪B| over normalized labels, with the
// neutral score when either side has no data.
func jaccardScore(a, b []string) float64 {
	setA := normalizeSet(a)
	setB := normalizeSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return neutralScore
	}

	intersection := 0
	for label := range setA {
		if setB[label] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// MusicScore scores music taste overlap.
func MusicScore(user []MusicGenre, candidate []string) float64 {
	return jaccardScore(genreStrings(user), candidate)
}

// HobbyScore scores hobby overlap.
func HobbyScore(user, candidate []string) float64 {
	return jaccardScore(user, candidate)
}

// LifestyleScore scores lifestyle overlap.
func LifestyleScore(user, candidate []string) float64 {
	return jaccardScore(user, candidate)
}

// PersonalityScore scores personality fit. Label overlap alone is not assumed
// sufficient here: a direct match scores high, a complementary pair scores
// medium, anything else low.
func PersonalityScore(user []PersonalityType, candidate []string) float64 {
	setA := normalizeSet(personalityStrings(user))
	setB := normalizeSet(candidate)
	if len(setA) == 0 || len(setB) == 0 {
		return neutralScore
	}

	for label := range setA {
		if setB[label] {
			return 0.8
		}
	}

	for _, pair := range complementaryPersonalities {
		if (setA[pair[0]] && setB[pair[1]]) || (setA[pair[1]] && setB[pair[0]]) {
			return 0.6
		}
	}

	return 0.3
}

// BehaviorScore scores communication-style fit: 0.3 per direct match plus a
// 0.2 bonus per compatible pair, capped at 1.0.
func BehaviorScore(user []BehaviorSignal, candidate []string) float64 {
	setA := normalizeSet(behaviorStrings(user))
	setB := normalizeSet(candidate)
	if len(setA) == 0 || len(setB) == 0 {
		return neutralScore
	}

	score := 0.0
	for label := range setA {
		if setB[label] {
			score += 0.3
		}
	}

	for _, pair := range compatibleBehaviors {
		if (setA[pair[0]] && setB[pair[1]]) || (setA[pair[1]] && setB[pair[0]]) {
			score += 0.2
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// sharedLabels returns the normalized intersection of two label sets,
// preserving the order of the first argument.
func sharedLabels(a, b []string) []string {
	setB := normalizeSet(b)
	seen := make(map[string]bool)
	var shared []string
	for _, label := range a {
		norm := NormalizeLabel(label)
		if norm == "" || seen[norm] || !setB[norm] {
			continue
		}
		seen[norm] = true
		shared = append(shared, norm)
	}
	return shared
}

func normalizeSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, label := range labels {
		if norm := NormalizeLabel(label); norm != "" {
			set[norm] = true
		}
	}
	return set
}

func genreStrings(genres []MusicGenre) []string {
	out := make([]string, len(genres))
	for i, g := range genres {
		out[i] = string(g)
	}
	return out
}

func personalityStrings(types []PersonalityType) []string {
	out := make([]string, len(types))
	for i, p := range types {
		out[i] = string(p)
	}
	return out
}

func behaviorStrings(signals []BehaviorSignal) []string {
	out := make([]string, len(signals))
	for i, b := range signals {
		out[i] = string(b)
	}
	return out
}

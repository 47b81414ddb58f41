package matching

import "fmt"

// Web3 compatibility scoring for the optional tech preference block. All
// scorers follow the same neutral-on-absence rule as the core dimensions.

var frontendLanguages = map[string]bool{
	"javascript": true, "typescript": true, "react": true, "vue": true,
}

var backendLanguages = map[string]bool{
	"solidity": true, "python": true, "rust": true, "go": true,
}

// tradingPairs lists trading philosophies that align without being identical.
var tradingPairs = map[[2]string]bool{
	{"hodler", "builder"}: true, // both long-term focused
	{"trader", "degen"}:   true, // both active trading
}

// techCompatibility averages the four Web3 sub-scores.
func techCompatibility(user, candidate *Web3Preferences) float64 {
	blockchain := blockchainScore(user, candidate)
	dev := devSynergyScore(user, candidate)
	trading := tradingAlignmentScore(user, candidate)
	community := communityOverlapScore(user, candidate)
	return (blockchain + dev + trading + community) / 4
}

func blockchainScore(user, candidate *Web3Preferences) float64 {
	return jaccardScore(user.FavoriteChains, candidate.FavoriteChains)
}

// devSynergyScore is language overlap plus a bonus when one side brings
// frontend skills and the other backend.
func devSynergyScore(user, candidate *Web3Preferences) float64 {
	if len(user.ProgrammingLanguages) == 0 || len(candidate.ProgrammingLanguages) == 0 {
		return neutralScore
	}

	score := jaccardScore(user.ProgrammingLanguages, candidate.ProgrammingLanguages)

	userFront, userBack := stackSides(user.ProgrammingLanguages)
	candFront, candBack := stackSides(candidate.ProgrammingLanguages)
	if (userFront && candBack) || (userBack && candFront) {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func tradingAlignmentScore(user, candidate *Web3Preferences) float64 {
	userStyle := NormalizeLabel(user.TradingStyle)
	candStyle := NormalizeLabel(candidate.TradingStyle)
	if userStyle == "" || candStyle == "" {
		return neutralScore
	}

	switch {
	case userStyle == candStyle:
		return 0.9
	case tradingPairs[[2]string{userStyle, candStyle}] || tradingPairs[[2]string{candStyle, userStyle}]:
		return 0.8
	default:
		return 0.3
	}
}

func communityOverlapScore(user, candidate *Web3Preferences) float64 {
	return jaccardScore(user.Communities, candidate.Communities)
}

func stackSides(languages []string) (frontend, backend bool) {
	for _, lang := range languages {
		norm := NormalizeLabel(lang)
		if frontendLanguages[norm] {
			frontend = true
		}
		if backendLanguages[norm] {
			backend = true
		}
	}
	return frontend, backend
}

// SharedProtocols lists shared chains and languages as display sentences,
// capped at three.
func SharedProtocols(user, candidate *Web3Preferences) []string {
	if user == nil || candidate == nil {
		return nil
	}

	var shared []string
	for _, chain := range sharedLabels(user.FavoriteChains, candidate.FavoriteChains) {
		shared = append(shared, fmt.Sprintf("Both love %s ecosystem", chain))
	}
	for _, lang := range sharedLabels(user.ProgrammingLanguages, candidate.ProgrammingLanguages) {
		shared = append(shared, fmt.Sprintf("Both code in %s", lang))
	}
	return truncate(shared, 3)
}

// ComplementarySkills reports frontend/backend and trading-style pairings
// that round each other out, capped at two.
func ComplementarySkills(user, candidate *Web3Preferences) []string {
	if user == nil || candidate == nil {
		return nil
	}

	var out []string

	userFront, userBack := stackSides(user.ProgrammingLanguages)
	candFront, candBack := stackSides(candidate.ProgrammingLanguages)
	if userFront && candBack {
		out = append(out, "Perfect frontend/backend combination")
	} else if userBack && candFront {
		out = append(out, "Great full-stack development potential")
	}

	userStyle := NormalizeLabel(user.TradingStyle)
	candStyle := NormalizeLabel(candidate.TradingStyle)
	if userStyle == "hodler" && candStyle == "trader" {
		out = append(out, "Balanced hodler/trader perspectives")
	} else if userStyle == "builder" && (candStyle == "hodler" || candStyle == "trader") {
		out = append(out, "Builder with investor mindset")
	}

	return truncate(out, 2)
}

package matching

import (
	"math"
	"sort"
	"strings"
)

// Bio similarity via term-frequency vectors over a bounded shared vocabulary
// (unigrams and bigrams, stop words removed) and cosine similarity. This
// scorer never fails upward: any degenerate case resolves to the neutral 0.5.

const maxVocabulary = 100

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "than": true, "so": true, "of": true, "to": true,
	"in": true, "on": true, "at": true, "for": true, "with": true, "about": true,
	"into": true, "over": true, "after": true, "is": true, "am": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "can": true,
	"could": true, "should": true, "i": true, "me": true, "my": true,
	"you": true, "your": true, "he": true, "she": true, "it": true, "we": true,
	"they": true, "them": true, "this": true, "that": true, "these": true,
	"those": true, "not": true, "no": true, "as": true, "by": true,
	"from": true, "up": true, "out": true, "just": true, "very": true,
	"really": true, "also": true, "too": true, "when": true, "what": true,
	"who": true, "how": true, "all": true, "any": true, "some": true,
}

// BioSimilarity scores lexical similarity between two free-text bios in
// [0,1]. Empty input on either side returns the neutral score.
func BioSimilarity(bioA, bioB string) float64 {
	if strings.TrimSpace(bioA) == "" || strings.TrimSpace(bioB) == "" {
		return neutralScore
	}

	termsA := extractTerms(bioA)
	termsB := extractTerms(bioB)
	if len(termsA) == 0 || len(termsB) == 0 {
		return neutralScore
	}

	vocab := buildVocabulary(termsA, termsB)
	if len(vocab) == 0 {
		return neutralScore
	}

	vecA := termFrequencyVector(termsA, vocab)
	vecB := termFrequencyVector(termsB, vocab)

	sim := cosine(vecA, vecB)
	if math.IsNaN(sim) {
		return neutralScore
	}
	return clamp01(sim)
}

// extractTerms tokenizes text into lowercase unigrams and bigrams with stop
// words removed.
func extractTerms(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '\'')
	})

	var words []string
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if len(f) > 1 && !stopWords[f] {
			words = append(words, f)
		}
	}

	terms := make([]string, 0, len(words)*2)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

// buildVocabulary keeps the most frequent terms across both documents,
// bounded at maxVocabulary. Ties break alphabetically so the vocabulary is
// deterministic.
func buildVocabulary(termsA, termsB []string) []string {
	counts := make(map[string]int)
	for _, t := range termsA {
		counts[t]++
	}
	for _, t := range termsB {
		counts[t]++
	}

	vocab := make([]string, 0, len(counts))
	for t := range counts {
		vocab = append(vocab, t)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if counts[vocab[i]] != counts[vocab[j]] {
			return counts[vocab[i]] > counts[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})

	if len(vocab) > maxVocabulary {
		vocab = vocab[:maxVocabulary]
	}
	return vocab
}

func termFrequencyVector(terms []string, vocab []string) []float64 {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}

	vec := make([]float64, len(vocab))
	for i, t := range vocab {
		vec[i] = float64(counts[t]) / float64(len(terms))
	}
	return vec
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return neutralScore
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package matching

import (
	"context"
	"sort"
	"sync"
)

// FindBestMatches scores every candidate, drops those under the minimum
// score, and returns the top results ordered by score descending. Scoring is
// stateless per candidate, so the fan-out runs on a bounded worker pool;
// results are reassembled in input order before the stable sort so ties keep
// their original relative order.
func (e *engine) FindBestMatches(ctx context.Context, user *UserProfile, candidates []*CandidateProfile, limit int) []*MatchAnalysis {
	if limit <= 0 || len(candidates) == 0 {
		return []*MatchAnalysis{}
	}

	analyses := make([]*MatchAnalysis, len(candidates))

	workers := e.scoreWorkers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				analyses[i] = e.AnalyzeCompatibility(ctx, user, candidates[i])
			}
		}()
	}

dispatch:
	for i := range candidates {
		select {
		case jobs <- i:
		case <-ctx.Done():
			// Stop handing out work; already-scored candidates still rank.
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	ranked := make([]*MatchAnalysis, 0, len(analyses))
	for _, analysis := range analyses {
		if analysis != nil && analysis.CompatibilityScore >= e.minScore {
			ranked = append(ranked, analysis)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompatibilityScore > ranked[j].CompatibilityScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	RecordMatchesRanked(len(ranked))
	return ranked
}

package pagerank

import (
    "fmt"

    "corpus-ranker/models"
)

// Source supplies the randomness for the sampling estimator. *rand.Rand
// satisfies it; tests inject a seeded instance for reproducible walks.
type Source interface {
    Intn(n int) int
    Float64() float64
}

// Sample estimates PageRank by simulating a single random walk of n hops
// over the transition model. The first page is chosen uniformly at random
// and is not tallied; each of the n drawn successors is tallied exactly
// once, so the returned frequencies sum to 1 by construction.
func Sample(corpus models.Corpus, damping float64, n int, src Source) (models.Distribution, error) {
    if err := validate(corpus, damping); err != nil {
        return nil, err
    }
    if n < 1 {
        return nil, fmt.Errorf("%w: sample count %d, must be at least 1", ErrInvalidInput, n)
    }

    pages := corpus.Pages()
    counts := make(map[string]int, len(pages))

    current := pages[src.Intn(len(pages))]
    for i := 0; i < n; i++ {
        current = draw(pages, transition(corpus, current, damping), src)
        counts[current]++
    }

    ranks := make(models.Distribution, len(pages))
    for _, page := range pages {
        ranks[page] = float64(counts[page]) / float64(n)
    }
    return ranks, nil
}

// draw picks a page with probability proportional to its weight in dist.
// Pages are scanned in sorted order so a seeded source reproduces the
// same walk on every run.
func draw(pages []string, dist models.Distribution, src Source) string {
    r := src.Float64() * dist.Sum()
    var cumulative float64
    for _, page := range pages {
        cumulative += dist[page]
        if r < cumulative {
            return page
        }
    }
    // Rounding can leave r a hair past the final cumulative sum.
    return pages[len(pages)-1]
}

package pagerank

import (
    "fmt"
    "math"

    "corpus-ranker/models"
)

// ConvergenceThreshold is the largest per-page change allowed in the
// final relaxation pass of Iterate. A pass that moves every page by no
// more than this is considered converged.
const ConvergenceThreshold = 0.001

// Iterate estimates PageRank by relaxing the fixed-point equation
//
//     rank(p) = (1-d)/N + d * Σ rank(q)/|out(q)|  over pages q linking to p
//
// until no page moves by more than ConvergenceThreshold in a full pass.
// A dangling page is treated as linking to every page in the corpus, so
// its rank is redistributed uniformly each pass and total mass stays 1.
// Each pass computes all new values from a snapshot of the previous pass,
// never in place, so the result is independent of page order.
//
// The second return value is the number of passes taken. If convergence
// is not reached within maxPasses, Iterate returns ErrNoConvergence
// rather than a partial vector.
func Iterate(corpus models.Corpus, damping float64, maxPasses int) (models.Distribution, int, error) {
    if err := validate(corpus, damping); err != nil {
        return nil, 0, err
    }
    if maxPasses < 1 {
        return nil, 0, fmt.Errorf("%w: pass cap %d, must be at least 1", ErrInvalidInput, maxPasses)
    }

    n := float64(len(corpus))

    // Invert the graph once: inbound[p] lists every page linking to p.
    inbound := make(map[string][]string, len(corpus))
    var dangling []string
    for page, links := range corpus {
        if len(links) == 0 {
            dangling = append(dangling, page)
            continue
        }
        for target := range links {
            inbound[target] = append(inbound[target], page)
        }
    }

    ranks := make(models.Distribution, len(corpus))
    for page := range corpus {
        ranks[page] = 1 / n
    }

    for pass := 1; pass <= maxPasses; pass++ {
        var danglingMass float64
        for _, page := range dangling {
            danglingMass += ranks[page]
        }
        base := (1-damping)/n + damping*danglingMass/n

        next := make(models.Distribution, len(corpus))
        var maxDelta float64
        for page := range corpus {
            var sum float64
            for _, q := range inbound[page] {
                sum += ranks[q] / float64(len(corpus[q]))
            }
            next[page] = base + damping*sum
            if delta := math.Abs(next[page] - ranks[page]); delta > maxDelta {
                maxDelta = delta
            }
        }

        ranks = next
        if maxDelta <= ConvergenceThreshold {
            return ranks, pass, nil
        }
    }

    return nil, maxPasses, fmt.Errorf("%w: max per-page change still above %g after %d passes",
        ErrNoConvergence, ConvergenceThreshold, maxPasses)
}

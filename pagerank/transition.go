/*
   Package pagerank estimates the relative importance of pages in a small
   closed corpus with the PageRank random surfer model, two independent
   ways: Monte Carlo sampling over the transition model, and iterative
   relaxation of the PageRank fixed-point equation.

   Under the random surfer model a hypothetical browser follows one of the
   current page's out-links with probability equal to the damping factor,
   and otherwise teleports to a page chosen uniformly at random from the
   whole corpus. A page's rank is the probability the surfer is found on
   it in the long run, so every rank lies in [0, 1] and the ranks of a
   corpus sum to 1.
*/
package pagerank

import (
    "fmt"

    "corpus-ranker/models"
)

// Transition returns the probability distribution over the page a random
// surfer visits next from page. A dangling page (no out-links) yields the
// uniform distribution over the whole corpus. The result is defined for
// every page in the corpus and sums to 1.
func Transition(corpus models.Corpus, page string, damping float64) (models.Distribution, error) {
    if err := validate(corpus, damping); err != nil {
        return nil, err
    }
    if _, ok := corpus[page]; !ok {
        return nil, fmt.Errorf("%w: page %q is not in the corpus", ErrInvalidInput, page)
    }
    return transition(corpus, page, damping), nil
}

// transition is the unvalidated hot path shared with the sampler, which
// validates once up front rather than on every hop.
func transition(corpus models.Corpus, page string, damping float64) models.Distribution {
    n := float64(len(corpus))
    dist := make(models.Distribution, len(corpus))

    links := corpus[page]
    if len(links) == 0 {
        // Stuck surfer: teleport uniformly anywhere, including back here.
        for p := range corpus {
            dist[p] = 1 / n
        }
        return dist
    }

    teleport := (1 - damping) / n
    follow := damping / float64(len(links))
    for p := range corpus {
        dist[p] = teleport
        if links[p] {
            dist[p] += follow
        }
    }
    return dist
}

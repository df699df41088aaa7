package pagerank

import (
    "errors"
    "fmt"

    "corpus-ranker/models"
)

var (
    // ErrInvalidInput marks precondition failures: empty corpus, damping
    // factor outside (0,1), non-positive sample count, or a link target
    // missing from the corpus.
    ErrInvalidInput = errors.New("invalid input")

    // ErrNoConvergence marks an iterative run that exhausted its pass cap
    // before every page settled under the convergence threshold.
    ErrNoConvergence = errors.New("no convergence")
)

// validate runs the precondition checks shared by both estimators. The
// corpus must be closed: every out-link target is itself a page.
func validate(corpus models.Corpus, damping float64) error {
    if len(corpus) == 0 {
        return fmt.Errorf("%w: corpus is empty", ErrInvalidInput)
    }
    if damping <= 0 || damping >= 1 {
        return fmt.Errorf("%w: damping factor %v outside (0, 1)", ErrInvalidInput, damping)
    }
    for page, links := range corpus {
        for target := range links {
            if _, ok := corpus[target]; !ok {
                return fmt.Errorf("%w: page %q links to %q, which is not in the corpus", ErrInvalidInput, page, target)
            }
        }
    }
    return nil
}

// models/models.go
package models

import (
    "math"
    "sort"
    "time"
)

// LinkSet holds the out-links of a single page, keyed by page identifier.
type LinkSet map[string]bool

// Corpus maps every page in a closed corpus to the set of pages it links
// to. Every link target is itself a key of the corpus and there are no
// self-links. A page with an empty set is a dangling page.
type Corpus map[string]LinkSet

// Pages returns every page identifier in the corpus, sorted.
func (c Corpus) Pages() []string {
    pages := make([]string, 0, len(c))
    for page := range c {
        pages = append(pages, page)
    }
    sort.Strings(pages)
    return pages
}

// Distribution maps each page to a non-negative probability. Over a full
// corpus the values sum to 1 within floating-point tolerance.
type Distribution map[string]float64

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
    var total float64
    for _, v := range d {
        total += v
    }
    return total
}

// MaxDivergence returns the largest absolute per-page difference between
// d and other, over the union of their pages.
func (d Distribution) MaxDivergence(other Distribution) float64 {
    var max float64
    for page, v := range d {
        if diff := math.Abs(v - other[page]); diff > max {
            max = diff
        }
    }
    for page, v := range other {
        if _, ok := d[page]; ok {
            continue
        }
        if v > max {
            max = v
        }
    }
    return max
}

// RankResult captures one completed estimation run for reporting and
// persistence.
type RankResult struct {
    Method   string        `json:"method"`
    Damping  float64       `json:"damping"`
    Samples  int           `json:"samples"`
    Passes   int           `json:"passes"`
    Duration time.Duration `json:"duration"`
    Ranks    Distribution  `json:"ranks"`
}

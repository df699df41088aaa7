// Package report renders rank vectors for human consumption.
package report

import (
    "fmt"
    "io"
    "sort"

    "corpus-ranker/models"
)

// Write renders ranks under label, one page per line, pages sorted by
// identifier, values at fixed 4-decimal precision.
func Write(w io.Writer, label string, ranks models.Distribution) {
    fmt.Fprintln(w, label)

    pages := make([]string, 0, len(ranks))
    for page := range ranks {
        pages = append(pages, page)
    }
    sort.Strings(pages)

    for _, page := range pages {
        fmt.Fprintf(w, "  %s: %.4f\n", page, ranks[page])
    }
}

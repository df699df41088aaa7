// Package corpus builds the link graph for a closed corpus: a directory
// of HTML documents that reference each other by filename.
package corpus

import (
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "github.com/PuerkitoBio/goquery"

    "corpus-ranker/models"
)

// Load parses every .html file in dir and returns the link graph between
// them. Self-links and links to documents outside the corpus are dropped,
// so the result is closed: every out-link target is itself a page.
func Load(dir string) (models.Corpus, error) {
    entries, err := os.ReadDir(dir)
    if err != nil {
        return nil, fmt.Errorf("failed to read corpus directory: %w", err)
    }

    raw := make(map[string][]string)
    for _, entry := range entries {
        if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
            continue
        }
        links, err := extractLinks(filepath.Join(dir, entry.Name()))
        if err != nil {
            return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
        }
        raw[entry.Name()] = links
    }

    graph := make(models.Corpus, len(raw))
    for page, links := range raw {
        set := make(models.LinkSet)
        for _, link := range links {
            if link == page {
                continue
            }
            if _, ok := raw[link]; !ok {
                continue
            }
            set[link] = true
        }
        graph[page] = set
    }

    return graph, nil
}

func extractLinks(path string) ([]string, error) {
    f, err := os.Open(path)
    if err != nil {
        return nil, err
    }
    defer f.Close()

    doc, err := goquery.NewDocumentFromReader(f)
    if err != nil {
        return nil, err
    }

    var links []string
    doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
        if href, exists := s.Attr("href"); exists {
            links = append(links, href)
        }
    })

    return links, nil
}

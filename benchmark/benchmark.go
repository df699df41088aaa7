// benchmark/benchmark.go
package benchmark

import (
    "fmt"
    "math"
    "sort"
    "strings"
    "time"

    "corpus-ranker/config"
    "corpus-ranker/models"
    "corpus-ranker/pagerank"
)

// RunComparison runs both estimators on the same corpus and prints how
// closely they agree, along with per-method timing.
func RunComparison(graph models.Corpus, cfg *config.Config, src pagerank.Source) error {
    fmt.Println("🚀 Starting PageRank Estimator Benchmark")
    fmt.Println("========================================")
    fmt.Printf("Pages: %d\n", len(graph))
    fmt.Printf("Damping Factor: %.2f\n", cfg.DampingFactor)
    fmt.Printf("Samples: %d\n", cfg.SampleCount)
    fmt.Println()

    fmt.Println("📊 Running Sampling Estimator...")
    sampling, err := runSampling(graph, cfg, src)
    if err != nil {
        return fmt.Errorf("sampling estimator failed: %w", err)
    }

    fmt.Println("🔁 Running Iterative Estimator...")
    iteration, err := runIteration(graph, cfg)
    if err != nil {
        return fmt.Errorf("iterative estimator failed: %w", err)
    }

    displayComparison(sampling, iteration)
    return nil
}

func runSampling(graph models.Corpus, cfg *config.Config, src pagerank.Source) (*models.RankResult, error) {
    start := time.Now()
    ranks, err := pagerank.Sample(graph, cfg.DampingFactor, cfg.SampleCount, src)
    if err != nil {
        return nil, err
    }

    return &models.RankResult{
        Method:   "sampling",
        Damping:  cfg.DampingFactor,
        Samples:  cfg.SampleCount,
        Duration: time.Since(start),
        Ranks:    ranks,
    }, nil
}

func runIteration(graph models.Corpus, cfg *config.Config) (*models.RankResult, error) {
    start := time.Now()
    ranks, passes, err := pagerank.Iterate(graph, cfg.DampingFactor, cfg.MaxPasses)
    if err != nil {
        return nil, err
    }

    return &models.RankResult{
        Method:   "iteration",
        Damping:  cfg.DampingFactor,
        Passes:   passes,
        Duration: time.Since(start),
        Ranks:    ranks,
    }, nil
}

func displayComparison(sampling, iteration *models.RankResult) {
    fmt.Println("\n📈 Estimator Comparison Results")
    fmt.Println("===============================")

    pages := make([]string, 0, len(iteration.Ranks))
    for page := range iteration.Ranks {
        pages = append(pages, page)
    }
    sort.Strings(pages)

    fmt.Printf("%-30s %-12s %-12s %-12s\n", "Page", "Sampling", "Iteration", "Abs Diff")
    fmt.Println(strings.Repeat("-", 68))

    var maxDiff float64
    var maxDiffPage string
    for _, page := range pages {
        diff := math.Abs(sampling.Ranks[page] - iteration.Ranks[page])
        if diff > maxDiff {
            maxDiff = diff
            maxDiffPage = page
        }
        fmt.Printf("%-30s %-12.4f %-12.4f %-12.4f\n", page, sampling.Ranks[page], iteration.Ranks[page], diff)
    }

    fmt.Println(strings.Repeat("-", 68))
    fmt.Printf("%-30s %-12.4f %-12.4f\n", "Sum", sampling.Ranks.Sum(), iteration.Ranks.Sum())

    fmt.Println("\n🎯 Agreement Metrics")
    fmt.Println("====================")
    fmt.Printf("Max Divergence: %.4f (%s)\n", maxDiff, maxDiffPage)
    fmt.Printf("Sampling Duration: %v\n", sampling.Duration.Round(time.Microsecond))
    fmt.Printf("Iteration Duration: %v (%d passes)\n", iteration.Duration.Round(time.Microsecond), iteration.Passes)

    if sampling.Duration > 0 && iteration.Duration > 0 {
        ratio := float64(sampling.Duration) / float64(iteration.Duration)
        fmt.Printf("Sampling/Iteration Time Ratio: %.1fx\n", ratio)
    }
}

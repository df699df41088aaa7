package main

import (
    "flag"
    "fmt"
    "math/rand"
    "os"
    "time"

    "go.uber.org/zap"

    "corpus-ranker/benchmark"
    "corpus-ranker/config"
    "corpus-ranker/corpus"
    "corpus-ranker/database"
    "corpus-ranker/models"
    "corpus-ranker/pagerank"
    "corpus-ranker/report"
)

func main() {
    // Command line flags
    var (
        mode      = flag.String("mode", "rank", "Run mode: 'rank' or 'benchmark'")
        damping   = flag.Float64("damping", 0, "Damping factor override (0 = use config)")
        samples   = flag.Int("samples", 0, "Sample count override (0 = use config)")
        maxPasses = flag.Int("max-passes", 0, "Iteration pass cap override (0 = use config)")
        seed      = flag.Int64("seed", 0, "Random seed for sampling (0 = clock)")
    )
    flag.Parse()

    if flag.NArg() != 1 {
        fmt.Fprintln(os.Stderr, "Usage: corpus-ranker [flags] corpus_directory")
        flag.PrintDefaults()
        os.Exit(1)
    }
    corpusDir := flag.Arg(0)

    // Load configuration, flags take precedence
    cfg := config.Load()
    if *damping != 0 {
        cfg.DampingFactor = *damping
    }
    if *samples != 0 {
        cfg.SampleCount = *samples
    }
    if *maxPasses != 0 {
        cfg.MaxPasses = *maxPasses
    }

    logger, err := zap.NewDevelopment()
    if err != nil {
        fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
        os.Exit(1)
    }
    defer logger.Sync()

    graph, err := corpus.Load(corpusDir)
    if err != nil {
        logger.Fatal("Failed to load corpus", zap.String("dir", corpusDir), zap.Error(err))
    }
    logger.Info("Corpus loaded", zap.String("dir", corpusDir), zap.Int("pages", len(graph)))

    // Optional persistence
    var db *database.PostgresDB
    if cfg.DatabaseURL != "" {
        db, err = database.NewPostgresDB(cfg.DatabaseURL)
        if err != nil {
            logger.Fatal("Failed to connect to database", zap.Error(err))
        }
        defer db.Close()
    }

    if *seed == 0 {
        *seed = time.Now().UnixNano()
    }
    src := rand.New(rand.NewSource(*seed))

    switch *mode {
    case "rank":
        runRank(logger, db, graph, corpusDir, cfg, src)
    case "benchmark":
        if err := benchmark.RunComparison(graph, cfg, src); err != nil {
            logger.Fatal("Benchmark failed", zap.Error(err))
        }
    default:
        logger.Fatal("Invalid mode, use 'rank' or 'benchmark'", zap.String("mode", *mode))
    }
}

func runRank(logger *zap.Logger, db *database.PostgresDB, graph models.Corpus, corpusDir string, cfg *config.Config, src pagerank.Source) {
    start := time.Now()
    sampled, err := pagerank.Sample(graph, cfg.DampingFactor, cfg.SampleCount, src)
    if err != nil {
        logger.Fatal("Sampling estimator failed", zap.Error(err))
    }
    samplingResult := &models.RankResult{
        Method:   "sampling",
        Damping:  cfg.DampingFactor,
        Samples:  cfg.SampleCount,
        Duration: time.Since(start),
        Ranks:    sampled,
    }
    report.Write(os.Stdout, fmt.Sprintf("PageRank Results from Sampling (n = %d)", cfg.SampleCount), sampled)

    start = time.Now()
    iterated, passes, err := pagerank.Iterate(graph, cfg.DampingFactor, cfg.MaxPasses)
    if err != nil {
        logger.Fatal("Iterative estimator failed", zap.Error(err))
    }
    iterationResult := &models.RankResult{
        Method:   "iteration",
        Damping:  cfg.DampingFactor,
        Passes:   passes,
        Duration: time.Since(start),
        Ranks:    iterated,
    }
    report.Write(os.Stdout, "PageRank Results from Iteration", iterated)
    logger.Info("Iteration converged",
        zap.Int("passes", passes),
        zap.Duration("duration", iterationResult.Duration),
    )

    if db != nil {
        if prev, err := db.LatestRanks("iteration"); err != nil {
            logger.Warn("Failed to read previous iteration run", zap.Error(err))
        } else if len(prev) > 0 {
            logger.Info("Divergence from previous iteration run",
                zap.Float64("maxDivergence", iterated.MaxDivergence(prev)),
            )
        }
        for _, result := range []*models.RankResult{samplingResult, iterationResult} {
            if err := db.SaveRun(corpusDir, result); err != nil {
                logger.Error("Failed to persist run", zap.String("method", result.Method), zap.Error(err))
            }
        }
        logger.Info("Results persisted")
    }
}

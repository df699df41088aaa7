package database

import (
    "database/sql"
    "fmt"

    _ "github.com/lib/pq"

    "corpus-ranker/models"
)

type PostgresDB struct {
    DB *sql.DB
}

func NewPostgresDB(databaseURL string) (*PostgresDB, error) {
    db, err := sql.Open("postgres", databaseURL)
    if err != nil {
        return nil, fmt.Errorf("failed to open database: %w", err)
    }

    if err := db.Ping(); err != nil {
        return nil, fmt.Errorf("failed to ping database: %w", err)
    }

    pgDB := &PostgresDB{DB: db}
    if err := pgDB.createTables(); err != nil {
        return nil, fmt.Errorf("failed to create tables: %w", err)
    }

    return pgDB, nil
}

func (p *PostgresDB) createTables() error {
    queries := []string{
        `CREATE TABLE IF NOT EXISTS rank_runs (
            id SERIAL PRIMARY KEY,
            corpus_dir TEXT NOT NULL,
            method TEXT NOT NULL,
            damping FLOAT NOT NULL,
            samples INTEGER DEFAULT 0,
            passes INTEGER DEFAULT 0,
            duration_ms BIGINT,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`,
        `CREATE TABLE IF NOT EXISTS page_ranks (
            id SERIAL PRIMARY KEY,
            run_id BIGINT REFERENCES rank_runs(id),
            page TEXT NOT NULL,
            rank FLOAT NOT NULL
        )`,
        `CREATE INDEX IF NOT EXISTS idx_page_ranks_run ON page_ranks(run_id)`,
        `CREATE INDEX IF NOT EXISTS idx_rank_runs_method ON rank_runs(method)`,
    }

    for _, query := range queries {
        if _, err := p.DB.Exec(query); err != nil {
            return fmt.Errorf("failed to execute query %s: %w", query, err)
        }
    }

    return nil
}

// SaveRun stores one estimation run and its per-page ranks in a single
// transaction.
func (p *PostgresDB) SaveRun(corpusDir string, result *models.RankResult) error {
    tx, err := p.DB.Begin()
    if err != nil {
        return err
    }
    defer tx.Rollback()

    var runID int64
    err = tx.QueryRow(`
        INSERT INTO rank_runs (corpus_dir, method, damping, samples, passes, duration_ms)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`,
        corpusDir, result.Method, result.Damping, result.Samples,
        result.Passes, result.Duration.Milliseconds(),
    ).Scan(&runID)
    if err != nil {
        return fmt.Errorf("failed to insert run: %w", err)
    }

    stmt, err := tx.Prepare(`INSERT INTO page_ranks (run_id, page, rank) VALUES ($1, $2, $3)`)
    if err != nil {
        return err
    }
    defer stmt.Close()

    for page, rank := range result.Ranks {
        if _, err := stmt.Exec(runID, page, rank); err != nil {
            return err
        }
    }

    return tx.Commit()
}

// LatestRanks returns the per-page ranks of the most recent run for a
// method, or an empty map when none exists.
func (p *PostgresDB) LatestRanks(method string) (models.Distribution, error) {
    rows, err := p.DB.Query(`
        SELECT page, rank FROM page_ranks
        WHERE run_id = (
            SELECT id FROM rank_runs WHERE method = $1
            ORDER BY created_at DESC LIMIT 1
        )`, method)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    ranks := make(models.Distribution)
    for rows.Next() {
        var page string
        var rank float64
        if err := rows.Scan(&page, &rank); err != nil {
            return nil, err
        }
        ranks[page] = rank
    }

    return ranks, rows.Err()
}

func (p *PostgresDB) Close() error {
    return p.DB.Close()
}

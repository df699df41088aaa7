package config

import (
    "os"
    "strconv"

    "github.com/joho/godotenv"
)

type Config struct {
    DampingFactor float64
    SampleCount   int
    MaxPasses     int
    DatabaseURL   string
}

func Load() *Config {
    // Load .env file if it exists
    godotenv.Load()

    return &Config{
        DampingFactor: getEnvFloat("DAMPING_FACTOR", 0.85),
        SampleCount:   getEnvInt("SAMPLE_COUNT", 10000),
        MaxPasses:     getEnvInt("MAX_ITERATIONS", 1000),
        DatabaseURL:   getEnv("DATABASE_URL", ""),
    }
}

func getEnv(key, defaultVal string) string {
    if val := os.Getenv(key); val != "" {
        return val
    }
    return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
    if val := os.Getenv(key); val != "" {
        if parsed, err := strconv.Atoi(val); err == nil {
            return parsed
        }
    }
    return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
    if val := os.Getenv(key); val != "" {
        if parsed, err := strconv.ParseFloat(val, 64); err == nil {
            return parsed
        }
    }
    return defaultVal
}

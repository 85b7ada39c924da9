// Package config loads process configuration and carries the contractual
// EGDE defaults: mutation rates, balance thresholds, cache sizing, and
// decision timing. Applications may override fields; tests rely on the
// defaults being exactly these values.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Verify required environment variables
	required := []string{
		"OPENAI_API_KEY",
	}

	for _, env := range required {
		if os.Getenv(env) == "" {
			log.Printf("Warning: %s environment variable not set\n", env)
		}
	}
}

// MutationRates is the operator-rate block of the configuration.
type MutationRates struct {
	Point              float64
	Large              float64
	Weight             float64
	Duplication        float64
	Deletion           float64
	StarvationDeletion float64
	DeNovo             float64
	HGT                float64
	Inversion          float64
	Translocation      float64
	Conversion         float64
	RegulatoryAdd      float64
	RegulatoryDelete   float64
	RegulatoryModify   float64
	PointSigma         float64
}

// Thresholds is the stable-unit balance band block.
type Thresholds struct {
	Low         float64
	Emergency   float64
	Critical    float64
	Hibernation float64
}

// CacheConfig sizes the expression cache.
type CacheConfig struct {
	MaxSize int
	TTL     time.Duration
	Cleanup time.Duration
}

// Config is the full recognized option set.
type Config struct {
	CycleIntervalOverride time.Duration // zero means "derive from cycle_speed"
	MinDecisionInterval   time.Duration
	MaxDeliberationTime   time.Duration
	Rates                 MutationRates
	Thresholds            Thresholds
	Cache                 CacheConfig
	NATSURL               string
	DataDir               string
	APIPort               int
}

// Default returns the contractual defaults.
func Default() Config {
	return Config{
		MinDecisionInterval: 60 * time.Second,
		MaxDeliberationTime: 30 * time.Second,
		Rates: MutationRates{
			Point:              0.05,
			Large:              0.0025,
			Weight:             0.05,
			Duplication:        0.03,
			Deletion:           0.02,
			StarvationDeletion: 0.15,
			DeNovo:             0.005,
			HGT:                0.05,
			Inversion:          0.005,
			Translocation:      0.002,
			Conversion:         0.002,
			RegulatoryAdd:      0.02,
			RegulatoryDelete:   0.02,
			RegulatoryModify:   0.05,
			PointSigma:         0.08,
		},
		Thresholds: Thresholds{
			Low:         5,
			Emergency:   2,
			Critical:    1,
			Hibernation: 0.5,
		},
		Cache: CacheConfig{
			MaxSize: 1000,
			TTL:     60 * time.Second,
			Cleanup: 5 * time.Minute,
		},
		NATSURL: natsURL(),
		DataDir: dataDir(),
		APIPort: 3000,
	}
}

func natsURL() string {
	if url := os.Getenv("NATS_URL"); url != "" {
		return url
	}
	return "nats://localhost:4222"
}

func dataDir() string {
	if dir := os.Getenv("EGDE_DATA_DIR"); dir != "" {
		return dir
	}
	return "./data"
}

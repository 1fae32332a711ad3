// Package config loads and validates the driver's tunables: optional
// .env file, environment variables with typed fallbacks, explicit
// validation before a Driver is constructed.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"tourmovns/internal/errs"
)

// LocalSearchMode selects Pareto Local Search's descent strategy.
type LocalSearchMode int

const (
	VND LocalSearchMode = iota
	WeightedDescent
)

// Config enumerates every tunable of the outer loop, including
// InitialArchiveSize (seed count, separate from ArchiveMax) and
// EpsilonWindowLoops (the ε-indicator's window length in outer loops),
// both left configurable rather than hardcoded.
type Config struct {
	InitialSolutions   int
	InitialArchiveSize int
	ArchiveMax         int
	KMax               int
	MaxTimeSeconds      int
	MaxIterations       int
	IdleLimit           int
	Tau                 float64
	LocalSearchMode     LocalSearchMode
	Seed                int64
	SpreadThreshold     float64
	SpreadWindow        int
	EpsilonThreshold    float64
	EpsilonWindows      int
	EpsilonWindowLoops  int
	SnapshotEveryLoops  int
	SnapshotBufferLen   int
}

// Default returns the documented default configuration: T_max=120s,
// idle_limit=30, tau=0, archive cap 60, initial archive size 20,
// spread_threshold=0.35 over a 50-loop window, epsilon_threshold=0.05 over
// 3 windows, ε-indicator window 10 outer loops.
func Default() Config {
	return Config{
		InitialSolutions:   20,
		InitialArchiveSize: 20,
		ArchiveMax:         60,
		KMax:               5,
		MaxTimeSeconds:     120,
		MaxIterations:      0,
		IdleLimit:          30,
		Tau:                0,
		LocalSearchMode:    VND,
		Seed:               0,
		SpreadThreshold:    0.35,
		SpreadWindow:       50,
		EpsilonThreshold:   0.05,
		EpsilonWindows:     3,
		EpsilonWindowLoops: 10,
		SnapshotEveryLoops: 10,
		SnapshotBufferLen:  3,
	}
}

// Load starts from Default and overrides fields from environment
// variables, first attempting to populate the process environment from a
// .env file via godotenv — a missing or unreadable .env is ignored, and
// the caller is not told about it.
func Load() Config {
	_ = godotenv.Load()
	cfg := Default()
	cfg.InitialSolutions = getEnvInt("MOVNS_INITIAL_SOLUTIONS", cfg.InitialSolutions)
	cfg.InitialArchiveSize = getEnvInt("MOVNS_INITIAL_ARCHIVE_SIZE", cfg.InitialArchiveSize)
	cfg.ArchiveMax = getEnvInt("MOVNS_ARCHIVE_MAX", cfg.ArchiveMax)
	cfg.KMax = getEnvInt("MOVNS_K_MAX", cfg.KMax)
	cfg.MaxTimeSeconds = getEnvInt("MOVNS_MAX_TIME_SECONDS", cfg.MaxTimeSeconds)
	cfg.MaxIterations = getEnvInt("MOVNS_MAX_ITERATIONS", cfg.MaxIterations)
	cfg.IdleLimit = getEnvInt("MOVNS_IDLE_LIMIT", cfg.IdleLimit)
	cfg.Tau = getEnvFloat("MOVNS_TAU", cfg.Tau)
	cfg.Seed = int64(getEnvInt("MOVNS_SEED", int(cfg.Seed)))
	cfg.SpreadThreshold = getEnvFloat("MOVNS_SPREAD_THRESHOLD", cfg.SpreadThreshold)
	cfg.SpreadWindow = getEnvInt("MOVNS_SPREAD_WINDOW", cfg.SpreadWindow)
	cfg.EpsilonThreshold = getEnvFloat("MOVNS_EPSILON_THRESHOLD", cfg.EpsilonThreshold)
	cfg.EpsilonWindows = getEnvInt("MOVNS_EPSILON_WINDOWS", cfg.EpsilonWindows)
	cfg.EpsilonWindowLoops = getEnvInt("MOVNS_EPSILON_WINDOW_LOOPS", cfg.EpsilonWindowLoops)
	cfg.SnapshotEveryLoops = getEnvInt("MOVNS_SNAPSHOT_EVERY_LOOPS", cfg.SnapshotEveryLoops)
	cfg.SnapshotBufferLen = getEnvInt("MOVNS_SNAPSHOT_BUFFER_LEN", cfg.SnapshotBufferLen)
	if os.Getenv("MOVNS_LOCAL_SEARCH_MODE") == "weighted" {
		cfg.LocalSearchMode = WeightedDescent
	}
	return cfg
}

// Validate rejects configurations that would make the driver's invariants
// unsatisfiable, returning an *errs.Error of kind ConfigurationError.
func (c Config) Validate() error {
	switch {
	case c.ArchiveMax <= 0:
		return errs.New(errs.ConfigurationError, "archive_max must be positive")
	case c.InitialArchiveSize <= 0:
		return errs.New(errs.ConfigurationError, "initial_archive_size must be positive")
	case c.InitialArchiveSize > c.ArchiveMax:
		return errs.New(errs.ConfigurationError, "initial_archive_size cannot exceed archive_max")
	case c.KMax <= 0:
		return errs.New(errs.ConfigurationError, "k_max must be positive")
	case c.MaxTimeSeconds <= 0 && c.MaxIterations <= 0:
		return errs.New(errs.ConfigurationError, "at least one of max_time_seconds or max_iterations must be positive")
	case c.IdleLimit <= 0:
		return errs.New(errs.ConfigurationError, "idle_limit must be positive")
	case c.EpsilonWindowLoops <= 0:
		return errs.New(errs.ConfigurationError, "epsilon_window_loops must be positive")
	case c.SnapshotEveryLoops <= 0:
		return errs.New(errs.ConfigurationError, "snapshot_every_loops must be positive")
	case c.SnapshotBufferLen <= 0:
		return errs.New(errs.ConfigurationError, "snapshot_buffer_len must be positive")
	}
	return nil
}

// MaxTime returns MaxTimeSeconds as a time.Duration, or 0 (no time
// budget) if non-positive.
func (c Config) MaxTime() time.Duration {
	if c.MaxTimeSeconds <= 0 {
		return 0
	}
	return time.Duration(c.MaxTimeSeconds) * time.Second
}

// ExitCode maps a fatal error returned by Driver.Run to the process exit
// status; a CLI wrapper (out of scope here) would call this.
func ExitCode(err error) int {
	return errs.ExitCode(err)
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

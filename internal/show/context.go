package show

import (
	"os"
	"strconv"
)

// Context is the single piece of process-wide configuration the overlay
// engine reads: the show seed that all derived pseudo-random layouts grow
// from, plus an era tag that only affects typography in the outer
// application. It is built once before any frame renders and never
// mutated, so sharing it across workers needs no synchronization.
type Context struct {
	ShowSeed uint32
	Era      string
}

// FromEnv loads the context from environment variables with defaults.
func FromEnv() Context {
	return Context{
		ShowSeed: envUint32("GLINT_SHOW_SEED", 1),
		Era:      envStr("GLINT_ERA", "modern"),
	}
}

// DeriveSeed mixes a component-local base seed with the show seed so that
// every overlay draws from its own stream, while a different show seed
// reshuffles all of them consistently.
func (c Context) DeriveSeed(base uint32) uint32 {
	return c.ShowSeed*0x9E3779B9 + base
}

// CycleSeed varies a base seed per repetition of a looping effect, so
// that successive cycles differ but each one is still reproducible from
// (seed, cycleIndex) alone.
func CycleSeed(base uint32, cycleIndex int) uint32 {
	return base + uint32(cycleIndex)*7919
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUint32(key string, fallback uint32) uint32 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint32(n)
		}
	}
	return fallback
}

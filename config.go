package main

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt reads an integer variable, falling back to def if unset or malformed.
func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("var", k).Str("value", v).Msg("not an integer, using default")
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("var", k).Str("value", v).Msg("not a duration, using default")
		return def
	}
	return d
}

// Package config reads BOSSFIGHT_* variables, optionally from a .env file,
// to provide defaults for command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const Prefix = "BOSSFIGHT_"

// Load reads .env files into the environment. Missing files are fine;
// variables already set in the environment win.
func Load(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", name, err)
		}
		log.Printf("config: loaded %s", name)
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(Prefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func String(key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}

func Bool(key string, def bool) bool {
	v, ok := lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: %s%s=%q is not a bool", Prefix, key, v)
		return def
	}
	return b
}

func Int64(key string, def int64) int64 {
	v, ok := lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("config: %s%s=%q is not an integer", Prefix, key, v)
		return def
	}
	return n
}

func Float(key string, def float64) float64 {
	v, ok := lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: %s%s=%q is not a number", Prefix, key, v)
		return def
	}
	return f
}

/*
 *  config.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	logging "github.com/op/go-logging"
)

// Config holds the defaults that can be set through the environment or a .env file
type Config struct {
	Fasta2Darwin string
	LogLevel     logging.Level
}

// LoadConfig reads the named .env files, or ./.env when present, then the
// HGTBENCH_* variables
func LoadConfig(envfiles ...string) *Config {
	if len(envfiles) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			envfiles = []string{".env"}
		}
	}
	if len(envfiles) > 0 {
		if err := godotenv.Load(envfiles...); err != nil {
			log.Warningf("Cannot load %s (%s)", strings.Join(envfiles, ", "), err)
		}
	}
	cfg := &Config{
		Fasta2Darwin: getEnv("HGTBENCH_FASTA2DARWIN", DefaultFasta2Darwin),
		LogLevel:     logging.NOTICE,
	}
	if name := os.Getenv("HGTBENCH_LOG_LEVEL"); name != "" {
		level, err := logging.LogLevel(name)
		if err != nil {
			log.Warningf("Ignore HGTBENCH_LOG_LEVEL=%s (%s)", name, err)
		} else {
			cfg.LogLevel = level
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

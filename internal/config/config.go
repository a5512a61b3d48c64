// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves the pipeline configuration from layered sources.
package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/doc2md/pkg/types"
)

// Environment variables consulted during resolution. The API key falls back
// to the generic OpenAI variable so existing shell setups keep working.
const (
	EnvEndpoint       = "DOC2MD_ENDPOINT"
	EnvModel          = "DOC2MD_MODEL"
	EnvAPIKey         = "DOC2MD_API_KEY"
	EnvAPIKeyFallback = "OPENAI_API_KEY"
)

// Resolve produces one immutable Config from the layered sources, highest
// precedence first: CLI flags, config file (flat keys or an [llm] table),
// environment, defaults. The API key has no flag: secrets stay out of argv,
// so its order is file > primary env var > generic fallback. getenv may be
// nil, in which case os.Getenv is used; tests inject their own lookup.
func Resolve(flagEndpoint, flagModel string, flagTimeout time.Duration, v *viper.Viper, getenv func(string) string) types.Config {
	if getenv == nil {
		getenv = os.Getenv
	}

	timeout := flagTimeout
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}

	return types.Config{
		Endpoint: firstNonEmpty(flagEndpoint, fileString(v, "endpoint"), getenv(EnvEndpoint), types.DefaultEndpoint),
		Model:    firstNonEmpty(flagModel, fileString(v, "model"), getenv(EnvModel), types.DefaultModel),
		APIKey:   firstNonEmpty(fileString(v, "api_key"), getenv(EnvAPIKey), getenv(EnvAPIKeyFallback)),
		Timeout:  timeout,
	}
}

// fileString reads a key from the loaded config file, preferring the [llm]
// table over a flat top-level key.
func fileString(v *viper.Viper, key string) string {
	if v == nil {
		return ""
	}
	if s := v.GetString("llm." + key); s != "" {
		return s
	}
	return v.GetString(key)
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}

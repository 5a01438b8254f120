// Package config reads handler configuration from the Lambda environment.
// Values are read once at cold start and passed to the handlers.
package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/fpang/video-course-automation/internal/logging"
	"github.com/fpang/video-course-automation/internal/outcome"
	"github.com/fpang/video-course-automation/internal/store"
	"github.com/fpang/video-course-automation/internal/transcription"
)

// Config holds the settings shared by the course media Lambdas.
type Config struct {
	Env              string
	LanguageCode     string
	LegacyTimestamps bool

	// PropagateOnFailure overrides the handler's default failure policy when set.
	PropagateOnFailure *bool
}

// Load reads the configuration from the process environment.
func Load() Config {
	return Config{
		Env:                logging.EnvOrDefault("NODE_ENV", store.DefaultEnv),
		LanguageCode:       logging.EnvOrDefault("LANGUAGE_CODE", transcription.DefaultLanguageCode),
		LegacyTimestamps:   envBool("LEGACY_REQUEST_ID_TIMESTAMPS", false),
		PropagateOnFailure: envBoolPtr("PROPAGATE_ON_FAILURE"),
	}
}

// TableName returns the video catalog table for the configured environment.
func (c Config) TableName() string {
	return store.VideoTableName(c.Env)
}

// Policy applies the PROPAGATE_ON_FAILURE override to a handler's default policy.
func (c Config) Policy(def outcome.Policy) outcome.Policy {
	if c.PropagateOnFailure != nil {
		def.PropagateOnFailure = *c.PropagateOnFailure
	}
	return def
}

func envBool(name string, def bool) bool {
	if p := envBoolPtr(name); p != nil {
		return *p
	}
	return def
}

func envBoolPtr(name string) *bool {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Warn().Str("envVar", name).Str("value", raw).Msg("Ignoring non-boolean environment variable")
		return nil
	}
	return &v
}

package config

import (
	"testing"

	"github.com/fpang/video-course-automation/internal/outcome"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NODE_ENV", "")
	t.Setenv("LANGUAGE_CODE", "")
	t.Setenv("LEGACY_REQUEST_ID_TIMESTAMPS", "")
	t.Setenv("PROPAGATE_ON_FAILURE", "")

	c := Load()
	if c.Env != "dev" || c.TableName() != "video-course-app-videos-dev" {
		t.Errorf("env = %q, table = %q", c.Env, c.TableName())
	}
	if c.LanguageCode != "en-US" {
		t.Errorf("language = %q", c.LanguageCode)
	}
	if c.LegacyTimestamps {
		t.Error("legacy timestamps should default to false")
	}
	if c.PropagateOnFailure != nil {
		t.Error("propagate override should be unset")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "prod")
	t.Setenv("LANGUAGE_CODE", "de-DE")
	t.Setenv("LEGACY_REQUEST_ID_TIMESTAMPS", "true")
	t.Setenv("PROPAGATE_ON_FAILURE", "false")

	c := Load()
	if c.TableName() != "video-course-app-videos-prod" {
		t.Errorf("table = %q", c.TableName())
	}
	if c.LanguageCode != "de-DE" || !c.LegacyTimestamps {
		t.Errorf("config = %+v", c)
	}
	if c.PropagateOnFailure == nil || *c.PropagateOnFailure {
		t.Errorf("propagate override = %v", c.PropagateOnFailure)
	}
}

func TestLoad_InvalidBoolIgnored(t *testing.T) {
	t.Setenv("LEGACY_REQUEST_ID_TIMESTAMPS", "maybe")
	t.Setenv("PROPAGATE_ON_FAILURE", "sometimes")

	c := Load()
	if c.LegacyTimestamps || c.PropagateOnFailure != nil {
		t.Errorf("invalid values should be ignored: %+v", c)
	}
}

func TestPolicy(t *testing.T) {
	def := outcome.Policy{Handler: "transcribe", PropagateOnFailure: true}

	if got := (Config{}).Policy(def); !got.PropagateOnFailure {
		t.Error("default should be kept without override")
	}

	off := false
	got := Config{PropagateOnFailure: &off}.Policy(def)
	if got.PropagateOnFailure || got.Handler != "transcribe" {
		t.Errorf("override not applied: %+v", got)
	}
}

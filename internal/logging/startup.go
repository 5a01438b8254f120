package logging

import (
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type field struct {
	key, value string
}

type flag struct {
	name    string
	enabled bool
}

// StartupLogger gathers what a course media Lambda was wired with at cold
// start and writes it as one structured event.
type StartupLogger struct {
	name         string
	initDuration time.Duration

	services []string
	table    string
	flags    []flag
	settings []field
}

// NewStartupLogger returns a StartupLogger for the named Lambda.
func NewStartupLogger(name string) *StartupLogger {
	return &StartupLogger{name: name}
}

// Service records an AWS service the handler calls ("s3", "transcribe").
func (s *StartupLogger) Service(name string) *StartupLogger {
	s.services = append(s.services, name)
	return s
}

// Table records the catalog table name.
func (s *StartupLogger) Table(name string) *StartupLogger {
	s.table = name
	return s.Service("dynamodb")
}

// Feature records a boolean switch.
func (s *StartupLogger) Feature(name string, enabled bool) *StartupLogger {
	s.flags = append(s.flags, flag{name, enabled})
	return s
}

// Config records a non-sensitive setting.
func (s *StartupLogger) Config(key, value string) *StartupLogger {
	s.settings = append(s.settings, field{key, value})
	return s
}

// InitDuration records how long init() took.
func (s *StartupLogger) InitDuration(d time.Duration) *StartupLogger {
	s.initDuration = d
	return s
}

// EnvOrDefault returns the named environment variable, or defaultVal when
// it is empty or unset.
func EnvOrDefault(envVar, defaultVal string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return defaultVal
}

// Log writes the summary at INFO.
func (s *StartupLogger) Log() {
	s.event(log.Info()).Msg("Lambda cold start complete")
}

func (s *StartupLogger) event(evt *zerolog.Event) *zerolog.Event {
	evt = evt.Dict("lambda", zerolog.Dict().
		Str("name", s.name).
		Str("functionName", os.Getenv("AWS_LAMBDA_FUNCTION_NAME")).
		Str("version", os.Getenv("AWS_LAMBDA_FUNCTION_VERSION")).
		Str("region", os.Getenv("AWS_REGION")).
		Str("goVersion", runtime.Version()).
		Str("logLevel", os.Getenv("LOG_LEVEL")))

	if len(s.services) > 0 {
		evt = evt.Strs("services", s.services)
	}
	if s.table != "" {
		evt = evt.Str("table", s.table)
	}
	if len(s.flags) > 0 {
		d := zerolog.Dict()
		for _, f := range s.flags {
			d = d.Bool(f.name, f.enabled)
		}
		evt = evt.Dict("features", d)
	}
	if len(s.settings) > 0 {
		d := zerolog.Dict()
		for _, f := range s.settings {
			d = d.Str(f.key, f.value)
		}
		evt = evt.Dict("config", d)
	}
	if s.initDuration > 0 {
		evt = evt.Dur("initDuration", s.initDuration)
	}
	return evt
}

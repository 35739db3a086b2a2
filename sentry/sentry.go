// Package sentry is a thin wrapper over sentry-go used for installer error
// reports. Every function is a no-op until Init succeeds with a DSN.
package sentry

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds Sentry configuration options
type Config struct {
	DSN         string
	Environment string
	Release     string
	Debug       bool
	SampleRate  float64

	ServiceName string
	InstanceID  string
}

// Level is a Sentry severity level (re-exported for convenience)
type Level = sentry.Level

const (
	LevelDebug   = sentry.LevelDebug
	LevelInfo    = sentry.LevelInfo
	LevelWarning = sentry.LevelWarning
	LevelError   = sentry.LevelError
	LevelFatal   = sentry.LevelFatal
)

// EventOptions holds optional settings for capturing events
type EventOptions struct {
	Tags        map[string]string
	Extra       map[string]interface{}
	Level       *sentry.Level
	Fingerprint []string
}

// Init configures the global hub. An empty DSN leaves reporting disabled.
func Init(cfg Config) error {
	if cfg.DSN == "" {
		return nil
	}

	home, _ := os.UserHomeDir()
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
		SampleRate:       cfg.SampleRate,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			return scrubEvent(event, home)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("service", cfg.ServiceName)
		scope.SetTag("environment", cfg.Environment)
		if cfg.InstanceID != "" {
			scope.SetTag("instance_id", cfg.InstanceID)
		}
	})
	return nil
}

// scrubEvent replaces the user's profile directory in error text; temp and
// download paths usually live under it.
func scrubEvent(event *sentry.Event, home string) *sentry.Event {
	if event == nil || home == "" {
		return event
	}
	event.Message = ScrubPath(event.Message, home)
	for i := range event.Exception {
		event.Exception[i].Value = ScrubPath(event.Exception[i].Value, home)
	}
	return event
}

// ScrubPath replaces every case-insensitive occurrence of home with "~".
func ScrubPath(s, home string) string {
	if home == "" || s == "" {
		return s
	}
	lower := strings.ToLower(s)
	needle := strings.ToLower(home)
	if len(lower) != len(s) || len(needle) != len(home) {
		return strings.ReplaceAll(s, home, "~")
	}
	var b strings.Builder
	for {
		i := strings.Index(lower, needle)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		b.WriteString("~")
		s = s[i+len(home):]
		lower = lower[i+len(home):]
	}
}

// Flush flushes buffered events with timeout
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// CaptureError captures an error with typed options
func CaptureError(err error, opts *EventOptions) *sentry.EventID {
	if err == nil {
		return nil
	}

	var eventID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		applyOptions(scope, opts)
		eventID = sentry.CaptureException(err)
	})
	return eventID
}

// AddBreadcrumb records a step so a later error report shows how far the run got.
func AddBreadcrumb(category, message string, level Level) {
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Type:      "default",
		Category:  category,
		Message:   message,
		Level:     level,
		Timestamp: time.Now(),
	})
}

// CapturePanic should be used in a defer statement to capture and report panics.
// It recovers from panic, reports to Sentry, flushes, and re-panics.
func CapturePanic(opts *EventOptions) {
	if r := recover(); r != nil {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(sentry.LevelFatal)
			applyOptions(scope, opts)
			sentry.CurrentHub().Recover(r)
		})
		sentry.Flush(5 * time.Second)
		panic(r)
	}
}

func applyOptions(scope *sentry.Scope, opts *EventOptions) {
	if opts == nil {
		return
	}
	for k, v := range opts.Tags {
		scope.SetTag(k, v)
	}
	for k, v := range opts.Extra {
		scope.SetExtra(k, v)
	}
	if opts.Level != nil {
		scope.SetLevel(*opts.Level)
	}
	if opts.Fingerprint != nil {
		scope.SetFingerprint(opts.Fingerprint)
	}
}

// GetInstanceID returns the machine name, which Windows exposes as COMPUTERNAME.
func GetInstanceID() string {
	if id := os.Getenv("COMPUTERNAME"); id != "" {
		return id
	}
	if id, err := os.Hostname(); err == nil && id != "" {
		return id
	}
	return "unknown"
}

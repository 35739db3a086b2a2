package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/Thunder-Compute/unrar-setup/cmd"
	"github.com/Thunder-Compute/unrar-setup/internal/config"
	"github.com/Thunder-Compute/unrar-setup/internal/console"
	"github.com/Thunder-Compute/unrar-setup/internal/version"
	"github.com/Thunder-Compute/unrar-setup/sentry"
	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	console.Init()

	_ = initSentry()
	defer sentry.Flush(5 * time.Second)

	defer sentry.CapturePanic(&sentry.EventOptions{
		Tags: map[string]string{"version": version.BuildVersion},
	})

	cmd.Execute()
}

func initSentry() error {
	// DSN is injected at build time - if empty, Sentry is disabled
	if version.SentryDSN == "" {
		return nil
	}

	cfg := config.Load()
	if !cfg.Telemetry {
		return nil
	}

	err := sentry.Init(sentry.Config{
		DSN:         version.SentryDSN,
		Environment: getEnvironment(),
		Release:     fmt.Sprintf("unrar-setup@%s", version.BuildVersion),
		SampleRate:  1.0,
		ServiceName: "unrar-setup",
		InstanceID:  sentry.GetInstanceID(),
	})
	if err != nil {
		return err
	}

	sentrygo.ConfigureScope(func(scope *sentrygo.Scope) {
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
		scope.SetTag("processor_arch", string(cfg.Arch))
		scope.SetTag("build_commit", version.BuildCommit)
	})
	return nil
}

func getEnvironment() string {
	if version.BuildVersion == "dev" {
		return "dev"
	}
	return "production"
}

package version

// Values are injected at build time with -ldflags "-X ...".
var (
	BuildVersion = "dev"
	BuildCommit  = "none"
	BuildDate    = "unknown"

	// SentryDSN enables error reporting when non-empty.
	SentryDSN = ""
)

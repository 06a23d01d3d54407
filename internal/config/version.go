package config

// Version is the cinegraph binary version.
// Set at build time via: -ldflags "-X github.com/cinegraph/cinegraph/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"

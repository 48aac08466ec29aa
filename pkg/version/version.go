package version

// Version is overridden at build time with -ldflags "-X github.com/c9s/gemini/pkg/version.Version=v1.0.0"
var Version = "v0.1.0-dev"

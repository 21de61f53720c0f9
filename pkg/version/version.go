// Package version holds the sb version string, overridden at build time
// via -ldflags "-X github.com/storefront-labs/storeboard/pkg/version.Version=v1.2.3".
package version

// Version is the current sb version.
var Version = "dev"

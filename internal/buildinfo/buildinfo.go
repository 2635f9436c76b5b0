// Package buildinfo exposes build metadata injected via ldflags.
package buildinfo

import (
	"fmt"
	"io"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/ananyev/jobpilot/internal/buildinfo.buildVersion=v1.0.0 ..."
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}

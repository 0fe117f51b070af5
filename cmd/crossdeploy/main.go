package main

import "github.com/crossdeploy/crossdeploy/internal/cli"

// Build metadata, overridden at release time:
//
//	go build -ldflags "-X main.version=1.2.0 -X main.commit=4f9c1b2 -X main.date=2026-08-21"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}

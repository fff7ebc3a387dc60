package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/store-art/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Diagnostics go to stderr; stdout carries command output (and MCP).
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	root := cli.NewRootCommand(cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}, log)

	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("store-art failed")
	}
}

// fsproxy is a small command-line tool for inspecting a filesystem through
// the capability interface of [fsproxy.FileSystem].
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/desertwitch/fsproxy/internal/configuration"
	"github.com/desertwitch/fsproxy/internal/fsproxy"
	"github.com/lmittmann/tint"
)

func main() {
	os.Exit(run())
}

func run() int {
	configProvider := configuration.NewProvider(&configuration.GodotenvProvider{})

	logLevel := slog.LevelInfo
	noUI := false

	// A missing .env simply means defaults; only read failures of an
	// existing file are worth reporting.
	if envMap, err := configProvider.ReadGeneric(".env"); err == nil {
		logLevel = configProvider.MapKeyToLogLevel(envMap, configuration.KeyLogLevel)
		noUI = configProvider.MapKeyToBool(envMap, configuration.KeyNoUI)
	}

	setupLogging(logLevel)

	rootCmd := newRootCmd(fsproxy.Default(), noUI)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", "err", err)

		return 1
	}

	return 0
}

func setupLogging(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

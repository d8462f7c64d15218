package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/pasteboard/clipboard"
	"go.klb.dev/pasteboard/internal/logging"
)

// bindViper loads pbctl.toml and binds cmd's flags to v. Each command owns
// its own viper instance, so a key in the file only applies to commands that
// define the matching flag (backend = "osc52" affects every clipboard command,
// type = "png" only copy and paste).
//
// A missing config file is fine; a malformed one is an error. Later sources
// win: defaults, config file, PBCTL_* env vars (PBCTL_BACKEND, PBCTL_LOG_LEVEL),
// flags.
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("pbctl")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/pbctl/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/pbctl", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("PBCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addCommonFlags adds the logging, backend and --config flags to a command.
func addCommonFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("verbose", false, "log to stderr at info level even when not on a terminal")
	f.String("log-format", "auto", "log format: auto|text|json")
	f.String("log-level", "", "log level: debug|info|warn|error (default: info on a terminal, warn otherwise)")
	f.String("backend", "system", "clipboard backend: system|osc52|memory")
	f.String("config", "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	interactive := v.GetBool("verbose") || logging.IsTTY(os.Stderr)
	resolveLogging(interactive, v.GetString("log-format"), v.GetString("log-level"))
}

// newSystem builds the clipboard System for the configured backend. The
// memory backend lives only as long as the process and is meant for dry
// runs.
func newSystem(v *viper.Viper) (*clipboard.System, error) {
	log := slog.Default()
	switch backend := v.GetString("backend"); backend {
	case "", "system":
		return clipboard.New(clipboard.WithLogger(log)), nil
	case "osc52":
		return clipboard.New(
			clipboard.WithPort(clipboard.NewOSC52(os.Stderr)),
			clipboard.WithLogger(log),
		), nil
	case "memory":
		return clipboard.New(
			clipboard.WithPort(clipboard.NewMemory()),
			clipboard.WithLogger(log),
		), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// setup is the common RunE prologue: logging first, then the System.
func setup(v *viper.Viper) (*clipboard.System, error) {
	setupLogging(v)
	return newSystem(v)
}

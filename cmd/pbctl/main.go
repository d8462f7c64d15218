// pbctl: inspect and drive the system clipboard from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/pasteboard/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "pbctl",
		Short: "Read and write the system clipboard",
		Long: `pbctl copies stdin to the system clipboard, prints clipboard contents,
lists the native formats currently on the clipboard and clears it.

Besides plain text it can write and read the built-in custom formats
(pdf, png, html, glyphs) and any native identifier via --type native --id.

Config file search order (first found wins):
  /etc/pbctl/pbctl.toml
  $HOME/.config/pbctl/pbctl.toml
  path supplied via --config

All flags can be set via PBCTL_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCopyCmd(),
		newPasteCmd(),
		newFormatsCmd(),
		newClearCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("pbctl %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("info")
		} else {
			level = logging.ParseLevel("warn")
		}
	}
	logging.Setup(os.Stderr, format, level)
}

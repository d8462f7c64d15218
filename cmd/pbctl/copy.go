package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/pasteboard/clipboard"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy stdin to the clipboard (like pbcopy)",
		Long: `Reads stdin and places it on the system clipboard, replacing its contents.

With --type auto (the default) PDF and PNG data are recognised by content and
anything else that is valid UTF-8 is copied as text. Formats the platform
cannot represent are skipped; if nothing is left the clipboard is unchanged.

  pbctl copy < report.pdf
  pbctl copy --type native --id public.rtf < note.rtf
  pbctl copy --type html --text "Hello" < snippet.html`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			sys, err := setup(v)
			if err != nil {
				return err
			}
			return runCopy(sys, os.Stdin, v)
		},
	}

	addTypeFlags(cmd, typeAuto)
	cmd.Flags().String("text", "", "also put this plain-text alternative on the clipboard")
	addCommonFlags(cmd)

	return cmd
}

func runCopy(sys *clipboard.System, r io.Reader, v *viper.Viper) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	item, err := buildItem(data, v.GetString("type"), v.GetString("id"), v.GetString("kind"))
	if err != nil {
		return err
	}
	if alt := v.GetString("text"); alt != "" {
		item = item.AddText(alt)
	}
	slog.Debug("copying", "item", item.String())
	return sys.Put(item)
}

// buildItem wraps data in an item of the named type.
func buildItem(data []byte, typ, id, kind string) (clipboard.Item, error) {
	if typ == typeAuto {
		detected, err := detectType(data)
		if err != nil {
			return clipboard.Item{}, err
		}
		slog.Info("detected type", "type", detected, "bytes", len(data))
		typ = detected
	}
	if typ == typeText {
		return clipboard.TextItem(string(data)), nil
	}
	d, err := resolveDescriptor(typ, id, kind)
	if err != nil {
		return clipboard.Item{}, err
	}
	if _, ok := d.WriteOptions(); !ok {
		slog.Warn("type not supported on this platform, clipboard left unchanged", "type", typ)
	}
	return clipboard.CustomItem(data, d), nil
}

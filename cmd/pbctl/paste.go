package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/pasteboard/clipboard"
)

func newPasteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Print the clipboard to stdout (like pbpaste)",
		Long: `Writes the clipboard representation selected by --type to stdout.

If the clipboard holds no data of that type, nothing is printed (exit 0).
To retrieve an image:

  pbctl paste --type png > screenshot.png`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			sys, err := setup(v)
			if err != nil {
				return err
			}
			return runPaste(sys, os.Stdout, v)
		},
	}

	addTypeFlags(cmd, typeText)
	addCommonFlags(cmd)

	return cmd
}

func runPaste(sys *clipboard.System, w io.Writer, v *viper.Viper) error {
	data, err := readType(sys.Contents(), v.GetString("type"), v.GetString("id"), v.GetString("kind"))
	switch {
	case errors.Is(err, clipboard.ErrAbsent), errors.Is(err, clipboard.ErrUnsupported):
		// Requested type not present: print nothing (pbpaste behaviour).
		return nil
	case err != nil:
		return fmt.Errorf("paste: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func readType(c clipboard.Contents, typ, id, kind string) ([]byte, error) {
	if typ == typeText {
		s, err := c.Text()
		return []byte(s), err
	}
	d, err := resolveDescriptor(typ, id, kind)
	if err != nil {
		return nil, err
	}
	return clipboard.Fetch(c, rawBytes{d})
}

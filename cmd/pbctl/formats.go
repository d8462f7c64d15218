package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/pasteboard/clipboard"
)

func newFormatsCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the native formats on the clipboard",
		Long: `Lists every native format currently on the clipboard with its numeric id
(Windows) and name, in the order the platform reports them.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			sys, err := setup(v)
			if err != nil {
				return err
			}
			return runFormats(sys, os.Stdout, v.GetBool("json"))
		},
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addCommonFlags(cmd)

	return cmd
}

type formatJSON struct {
	ID   uint32 `json:"id,omitempty"`
	Name string `json:"name"`
}

func runFormats(sys *clipboard.System, w io.Writer, jsonOut bool) error {
	formats, err := sys.Formats()
	if err != nil {
		return fmt.Errorf("formats: %w", err)
	}

	if jsonOut {
		out := make([]formatJSON, len(formats))
		for i, f := range formats {
			out[i] = formatJSON{ID: f.ID, Name: f.Name}
		}
		enc, _ := json.MarshalIndent(out, "", "  ")
		_, err := fmt.Fprintln(w, string(enc))
		return err
	}

	if len(formats) == 0 {
		_, err := fmt.Fprintln(w, "Clipboard is empty.")
		return err
	}

	tw := tabwriter.NewWriter(w, 1, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "ID\tNAME\n")
	_, _ = fmt.Fprintf(tw, "--\t----\n")
	for _, f := range formats {
		id := "-"
		if f.ID != 0 {
			id = fmt.Sprintf("%d", f.ID)
		}
		name := f.Name
		if name == "" {
			name = "?"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", id, name)
	}
	return tw.Flush()
}

package main

import (
	"fmt"

	"deepexn"

	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var fromYAML bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check that a structured description round-trips through an error",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readDescription(cmd, args, fromYAML)
			if err != nil {
				return err
			}
			if err := checkRoundTrip(data); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromYAML, "yaml", false, "Read the description as YAML instead of an S-expression")
	return cmd
}

// checkRoundTrip verifies the structured, machine and human renderings all
// give the description back.
func checkRoundTrip(data deepexn.Sexp) error {
	err := deepexn.WithoutBacktrace(deepexn.Of(data))
	opts := deepexn.RenderOptions{NeverElideBacktraces: true}

	if got := deepexn.ToSexp(err, opts); !deepexn.Equal(data, got) {
		return mismatch("structured", data, got)
	}
	for name, text := range map[string]string{
		"machine": deepexn.Machine(err, opts),
		"human":   deepexn.Human(err, opts),
	} {
		got, perr := deepexn.ParseSexp(text)
		if perr != nil {
			return deepexn.Reraisef(perr, "re-reading %s rendering", name)
		}
		if !deepexn.Equal(data, got) {
			return mismatch(name, data, got)
		}
	}
	return nil
}

func mismatch(rendering string, want, got deepexn.Sexp) error {
	return deepexn.Ofn("round trip mismatch", "rendering", rendering, "want", want, "got", got)
}

package main

import (
	"io"
	"os"

	"deepexn"

	"github.com/spf13/cobra"
)

func renderCmd(a *app) *cobra.Command {
	var format string
	var fromYAML bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a structured description as an error",
		Long:  "Reads a structured description from the file or stdin and prints the error built from it.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readDescription(cmd, args, fromYAML)
			if err != nil {
				return err
			}
			return writeRendering(cmd.OutOrStdout(), deepexn.WithoutBacktrace(deepexn.Of(data)), format, a.cfg.RenderOptions())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "human", "Output format: human, machine or yaml")
	cmd.Flags().BoolVar(&fromYAML, "yaml", false, "Read the description as YAML instead of an S-expression")
	return cmd
}

func writeRendering(w io.Writer, err error, format string, opts deepexn.RenderOptions) error {
	var out string
	switch format {
	case "human":
		out = deepexn.Human(err, opts) + "\n"
	case "machine":
		out = deepexn.Machine(err, opts) + "\n"
	case "yaml":
		b, yerr := deepexn.MarshalSexpYAML(deepexn.ToSexp(err, opts))
		if yerr != nil {
			return deepexn.Reraise(yerr, "encoding yaml")
		}
		out = string(b)
	default:
		return deepexn.Ofn("unknown output format", "format", format)
	}
	_, werr := io.WriteString(w, out)
	return werr
}

func readDescription(cmd *cobra.Command, args []string, fromYAML bool) (deepexn.Sexp, error) {
	name := "stdin"
	var raw []byte
	var err error
	if len(args) == 1 {
		name = args[0]
		raw, err = os.ReadFile(name)
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, deepexn.Reraisef(err, "reading %s", name)
	}

	var data deepexn.Sexp
	if fromYAML {
		data, err = deepexn.UnmarshalSexpYAML(raw)
	} else {
		data, err = deepexn.ParseSexp(string(raw))
	}
	if err != nil {
		return nil, deepexn.Reraisef(err, "parsing %s", name)
	}
	return data, nil
}

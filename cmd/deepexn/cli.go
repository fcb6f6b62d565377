package main

import (
	"deepexn"

	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	cfg        deepexn.Config
}

func newApp() *app {
	return &app{cfg: deepexn.DefaultConfig()}
}

func (a *app) loadConfig() error {
	cfg, err := deepexn.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func createRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "deepexn",
		Short:         "Render and check structured error descriptions",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(
		renderCmd(a),
		checkCmd(),
		versionCmd(),
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	return rootCmd
}

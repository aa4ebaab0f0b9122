package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Prints the embedded default configuration as YAML. Save it to
~/.arcade/configs/tetris.yaml or ./configs/tetris.yaml to customize.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}

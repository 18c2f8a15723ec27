package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-kite/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration as YAML.

Save it as ~/.kite/configs/kite.yaml or ./configs/kite.yaml to customise
the game; fields you leave out keep their defaults. With --resolved the
configuration actually in effect is printed, after the search path,
--config and --win-score are applied.

Examples:
  kite config > ~/.kite/configs/kite.yaml
  kite config --resolved --config ./my-kite.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the configuration in effect instead of the default")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagResolved {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadSettings(0, 0)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = out.Write(data)
	return err
}

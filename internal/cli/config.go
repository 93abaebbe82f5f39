package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/harun/temptmp/internal/config"
	"github.com/spf13/cobra"
)

// ErrConfigExists is returned by config init when the file is already present
var ErrConfigExists = errors.New("config file already exists")

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or write the temptmp configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), appConfig.String())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader(cfgFile)
	path := loader.GetConfigPath()

	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := loader.Save(appConfig); err != nil {
		return err
	}

	appLogger.Info().Str("path", path).Msg("Config written")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

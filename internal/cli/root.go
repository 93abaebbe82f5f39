package cli

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/harun/temptmp/internal/config"
	"github.com/harun/temptmp/internal/logger"
	"github.com/harun/temptmp/internal/metrics"
	"github.com/harun/temptmp/pkg/temptmp"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile  string
	logLevel string

	appConfig  *config.Config
	appLogger  *logger.Logger
	appMetrics *metrics.Metrics
	registry   *temptmp.Registry
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "temptmp",
	Short: "temptmp - session scoped temp files and directories",
	Long: `temptmp creates uniquely named temp files and directories and can
track them per session so they are removed together when the session ends.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// Shutdown runs the exit cleanup of the command registry. main defers it.
func Shutdown() {
	if registry != nil {
		registry.RunExitHook()
	}
}

// ExitCode maps an Execute error to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.temptmp/temptmp.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error), overrides the config")

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if logLevel != "" {
		if err := config.NewValidator().ValidateLogLevel(logLevel); err != nil {
			return err
		}
		cfg.Logging.Level = logLevel
	}

	lg, err := logger.New(logger.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: true,
		Pretty:  cfg.Logging.Pretty,
		Out:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	opts := []temptmp.RegistryOption{}
	if cfg.Temp.Dir != "" {
		opts = append(opts, temptmp.WithTempDir(cfg.Temp.Dir))
	}

	appMetrics = metrics.NewMetrics()
	opts = append(opts,
		temptmp.WithObserver(appMetrics),
		temptmp.WithLogger(lg.GetZerolog()),
	)

	appConfig = cfg
	appLogger = lg
	registry = temptmp.NewRegistry(opts...)
	registry.RegisterExitHook()

	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if appLogger != nil {
		return appLogger.Close()
	}
	return nil
}

// GetRootCmd returns the root command for testing
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// GetVersion returns the current version
func GetVersion() string {
	return version
}

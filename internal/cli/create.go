package cli

import (
	"fmt"

	"github.com/harun/temptmp/pkg/temptmp"
	"github.com/spf13/cobra"
)

var (
	pathFlags tempFlags
	pathCount int

	fileFlags tempFlags
	dirFlags  tempFlags
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print unique temp paths without creating them",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Create a temp file and print its path",
	Long: `Create a new temp file exclusively and print its path.
The file is not tracked and outlives the command.`,
	Args: cobra.NoArgs,
	RunE: runFile,
}

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Create a temp directory and print its path",
	Long: `Create a new temp directory and print its path.
The directory is not tracked and outlives the command.`,
	Args: cobra.NoArgs,
	RunE: runDir,
}

func init() {
	pathFlags.register(pathCmd, false)
	pathCmd.Flags().IntVar(&pathCount, "count", 1, "number of paths to print")

	fileFlags.register(fileCmd, true)
	dirFlags.register(dirCmd, true)

	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(dirCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	if pathCount < 1 {
		return fmt.Errorf("count must be >= 1")
	}

	opts, err := pathFlags.options("")
	if err != nil {
		return err
	}

	s := registry.CreateSession(appConfig.Session.ID, false)
	for i := 0; i < pathCount; i++ {
		fmt.Fprintln(cmd.OutOrStdout(), s.Path(opts))
	}
	return nil
}

func runFile(cmd *cobra.Command, args []string) error {
	opts, err := fileFlags.options(temptmp.KindFile)
	if err != nil {
		return err
	}

	s := registry.CreateSession(appConfig.Session.ID, false)
	tf, err := s.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := tf.File.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tf.Path)
	return nil
}

func runDir(cmd *cobra.Command, args []string) error {
	opts, err := dirFlags.options(temptmp.KindDir)
	if err != nil {
		return err
	}

	s := registry.CreateSession(appConfig.Session.ID, false)
	path, err := s.Mkdir(opts)
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

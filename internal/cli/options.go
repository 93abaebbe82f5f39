package cli

import (
	"github.com/harun/temptmp/internal/config"
	"github.com/harun/temptmp/pkg/temptmp"
	"github.com/spf13/cobra"
)

// tempFlags are the naming flags shared by path, file, dir and exec
type tempFlags struct {
	dir    string
	prefix string
	suffix string
	mode   string
}

func (f *tempFlags) register(cmd *cobra.Command, withMode bool) {
	cmd.Flags().StringVar(&f.dir, "dir", "", "parent directory (default from config or the OS temp dir)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "name prefix")
	cmd.Flags().StringVar(&f.suffix, "suffix", "", "name suffix")
	if withMode {
		cmd.Flags().StringVar(&f.mode, "mode", "", "octal permission mode")
	}
}

func (f *tempFlags) reset() {
	*f = tempFlags{}
}

// options merges the flags over the configured temp defaults. kind selects
// the configured mode (temptmp.KindFile or temptmp.KindDir); any other kind
// leaves Mode unset.
func (f *tempFlags) options(kind string) (temptmp.Options, error) {
	opts := temptmp.Options{
		Dir:    appConfig.Temp.Dir,
		Prefix: appConfig.Temp.Prefix,
		Suffix: appConfig.Temp.Suffix,
	}
	if f.dir != "" {
		opts.Dir = f.dir
	}
	if f.prefix != "" {
		opts.Prefix = f.prefix
	}
	if f.suffix != "" {
		opts.Suffix = f.suffix
	}

	v := config.NewValidator()
	if err := v.ValidateAffix(opts.Prefix); err != nil {
		return opts, err
	}
	if err := v.ValidateAffix(opts.Suffix); err != nil {
		return opts, err
	}

	if f.mode != "" {
		mode, err := config.ParseMode(f.mode)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
		return opts, nil
	}

	fileMode, dirMode, err := appConfig.Temp.Modes()
	if err != nil {
		return opts, err
	}
	switch kind {
	case temptmp.KindFile:
		opts.Mode = fileMode
	case temptmp.KindDir:
		opts.Mode = dirMode
	}

	return opts, nil
}

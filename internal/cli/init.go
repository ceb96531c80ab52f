package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/swiftly/internal/configloader"
	"github.com/yaklabco/swiftly/internal/logging"
	"github.com/yaklabco/swiftly/pkg/config"
)

// defaultConfigFile is the file name init writes when --output is not given.
const defaultConfigFile = ".swiftly.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand(set *settings) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a swiftly configuration file",
		Long: `Create a .swiftly.yml configuration file in the current directory holding
the default settings. Edit it to change the output format or to pass extra
arguments to swiftlint and swiftformat.`,
		Example: `  swiftly init                     Create .swiftly.yml
  swiftly init --output ci.yml     Write to a custom file path
  swiftly init --force             Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags, set)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags, set *settings) error {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	outputPath := flags.output
	if !filepath.IsAbs(outputPath) && set.workingDir != "" {
		outputPath = filepath.Join(set.workingDir, outputPath)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	if err := configloader.WriteConfig(config.NewConfig(), absPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)

	return nil
}

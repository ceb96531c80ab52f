package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/swiftly/internal/configloader"
	"github.com/yaklabco/swiftly/internal/logging"
	"github.com/yaklabco/swiftly/pkg/config"
	"github.com/yaklabco/swiftly/pkg/reporter"
	"github.com/yaklabco/swiftly/pkg/runner"
)

func runLint(cmd *cobra.Command, args []string, flags *rootFlags, set *settings) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir := set.workingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		CLIConfig:    cliConfig(cmd, flags),
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	if !flags.debug && finalCfg.LogLevel != "" {
		logging.SetLevel(finalCfg.LogLevel)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	if flags.printConfig {
		return printConfig(cmd, finalCfg)
	}

	logger.Debug("configuration loaded",
		logging.FieldFormat, finalCfg.Format,
		logging.FieldOnly, finalCfg.Only,
		logging.FieldFix, finalCfg.Fix,
		logging.FieldQuiet, finalCfg.Quiet,
	)

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer: cmd.OutOrStdout(),
		Format: format,
		Color:  finalCfg.Color,
		Stats:  finalCfg.Stats,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	runOpts := runner.OptionsFromConfig(finalCfg)
	runOpts.Patterns = args
	runOpts.WorkingDir = workDir
	runOpts.Reporter = rep

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Patterns,
		logging.FieldWorkingDir, runOpts.WorkingDir,
	)

	result, err := runner.New(set.executor).Run(logging.WithLogger(ctx, logger), runOpts)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrLintIssuesFound
	}

	return nil
}

// cliConfig maps explicitly provided flags onto a partial configuration.
// Flags left at their defaults do not override config files.
func cliConfig(cmd *cobra.Command, flags *rootFlags) *config.Config {
	cfg := &config.Config{
		Fix:   flags.fix,
		Quiet: flags.quiet,
		Stats: flags.stats,
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if flags.singleLine {
		cfg.Format = config.FormatUnix
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = flags.color
	}

	switch {
	case flags.swiftlint:
		cfg.Only = config.ToolsSwiftLint
	case flags.swiftformat:
		cfg.Only = config.ToolsSwiftFormat
	}

	return cfg
}

// printConfig writes the resolved configuration as YAML.
func printConfig(cmd *cobra.Command, cfg *config.Config) error {
	content, err := cfg.ToYAML()
	if err != nil {
		return fmt.Errorf("print config: %w", err)
	}

	if _, err := cmd.OutOrStdout().Write(content); err != nil {
		return fmt.Errorf("print config: %w", err)
	}

	return nil
}

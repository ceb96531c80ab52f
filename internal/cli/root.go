// Package cli provides the Cobra command structure for swiftly.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/swiftly/internal/logging"
	"github.com/yaklabco/swiftly/pkg/config"
	"github.com/yaklabco/swiftly/pkg/runner"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Option customizes the root command.
type Option func(*settings)

// settings holds dependencies that tests replace.
type settings struct {
	executor   runner.Executor
	workingDir string
}

// WithExecutor runs the tools through executor instead of os/exec.
func WithExecutor(executor runner.Executor) Option {
	return func(s *settings) {
		s.executor = executor
	}
}

// WithWorkingDir runs the tools and discovers config from dir instead of
// the process working directory.
func WithWorkingDir(dir string) Option {
	return func(s *settings) {
		s.workingDir = dir
	}
}

// rootFlags holds the flags of the root command.
type rootFlags struct {
	debug       bool
	configPath  string
	color       string
	format      string
	swiftlint   bool
	swiftformat bool
	fix         bool
	singleLine  bool
	quiet       bool
	printConfig bool
	stats       bool
}

// NewRootCommand creates the root swiftly command with all subcommands.
func NewRootCommand(info BuildInfo, opts ...Option) *cobra.Command {
	set := &settings{}
	for _, opt := range opts {
		opt(set)
	}

	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "swiftly [flags] [files...]",
		Short: "Run swiftlint and swiftformat and report their findings together",
		Long: `swiftly runs swiftlint and swiftformat over your Swift sources and prints
one combined report, sorted by file and position.

Files may be given as paths or glob patterns (** is supported). Without
files, both tools lint the current directory using their own configuration.`,
		Example: `  swiftly                          Lint the current directory
  swiftly 'Sources/**/*.swift'     Lint matching files
  swiftly --fix Sources/App        Auto-correct, then report what remains
  swiftly -l -s                    Only swiftlint, one line per problem
  swiftly --format json            Machine-readable output`,
		Version: info.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags, set)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", config.ColorAuto,
		"colorize output: auto, always, never")

	addLintFlags(rootCmd, flags)

	rootCmd.AddCommand(newInitCommand(set))
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(config.ColorAuto, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

func addLintFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().BoolVarP(&flags.swiftlint, "swiftlint", "l", false, "only run swiftlint")
	cmd.Flags().BoolVarP(&flags.swiftformat, "swiftformat", "f", false, "only run swiftformat")
	cmd.Flags().BoolVarP(&flags.fix, "fix", "F", false, "auto-correct files before reporting")
	cmd.Flags().BoolVarP(&flags.singleLine, "single-line", "s", false,
		"one path:line:col line per problem (same as --format unix)")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "print nothing; only set the exit status")
	cmd.Flags().StringVar(&flags.format, "format", string(config.FormatStylish), "output format: stylish, unix, json")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "append a per-rule problem breakdown to the report")
	cmd.Flags().BoolVar(&flags.printConfig, "print-config", false, "print the resolved configuration and exit")

	cmd.MarkFlagsMutuallyExclusive("swiftlint", "swiftformat")
}

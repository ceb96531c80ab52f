package configloader

import "github.com/yaklabco/swiftly/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Only != config.ToolsAll {
		result.Only = override.Only
	}

	// false is the zero value, so a later layer can set these but never unset them.
	if override.Fix {
		result.Fix = true
	}
	if override.Quiet {
		result.Quiet = true
	}
	if override.Stats {
		result.Stats = true
	}

	result.SwiftLint = mergeTool(result.SwiftLint, override.SwiftLint)
	result.SwiftFormat = mergeTool(result.SwiftFormat, override.SwiftFormat)

	return result
}

// mergeTool merges a single tool's invocation settings.
func mergeTool(base, override config.ToolConfig) config.ToolConfig {
	result := base

	if override.Command != "" {
		result.Command = override.Command
	}
	if override.Args != nil {
		result.Args = override.Args
	}
	if override.FixArgs != nil {
		result.FixArgs = override.FixArgs
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
